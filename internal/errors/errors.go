package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Generic error codes. Domain failures carry their own codes from the services package.
const (
	ErrCodeUnauthorized            = "UNAUTHORIZED"
	ErrCodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	ErrCodeInvalidInput            = "INVALID_INPUT"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

// APIError is the body of every error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithCode aborts the request with status and an APIError body
func RespondWithCode(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, NewAPIError(code, message))
}

// respond falls back to fallback when message is empty
func respond(c *gin.Context, statusCode int, code, message, fallback string) {
	if message == "" {
		message = fallback
	}
	RespondWithCode(c, statusCode, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, ErrCodeUnauthorized, message, "Authentication required")
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, ErrCodeInsufficientPermissions, message, "Access denied")
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, ErrCodeInvalidInput, message, "Invalid request")
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, ErrCodeInternalError, message, "Internal server error")
}
