package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/internship-management-api/internal/errors"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
)

// respondServiceError maps a service failure to an HTTP response.
// Anything that is not a *services.Error is logged and reported as a 500.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		apierrors.InternalError(c, "")
		return
	}

	apierrors.RespondWithCode(c, statusForKind(svcErr.Kind), svcErr.Code, svcErr.Message)
}

func statusForKind(kind error) int {
	switch {
	case errors.Is(kind, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, services.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(kind, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, services.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam reads a numeric path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// parseIDQuery reads an optional numeric query parameter.
func parseIDQuery(c *gin.Context, name string) (*uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return nil, false
	}
	return &id, true
}
