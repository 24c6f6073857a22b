package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/internship-management-api/internal/dto"
	apierrors "github.com/yukikurage/internship-management-api/internal/errors"
	"github.com/yukikurage/internship-management-api/internal/middleware"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
)

// UserHandler serves profile and account endpoints.
type UserHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile applies a partial update to the caller's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(email, services.UpdateProfileInput{
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		Phone:         req.Phone,
		Department:    req.Department,
		Avatar:        req.Avatar,
		DateNaissance: req.DateNaissance,
		CVPath:        req.CVPath,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UploadAvatar stores the multipart "file" field as the caller's avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	h.upload(c, h.userService.UploadAvatar)
}

// UploadCV stores the multipart "file" field as the caller's CV
func (h *UserHandler) UploadCV(c *gin.Context) {
	h.upload(c, h.userService.UploadCV)
}

func (h *UserHandler) upload(c *gin.Context, store func(string, services.FileUpload) (string, error)) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	file, ok := readUpload(c)
	if !ok {
		return
	}

	path, err := store(email, file)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Path: path})
}

// ChangePassword replaces the caller's password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.ChangePassword(email, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// ListUsers returns live users, optionally filtered by ?role=
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Query("role"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}

// SuspendAccount marks an account SUSPENDED
func (h *UserHandler) SuspendAccount(c *gin.Context) {
	h.setStatus(c, h.userService.SuspendAccount)
}

// ActivateAccount marks an account ACTIVE
func (h *UserHandler) ActivateAccount(c *gin.Context) {
	h.setStatus(c, h.userService.ActivateAccount)
}

func (h *UserHandler) setStatus(c *gin.Context, apply func(uint64) (*models.User, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := apply(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func callerEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return email, ok
}

// readUpload reads the "file" form field fully into memory.
func readUpload(c *gin.Context) (services.FileUpload, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "Missing file")
		return services.FileUpload{}, false
	}

	f, err := header.Open()
	if err != nil {
		apierrors.BadRequest(c, "Unreadable file")
		return services.FileUpload{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		apierrors.BadRequest(c, "Unreadable file")
		return services.FileUpload{}, false
	}

	return services.FileUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, true
}
