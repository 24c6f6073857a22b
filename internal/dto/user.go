package dto

import (
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID            uint64               `json:"id"`
	Email         string               `json:"email"`
	Nom           string               `json:"nom"`
	Prenom        string               `json:"prenom"`
	Phone         string               `json:"phone"`
	Department    string               `json:"department"`
	Avatar        string               `json:"avatar"`
	CVPath        string               `json:"cv_path"`
	DateNaissance string               `json:"date_naissance"`
	Role          models.Role          `json:"role"`
	AccountStatus models.AccountStatus `json:"account_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// AccountDTO is the caller's user with its role profile, when it has one
type AccountDTO struct {
	UserDTO
	Encadreur *EncadreurDTO `json:"encadreur,omitempty"`
	Intern    *InternDTO    `json:"intern,omitempty"`
}

// UserSummaryDTO is the short form of a user embedded in other resources
type UserSummaryDTO struct {
	ID     uint64 `json:"id"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

// UpdateProfileRequest is the body of a profile update. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Nom           *string `json:"nom"`
	Prenom        *string `json:"prenom"`
	Phone         *string `json:"phone"`
	Department    *string `json:"department"`
	Avatar        *string `json:"avatar"`
	DateNaissance *string `json:"date_naissance"`
	CVPath        *string `json:"cv_path"`
}

// ChangePasswordRequest is the body of a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"`
}

// UploadResponse is returned after a file upload
type UploadResponse struct {
	Path string `json:"path"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		Nom:           user.Nom,
		Prenom:        user.Prenom,
		Phone:         user.Phone,
		Department:    user.Department,
		Avatar:        user.Avatar,
		CVPath:        user.CVPath,
		DateNaissance: user.DateNaissance,
		Role:          user.Role,
		AccountStatus: user.AccountStatus,
		CreatedAt:     user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, user := range users {
		out[i] = ToUserDTO(user)
	}
	return out
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:     user.ID,
		Email:  user.Email,
		Nom:    user.Nom,
		Prenom: user.Prenom,
	}
}

// ToAccountDTO converts an account and its profile
func ToAccountDTO(account *services.Account) AccountDTO {
	dto := AccountDTO{UserDTO: ToUserDTO(*account.User)}
	if account.Encadreur != nil {
		encadreur := ToEncadreurDTO(*account.Encadreur)
		dto.Encadreur = &encadreur
	}
	if account.Intern != nil {
		intern := ToInternDTO(*account.Intern)
		dto.Intern = &intern
	}
	return dto
}
