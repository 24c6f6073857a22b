package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/yukikurage/internship-management-api/internal/config"
	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"github.com/yukikurage/internship-management-api/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles profile, upload and account status logic
type UserService struct {
	userRepo      repository.UserRepository
	encadreurRepo repository.EncadreurRepository
	internRepo    repository.InternRepository
	avatars       *storage.Store
	cvs           *storage.Store
	log           *zap.Logger
}

// NewUserService creates a new UserService writing uploads into the configured directories of fs.
func NewUserService(
	userRepo repository.UserRepository,
	encadreurRepo repository.EncadreurRepository,
	internRepo repository.InternRepository,
	fs afero.Fs,
	uploads config.UploadConfig,
	log *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		encadreurRepo: encadreurRepo,
		internRepo:    internRepo,
		avatars:       storage.New(fs, uploads.AvatarDir, constants.AvatarURLPrefix),
		cvs:           storage.New(fs, uploads.CVDir, constants.CVURLPrefix),
		log:           log,
	}
}

// UpdateProfileInput is a partial profile update. Nil fields are left untouched.
type UpdateProfileInput struct {
	Nom           *string
	Prenom        *string
	Phone         *string
	Department    *string
	Avatar        *string
	DateNaissance *string
	CVPath        *string
}

// Account is a user together with the profile matching its role.
// At most one of Encadreur and Intern is set; admins have neither.
type Account struct {
	User      *models.User
	Encadreur *models.Encadreur
	Intern    *models.Intern
}

// FileUpload is an uploaded file as received from the client
type FileUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// GetByEmail returns the live user with the given email
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetByID returns the live user with the given ID
func (s *UserService) GetByID(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetAccount returns the live user with its encadreur or intern profile.
// A missing profile is not an error: accounts created before profiles existed have none.
func (s *UserService) GetAccount(id uint64) (*Account, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	account := &Account{User: user}
	switch user.Role {
	case models.RoleEncadreur:
		encadreur, err := s.encadreurRepo.FindByUserID(user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find encadreur profile: %w", err)
		}
		account.Encadreur = encadreur
	case models.RoleStagiaire:
		intern, err := s.internRepo.FindByUserID(user.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find intern profile: %w", err)
		}
		account.Intern = intern
	}
	return account, nil
}

// ListUsers returns live users, optionally restricted to the named role
func (s *UserService) ListUsers(role string) ([]models.User, error) {
	var filter *models.Role
	if role != "" {
		parsed, ok := models.ParseRole(role)
		if !ok {
			return nil, ErrInvalidRole
		}
		filter = &parsed
	}

	users, err := s.userRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies a partial update to the user's profile
func (s *UserService) UpdateProfile(email string, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if input.Nom != nil {
		user.Nom = *input.Nom
	}
	if input.Prenom != nil {
		user.Prenom = *input.Prenom
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.DateNaissance != nil {
		user.DateNaissance = *input.DateNaissance
	}
	if input.CVPath != nil {
		user.CVPath = *input.CVPath
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UploadAvatar stores an image and makes it the user's avatar. The original extension is kept.
func (s *UserService) UploadAvatar(email string, file FileUpload) (string, error) {
	if len(file.Data) == 0 {
		return "", ErrEmptyFile
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "", ErrNotAnImage
	}

	user, err := s.GetByEmail(email)
	if err != nil {
		return "", err
	}

	url, err := s.avatars.Save(file.Data, storage.Extension(file.Filename))
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.userRepo.Update(user); err != nil {
		return "", fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info("avatar uploaded", zap.Uint64("user_id", user.ID), zap.String("path", url))
	return url, nil
}

// UploadCV stores a PDF as the user's CV. The stored name always ends in .pdf.
func (s *UserService) UploadCV(email string, file FileUpload) (string, error) {
	if len(file.Data) == 0 {
		return "", ErrEmptyFile
	}
	if file.ContentType != "application/pdf" {
		return "", ErrNotAPDF
	}

	user, err := s.GetByEmail(email)
	if err != nil {
		return "", err
	}

	url, err := s.cvs.Save(file.Data, ".pdf")
	if err != nil {
		return "", err
	}

	user.CVPath = url
	if err := s.userRepo.Update(user); err != nil {
		return "", fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info("cv uploaded", zap.Uint64("user_id", user.ID), zap.String("path", url))
	return url, nil
}

// ChangePassword replaces the password after checking the current one
func (s *UserService) ChangePassword(email, currentPassword, newPassword string) error {
	user, err := s.GetByEmail(email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}
	if err := validateNewPassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// SuspendAccount marks the account SUSPENDED
func (s *UserService) SuspendAccount(id uint64) (*models.User, error) {
	return s.setAccountStatus(id, models.AccountStatusSuspended)
}

// ActivateAccount marks the account ACTIVE
func (s *UserService) ActivateAccount(id uint64) (*models.User, error) {
	return s.setAccountStatus(id, models.AccountStatusActive)
}

func (s *UserService) setAccountStatus(id uint64, status models.AccountStatus) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.AccountStatus = status
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
