package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	activity *ActivityService
	log      *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, activity *ActivityService, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		activity: activity,
		log:      log,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email      string
	Password   string
	Nom        string
	Prenom     string
	Role       string
	Department string
	School     string
}

// Register creates a new user together with the profile matching its role.
// Admins start ACTIVE; everyone else starts PENDING until an admin activates them.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if err := validateNewPassword(input.Password); err != nil {
		return nil, err
	}

	role := models.RoleStagiaire
	if strings.TrimSpace(input.Role) != "" {
		parsed, ok := models.ParseRole(input.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		role = parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         email,
		PasswordHash:  string(hashedPassword),
		Nom:           input.Nom,
		Prenom:        input.Prenom,
		Department:    input.Department,
		Role:          role,
		AccountStatus: models.AccountStatusPending,
	}

	var encadreur *models.Encadreur
	var intern *models.Intern
	switch role {
	case models.RoleAdmin:
		user.AccountStatus = models.AccountStatusActive
	case models.RoleEncadreur:
		encadreur = &models.Encadreur{Department: input.Department}
	case models.RoleStagiaire:
		intern = &models.Intern{School: input.School}
	}

	if err := s.userRepo.CreateWithProfile(user, encadreur, intern); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrCreateUser):
			return nil, fmt.Errorf("failed to create user: %w", err)
		case errors.Is(err, repository.ErrCreateProfile):
			return nil, fmt.Errorf("failed to create %s profile: %w", strings.ToLower(string(role)), err)
		default:
			return nil, fmt.Errorf("failed to complete registration: %w", err)
		}
	}

	s.activity.Record(&user.ID, models.ActivityCreate, models.EntityUser, user.ID,
		"User registered: "+user.Email)

	return user, nil
}

// validateNewPassword enforces the length bounds of a password about to be hashed.
// The minimum counts characters, not bytes.
func validateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > constants.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.AccountStatus == models.AccountStatusSuspended {
		s.log.Info("login refused for suspended account", zap.Uint64("user_id", user.ID))
		return nil, ErrAccountSuspended
	}

	return user, nil
}
