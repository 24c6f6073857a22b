package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateProfile is returned when creating the encadreur or intern profile fails.
	ErrCreateProfile = errors.New("user repository: create profile failed")
	// ErrEmailExists is returned when a live user already holds the email.
	ErrEmailExists = errors.New("user repository: email already exists")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithProfile creates a user and its role profile atomically. The email is checked
// inside the transaction; the partial unique index on live emails backs the check on
// drivers that support it.
func (r *GormUserRepository) CreateWithProfile(user *models.User, encadreur *models.Encadreur, intern *models.Intern) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Scopes(database.Live("users")).
			Where("users.email = ?", user.Email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}
		if count > 0 {
			return ErrEmailExists
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailExists
			}
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		if encadreur != nil {
			encadreur.UserID = user.ID
			if err := tx.Create(encadreur).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateProfile, err)
			}
		}

		if intern != nil {
			intern.UserID = user.ID
			if err := tx.Create(intern).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateProfile, err)
			}
		}

		return nil
	})
}

// FindByID finds a live user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.Live("users")).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a live user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.Live("users")).
		Where("users.email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List returns live users ordered by ID
func (r *GormUserRepository) List(role *models.Role) ([]models.User, error) {
	var users []models.User
	query := r.db.Scopes(database.Live("users"))
	if role != nil {
		query = query.Where("users.role = ?", *role)
	}
	if err := query.Order("users.id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
