package repository

import (
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/gorm"
)

// GormEncadreurRepository is a GORM implementation of EncadreurRepository
type GormEncadreurRepository struct {
	db *gorm.DB
}

// NewEncadreurRepository creates a new EncadreurRepository
func NewEncadreurRepository(db *gorm.DB) EncadreurRepository {
	return &GormEncadreurRepository{db: db}
}

// FindByID finds a live encadreur by ID with its user
func (r *GormEncadreurRepository) FindByID(id uint64) (*models.Encadreur, error) {
	var encadreur models.Encadreur
	if err := r.db.Preload("User").
		Scopes(database.Live("encadreurs")).
		First(&encadreur, id).Error; err != nil {
		return nil, err
	}
	return &encadreur, nil
}

// FindByUserID finds the live encadreur profile of a user
func (r *GormEncadreurRepository) FindByUserID(userID uint64) (*models.Encadreur, error) {
	var encadreur models.Encadreur
	if err := r.db.Scopes(database.Live("encadreurs")).
		Where("encadreurs.user_id = ?", userID).
		First(&encadreur).Error; err != nil {
		return nil, err
	}
	return &encadreur, nil
}

// GormInternRepository is a GORM implementation of InternRepository
type GormInternRepository struct {
	db *gorm.DB
}

// NewInternRepository creates a new InternRepository
func NewInternRepository(db *gorm.DB) InternRepository {
	return &GormInternRepository{db: db}
}

// FindByID finds a live intern by ID with its user
func (r *GormInternRepository) FindByID(id uint64) (*models.Intern, error) {
	var intern models.Intern
	if err := r.db.Preload("User").
		Scopes(database.Live("interns")).
		First(&intern, id).Error; err != nil {
		return nil, err
	}
	return &intern, nil
}

// FindByUserID finds the live intern profile of a user
func (r *GormInternRepository) FindByUserID(userID uint64) (*models.Intern, error) {
	var intern models.Intern
	if err := r.db.Scopes(database.Live("interns")).
		Where("interns.user_id = ?", userID).
		First(&intern).Error; err != nil {
		return nil, err
	}
	return &intern, nil
}
