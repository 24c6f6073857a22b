package repository

import (
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends a record
func (r *GormActivityRepository) Create(entry *models.ActivityHistory) error {
	return r.db.Create(entry).Error
}

// ListRecent returns up to limit records, newest first
func (r *GormActivityRepository) ListRecent(limit int) ([]models.ActivityHistory, error) {
	var entries []models.ActivityHistory
	if err := r.db.Scopes(database.Limit(limit)).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListForEntity returns every record of one entity, newest first
func (r *GormActivityRepository) ListForEntity(entityType models.EntityType, entityID uint64) ([]models.ActivityHistory, error) {
	var entries []models.ActivityHistory
	if err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
