package services

import (
	"fmt"

	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"go.uber.org/zap"
)

// ActivityService writes and reads the activity history.
type ActivityService struct {
	activityRepo repository.ActivityRepository
	log          *zap.Logger
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, log *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		log:          log,
	}
}

// Record appends an entry. A failed write is logged and swallowed: the mutation that
// triggered it has already been committed.
func (s *ActivityService) Record(actorID *uint64, action models.ActivityAction, entityType models.EntityType, entityID uint64, description string) {
	entry := &models.ActivityHistory{
		UserID:      actorID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	}

	if err := s.activityRepo.Create(entry); err != nil {
		s.log.Warn("failed to record activity",
			zap.String("action", string(action)),
			zap.String("entity_type", string(entityType)),
			zap.Uint64("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// ListRecent returns the newest entries. A non-positive limit means the default,
// and the limit is capped.
func (s *ActivityService) ListRecent(limit int) ([]models.ActivityHistory, error) {
	if limit <= 0 {
		limit = constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		limit = constants.MaxActivityLimit
	}

	entries, err := s.activityRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

// ListForEntity returns the history of one entity, newest first.
func (s *ActivityService) ListForEntity(entityType string, entityID uint64) ([]models.ActivityHistory, error) {
	parsed, ok := models.ParseEntityType(entityType)
	if !ok {
		return nil, ErrInvalidEntityType
	}

	entries, err := s.activityRepo.ListForEntity(parsed, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}
