package dto

import (
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
)

// ActivityDTO represents an activity history entry in API responses
type ActivityDTO struct {
	ID          uint64                `json:"id"`
	UserID      *uint64               `json:"user_id"`
	Action      models.ActivityAction `json:"action"`
	EntityType  models.EntityType     `json:"entity_type"`
	EntityID    uint64                `json:"entity_id"`
	Description string                `json:"description"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToActivityDTOs converts a slice of activity entries
func ToActivityDTOs(entries []models.ActivityHistory) []ActivityDTO {
	out := make([]ActivityDTO, len(entries))
	for i, entry := range entries {
		out[i] = ActivityDTO{
			ID:          entry.ID,
			UserID:      entry.UserID,
			Action:      entry.Action,
			EntityType:  entry.EntityType,
			EntityID:    entry.EntityID,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		}
	}
	return out
}
