package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/internship-management-api/internal/dto"
	apierrors "github.com/yukikurage/internship-management-api/internal/errors"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
)

// ActivityHandler exposes the activity history.
type ActivityHandler struct {
	activityService *services.ActivityService
	log             *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		log:             log,
	}
}

// ListActivities returns the newest entries, or the history of one entity when
// entity_type and entity_id are both given.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID, ok := parseIDQuery(c, "entity_id")
	if !ok {
		return
	}

	var entries []models.ActivityHistory
	var err error
	switch {
	case entityType != "" && entityID != nil:
		entries, err = h.activityService.ListForEntity(entityType, *entityID)
	case entityType != "" || entityID != nil:
		apierrors.BadRequest(c, "entity_type and entity_id must be given together")
		return
	default:
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				apierrors.BadRequest(c, "Invalid limit")
				return
			}
		}
		entries, err = h.activityService.ListRecent(limit)
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": dto.ToActivityDTOs(entries)})
}
