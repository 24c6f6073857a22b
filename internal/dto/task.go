package dto

import (
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/services"
)

// TaskDTO represents a task in API responses.
// InternID and InternName describe the first intern of the owning project; tasks
// have no intern of their own.
type TaskDTO struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *string             `json:"due_date"`
	ProjectID    *uint64             `json:"project_id"`
	ProjectTitle *string             `json:"project_title"`
	InternID     *uint64             `json:"intern_id"`
	InternName   *string             `json:"intern_name"`
	Deleted      bool                `json:"deleted"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TaskRequest is the body of task create and update. Omitted fields are left unchanged.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	ProjectID   *uint64 `json:"project_id"`
}

// UpdateTaskStatusRequest is the body of a status change
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SuggestedTaskDTO is an AI proposal that has not been saved
type SuggestedTaskDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     FormatDate(task.DueDate),
		ProjectID:   task.ProjectID,
		Deleted:     task.Deleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Project == nil {
		return dto
	}

	title := task.Project.Title
	dto.ProjectTitle = &title

	if len(task.Project.Interns) > 0 {
		intern := task.Project.Interns[0]
		id := intern.ID
		dto.InternID = &id
		if intern.User.ID != 0 {
			name := intern.User.FullName()
			dto.InternName = &name
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskDTO(task)
	}
	return out
}

// ToSuggestedTaskDTOs converts AI suggestions
func ToSuggestedTaskDTOs(tasks []services.GeneratedTask) []SuggestedTaskDTO {
	out := make([]SuggestedTaskDTO, len(tasks))
	for i, task := range tasks {
		out[i] = SuggestedTaskDTO{
			Title:       task.Title,
			Description: task.Description,
			Priority:    task.Priority,
			DueDate:     FormatDate(task.DueDate),
		}
	}
	return out
}
