package dto

import (
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
)

// EncadreurDTO represents a supervisor in API responses
type EncadreurDTO struct {
	ID         uint64          `json:"id"`
	Department string          `json:"department"`
	User       *UserSummaryDTO `json:"user,omitempty"`
}

// InternDTO represents an intern in API responses
type InternDTO struct {
	ID     uint64          `json:"id"`
	School string          `json:"school"`
	User   *UserSummaryDTO `json:"user,omitempty"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	StartDate   *string              `json:"start_date"`
	EndDate     *string              `json:"end_date"`
	Department  string               `json:"department"`
	Progress    int                  `json:"progress"`
	Status      models.ProjectStatus `json:"status"`
	EncadreurID *uint64              `json:"encadreur_id"`
	Encadreur   *EncadreurDTO        `json:"encadreur,omitempty"`
	Interns     []InternDTO          `json:"interns"`
	Deleted     bool                 `json:"deleted"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ProjectRequest is the body of project create and update. Omitted fields are left unchanged.
type ProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Department  *string `json:"department"`
	Progress    *int    `json:"progress"`
	Status      *string `json:"status"`
	EncadreurID *uint64 `json:"encadreur_id"`
}

// AssignInternsRequest is the body of an intern assignment
type AssignInternsRequest struct {
	InternIDs []uint64 `json:"intern_ids"`
}

// ToEncadreurDTO converts an Encadreur model to EncadreurDTO
func ToEncadreurDTO(encadreur models.Encadreur) EncadreurDTO {
	dto := EncadreurDTO{
		ID:         encadreur.ID,
		Department: encadreur.Department,
	}
	if encadreur.User.ID != 0 {
		user := ToUserSummaryDTO(encadreur.User)
		dto.User = &user
	}
	return dto
}

// ToInternDTO converts an Intern model to InternDTO
func ToInternDTO(intern models.Intern) InternDTO {
	dto := InternDTO{
		ID:     intern.ID,
		School: intern.School,
	}
	if intern.User.ID != 0 {
		user := ToUserSummaryDTO(intern.User)
		dto.User = &user
	}
	return dto
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		StartDate:   FormatDate(project.StartDate),
		EndDate:     FormatDate(project.EndDate),
		Department:  project.Department,
		Progress:    project.Progress,
		Status:      project.Status,
		EncadreurID: project.EncadreurID,
		Interns:     make([]InternDTO, len(project.Interns)),
		Deleted:     project.Deleted,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	// Include encadreur if preloaded
	if project.Encadreur != nil {
		encadreur := ToEncadreurDTO(*project.Encadreur)
		dto.Encadreur = &encadreur
	}

	for i, intern := range project.Interns {
		dto.Interns[i] = ToInternDTO(intern)
	}

	return dto
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		out[i] = ToProjectDTO(project)
	}
	return out
}
