package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo   repository.ProjectRepository
	encadreurRepo repository.EncadreurRepository
	internRepo    repository.InternRepository
	activity      *ActivityService
	log           *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	encadreurRepo repository.EncadreurRepository,
	internRepo repository.InternRepository,
	activity *ActivityService,
	log *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		encadreurRepo: encadreurRepo,
		internRepo:    internRepo,
		activity:      activity,
		log:           log,
	}
}

// ProjectInput is used for both create and update. Nil fields are absent.
type ProjectInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Department  *string
	Progress    *int
	Status      *string
	EncadreurID *uint64
}

// ListAll returns every live project
func (s *ProjectService) ListAll() ([]models.Project, error) {
	return s.list(repository.ProjectFilter{})
}

// ListByEncadreur returns the live projects supervised by an encadreur
func (s *ProjectService) ListByEncadreur(encadreurID uint64) ([]models.Project, error) {
	if _, err := s.findEncadreur(encadreurID); err != nil {
		return nil, err
	}
	return s.list(repository.ProjectFilter{EncadreurID: &encadreurID})
}

// ListByDepartment returns the live projects of a department
func (s *ProjectService) ListByDepartment(department string) ([]models.Project, error) {
	return s.list(repository.ProjectFilter{Department: &department})
}

// ListByIntern returns the live project an intern is assigned to, if any
func (s *ProjectService) ListByIntern(internID uint64) ([]models.Project, error) {
	if _, err := s.internRepo.FindByID(internID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternNotFound
		}
		return nil, fmt.Errorf("failed to find intern: %w", err)
	}
	return s.list(repository.ProjectFilter{InternID: &internID})
}

func (s *ProjectService) list(filter repository.ProjectFilter) ([]models.Project, error) {
	projects, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID returns a project with its encadreur and interns. Soft deleted projects
// are still returned here with Deleted set.
func (s *ProjectService) GetByID(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, repository.PreloadEncadreur, repository.PreloadInterns)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create creates a project. Progress defaults to 0 and status to PLANNING.
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return nil, ErrTitleRequired
	}

	project := &models.Project{
		Status: models.ProjectStatusPlanning,
	}
	if err := s.apply(project, input); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.activity.Record(project.SupervisorUserID(), models.ActivityCreate, models.EntityProject, project.ID,
		"Project created: "+project.Title)

	return s.GetByID(project.ID)
}

// Update applies a partial update to a live project
func (s *ProjectService) Update(id uint64, input ProjectInput) (*models.Project, error) {
	project, err := s.findLive(id, repository.PreloadEncadreur)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := s.apply(project, input); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.activity.Record(project.SupervisorUserID(), models.ActivityUpdate, models.EntityProject, project.ID,
		"Project updated: "+project.Title)

	return s.GetByID(project.ID)
}

// Delete soft deletes a live project. Its tasks and interns keep pointing at it.
func (s *ProjectService) Delete(id uint64) error {
	project, err := s.findLive(id, repository.PreloadEncadreur)
	if err != nil {
		return err
	}

	project.Deleted = true
	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.activity.Record(project.SupervisorUserID(), models.ActivityDelete, models.EntityProject, project.ID,
		"Project deleted: "+project.Title)

	return nil
}

// AssignInterns moves every listed intern onto the project. Either all of them are
// reassigned or none is.
func (s *ProjectService) AssignInterns(projectID uint64, internIDs []uint64) (*models.Project, error) {
	project, err := s.findLive(projectID, repository.PreloadEncadreur)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(internIDs)
	if len(ids) == 0 {
		return s.GetByID(projectID)
	}

	if err := s.projectRepo.AssignInterns(projectID, ids); err != nil {
		if errors.Is(err, repository.ErrInternsNotFound) {
			return nil, ErrInternNotFound
		}
		return nil, fmt.Errorf("failed to assign interns: %w", err)
	}

	s.activity.Record(project.SupervisorUserID(), models.ActivityUpdate, models.EntityProject, project.ID,
		fmt.Sprintf("Interns assigned to project %s: %d", project.Title, len(ids)))

	return s.GetByID(projectID)
}

func (s *ProjectService) findLive(id uint64, preload ...string) (*models.Project, error) {
	project, err := s.projectRepo.FindLiveByID(id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) findEncadreur(id uint64) (*models.Encadreur, error) {
	encadreur, err := s.encadreurRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncadreurNotFound
		}
		return nil, fmt.Errorf("failed to find encadreur: %w", err)
	}
	return encadreur, nil
}

// apply copies the present fields of input onto project after validating them.
// Nothing is modified when validation fails.
func (s *ProjectService) apply(project *models.Project, input ProjectInput) error {
	var status models.ProjectStatus
	if input.Status != nil {
		parsed, ok := models.ParseProjectStatus(*input.Status)
		if !ok {
			return ErrInvalidProjectStatus
		}
		status = parsed
	}
	if input.Progress != nil && (*input.Progress < 0 || *input.Progress > 100) {
		return ErrInvalidProgress
	}

	var encadreur *models.Encadreur
	if input.EncadreurID != nil {
		found, err := s.findEncadreur(*input.EncadreurID)
		if err != nil {
			return err
		}
		encadreur = found
	}

	if input.Title != nil {
		project.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Department != nil {
		project.Department = *input.Department
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.Status != nil {
		project.Status = status
	}
	if encadreur != nil {
		project.EncadreurID = &encadreur.ID
		project.Encadreur = encadreur
	}

	return nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
