package repository

import (
	"errors"

	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/gorm"
)

// Relations accepted by the project preload arguments
const (
	PreloadEncadreur = "Encadreur"
	PreloadInterns   = "Interns"
)

// ErrInternsNotFound is returned when an intern assignment references an unknown intern.
var ErrInternsNotFound = errors.New("project repository: one or more interns not found")

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project. Loaded relations are never written back.
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(PreloadEncadreur, PreloadInterns, "Tasks").Create(project).Error
}

// FindByID finds a project by ID, soft deleted or not
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	if err := preloadProject(r.db, preload).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindLiveByID finds a project by ID that has not been soft deleted
func (r *GormProjectRepository) FindLiveByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	if err := preloadProject(r.db, preload).
		Scopes(database.Live("projects")).
		First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves live projects with their encadreur and interns
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	query := preloadProject(r.db, []string{PreloadEncadreur, PreloadInterns}).
		Model(&models.Project{}).
		Scopes(database.Live("projects"))

	if filter.EncadreurID != nil {
		query = query.Where("projects.encadreur_id = ?", *filter.EncadreurID)
	}
	if filter.Department != nil {
		query = query.Where("projects.department = ?", *filter.Department)
	}
	if filter.InternID != nil {
		internProjects := r.db.Model(&models.Intern{}).
			Select("project_id").
			Where("interns.id = ? AND interns.project_id IS NOT NULL", *filter.InternID)
		query = query.Where("projects.id IN (?)", internProjects)
	}

	if err := query.Order("projects.id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(PreloadEncadreur, PreloadInterns, "Tasks").Save(project).Error
}

// AssignInterns points every intern at the project inside one transaction
func (r *GormProjectRepository) AssignInterns(projectID uint64, internIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Intern{}).
			Scopes(database.Live("interns")).
			Where("interns.id IN ?", internIDs).
			Count(&count).Error; err != nil {
			return err
		}

		if int(count) != len(internIDs) {
			return ErrInternsNotFound
		}

		return tx.Model(&models.Intern{}).
			Where("id IN ?", internIDs).
			Update("project_id", projectID).Error
	})
}

// preloadProject applies the requested relations. Interns are limited to live rows and
// ordered by ID so "first intern" is stable.
func preloadProject(db *gorm.DB, preload []string) *gorm.DB {
	query := db
	for _, p := range preload {
		switch p {
		case PreloadEncadreur:
			query = query.Preload("Encadreur").Preload("Encadreur.User")
		case PreloadInterns:
			query = query.Preload("Interns", liveInternsOrdered).Preload("Interns.User")
		default:
			query = query.Preload(p)
		}
	}
	return query
}

func liveInternsOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("interns.deleted = ?", false).Order("interns.id ASC")
}
