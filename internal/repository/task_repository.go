package repository

import (
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit("Project").Create(task).Error
}

// FindByID finds a task by ID, soft deleted or not, with its project context
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := preloadTaskProject(r.db).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindLiveByID finds a task by ID that has not been soft deleted
func (r *GormTaskRepository) FindLiveByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := preloadTaskProject(r.db).
		Scopes(database.Live("tasks")).
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves live tasks matching the filter
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := preloadTaskProject(r.db).
		Model(&models.Task{}).
		Scopes(database.Live("tasks"))

	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}

	if err := query.Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit("Project").Save(task).Error
}

// preloadTaskProject loads the owning project with its supervisor and its live interns,
// which the derived assigned-intern view and the activity attribution depend on.
func preloadTaskProject(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Project").
		Preload("Project.Encadreur").
		Preload("Project.Interns", liveInternsOrdered).
		Preload("Project.Interns.User")
}
