package repository

import (
	"github.com/yukikurage/internship-management-api/internal/models"
)

// UserRepository defines the interface for user data access.
// Lookups only ever match users that are not soft deleted.
type UserRepository interface {
	// CreateWithProfile creates a user and, when given, its encadreur or intern profile
	// within a single transaction. It returns ErrEmailExists when a live user holds the email.
	CreateWithProfile(user *models.User, encadreur *models.Encadreur, intern *models.Intern) error

	// FindByID finds a live user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a live user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists every column of the user
	Update(user *models.User) error

	// List returns live users, optionally restricted to one role
	List(role *models.Role) ([]models.User, error)
}

// EncadreurRepository defines the interface for supervisor profile access
type EncadreurRepository interface {
	FindByID(id uint64) (*models.Encadreur, error)
	FindByUserID(userID uint64) (*models.Encadreur, error)
}

// InternRepository defines the interface for intern profile access
type InternRepository interface {
	FindByID(id uint64) (*models.Intern, error)
	FindByUserID(userID uint64) (*models.Intern, error)
}

// ProjectFilter holds filtering options for listing projects.
// At most one field is expected to be set; a zero filter lists every live project.
type ProjectFilter struct {
	EncadreurID *uint64
	Department  *string
	InternID    *uint64
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID whether or not it is soft deleted
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindLiveByID finds a project by ID, ignoring soft deleted rows
	FindLiveByID(id uint64, preload ...string) (*models.Project, error)

	// List retrieves live projects matching the filter
	List(filter ProjectFilter) ([]models.Project, error)

	// Update persists every column of the project
	Update(project *models.Project) error

	// AssignInterns links every given intern to the project in one transaction.
	// It returns ErrInternsNotFound and changes nothing if any ID does not resolve.
	AssignInterns(projectID uint64, internIDs []uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
	Status    *models.TaskStatus
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID whether or not it is soft deleted
	FindByID(id uint64) (*models.Task, error)

	// FindLiveByID finds a task by ID, ignoring soft deleted rows
	FindLiveByID(id uint64) (*models.Task, error)

	// List retrieves live tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists every column of the task
	Update(task *models.Task) error
}

// ActivityRepository defines the interface for the append-only activity history
type ActivityRepository interface {
	// Create appends a new record
	Create(entry *models.ActivityHistory) error

	// ListRecent returns the newest records first
	ListRecent(limit int) ([]models.ActivityHistory, error)

	// ListForEntity returns the records of one entity, newest first
	ListForEntity(entityType models.EntityType, entityID uint64) ([]models.ActivityHistory, error)
}
