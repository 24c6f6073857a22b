package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	activity    *ActivityService
	suggester   TaskSuggester
	log         *zap.Logger
}

// NewTaskService creates a new TaskService. suggester may be nil when no AI backend is configured.
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	activity *ActivityService,
	suggester TaskSuggester,
	log *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		activity:    activity,
		suggester:   suggester,
		log:         log,
	}
}

// TaskInput is used for both create and update. Nil fields are absent.
type TaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	ProjectID   *uint64
}

// ListAll returns every live task
func (s *TaskService) ListAll() ([]models.Task, error) {
	return s.list(repository.TaskFilter{})
}

// ListByProject returns the live tasks of a project
func (s *TaskService) ListByProject(projectID uint64) ([]models.Task, error) {
	return s.list(repository.TaskFilter{ProjectID: &projectID})
}

// ListByStatus returns the live tasks in the named status
func (s *TaskService) ListByStatus(status string) ([]models.Task, error) {
	parsed, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}
	return s.list(repository.TaskFilter{Status: &parsed})
}

// ListByIntern returns the live tasks whose project has the intern assigned.
// It loads every live task and filters in memory.
func (s *TaskService) ListByIntern(internID uint64) ([]models.Task, error) {
	tasks, err := s.list(repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	matched := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Project == nil {
			continue
		}
		for _, intern := range task.Project.Interns {
			if intern.ID == internID {
				matched = append(matched, task)
				break
			}
		}
	}
	return matched, nil
}

func (s *TaskService) list(filter repository.TaskFilter) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns a task with its project context. Soft deleted tasks are still returned.
func (s *TaskService) GetByID(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create creates a task. Status defaults to TODO and priority to MEDIUM.
func (s *TaskService) Create(input TaskInput) (*models.Task, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return nil, ErrTitleRequired
	}

	task := &models.Task{
		Status:   models.TaskStatusTodo,
		Priority: models.TaskPriorityMedium,
	}
	if err := s.apply(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	created, err := s.GetByID(task.ID)
	if err != nil {
		return nil, err
	}

	s.record(created, models.ActivityCreate, "Task created: "+created.Title)
	return created, nil
}

// Update applies a partial update to a live task
func (s *TaskService) Update(id uint64, input TaskInput) (*models.Task, error) {
	task, err := s.findLive(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := s.apply(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.GetByID(task.ID)
	if err != nil {
		return nil, err
	}

	s.record(updated, models.ActivityUpdate, "Task updated: "+updated.Title)
	return updated, nil
}

// Delete soft deletes a live task
func (s *TaskService) Delete(id uint64) error {
	task, err := s.findLive(id)
	if err != nil {
		return err
	}

	task.Deleted = true
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.record(task, models.ActivityDelete, "Task deleted: "+task.Title)
	return nil
}

// UpdateStatus sets only the status of a live task
func (s *TaskService) UpdateStatus(id uint64, status string) (*models.Task, error) {
	parsed, ok := models.ParseTaskStatus(status)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.findLive(id)
	if err != nil {
		return nil, err
	}

	previous := task.Status
	task.Status = parsed
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.record(task, models.ActivityUpdate,
		fmt.Sprintf("Task status changed: %s (%s -> %s)", task.Title, previous, parsed))
	return task, nil
}

// SuggestTasks asks the AI backend for tasks fitting a live project. Nothing is persisted.
func (s *TaskService) SuggestTasks(ctx context.Context, projectID uint64) ([]GeneratedTask, error) {
	if s.suggester == nil {
		return nil, ErrAIServiceNotConfigured
	}

	project, err := s.findLiveProject(projectID)
	if err != nil {
		return nil, err
	}

	aiTasks, err := s.suggester.SuggestTasks(ctx, project.Title, project.Description)
	if err != nil {
		s.log.Warn("task suggestion request failed",
			zap.Uint64("project_id", projectID),
			zap.Error(err),
		)
		return nil, ErrAIRequestFailed
	}

	if len(aiTasks) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(aiTasks) > constants.MaxAIGeneratedTasks {
		return nil, ErrAITooManyTasks
	}

	validTasks := make([]GeneratedTask, 0, len(aiTasks))
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, aiTask := range aiTasks {
		aiTask.Title = strings.TrimSpace(aiTask.Title)
		if aiTask.Title == "" {
			continue
		}

		if aiTask.DueDate != nil && aiTask.DueDate.Before(cutoff) {
			aiTask.DueDate = nil
		}

		if priority, ok := models.ParseTaskPriority(aiTask.Priority); ok {
			aiTask.Priority = string(priority)
		} else {
			aiTask.Priority = string(models.TaskPriorityMedium)
		}

		validTasks = append(validTasks, aiTask)
	}

	if len(validTasks) == 0 {
		return nil, ErrAINoValidTasks
	}

	s.log.Info("task suggestions generated",
		zap.Uint64("project_id", projectID),
		zap.Int("count", len(validTasks)),
	)
	return validTasks, nil
}

// record writes an activity entry attributed to the project's supervisor.
// Tasks outside a supervised project are not recorded.
func (s *TaskService) record(task *models.Task, action models.ActivityAction, description string) {
	actor := task.Project.SupervisorUserID()
	if actor == nil {
		return
	}
	s.activity.Record(actor, action, models.EntityTask, task.ID, description)
}

func (s *TaskService) findLive(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindLiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func (s *TaskService) findLiveProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindLiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// apply copies the present fields of input onto task after validating them.
// Nothing is modified when validation fails.
func (s *TaskService) apply(task *models.Task, input TaskInput) error {
	var status models.TaskStatus
	if input.Status != nil {
		parsed, ok := models.ParseTaskStatus(*input.Status)
		if !ok {
			return ErrInvalidTaskStatus
		}
		status = parsed
	}

	var priority models.TaskPriority
	if input.Priority != nil {
		parsed, ok := models.ParseTaskPriority(*input.Priority)
		if !ok {
			return ErrInvalidPriority
		}
		priority = parsed
	}

	if input.ProjectID != nil {
		if _, err := s.findLiveProject(*input.ProjectID); err != nil {
			return err
		}
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = status
	}
	if input.Priority != nil {
		task.Priority = priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.ProjectID != nil {
		projectID := *input.ProjectID
		task.ProjectID = &projectID
	}

	return nil
}
