package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/internship-management-api/internal/dto"
	apierrors "github.com/yukikurage/internship-management-api/internal/errors"
	"github.com/yukikurage/internship-management-api/internal/models"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService *services.TaskService
	log         *zap.Logger
}

func NewTaskHandler(taskService *services.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         log,
	}
}

// ListTasks returns live tasks.
// One of project_id, status or intern_id may narrow the result, checked in that order.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, ok := parseIDQuery(c, "project_id")
	if !ok {
		return
	}
	internID, ok := parseIDQuery(c, "intern_id")
	if !ok {
		return
	}
	status, hasStatus := c.GetQuery("status")

	var tasks []models.Task
	var err error
	switch {
	case projectID != nil:
		tasks, err = h.taskService.ListByProject(*projectID)
	case hasStatus:
		tasks, err = h.taskService.ListByStatus(status)
	case internID != nil:
		tasks, err = h.taskService.ListByIntern(*internID)
	default:
		tasks, err = h.taskService.ListAll()
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Create(input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask updates an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.Update(id, input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus changes only the status of a task
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask soft deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// SuggestTasks returns AI task proposals for a project. Nothing is saved.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.SuggestTasks(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToSuggestedTaskDTOs(tasks)})
}

func bindTaskInput(c *gin.Context) (services.TaskInput, bool) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return services.TaskInput{}, false
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid due_date")
		return services.TaskInput{}, false
	}

	return services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
	}, true
}
