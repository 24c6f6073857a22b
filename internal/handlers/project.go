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

// ProjectHandler serves project endpoints.
type ProjectHandler struct {
	projectService *services.ProjectService
	log            *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		log:            log,
	}
}

// ListProjects returns live projects.
// One of encadreur_id, department or intern_id may narrow the result, checked in that order.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	encadreurID, ok := parseIDQuery(c, "encadreur_id")
	if !ok {
		return
	}
	internID, ok := parseIDQuery(c, "intern_id")
	if !ok {
		return
	}
	department := c.Query("department")

	var projects []models.Project
	var err error
	switch {
	case encadreurID != nil:
		projects, err = h.projectService.ListByEncadreur(*encadreurID)
	case department != "":
		projects, err = h.projectService.ListByDepartment(department)
	case internID != nil:
		projects, err = h.projectService.ListByIntern(*internID)
	default:
		projects, err = h.projectService.ListAll()
	}
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// GetProject returns a project with its encadreur and interns
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	input, ok := bindProjectInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.Create(input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject applies a partial update
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	input, ok := bindProjectInput(c)
	if !ok {
		return
	}

	project, err := h.projectService.Update(id, input)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject soft deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// AssignInterns attaches the listed interns to the project
func (h *ProjectHandler) AssignInterns(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssignInternsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.AssignInterns(id, req.InternIDs)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

func bindProjectInput(c *gin.Context) (services.ProjectInput, bool) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return services.ProjectInput{}, false
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid start_date")
		return services.ProjectInput{}, false
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "Invalid end_date")
		return services.ProjectInput{}, false
	}

	return services.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Department:  req.Department,
		Progress:    req.Progress,
		Status:      req.Status,
		EncadreurID: req.EncadreurID,
	}, true
}
