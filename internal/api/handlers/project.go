package handlers

import (
	"errors"
	"net/http"

	"teamtrack-backend/internal/auth"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	service service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: projectService}
}

// Create handles POST /project/create
// @Summary Create a new project
// @Description Create a project in the organization resolved by the role gate
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /project/create [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	project, err := h.service.Create(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Assign handles POST /project/assign
// @Summary Assign an employee to a project
// @Description Assign an employee to a project; assigning the same pair twice is rejected
// @Tags projects
// @Accept json
// @Produce json
// @Param assignment body service.AssignEmployeeRequest true "Assignment data"
// @Success 200 {object} map[string]interface{} "Employee assigned"
// @Failure 400 {object} map[string]interface{} "Missing fields or duplicate assignment"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 404 {object} map[string]interface{} "Employee or project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /project/assign [post]
func (h *ProjectHandler) Assign(c *gin.Context) {
	var req service.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Assign(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAssignmentExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Employee is already assigned to this project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee assigned to project successfully"})
}
