package handlers

import (
	"errors"
	"net/http"

	"teamtrack-backend/internal/auth"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	service  service.EmployeeServiceInterface
	projects service.ProjectServiceInterface
	clients  service.ClientServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(
	employeeService service.EmployeeServiceInterface,
	projectService service.ProjectServiceInterface,
	clientService service.ClientServiceInterface,
) *EmployeeHandler {
	return &EmployeeHandler{
		service:  employeeService,
		projects: projectService,
		clients:  clientService,
	}
}

// Create handles POST /employee/create
// @Summary Create a new employee
// @Description Create an employee in the organization resolved by the role gate
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee "Successfully created employee"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employee/create [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.service.Create(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// Projects handles GET /employee/projects
// @Summary List an employee's projects with calls
// @Description List all projects assigned to an employee, each with its scheduled calls
// @Tags employees
// @Produce json
// @Param user_id query string true "Employee ID (UUID)"
// @Success 200 {array} service.ProjectWithCalls "Projects with their calls"
// @Failure 400 {object} map[string]interface{} "Missing or invalid user_id"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employee/projects [get]
func (h *EmployeeHandler) Projects(c *gin.Context) {
	idStr := c.Query("user_id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	employeeID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id: invalid UUID format"})
		return
	}

	projects, err := h.projects.GetProjectsWithCalls(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Clients handles POST /employee/clients
// @Summary List the clients visible to an employee
// @Description List all clients of the employee's organization
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {array} models.Client "Clients of the organization"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employee/clients [post]
func (h *EmployeeHandler) Clients(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	clients, err := h.clients.ListByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, clients)
}
