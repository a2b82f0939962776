package handlers

import (
	"errors"
	"net/http"

	"teamtrack-backend/internal/auth"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
	clients service.ClientServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(orgService service.OrganizationServiceInterface, clientService service.ClientServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: orgService, clients: clientService}
}

// SignUp handles POST /organizations/create
// @Summary Create a new organization
// @Description Create an organization together with its first admin employee. The admin is registered with the identity provider; if that or the employee insert fails, the organization row is deleted again.
// @Tags organizations
// @Accept json
// @Produce json
// @Param signup body service.SignUpRequest true "Organization and admin data"
// @Success 201 {object} service.SignUpResponse "Successfully created organization and admin"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organizations/create [post]
func (h *OrganizationHandler) SignUp(c *gin.Context) {
	var req service.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.SignUp(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Update handles POST /organization/update
// @Summary Update the caller's organization
// @Description Update the name and domain of the organization resolved by the role gate
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.UpdateOrganizationRequest true "Updated organization data"
// @Success 200 {object} models.Organization "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organization/update [post]
func (h *OrganizationHandler) Update(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "org_name and domain are required"})
			return
		}
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// Deactivate handles POST /organization/deactivate
// @Summary Deactivate the caller's organization
// @Description Soft-disable the organization resolved by the role gate. Nothing is deleted.
// @Tags organizations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Organization deactivated"
// @Failure 403 {object} map[string]interface{} "Not authorized"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organization/deactivate [post]
func (h *OrganizationHandler) Deactivate(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	if err := h.service.Deactivate(orgID); err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Organization deactivated successfully"})
}

// ListClients handles POST /organization/clients
// @Summary List the organization's clients
// @Description List all clients of the organization resolved by the role gate
// @Tags organizations
// @Accept json
// @Produce json
// @Success 200 {array} models.Client "Clients of the organization"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /organization/clients [post]
func (h *OrganizationHandler) ListClients(c *gin.Context) {
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
