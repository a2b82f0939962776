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

// DeleteSubclientRequest represents the request to delete a subclient
type DeleteSubclientRequest struct {
	SubclientID *uuid.UUID `json:"subclient_id"`
}

// SubclientHandler handles HTTP requests for subclients
type SubclientHandler struct {
	service service.SubclientServiceInterface
}

// NewSubclientHandler creates a new subclient handler
func NewSubclientHandler(subclientService service.SubclientServiceInterface) *SubclientHandler {
	return &SubclientHandler{service: subclientService}
}

// Create handles POST /client/subclient/create
// @Summary Create a subclient
// @Description Create a subclient under a client of the caller's organization
// @Tags subclients
// @Accept json
// @Produce json
// @Param subclient body service.CreateSubclientRequest true "Subclient data"
// @Success 201 {object} models.Subclient "Successfully created subclient"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Client belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /client/subclient/create [post]
func (h *SubclientHandler) Create(c *gin.Context) {
	orgID, ok := auth.GetOrgID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.CreateSubclientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	subclient, err := h.service.Create(orgID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrClientNotInOrg) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, subclient)
}

// Update handles POST /client/subclient/update
// @Summary Update a subclient
// @Description Update a subclient's name and contact details
// @Tags subclients
// @Accept json
// @Produce json
// @Param subclient body service.UpdateSubclientRequest true "Updated subclient data"
// @Success 200 {object} models.Subclient "Successfully updated subclient"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Subclient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /client/subclient/update [post]
func (h *SubclientHandler) Update(c *gin.Context) {
	var req service.UpdateSubclientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	subclient, err := h.service.Update(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSubclientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, subclient)
}

// Delete handles POST /client/subclient/delete
// @Summary Delete a subclient
// @Description Delete a subclient by ID
// @Tags subclients
// @Accept json
// @Produce json
// @Param subclient body handlers.DeleteSubclientRequest true "Subclient ID"
// @Success 200 {object} map[string]interface{} "Subclient deleted"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Subclient not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /client/subclient/delete [post]
func (h *SubclientHandler) Delete(c *gin.Context) {
	var req DeleteSubclientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.SubclientID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": "missing required fields: [subclient_id]"})
		return
	}

	if err := h.service.Delete(*req.SubclientID); err != nil {
		if errors.Is(err, apperrors.ErrSubclientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subclient deleted successfully"})
}
