package handlers

import (
	"errors"
	"net/http"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for federated logins
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: authService}
}

// GoogleCallback handles POST /auth/google/callback
// @Summary Resolve a Google sign-in to an employee
// @Description Link or lazily create the employee for a verified Google identity. The email domain must belong to a registered organization.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.GoogleCallbackRequest true "Verified identity payload"
// @Success 200 {object} service.GoogleCallbackResponse "Login resolved"
// @Failure 400 {object} map[string]interface{} "Missing user information"
// @Failure 403 {object} map[string]interface{} "Email domain not registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/google/callback [post]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var req service.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.GoogleCallback(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user information"})
			return
		}
		if errors.Is(err, apperrors.ErrUnregisteredDomain) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not associated with any registered organization"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
