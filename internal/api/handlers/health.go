package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check and welcome requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Welcome handles GET /
// @Summary API welcome message
// @Description Returns a welcome message for the API root
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Welcome message"
// @Router / [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Teamtrack API!"})
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the service health status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
