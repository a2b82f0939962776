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

// NewInsightRequest represents the request to run the insight pipeline
type NewInsightRequest struct {
	Transcript string     `json:"transcript"`
	CallID     *uuid.UUID `json:"call_id"`
}

// InsightHandler handles HTTP requests for the insight pipeline
type InsightHandler struct {
	service service.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService service.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{service: insightService}
}

// NewInsight handles POST /call/insight/new
// @Summary Process a transcript into an insight
// @Description Persist the transcript onto a call and store the combined notetaking and report agent output as a new insight. When call_id is omitted the caller's most recent call is used.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body handlers.NewInsightRequest true "Transcript and optional call ID"
// @Success 201 {object} models.Insight "Successfully created insight"
// @Failure 400 {object} map[string]interface{} "No transcript provided"
// @Failure 404 {object} map[string]interface{} "No calls found for this employee"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /call/insight/new [post]
func (h *InsightHandler) NewInsight(c *gin.Context) {
	authUserID, ok := auth.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req NewInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transcript provided"})
		return
	}

	insight, err := h.service.ProcessTranscript(authUserID, req.CallID, req.Transcript)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoCallsForEmployee) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, insight)
}
