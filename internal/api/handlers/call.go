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

// CallInsightsRequest represents the request to list insights for a call
type CallInsightsRequest struct {
	CallID *uuid.UUID `json:"call_id"`
}

// NewEmbeddingRequest represents the request to embed a call transcript
type NewEmbeddingRequest struct {
	CallID     *uuid.UUID `json:"call_id"`
	Transcript string     `json:"transcript"`
}

// CallHandler handles HTTP requests for calls
type CallHandler struct {
	service    service.CallServiceInterface
	embeddings service.EmbeddingServiceInterface
}

// NewCallHandler creates a new call handler
func NewCallHandler(callService service.CallServiceInterface, embeddingService service.EmbeddingServiceInterface) *CallHandler {
	return &CallHandler{service: callService, embeddings: embeddingService}
}

// Schedule handles POST /employee/calls/schedule
// @Summary Schedule a call
// @Description Schedule a call on a project assigned to the calling employee. The project must have a subclient attached.
// @Tags calls
// @Accept json
// @Produce json
// @Param call body service.ScheduleCallRequest true "Call data"
// @Success 201 {object} models.Call "Successfully scheduled call"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Project not assigned or no subclient"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employee/calls/schedule [post]
func (h *CallHandler) Schedule(c *gin.Context) {
	authUserID, ok := auth.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.ScheduleCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	call, err := h.service.Schedule(authUserID, &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrProjectNotAssigned) || errors.Is(err, apperrors.ErrNoSubclientForProject) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, call)
}

// Recent handles POST /employee/calls/recent
// @Summary List the calling employee's calls
// @Description List all calls on projects assigned to the calling employee
// @Tags calls
// @Accept json
// @Produce json
// @Success 200 {array} models.Call "Calls on assigned projects"
// @Failure 403 {object} map[string]interface{} "Not authorized or organization inactive"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employee/calls/recent [post]
func (h *CallHandler) Recent(c *gin.Context) {
	authUserID, ok := auth.GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	calls, err := h.service.Recent(authUserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calls)
}

// Insights handles POST /project/call/insight
// @Summary List insights for a call
// @Description List all insights recorded for a call
// @Tags calls
// @Accept json
// @Produce json
// @Param request body handlers.CallInsightsRequest true "Call ID"
// @Success 200 {array} models.Insight "Insights for the call"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Call not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /project/call/insight [post]
func (h *CallHandler) Insights(c *gin.Context) {
	var req CallInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.CallID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "details": "missing required fields: [call_id]"})
		return
	}

	insights, err := h.service.InsightsForCall(*req.CallID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// NewEmbedding handles POST /call/embedding/new
// @Summary Create a transcript embedding
// @Description Generate and store an embedding for a call transcript. Idempotent per call: a second submission is a no-op.
// @Tags calls
// @Accept json
// @Produce json
// @Param request body handlers.NewEmbeddingRequest true "Call ID and transcript"
// @Success 200 {object} map[string]interface{} "Embedding already exists"
// @Success 201 {object} map[string]interface{} "Embedding created"
// @Failure 400 {object} map[string]interface{} "Missing transcript or call_id"
// @Failure 404 {object} map[string]interface{} "Call not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /call/embedding/new [post]
func (h *CallHandler) NewEmbedding(c *gin.Context) {
	var req NewEmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Transcript == "" || req.CallID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing transcript or call_id"})
		return
	}

	created, err := h.embeddings.CreateForCall(*req.CallID, req.Transcript)
	if err != nil {
		if errors.Is(err, apperrors.ErrCallNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Embedding already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Embedding created successfully"})
}
