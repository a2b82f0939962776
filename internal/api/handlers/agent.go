package handlers

import (
	"net/http"

	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AgentTxtRequest represents the request to run the notetaking and report agents
type AgentTxtRequest struct {
	Transcript string `json:"transcript"`
}

// AgentEmailRequest represents the request to draft a follow-up email
type AgentEmailRequest struct {
	Information string `json:"information"`
}

// AgentHandler handles HTTP requests for the LLM agents
type AgentHandler struct {
	service service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{service: agentService}
}

// Txt handles POST /agent/txt
// @Summary Generate notes and a report from a transcript
// @Description Run the notetaking and report agents over the transcript and return both structured outputs
// @Tags agents
// @Accept json
// @Produce json
// @Param request body handlers.AgentTxtRequest true "Transcript"
// @Success 200 {object} map[string]interface{} "Notes and report"
// @Failure 400 {object} map[string]interface{} "No transcript provided"
// @Failure 500 {object} map[string]interface{} "Agent processing failed"
// @Router /agent/txt [post]
func (h *AgentHandler) Txt(c *gin.Context) {
	var req AgentTxtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transcript provided in request"})
		return
	}

	h.runTranscriptAgents(c, req.Transcript)
}

// Email handles POST /agent/email
// @Summary Draft a follow-up email
// @Description Run the email agent over the provided information and return the drafted email
// @Tags agents
// @Accept json
// @Produce json
// @Param request body handlers.AgentEmailRequest true "Information for the email"
// @Success 200 {object} map[string]interface{} "Drafted email"
// @Failure 400 {object} map[string]interface{} "No information provided"
// @Failure 500 {object} map[string]interface{} "Agent processing failed"
// @Router /agent/email [post]
func (h *AgentHandler) Email(c *gin.Context) {
	var req AgentEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Information == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No information provided in request"})
		return
	}

	email, err := h.service.RunEmail(req.Information)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing information with agent", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email})
}

// PDF handles POST /agent/pdf
// @Summary Generate notes and a report from a PDF
// @Description Extract the text of an uploaded PDF and run the notetaking and report agents over it
// @Tags agents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} map[string]interface{} "Notes and report"
// @Failure 400 {object} map[string]interface{} "Missing or unreadable file"
// @Failure 500 {object} map[string]interface{} "Agent processing failed"
// @Router /agent/pdf [post]
func (h *AgentHandler) PDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided in request"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	text, err := service.ExtractPDFText(file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract text from PDF", "details": err.Error()})
		return
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text found in PDF"})
		return
	}

	h.runTranscriptAgents(c, text)
}

// runTranscriptAgents runs the notetaking and report agents over a transcript
// and writes the combined result
func (h *AgentHandler) runTranscriptAgents(c *gin.Context, transcript string) {
	notes, err := h.service.RunNotetaking(transcript)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing text with agent", "details": err.Error()})
		return
	}

	report, err := h.service.RunReport(transcript)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing text with agent", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes, "report": report})
}
