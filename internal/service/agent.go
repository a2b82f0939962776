package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
)

// NotesData is the structured output of the notetaking agent
type NotesData struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	ImportantTopics []string `json:"importantTopics"`
	Questions       []string `json:"questions"`
	Decisions       []string `json:"decisions"`
}

// ReportData is the structured output of the report agent
type ReportData struct {
	ImprovingPoints  []string `json:"improvingPoints"`
	PositiveFeedback []string `json:"positiveFeedback"`
	NegativeFeedback []string `json:"negativeFeedback"`
	Keywords         []string `json:"keywords"`
	NextSteps        []string `json:"nextSteps"`
}

// EmailData is the structured output of the email agent
type EmailData struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Output schemas sent to the completion service. Strict mode requires every
// property to be listed in required and additionalProperties to be false.
const (
	notesSchema = `{
		"type": "object",
		"properties": {
			"title": {"type": "string", "description": "The title of the conversation."},
			"summary": {"type": "string", "description": "A summarized version of the conversation only with the most important information and maximum length of 500 characters."},
			"importantTopics": {"type": "array", "items": {"type": "string"}, "description": "A list of the most important topics discussed in the conversation."},
			"questions": {"type": "array", "items": {"type": "string"}, "description": "A list of the most important questions raised in the conversation."},
			"decisions": {"type": "array", "items": {"type": "string"}, "description": "A list of the most important decisions made in the conversation."}
		},
		"required": ["title", "summary", "importantTopics", "questions", "decisions"],
		"additionalProperties": false
	}`

	reportSchema = `{
		"type": "object",
		"properties": {
			"improvingPoints": {"type": "array", "items": {"type": "string"}, "description": "A list of the most important points that can be improved in the conversation."},
			"positiveFeedback": {"type": "array", "items": {"type": "string"}, "description": "A list of the most positive feedback in the conversation."},
			"negativeFeedback": {"type": "array", "items": {"type": "string"}, "description": "A list of the most negative feedback in the conversation."},
			"keywords": {"type": "array", "items": {"type": "string"}, "description": "A list of the most important keywords discussed in the conversation."},
			"nextSteps": {"type": "array", "items": {"type": "string"}, "description": "A list of the next steps to be taken after the conversation."}
		},
		"required": ["improvingPoints", "positiveFeedback", "negativeFeedback", "keywords", "nextSteps"],
		"additionalProperties": false
	}`

	emailSchema = `{
		"type": "object",
		"properties": {
			"subject": {"type": "string", "description": "The subject of the email."},
			"body": {"type": "string", "description": "The body of the email."}
		},
		"required": ["subject", "body"],
		"additionalProperties": false
	}`
)

// AgentDefinition describes one agent: which model it runs on and the
// instruction it is primed with.
type AgentDefinition struct {
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// AgentsConfig holds the definitions for all agents
type AgentsConfig struct {
	Notetaking AgentDefinition `yaml:"notetaking"`
	Report     AgentDefinition `yaml:"report"`
	Email      AgentDefinition `yaml:"email"`
}

// defaultAgentsConfig returns the built-in agent definitions, used when no
// config file is present
func defaultAgentsConfig() *AgentsConfig {
	return &AgentsConfig{
		Notetaking: AgentDefinition{
			Model:       "gpt-4o",
			Description: "You are an AI Notetaker for a Company's Videoconferences and Meetings. Provide relevant notes about the key topics of a transcript of a meeting. Put the information in spanish",
		},
		Report: AgentDefinition{
			Model:       "gpt-4o",
			Description: "You are an AI that can analyze a conversation and provide feedback on the most important points discussed in the conversation. Give the information in spanish",
		},
		Email: AgentDefinition{
			Model:       "gpt-4o",
			Description: "You are an AI that can write emails giving the next steps to be taken after the conversation basing it on the information provided asume they know you are an agent so do not put names or emails. Give the information in spanish",
		},
	}
}

// LoadAgentsConfig loads agent definitions from a YAML file. A missing file
// falls back to the built-in definitions; a file that exists but cannot be
// parsed is an error. Fields left empty in the file keep their defaults.
func LoadAgentsConfig(path string) (*AgentsConfig, error) {
	config := defaultAgentsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAgentConfigMissing, err)
	}

	var overrides AgentsConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing agents config %s: %w", path, err)
	}

	mergeAgentDefinition(&config.Notetaking, overrides.Notetaking)
	mergeAgentDefinition(&config.Report, overrides.Report)
	mergeAgentDefinition(&config.Email, overrides.Email)

	return config, nil
}

func mergeAgentDefinition(dst *AgentDefinition, src AgentDefinition) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
}

// AgentService runs the LLM agents over transcripts and free-form text
type AgentService struct {
	completions CompletionClientInterface
	config      *AgentsConfig
	logger      *logger.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(completions CompletionClientInterface, config *AgentsConfig, log *logger.Logger) *AgentService {
	if config == nil {
		config = defaultAgentsConfig()
	}
	return &AgentService{
		completions: completions,
		config:      config,
		logger:      log,
	}
}

// RunNotetaking produces meeting notes from a transcript
func (s *AgentService) RunNotetaking(transcript string) (*NotesData, error) {
	def := s.config.Notetaking

	var notes NotesData
	if err := s.completions.CompleteStructured(def.Model, def.Description, transcript, "notes_data", []byte(notesSchema), &notes); err != nil {
		s.logger.WithError(err).Error("Notetaking agent failed")
		return nil, err
	}

	return &notes, nil
}

// RunReport produces conversation feedback from a transcript
func (s *AgentService) RunReport(transcript string) (*ReportData, error) {
	def := s.config.Report

	var report ReportData
	if err := s.completions.CompleteStructured(def.Model, def.Description, transcript, "report_data", []byte(reportSchema), &report); err != nil {
		s.logger.WithError(err).Error("Report agent failed")
		return nil, err
	}

	return &report, nil
}

// RunEmail drafts a follow-up email from the given information
func (s *AgentService) RunEmail(information string) (*EmailData, error) {
	def := s.config.Email

	var email EmailData
	if err := s.completions.CompleteStructured(def.Model, def.Description, information, "email_data", []byte(emailSchema), &email); err != nil {
		s.logger.WithError(err).Error("Email agent failed")
		return nil, err
	}

	return &email, nil
}
