package service

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	SignUp(req *SignUpRequest) (*SignUpResponse, error)
	Update(orgID uuid.UUID, req *UpdateOrganizationRequest) (*models.Organization, error)
	Deactivate(orgID uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateEmployeeRequest) (*models.Employee, error)
}

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	ListByOrganization(orgID uuid.UUID) ([]models.Client, error)
}

// SubclientServiceInterface defines the interface for subclient service
type SubclientServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateSubclientRequest) (*models.Subclient, error)
	Update(req *UpdateSubclientRequest) (*models.Subclient, error)
	Delete(subclientID uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateProjectRequest) (*models.Project, error)
	Assign(req *AssignEmployeeRequest) error
	GetProjectsWithCalls(employeeID uuid.UUID) ([]ProjectWithCalls, error)
}

// CallServiceInterface defines the interface for call service
type CallServiceInterface interface {
	Schedule(authUserID string, req *ScheduleCallRequest) (*models.Call, error)
	Recent(authUserID string) ([]models.Call, error)
	InsightsForCall(callID uuid.UUID) ([]models.Insight, error)
}

// InsightServiceInterface defines the interface for the insight pipeline
type InsightServiceInterface interface {
	ProcessTranscript(authUserID string, callID *uuid.UUID, transcript string) (*models.Insight, error)
}

// EmbeddingServiceInterface defines the interface for the embedding pipeline
type EmbeddingServiceInterface interface {
	CreateForCall(callID uuid.UUID, transcript string) (created bool, err error)
}

// AgentServiceInterface defines the interface for the agent wrappers
type AgentServiceInterface interface {
	RunNotetaking(transcript string) (*NotesData, error)
	RunReport(transcript string) (*ReportData, error)
	RunEmail(information string) (*EmailData, error)
}

// AuthServiceInterface defines the interface for federated login handling
type AuthServiceInterface interface {
	GoogleCallback(req *GoogleCallbackRequest) (*GoogleCallbackResponse, error)
}

// IdentityClientInterface is the narrow surface of the identity provider
type IdentityClientInterface interface {
	SignUp(email, password string) (authUserID string, err error)
}

// CompletionClientInterface is the narrow surface of the completion service
type CompletionClientInterface interface {
	CompleteStructured(model, description, input string, schemaName string, schema []byte, out interface{}) error
}

// EmbeddingClientInterface is the narrow surface of the embedding service
type EmbeddingClientInterface interface {
	Embed(text string) ([]float64, error)
}
