package repository

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	Update(org *models.Organization) error
	Deactivate(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByAuthUserID(authUserID string) (*models.Employee, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Employee, error)
	LinkAuthUser(id uuid.UUID, authUserID string) error
	Delete(id uuid.UUID) error
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Client, error)
}

// SubclientRepositoryInterface defines the interface for subclient repository operations
type SubclientRepositoryInterface interface {
	Create(subclient *models.Subclient) error
	GetByID(id uuid.UUID) (*models.Subclient, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Subclient, error)
	Update(subclient *models.Subclient) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Project, error)
	GetByEmployeeID(employeeID uuid.UUID) ([]models.Project, error)
	CreateAssignment(assignment *models.ProjectAssignment) error
	GetAssignment(employeeID, projectID uuid.UUID) (*models.ProjectAssignment, error)
}

// CallRepositoryInterface defines the interface for call repository operations
type CallRepositoryInterface interface {
	Create(call *models.Call) error
	GetByID(id uuid.UUID) (*models.Call, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Call, error)
	GetByEmployeeID(employeeID uuid.UUID) ([]models.Call, error)
	UpdateTranscription(id uuid.UUID, transcription string) error
	GetLatestCallID(authUserID string) (uuid.UUID, error)
}

// InsightRepositoryInterface defines the interface for insight repository operations
type InsightRepositoryInterface interface {
	Create(insight *models.Insight) error
	GetByCallID(callID uuid.UUID) ([]models.Insight, error)
}

// EmbeddingRepositoryInterface defines the interface for transcript embedding repository operations
type EmbeddingRepositoryInterface interface {
	Create(embedding *models.TranscriptEmbedding) error
	GetByCallID(callID uuid.UUID) (*models.TranscriptEmbedding, error)
}

// AuthLogRepositoryInterface defines the interface for auth log repository operations
type AuthLogRepositoryInterface interface {
	Create(entry *models.AuthLogEntry) error
}
