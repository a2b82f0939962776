package service

import (
	"fmt"

	"teamtrack-backend/internal/database/models"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
)

// ClientService handles business logic for clients
type ClientService struct {
	clients repository.ClientRepositoryInterface
}

// NewClientService creates a new client service
func NewClientService(clients repository.ClientRepositoryInterface) *ClientService {
	return &ClientService{clients: clients}
}

// ListByOrganization returns all clients of an organization. An organization
// without clients yields an empty list, not an error.
func (s *ClientService) ListByOrganization(orgID uuid.UUID) ([]models.Client, error) {
	clients, err := s.clients.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}
