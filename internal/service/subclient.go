package service

import (
	"errors"
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubclientService handles business logic for subclients
type SubclientService struct {
	subclients repository.SubclientRepositoryInterface
	clients    repository.ClientRepositoryInterface
}

// NewSubclientService creates a new subclient service
func NewSubclientService(
	subclients repository.SubclientRepositoryInterface,
	clients repository.ClientRepositoryInterface,
) *SubclientService {
	return &SubclientService{
		subclients: subclients,
		clients:    clients,
	}
}

// CreateSubclientRequest represents the request to create a subclient
type CreateSubclientRequest struct {
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"subclient_name"`
	Email    string    `json:"subclient_email"`
	Phone    string    `json:"subclient_phone"`
}

// UpdateSubclientRequest represents the request to update a subclient
type UpdateSubclientRequest struct {
	SubclientID uuid.UUID `json:"subclient_id"`
	Name        string    `json:"subclient_name"`
	Email       string    `json:"subclient_email"`
	Phone       string    `json:"subclient_phone"`
}

// Create creates a subclient under an existing client. The client must
// belong to the caller's organization.
func (s *SubclientService) Create(orgID uuid.UUID, req *CreateSubclientRequest) (*models.Subclient, error) {
	if req == nil || req.ClientID == uuid.Nil || req.Name == "" {
		return nil, apperrors.NewMissingFieldsError("client_id", "subclient_name")
	}

	client, err := s.clients.GetByID(req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if client.OrganizationID != orgID {
		return nil, apperrors.ErrClientNotInOrg
	}

	subclient := &models.Subclient{
		ClientID:       req.ClientID,
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	if err := s.subclients.Create(subclient); err != nil {
		return nil, fmt.Errorf("failed to create the subclient: %w", err)
	}

	return subclient, nil
}

// Update updates a subclient's contact details
func (s *SubclientService) Update(req *UpdateSubclientRequest) (*models.Subclient, error) {
	if req == nil || req.SubclientID == uuid.Nil || req.Name == "" {
		return nil, apperrors.NewMissingFieldsError("subclient_id", "subclient_name")
	}

	subclient, err := s.subclients.GetByID(req.SubclientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubclientNotFound
		}
		return nil, fmt.Errorf("failed to get subclient: %w", err)
	}

	subclient.Name = req.Name
	if req.Email != "" {
		subclient.Email = req.Email
	}
	if req.Phone != "" {
		subclient.Phone = req.Phone
	}

	if err := s.subclients.Update(subclient); err != nil {
		return nil, fmt.Errorf("failed to update the subclient: %w", err)
	}

	return subclient, nil
}

// Delete deletes a subclient
func (s *SubclientService) Delete(subclientID uuid.UUID) error {
	if err := s.subclients.Delete(subclientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubclientNotFound
		}
		return fmt.Errorf("failed to delete the subclient: %w", err)
	}
	return nil
}
