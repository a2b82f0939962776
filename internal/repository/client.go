package repository

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByOrganizationID retrieves all clients of an organization
func (r *ClientRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("organization_id = ?", orgID).Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
