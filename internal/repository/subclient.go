package repository

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubclientRepository handles database operations for subclients
type SubclientRepository struct {
	db *gorm.DB
}

// NewSubclientRepository creates a new subclient repository
func NewSubclientRepository(db *gorm.DB) *SubclientRepository {
	return &SubclientRepository{db: db}
}

// Create creates a new subclient
func (r *SubclientRepository) Create(subclient *models.Subclient) error {
	return r.db.Create(subclient).Error
}

// GetByID retrieves a subclient by ID
func (r *SubclientRepository) GetByID(id uuid.UUID) (*models.Subclient, error) {
	var subclient models.Subclient
	err := r.db.First(&subclient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subclient, nil
}

// GetByProjectID retrieves all subclients attached to a project
func (r *SubclientRepository) GetByProjectID(projectID uuid.UUID) ([]models.Subclient, error) {
	var subclients []models.Subclient
	err := r.db.Where("project_id = ?", projectID).Find(&subclients).Error
	if err != nil {
		return nil, err
	}
	return subclients, nil
}

// Update updates a subclient
func (r *SubclientRepository) Update(subclient *models.Subclient) error {
	return r.db.Save(subclient).Error
}

// Delete deletes a subclient
func (r *SubclientRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Subclient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
