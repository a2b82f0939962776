package repository

import (
	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsightRepository handles database operations for insights
type InsightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// Create creates a new insight
func (r *InsightRepository) Create(insight *models.Insight) error {
	return r.db.Create(insight).Error
}

// GetByCallID retrieves all insights attached to a call
func (r *InsightRepository) GetByCallID(callID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	err := r.db.Where("call_id = ?", callID).Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}
