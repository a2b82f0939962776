package repository

import (
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmbeddingRepository handles database operations for transcript embeddings
type EmbeddingRepository struct {
	db *gorm.DB
}

// NewEmbeddingRepository creates a new embedding repository
func NewEmbeddingRepository(db *gorm.DB) *EmbeddingRepository {
	return &EmbeddingRepository{db: db}
}

// Create creates a new transcript embedding
func (r *EmbeddingRepository) Create(embedding *models.TranscriptEmbedding) error {
	if err := r.db.Create(embedding).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmbeddingExists
		}
		return err
	}
	return nil
}

// GetByCallID retrieves the embedding for a call, if any
func (r *EmbeddingRepository) GetByCallID(callID uuid.UUID) (*models.TranscriptEmbedding, error) {
	var embedding models.TranscriptEmbedding
	err := r.db.First(&embedding, "call_id = ?", callID).Error
	if err != nil {
		return nil, err
	}
	return &embedding, nil
}
