package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmbeddingService generates and stores transcript embeddings
type EmbeddingService struct {
	calls      repository.CallRepositoryInterface
	embeddings repository.EmbeddingRepositoryInterface
	client     EmbeddingClientInterface
}

// NewEmbeddingService creates a new embedding service
func NewEmbeddingService(
	calls repository.CallRepositoryInterface,
	embeddings repository.EmbeddingRepositoryInterface,
	client EmbeddingClientInterface,
) *EmbeddingService {
	return &EmbeddingService{
		calls:      calls,
		embeddings: embeddings,
		client:     client,
	}
}

// CreateForCall generates an embedding for a call transcript and stores it.
// The operation is idempotent per call: if an embedding already exists no
// vector is generated and created is false.
func (s *EmbeddingService) CreateForCall(callID uuid.UUID, transcript string) (bool, error) {
	call, err := s.calls.GetByID(callID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrCallNotFound
		}
		return false, fmt.Errorf("failed to get call: %w", err)
	}

	if _, err := s.embeddings.GetByCallID(callID); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check existing embedding: %w", err)
	}

	vector, err := s.client.Embed(transcript)
	if err != nil {
		return false, err
	}

	encoded, err := json.Marshal(vector)
	if err != nil {
		return false, fmt.Errorf("failed to encode embedding vector: %w", err)
	}

	embedding := &models.TranscriptEmbedding{
		CallID:    callID,
		ProjectID: call.ProjectID,
		Vector:    encoded,
	}
	if err := s.embeddings.Create(embedding); err != nil {
		// A concurrent insert between the existence check and this write
		// still counts as "already exists".
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting embedding: %w", err)
	}

	return true, nil
}
