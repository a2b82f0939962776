package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TranscriptEmbedding stores the embedding vector generated for a call
// transcript. One embedding per call; re-submission is a no-op.
type TranscriptEmbedding struct {
	BaseModel
	CallID    uuid.UUID       `json:"call_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	ProjectID uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Vector    json.RawMessage `json:"embedding" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for TranscriptEmbedding
func (TranscriptEmbedding) TableName() string {
	return "transcript_embeddings"
}
