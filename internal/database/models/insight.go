package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Insight holds the combined structured agent output for a call
type Insight struct {
	BaseModel
	CallID  uuid.UUID       `json:"call_id" gorm:"type:uuid;not null;index" validate:"required"`
	Payload json.RawMessage `json:"insightsjson" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for Insight
func (Insight) TableName() string {
	return "insights"
}
