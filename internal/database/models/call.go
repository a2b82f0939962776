package models

import (
	"time"

	"github.com/google/uuid"
)

// Call represents a scheduled meeting on a project. Transcription is empty
// until the meeting has happened and a transcript is submitted.
type Call struct {
	BaseModel
	ProjectID       uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScheduledAt     time.Time `json:"datetime" gorm:"not null" validate:"required"`
	DurationMinutes int       `json:"duration" gorm:"not null" validate:"required,min=1"`
	Transcription   string    `json:"transcription" gorm:"type:text"`

	// Relationships
	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Insights []Insight `json:"insights,omitempty" gorm:"foreignKey:CallID"`
}

// TableName returns the table name for Call
func (Call) TableName() string {
	return "calls"
}
