package models

import (
	"github.com/google/uuid"
)

// Subclient belongs to exactly one client and one organization. It may
// additionally be attached to a project, which call scheduling requires.
type Subclient struct {
	BaseModel
	ClientID       uuid.UUID  `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"subclient_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string     `json:"subclient_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone          string     `json:"subclient_phone" gorm:"size:30"`
}

// TableName returns the table name for Subclient
func (Subclient) TableName() string {
	return "subclients"
}
