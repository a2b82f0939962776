package models

import (
	"github.com/google/uuid"
)

// Client represents an organization-scoped contact
type Client struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone          string    `json:"phone" gorm:"size:30"`

	// Relationships
	Subclients []Subclient `json:"subclients,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
