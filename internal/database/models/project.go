package models

import (
	"time"

	"github.com/google/uuid"
)

// Project belongs to one organization and carries zero-or-more assigned
// employees through the project_assignments join table.
type Project struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectName    string     `json:"project_name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string     `json:"description" gorm:"type:text"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"many2many:project_assignments;"`
	Calls     []Call     `json:"calls,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
