package models

import (
	"github.com/google/uuid"
)

// Employee represents a member of an organization. AuthUserID links the row
// to the external identity provider and is set at most once: it starts null
// and is filled in on the first federated login.
type Employee struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName      string       `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string       `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email          string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role           EmployeeRole `json:"emp_role" gorm:"type:varchar(20);not null;default:'user'" validate:"required"`
	AuthUserID     *string      `json:"auth_user_id,omitempty" gorm:"size:64;index"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Projects     []Project     `json:"projects,omitempty" gorm:"many2many:project_assignments;"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
