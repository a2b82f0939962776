package models

import (
	"github.com/google/uuid"
)

// ProjectAssignment links an employee to a project
type ProjectAssignment struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_assignments_pair" validate:"required"`
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_assignments_pair" validate:"required"`
}

// TableName returns the table name for ProjectAssignment
func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
