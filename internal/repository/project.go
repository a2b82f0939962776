package repository

import (
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects and assignments
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByOrganizationID retrieves all projects of an organization
func (r *ProjectRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("organization_id = ?", orgID).Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByEmployeeID retrieves all projects assigned to an employee
func (r *ProjectRepository) GetByEmployeeID(employeeID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Joins("JOIN project_assignments ON project_assignments.project_id = projects.id").
		Where("project_assignments.employee_id = ?", employeeID).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateAssignment assigns an employee to a project
func (r *ProjectRepository) CreateAssignment(assignment *models.ProjectAssignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAssignmentExists
		}
		return err
	}
	return nil
}

// GetAssignment retrieves the assignment row for an employee/project pair
func (r *ProjectRepository) GetAssignment(employeeID, projectID uuid.UUID) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	err := r.db.First(&assignment, "employee_id = ? AND project_id = ?", employeeID, projectID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
