package service

import (
	"errors"
	"fmt"
	"time"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects and assignments
type ProjectService struct {
	projects  repository.ProjectRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	calls     repository.CallRepositoryInterface
}

// NewProjectService creates a new project service
func NewProjectService(
	projects repository.ProjectRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	calls repository.CallRepositoryInterface,
) *ProjectService {
	return &ProjectService{
		projects:  projects,
		employees: employees,
		calls:     calls,
	}
}

// CreateProjectRequest represents the request to create a project.
// ClientID is part of the API contract but is not stored on the project row;
// clients attach to projects through subclients.
type CreateProjectRequest struct {
	ProjectName string     `json:"project_name"`
	Description string     `json:"description"`
	ClientID    uuid.UUID  `json:"client_id"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// AssignEmployeeRequest represents the request to assign an employee to a project
type AssignEmployeeRequest struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	ProjectID  uuid.UUID `json:"project_id"`
}

// ProjectWithCalls is a project together with its scheduled calls
type ProjectWithCalls struct {
	models.Project
	Calls []models.Call `json:"calls"`
}

// Create creates a new project in the caller's organization
func (s *ProjectService) Create(orgID uuid.UUID, req *CreateProjectRequest) (*models.Project, error) {
	if req == nil || req.ProjectName == "" || req.Description == "" || req.ClientID == uuid.Nil {
		return nil, apperrors.NewMissingFieldsError("project_name", "description", "client_id")
	}

	project := &models.Project{
		OrganizationID: orgID,
		ProjectName:    req.ProjectName,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}

	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create the project: %w", err)
	}

	return project, nil
}

// Assign assigns an employee to a project. Assigning twice is rejected.
func (s *ProjectService) Assign(req *AssignEmployeeRequest) error {
	if req == nil || req.EmployeeID == uuid.Nil || req.ProjectID == uuid.Nil {
		return apperrors.NewMissingFieldsError("employee_id", "project_id")
	}

	if _, err := s.employees.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if _, err := s.projects.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if _, err := s.projects.GetAssignment(req.EmployeeID, req.ProjectID); err == nil {
		return apperrors.ErrAssignmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check assignment: %w", err)
	}

	assignment := &models.ProjectAssignment{
		EmployeeID: req.EmployeeID,
		ProjectID:  req.ProjectID,
	}
	if err := s.projects.CreateAssignment(assignment); err != nil {
		return fmt.Errorf("failed to assign the employee to the project: %w", err)
	}

	return nil
}

// GetProjectsWithCalls returns the projects assigned to an employee, each
// carrying its scheduled calls
func (s *ProjectService) GetProjectsWithCalls(employeeID uuid.UUID) ([]ProjectWithCalls, error) {
	projects, err := s.projects.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	result := make([]ProjectWithCalls, 0, len(projects))
	for _, project := range projects {
		calls, err := s.calls.GetByProjectID(project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get calls for project %s: %w", project.ID, err)
		}
		if calls == nil {
			calls = []models.Call{}
		}
		result = append(result, ProjectWithCalls{Project: project, Calls: calls})
	}

	return result, nil
}
