package service

import (
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	employees repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employees repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"emp_role" validate:"required"`
}

// Create creates a new employee in the caller's organization
func (s *EmployeeService) Create(orgID uuid.UUID, req *CreateEmployeeRequest) (*models.Employee, error) {
	if req == nil || req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Role == "" {
		return nil, apperrors.NewMissingFieldsError("first_name", "last_name", "email", "emp_role")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.EmployeeRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	employee := &models.Employee{
		OrganizationID: orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           role,
	}

	if err := s.employees.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create the employee: %w", err)
	}

	return employee, nil
}
