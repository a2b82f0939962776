package service

import (
	"errors"
	"fmt"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	identity  IdentityClientInterface
	validator *validator.Validate
	logger    *logger.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	identity IdentityClientInterface,
	validator *validator.Validate,
	log *logger.Logger,
) *OrganizationService {
	return &OrganizationService{
		orgs:      orgs,
		employees: employees,
		identity:  identity,
		validator: validator,
		logger:    log,
	}
}

// SignUpRequest represents the request to create an organization with its
// first admin employee
type SignUpRequest struct {
	OrgName   string `json:"org_name" validate:"required,max=200"`
	Domain    string `json:"domain" validate:"required,max=100"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// SignUpResponse represents the result of organization signup
type SignUpResponse struct {
	Organization *models.Organization `json:"organization"`
	Employee     *models.Employee     `json:"employee"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	OrgName string `json:"org_name" validate:"required,max=200"`
	Domain  string `json:"domain" validate:"required,max=100"`
}

// signUpRequiredFields is the fixed required-field set for signup; a failed
// check reports the whole set, not the first missing field
var signUpRequiredFields = []string{"org_name", "domain", "first_name", "last_name", "email", "password"}

// SignUp creates the organization, registers the admin with the identity
// provider and creates the admin employee row. There is no transaction
// spanning the three steps: if a later step fails the organization row is
// deleted again, best-effort, and the cleanup failure is only logged.
func (s *OrganizationService) SignUp(req *SignUpRequest) (*SignUpResponse, error) {
	if req == nil || req.OrgName == "" || req.Domain == "" || req.FirstName == "" ||
		req.LastName == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.NewMissingFieldsError(signUpRequiredFields...)
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{
		OrgName:  req.OrgName,
		Domain:   req.Domain,
		IsActive: true,
	}
	if err := s.orgs.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	authUserID, err := s.identity.SignUp(req.Email, req.Password)
	if err != nil {
		s.compensateOrgCreate(org.ID)
		return nil, fmt.Errorf("authentication error: %w", err)
	}

	employee := &models.Employee{
		OrganizationID: org.ID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           models.EmployeeRoleAdmin,
		AuthUserID:     &authUserID,
	}
	if err := s.employees.Create(employee); err != nil {
		s.compensateOrgCreate(org.ID)
		return nil, fmt.Errorf("failed to create the employee: %w", err)
	}

	return &SignUpResponse{Organization: org, Employee: employee}, nil
}

// compensateOrgCreate deletes a partially created organization. Failures are
// swallowed: there is nothing further to roll back to.
func (s *OrganizationService) compensateOrgCreate(orgID uuid.UUID) {
	if err := s.orgs.Delete(orgID); err != nil {
		s.logger.WithError(err).WithField("organization_id", orgID).
			Error("Failed to clean up organization after signup failure")
	}
}

// Update updates an organization's name and domain
func (s *OrganizationService) Update(orgID uuid.UUID, req *UpdateOrganizationRequest) (*models.Organization, error) {
	if req == nil || req.OrgName == "" || req.Domain == "" {
		return nil, apperrors.NewMissingFieldsError("org_name", "domain")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	org.OrgName = req.OrgName
	org.Domain = req.Domain

	if err := s.orgs.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}

// Deactivate soft-disables an organization; nothing is deleted
func (s *OrganizationService) Deactivate(orgID uuid.UUID) error {
	if err := s.orgs.Deactivate(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}
	return nil
}
