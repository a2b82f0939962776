package service

import (
	"errors"
	"fmt"
	"strings"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles federated login callbacks
type AuthService struct {
	orgs      repository.OrganizationRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	authLogs  repository.AuthLogRepositoryInterface
	logger    *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	orgs repository.OrganizationRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	authLogs repository.AuthLogRepositoryInterface,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		orgs:      orgs,
		employees: employees,
		authLogs:  authLogs,
		logger:    log,
	}
}

// GoogleCallbackRequest represents the verified identity payload forwarded
// by the frontend after a Google sign-in
type GoogleCallbackRequest struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// GoogleCallbackResponse represents the login result returned to the frontend
type GoogleCallbackResponse struct {
	Success        bool      `json:"success"`
	UserID         uuid.UUID `json:"userId"`
	FirstName      string    `json:"firstName"`
	UserEmail      string    `json:"userEmail"`
	UserRole       string    `json:"userRole"`
	OrganizationID uuid.UUID `json:"organizationId"`
}

// GoogleCallback resolves a federated login to an employee. The email domain
// must belong to a registered organization. A first-time login links the
// identity to an existing employee row (only if it is still unlinked) or
// lazily creates one with the default role.
func (s *AuthService) GoogleCallback(req *GoogleCallbackRequest) (*GoogleCallbackResponse, error) {
	if req == nil || req.UserID == "" || req.Email == "" {
		return nil, apperrors.NewValidationError("missing user information")
	}

	firstName, lastName := splitFullName(req.FullName)

	at := strings.LastIndex(req.Email, "@")
	if at < 0 || at == len(req.Email)-1 {
		return nil, apperrors.NewValidationError("missing user information")
	}
	domain := req.Email[at+1:]

	org, err := s.orgs.GetByDomain(domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logAttempt(req.Email, models.AuthResultDenied, "domain not registered")
			return nil, apperrors.ErrUnregisteredDomain
		}
		s.logAttempt(req.Email, models.AuthResultError, err.Error())
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	employee, err := s.employees.GetByEmail(req.Email)
	switch {
	case err == nil:
		// The identity reference is set at most once; a row that is already
		// linked is left untouched.
		if employee.AuthUserID == nil {
			if err := s.employees.LinkAuthUser(employee.ID, req.UserID); err != nil &&
				!errors.Is(err, apperrors.ErrAuthUserAlreadyLinked) {
				s.logAttempt(req.Email, models.AuthResultError, err.Error())
				return nil, fmt.Errorf("failed to link auth user: %w", err)
			}
			employee.AuthUserID = &req.UserID
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		employee = &models.Employee{
			OrganizationID: org.ID,
			FirstName:      firstName,
			LastName:       lastName,
			Email:          req.Email,
			Role:           models.EmployeeRoleUser,
			AuthUserID:     &req.UserID,
		}
		if err := s.employees.Create(employee); err != nil {
			s.logAttempt(req.Email, models.AuthResultError, err.Error())
			return nil, fmt.Errorf("failed to create the employee: %w", err)
		}
	default:
		s.logAttempt(req.Email, models.AuthResultError, err.Error())
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	s.logAttempt(req.Email, models.AuthResultSuccess, "login successful")

	return &GoogleCallbackResponse{
		Success:        true,
		UserID:         employee.ID,
		FirstName:      firstName,
		UserEmail:      req.Email,
		UserRole:       string(employee.Role),
		OrganizationID: employee.OrganizationID,
	}, nil
}

// logAttempt records a login attempt. Best-effort: a failed insert never
// fails the login.
func (s *AuthService) logAttempt(email string, result models.AuthResult, message string) {
	entry := &models.AuthLogEntry{
		Email:   email,
		Result:  result,
		Message: message,
	}
	if err := s.authLogs.Create(entry); err != nil {
		s.logger.WithError(err).WithField("email", email).Warn("Failed to record auth log entry")
	}
}

// splitFullName splits a display name into first and last name at the first
// space; everything after it is the last name
func splitFullName(fullName string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
