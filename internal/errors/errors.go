package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation error: missing required fields: %v", e.Fields)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrClientNotFound       = &NotFoundError{Entity: "client"}
	ErrSubclientNotFound    = &NotFoundError{Entity: "subclient"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrCallNotFound         = &NotFoundError{Entity: "call"}
	ErrInsightNotFound      = &NotFoundError{Entity: "insight"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this domain"}
	ErrEmployeeExists     = &AlreadyExistsError{Entity: "employee", Context: "with this email"}
	ErrAssignmentExists   = &AlreadyExistsError{Entity: "assignment", Context: "for this employee and project"}
	ErrEmbeddingExists    = &AlreadyExistsError{Entity: "embedding", Context: "for this call"}
)

// Association and Business Logic Errors
var (
	ErrProjectNotAssigned     = errors.New("project not assigned to this employee")
	ErrNoSubclientForProject  = errors.New("no subclient assigned to this project")
	ErrClientNotInOrg         = errors.New("client not associated with this organization")
	ErrNoCallsForEmployee     = errors.New("no calls found for this employee")
	ErrOrganizationInactive   = errors.New("organization is not active")
	ErrUnregisteredDomain     = errors.New("email not associated with any registered organization")
	ErrInvalidRole            = errors.New("invalid employee role")
	ErrAuthUserAlreadyLinked  = errors.New("employee is already linked to an auth user")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header missing or malformed"}
	ErrTokenExpired      = &AuthenticationError{Message: "token has expired"}
	ErrRoleNotAuthorized = &AuthorizationError{Message: "user is not authorized"}
	ErrOrgContextMissing = errors.New("organization context missing: role resolver did not run")
)

// Collaborator Errors
var (
	ErrCompletionRequestFailed = errors.New("completion service request failed")
	ErrEmbeddingRequestFailed  = errors.New("embedding service request failed")
	ErrIdentitySignUpFailed    = errors.New("identity provider sign-up failed")
	ErrAgentConfigMissing      = &ConfigurationError{Message: "agent configuration missing or invalid"}
	ErrAPIKeyNotSet            = &ConfigurationError{Message: "OPENAI_API_KEY environment variable not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewMissingFieldsError creates a ValidationError listing the whole required set
func NewMissingFieldsError(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// NewValidationError creates a new ValidationError with a free-form message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
