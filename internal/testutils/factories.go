package testutils

import (
	"time"

	"teamtrack-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrgName:  "Test Organization",
		Domain:   "test.com",
		IsActive: true,
	}
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// Inactive creates a deactivated organization
func (f *OrganizationFactory) Inactive() *models.Organization {
	org := f.Create()
	org.IsActive = false
	return org
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	authUserID := "auth-" + id.String()[:8]

	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@test.com",
		Role:           models.EmployeeRoleEmployee,
		AuthUserID:     &authUserID,
	}
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	employee := f.Create()
	employee.Role = role
	return employee
}

// WithOrganization sets the organization ID for the employee
func (f *EmployeeFactory) WithOrganization(orgID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.OrganizationID = orgID
	return employee
}

// WithAuthUserID sets the external identity reference for the employee
func (f *EmployeeFactory) WithAuthUserID(authUserID string) *models.Employee {
	employee := f.Create()
	employee.AuthUserID = &authUserID
	return employee
}

// Unlinked creates an employee without an external identity reference
func (f *EmployeeFactory) Unlinked() *models.Employee {
	employee := f.Create()
	employee.AuthUserID = nil
	return employee
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Client",
		Email:          "client@test.com",
		Phone:          "+1-555-0100",
	}
}

// WithOrganization sets the organization ID for the client
func (f *ClientFactory) WithOrganization(orgID uuid.UUID) *models.Client {
	client := f.Create()
	client.OrganizationID = orgID
	return client
}

// SubclientFactory provides methods to create test Subclient data
type SubclientFactory struct{}

// NewSubclientFactory creates a new SubclientFactory
func NewSubclientFactory() *SubclientFactory {
	return &SubclientFactory{}
}

// Create creates a test Subclient with default values
func (f *SubclientFactory) Create() *models.Subclient {
	return &models.Subclient{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:       uuid.New(),
		OrganizationID: uuid.New(),
		Name:           "Test Subclient",
		Email:          "subclient@test.com",
		Phone:          "+1-555-0101",
	}
}

// WithProject attaches the subclient to a project
func (f *SubclientFactory) WithProject(projectID uuid.UUID) *models.Subclient {
	subclient := f.Create()
	subclient.ProjectID = &projectID
	return subclient
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		ProjectName:    "Test Project",
		Description:    "A test project",
	}
}

// WithOrganization sets the organization ID for the project
func (f *ProjectFactory) WithOrganization(orgID uuid.UUID) *models.Project {
	project := f.Create()
	project.OrganizationID = orgID
	return project
}

// CallFactory provides methods to create test Call data
type CallFactory struct{}

// NewCallFactory creates a new CallFactory
func NewCallFactory() *CallFactory {
	return &CallFactory{}
}

// Create creates a test Call with default values
func (f *CallFactory) Create() *models.Call {
	return &models.Call{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:       uuid.New(),
		ScheduledAt:     time.Now().Add(24 * time.Hour),
		DurationMinutes: 30,
	}
}

// WithProject sets the project ID for the call
func (f *CallFactory) WithProject(projectID uuid.UUID) *models.Call {
	call := f.Create()
	call.ProjectID = projectID
	return call
}

// WithTranscription sets a transcription on the call
func (f *CallFactory) WithTranscription(transcription string) *models.Call {
	call := f.Create()
	call.Transcription = transcription
	return call
}
