package service_test

import (
	"errors"
	"testing"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockOrgRepo   *mocks.MockOrganizationRepositoryInterface
	mockEmpRepo   *mocks.MockEmployeeRepositoryInterface
	mockIdentity  *mocks.MockIdentityClientInterface
	service       *service.OrganizationService
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockIdentity = mocks.NewMockIdentityClientInterface(suite.ctrl)
	suite.service = service.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockEmpRepo,
		suite.mockIdentity,
		validator.New(),
		logger.New(),
	)
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validSignUpRequest() *service.SignUpRequest {
	return &service.SignUpRequest{
		OrgName:   "Acme Corp",
		Domain:    "acme.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.com",
		Password:  "secret123",
	}
}

func (suite *OrganizationServiceTestSuite) TestSignUp_Success() {
	req := validSignUpRequest()
	orgID := uuid.New()
	authUserID := "auth-user-123"

	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	}).Times(1)
	suite.mockIdentity.EXPECT().SignUp(req.Email, req.Password).Return(authUserID, nil).Times(1)
	suite.mockEmpRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		suite.Equal(orgID, employee.OrganizationID)
		suite.Equal(models.EmployeeRoleAdmin, employee.Role)
		suite.Require().NotNil(employee.AuthUserID)
		suite.Equal(authUserID, *employee.AuthUserID)
		return nil
	}).Times(1)

	result, err := suite.service.SignUp(req)

	suite.NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("Acme Corp", result.Organization.OrgName)
	suite.True(result.Organization.IsActive)
	suite.Equal(req.Email, result.Employee.Email)
}

func (suite *OrganizationServiceTestSuite) TestSignUp_MissingFields() {
	req := validSignUpRequest()
	req.Email = ""

	result, err := suite.service.SignUp(req)

	suite.Error(err)
	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
	// The whole required set is reported, not just the missing field.
	suite.Contains(err.Error(), "org_name")
	suite.Contains(err.Error(), "password")
}

func (suite *OrganizationServiceTestSuite) TestSignUp_InvalidEmail() {
	req := validSignUpRequest()
	req.Email = "not-an-email"

	result, err := suite.service.SignUp(req)

	suite.Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *OrganizationServiceTestSuite) TestSignUp_IdentityFailureCompensates() {
	req := validSignUpRequest()
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	}).Times(1)
	suite.mockIdentity.EXPECT().SignUp(req.Email, req.Password).Return("", errors.New("identity provider unavailable")).Times(1)
	suite.mockOrgRepo.EXPECT().Delete(orgID).Return(nil).Times(1)

	result, err := suite.service.SignUp(req)

	suite.Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "authentication error")
}

func (suite *OrganizationServiceTestSuite) TestSignUp_EmployeeFailureCompensates() {
	req := validSignUpRequest()
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	}).Times(1)
	suite.mockIdentity.EXPECT().SignUp(req.Email, req.Password).Return("auth-user-123", nil).Times(1)
	suite.mockEmpRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed")).Times(1)
	suite.mockOrgRepo.EXPECT().Delete(orgID).Return(nil).Times(1)

	result, err := suite.service.SignUp(req)

	suite.Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "failed to create the employee")
}

func (suite *OrganizationServiceTestSuite) TestSignUp_CleanupFailureIsSwallowed() {
	req := validSignUpRequest()
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = orgID
		return nil
	}).Times(1)
	suite.mockIdentity.EXPECT().SignUp(req.Email, req.Password).Return("", errors.New("identity provider unavailable")).Times(1)
	suite.mockOrgRepo.EXPECT().Delete(orgID).Return(errors.New("delete failed")).Times(1)

	result, err := suite.service.SignUp(req)

	// The original failure surfaces; the cleanup failure does not.
	suite.Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "authentication error")
	suite.NotContains(err.Error(), "delete failed")
}

func (suite *OrganizationServiceTestSuite) TestUpdate_Success() {
	orgID := uuid.New()
	existing := &models.Organization{OrgName: "Old Name", Domain: "old.com", IsActive: true}
	existing.ID = orgID

	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(existing, nil).Times(1)
	suite.mockOrgRepo.EXPECT().Update(existing).Return(nil).Times(1)

	org, err := suite.service.Update(orgID, &service.UpdateOrganizationRequest{
		OrgName: "New Name",
		Domain:  "new.com",
	})

	suite.NoError(err)
	suite.Equal("New Name", org.OrgName)
	suite.Equal("new.com", org.Domain)
}

func (suite *OrganizationServiceTestSuite) TestUpdate_MissingFields() {
	org, err := suite.service.Update(uuid.New(), &service.UpdateOrganizationRequest{OrgName: "Only Name"})

	suite.Error(err)
	suite.Nil(org)
	suite.True(apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestUpdate_NotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	org, err := suite.service.Update(orgID, &service.UpdateOrganizationRequest{
		OrgName: "New Name",
		Domain:  "new.com",
	})

	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestDeactivate_Success() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().Deactivate(orgID).Return(nil).Times(1)

	suite.NoError(suite.service.Deactivate(orgID))
}

func (suite *OrganizationServiceTestSuite) TestDeactivate_NotFound() {
	orgID := uuid.New()

	suite.mockOrgRepo.EXPECT().Deactivate(orgID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Deactivate(orgID)

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
