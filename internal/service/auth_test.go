package service_test

import (
	"testing"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockOrgRepo     *mocks.MockOrganizationRepositoryInterface
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockAuthLogRepo *mocks.MockAuthLogRepositoryInterface
	service         *service.AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockAuthLogRepo = mocks.NewMockAuthLogRepositoryInterface(suite.ctrl)
	suite.service = service.NewAuthService(
		suite.mockOrgRepo,
		suite.mockEmpRepo,
		suite.mockAuthLogRepo,
		logger.New(),
	)
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_ExistingLinkedEmployee() {
	org := testutils.NewOrganizationFactory().WithDomain("acme.com")
	employee := testutils.NewEmployeeFactory().WithOrganization(org.ID)
	employee.Email = "jane.doe@acme.com"

	suite.mockOrgRepo.EXPECT().GetByDomain("acme.com").Return(org, nil).Times(1)
	suite.mockEmpRepo.EXPECT().GetByEmail(employee.Email).Return(employee, nil).Times(1)
	suite.mockAuthLogRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID:   *employee.AuthUserID,
		FullName: "Jane Doe",
		Email:    employee.Email,
	})

	suite.NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Success)
	suite.Equal(employee.ID, result.UserID)
	suite.Equal("Jane", result.FirstName)
	suite.Equal(string(models.EmployeeRoleEmployee), result.UserRole)
	suite.Equal(org.ID, result.OrganizationID)
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_LinksUnlinkedEmployee() {
	org := testutils.NewOrganizationFactory().WithDomain("acme.com")
	employee := testutils.NewEmployeeFactory().Unlinked()
	employee.OrganizationID = org.ID
	employee.Email = "jane.doe@acme.com"

	suite.mockOrgRepo.EXPECT().GetByDomain("acme.com").Return(org, nil).Times(1)
	suite.mockEmpRepo.EXPECT().GetByEmail(employee.Email).Return(employee, nil).Times(1)
	suite.mockEmpRepo.EXPECT().LinkAuthUser(employee.ID, "google-uid-1").Return(nil).Times(1)
	suite.mockAuthLogRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID:   "google-uid-1",
		FullName: "Jane Doe",
		Email:    employee.Email,
	})

	suite.NoError(err)
	suite.True(result.Success)
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_RaceOnLinkIsTolerated() {
	org := testutils.NewOrganizationFactory().WithDomain("acme.com")
	employee := testutils.NewEmployeeFactory().Unlinked()
	employee.OrganizationID = org.ID
	employee.Email = "jane.doe@acme.com"

	suite.mockOrgRepo.EXPECT().GetByDomain("acme.com").Return(org, nil).Times(1)
	suite.mockEmpRepo.EXPECT().GetByEmail(employee.Email).Return(employee, nil).Times(1)
	suite.mockEmpRepo.EXPECT().LinkAuthUser(employee.ID, "google-uid-1").Return(apperrors.ErrAuthUserAlreadyLinked).Times(1)
	suite.mockAuthLogRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID:   "google-uid-1",
		FullName: "Jane Doe",
		Email:    employee.Email,
	})

	suite.NoError(err)
	suite.True(result.Success)
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_LazilyCreatesEmployee() {
	org := testutils.NewOrganizationFactory().WithDomain("acme.com")

	suite.mockOrgRepo.EXPECT().GetByDomain("acme.com").Return(org, nil).Times(1)
	suite.mockEmpRepo.EXPECT().GetByEmail("new.hire@acme.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockEmpRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		suite.Equal(org.ID, employee.OrganizationID)
		suite.Equal("New", employee.FirstName)
		suite.Equal("Hire", employee.LastName)
		suite.Equal(models.EmployeeRoleUser, employee.Role)
		suite.Require().NotNil(employee.AuthUserID)
		suite.Equal("google-uid-2", *employee.AuthUserID)
		return nil
	}).Times(1)
	suite.mockAuthLogRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID:   "google-uid-2",
		FullName: "New Hire",
		Email:    "new.hire@acme.com",
	})

	suite.NoError(err)
	suite.True(result.Success)
	suite.Equal(string(models.EmployeeRoleUser), result.UserRole)
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_UnregisteredDomain() {
	suite.mockOrgRepo.EXPECT().GetByDomain("unknown.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockAuthLogRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *models.AuthLogEntry) error {
		suite.Equal(models.AuthResultDenied, entry.Result)
		return nil
	}).Times(1)

	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID:   "google-uid-3",
		FullName: "Some One",
		Email:    "some.one@unknown.com",
	})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnregisteredDomain)
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_MissingInformation() {
	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		FullName: "No Identity",
	})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestGoogleCallback_MalformedEmail() {
	result, err := suite.service.GoogleCallback(&service.GoogleCallbackRequest{
		UserID: "google-uid-4",
		Email:  "no-domain@",
	})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
