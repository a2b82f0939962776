package service_test

import (
	"testing"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockEmpRepo *mocks.MockEmployeeRepositoryInterface
	service     *service.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewEmployeeService(suite.mockEmpRepo, validator.New())
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeServiceTestSuite) TestCreate_Success() {
	orgID := uuid.New()
	req := &service.CreateEmployeeRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@acme.com",
		Role:      "employee",
	}

	suite.mockEmpRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(employee *models.Employee) error {
		suite.Equal(orgID, employee.OrganizationID)
		suite.Equal(models.EmployeeRoleEmployee, employee.Role)
		suite.Nil(employee.AuthUserID)
		return nil
	}).Times(1)

	employee, err := suite.service.Create(orgID, req)

	suite.NoError(err)
	suite.Equal("grace@acme.com", employee.Email)
}

func (suite *EmployeeServiceTestSuite) TestCreate_MissingFields() {
	employee, err := suite.service.Create(uuid.New(), &service.CreateEmployeeRequest{
		FirstName: "Grace",
	})

	suite.Nil(employee)
	suite.True(apperrors.IsValidation(err))
}

func (suite *EmployeeServiceTestSuite) TestCreate_InvalidRole() {
	employee, err := suite.service.Create(uuid.New(), &service.CreateEmployeeRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@acme.com",
		Role:      "superuser",
	})

	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrInvalidRole)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
