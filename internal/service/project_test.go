package service_test

import (
	"testing"

	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockCallRepo    *mocks.MockCallRepositoryInterface
	service         *service.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockCallRepo = mocks.NewMockCallRepositoryInterface(suite.ctrl)
	suite.service = service.NewProjectService(suite.mockProjectRepo, suite.mockEmpRepo, suite.mockCallRepo)
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestCreate_Success() {
	orgID := uuid.New()

	suite.mockProjectRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	project, err := suite.service.Create(orgID, &service.CreateProjectRequest{
		ProjectName: "Migration",
		Description: "Move everything to the new platform",
		ClientID:    uuid.New(),
	})

	suite.NoError(err)
	suite.Equal(orgID, project.OrganizationID)
	suite.Equal("Migration", project.ProjectName)
}

func (suite *ProjectServiceTestSuite) TestCreate_MissingFields() {
	project, err := suite.service.Create(uuid.New(), &service.CreateProjectRequest{
		ProjectName: "Migration",
	})

	suite.Nil(project)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestAssign_Success() {
	employee := testutils.NewEmployeeFactory().Create()
	project := testutils.NewProjectFactory().Create()

	suite.mockEmpRepo.EXPECT().GetByID(employee.ID).Return(employee, nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetAssignment(employee.ID, project.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockProjectRepo.EXPECT().CreateAssignment(gomock.Any()).DoAndReturn(func(assignment *models.ProjectAssignment) error {
		suite.Equal(employee.ID, assignment.EmployeeID)
		suite.Equal(project.ID, assignment.ProjectID)
		return nil
	}).Times(1)

	err := suite.service.Assign(&service.AssignEmployeeRequest{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
	})

	suite.NoError(err)
}

func (suite *ProjectServiceTestSuite) TestAssign_EmployeeNotFound() {
	employeeID := uuid.New()

	suite.mockEmpRepo.EXPECT().GetByID(employeeID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Assign(&service.AssignEmployeeRequest{
		EmployeeID: employeeID,
		ProjectID:  uuid.New(),
	})

	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *ProjectServiceTestSuite) TestAssign_ProjectNotFound() {
	employee := testutils.NewEmployeeFactory().Create()
	projectID := uuid.New()

	suite.mockEmpRepo.EXPECT().GetByID(employee.ID).Return(employee, nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Assign(&service.AssignEmployeeRequest{
		EmployeeID: employee.ID,
		ProjectID:  projectID,
	})

	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestAssign_AlreadyAssigned() {
	employee := testutils.NewEmployeeFactory().Create()
	project := testutils.NewProjectFactory().Create()

	suite.mockEmpRepo.EXPECT().GetByID(employee.ID).Return(employee, nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetAssignment(employee.ID, project.ID).Return(&models.ProjectAssignment{}, nil).Times(1)

	err := suite.service.Assign(&service.AssignEmployeeRequest{
		EmployeeID: employee.ID,
		ProjectID:  project.ID,
	})

	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *ProjectServiceTestSuite) TestGetProjectsWithCalls() {
	employeeID := uuid.New()
	projectA := testutils.NewProjectFactory().Create()
	projectB := testutils.NewProjectFactory().Create()
	call := testutils.NewCallFactory().WithProject(projectA.ID)

	suite.mockProjectRepo.EXPECT().GetByEmployeeID(employeeID).Return([]models.Project{*projectA, *projectB}, nil).Times(1)
	suite.mockCallRepo.EXPECT().GetByProjectID(projectA.ID).Return([]models.Call{*call}, nil).Times(1)
	suite.mockCallRepo.EXPECT().GetByProjectID(projectB.ID).Return(nil, nil).Times(1)

	result, err := suite.service.GetProjectsWithCalls(employeeID)

	suite.NoError(err)
	suite.Require().Len(result, 2)
	suite.Len(result[0].Calls, 1)
	// A project without calls carries an empty list, not null.
	suite.NotNil(result[1].Calls)
	suite.Empty(result[1].Calls)
}

func (suite *ProjectServiceTestSuite) TestGetProjectsWithCalls_NoProjects() {
	employeeID := uuid.New()

	suite.mockProjectRepo.EXPECT().GetByEmployeeID(employeeID).Return(nil, nil).Times(1)

	result, err := suite.service.GetProjectsWithCalls(employeeID)

	suite.NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
