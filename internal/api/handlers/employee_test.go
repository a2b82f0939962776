package handlers_test

import (
	"net/http"
	"testing"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/auth"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmployeeHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockService  *mocks.MockEmployeeServiceInterface
	mockProjects *mocks.MockProjectServiceInterface
	mockClients  *mocks.MockClientServiceInterface
	handler      *handlers.EmployeeHandler
	httpSuite    *testutils.HTTPTestSuite
	orgID        uuid.UUID
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEmployeeServiceInterface(suite.ctrl)
	suite.mockProjects = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.mockClients = mocks.NewMockClientServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEmployeeHandler(suite.mockService, suite.mockProjects, suite.mockClients)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()

	withOrg := func(c *gin.Context) {
		c.Set(auth.ContextKeyOrgID, suite.orgID)
		c.Next()
	}

	suite.httpSuite.Router.POST("/employee/create", withOrg, suite.handler.Create)
	suite.httpSuite.Router.GET("/employee/projects", suite.handler.Projects)
	suite.httpSuite.Router.POST("/employee/clients", withOrg, suite.handler.Clients)
}

func (suite *EmployeeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmployeeHandlerTestSuite) TestCreate_Success() {
	employee := testutils.NewEmployeeFactory().WithOrganization(suite.orgID)

	suite.mockService.EXPECT().Create(suite.orgID, gomock.Any()).Return(employee, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/create", gin.H{
		"first_name": employee.FirstName,
		"last_name":  employee.LastName,
		"email":      employee.Email,
		"emp_role":   "employee",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(employee.Email, response["email"])
}

func (suite *EmployeeHandlerTestSuite) TestCreate_MissingFields() {
	suite.mockService.EXPECT().Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewMissingFieldsError("first_name", "last_name", "email", "emp_role")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/create", gin.H{
		"first_name": "Grace",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *EmployeeHandlerTestSuite) TestCreate_InvalidRole() {
	suite.mockService.EXPECT().Create(suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidRole).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/create", gin.H{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      "grace@acme.com",
		"emp_role":   "superuser",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid employee role")
}

func (suite *EmployeeHandlerTestSuite) TestProjects_Success() {
	employeeID := uuid.New()
	project := testutils.NewProjectFactory().Create()
	result := []service.ProjectWithCalls{{Project: *project, Calls: nil}}

	suite.mockProjects.EXPECT().GetProjectsWithCalls(employeeID).Return(result, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/employee/projects?user_id="+employeeID.String(), nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
	suite.Contains(response[0], "calls")
}

func (suite *EmployeeHandlerTestSuite) TestProjects_MissingUserID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/employee/projects", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "user_id is required")
}

func (suite *EmployeeHandlerTestSuite) TestProjects_InvalidUserID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/employee/projects?user_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid user_id")
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
