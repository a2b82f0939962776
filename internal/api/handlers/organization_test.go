package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	mockClients *mocks.MockClientServiceInterface
	handler     *handlers.OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	orgID       uuid.UUID
}

func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.mockClients = mocks.NewMockClientServiceInterface(suite.ctrl)
	suite.handler = handlers.NewOrganizationHandler(suite.mockService, suite.mockClients)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.orgID = uuid.New()

	// Stand-in for the role gate: puts the organization id on the context the
	// way RequireRole does.
	withOrg := func(c *gin.Context) {
		c.Set(auth.ContextKeyOrgID, suite.orgID)
		c.Next()
	}

	suite.httpSuite.Router.POST("/organizations/create", suite.handler.SignUp)
	suite.httpSuite.Router.POST("/organization/update", withOrg, suite.handler.Update)
	suite.httpSuite.Router.POST("/organization/deactivate", withOrg, suite.handler.Deactivate)
	suite.httpSuite.Router.POST("/organization/clients", withOrg, suite.handler.ListClients)
}

func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestSignUp_Success() {
	org := testutils.NewOrganizationFactory().Create()
	admin := testutils.NewEmployeeFactory().WithRole(models.EmployeeRoleAdmin)

	suite.mockService.EXPECT().SignUp(gomock.Any()).Return(&service.SignUpResponse{
		Organization: org,
		Employee:     admin,
	}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/create", gin.H{
		"org_name":   org.OrgName,
		"domain":     org.Domain,
		"first_name": admin.FirstName,
		"last_name":  admin.LastName,
		"email":      admin.Email,
		"password":   "secret123",
	})

	var response map[string]map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(org.OrgName, response["organization"]["org_name"])
	suite.Equal("admin", response["employee"]["emp_role"])
}

func (suite *OrganizationHandlerTestSuite) TestSignUp_MissingFields() {
	suite.mockService.EXPECT().SignUp(gomock.Any()).
		Return(nil, apperrors.NewMissingFieldsError("org_name", "domain", "first_name", "last_name", "email", "password")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/create", gin.H{
		"org_name": "Acme Corp",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *OrganizationHandlerTestSuite) TestSignUp_ServiceFailure() {
	suite.mockService.EXPECT().SignUp(gomock.Any()).
		Return(nil, errors.New("authentication error: identity provider unavailable")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organizations/create", gin.H{
		"org_name": "Acme Corp",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "authentication error")
}

func (suite *OrganizationHandlerTestSuite) TestUpdate_Success() {
	org := testutils.NewOrganizationFactory().Create()

	suite.mockService.EXPECT().Update(suite.orgID, gomock.Any()).Return(org, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/update", gin.H{
		"org_name": org.OrgName,
		"domain":   org.Domain,
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(org.OrgName, response["org_name"])
}

func (suite *OrganizationHandlerTestSuite) TestUpdate_MissingFields() {
	suite.mockService.EXPECT().Update(suite.orgID, gomock.Any()).
		Return(nil, apperrors.NewMissingFieldsError("org_name", "domain")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/update", gin.H{
		"org_name": "Only Name",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "org_name and domain are required")
}

func (suite *OrganizationHandlerTestSuite) TestUpdate_NotFound() {
	suite.mockService.EXPECT().Update(suite.orgID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/update", gin.H{
		"org_name": "Acme Corp",
		"domain":   "acme.com",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestDeactivate_Success() {
	suite.mockService.EXPECT().Deactivate(suite.orgID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/deactivate", gin.H{})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Organization deactivated successfully", response["message"])
}

func (suite *OrganizationHandlerTestSuite) TestListClients_Success() {
	clients := []models.Client{*testutils.NewClientFactory().WithOrganization(suite.orgID)}

	suite.mockClients.EXPECT().ListByOrganization(suite.orgID).Return(clients, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/organization/clients", gin.H{})

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
