package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/database/models"
	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CallHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockService    *mocks.MockCallServiceInterface
	mockEmbeddings *mocks.MockEmbeddingServiceInterface
	handler        *handlers.CallHandler
	httpSuite      *testutils.HTTPTestSuite
	authUserID     string
}

func (suite *CallHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallServiceInterface(suite.ctrl)
	suite.mockEmbeddings = mocks.NewMockEmbeddingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCallHandler(suite.mockService, suite.mockEmbeddings)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.authUserID = "auth-user-1"

	withCaller := func(c *gin.Context) {
		c.Set(auth.ContextKeyAuthUserID, suite.authUserID)
		c.Next()
	}

	suite.httpSuite.Router.POST("/employee/calls/schedule", withCaller, suite.handler.Schedule)
	suite.httpSuite.Router.POST("/employee/calls/recent", withCaller, suite.handler.Recent)
	suite.httpSuite.Router.POST("/project/call/insight", suite.handler.Insights)
	suite.httpSuite.Router.POST("/call/embedding/new", suite.handler.NewEmbedding)
}

func (suite *CallHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CallHandlerTestSuite) TestSchedule_Success() {
	call := testutils.NewCallFactory().Create()

	suite.mockService.EXPECT().Schedule(suite.authUserID, gomock.Any()).Return(call, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/calls/schedule", gin.H{
		"project_id": call.ProjectID,
		"call_time":  time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration":   30,
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(call.ProjectID.String(), response["project_id"])
}

func (suite *CallHandlerTestSuite) TestSchedule_MissingFields() {
	suite.mockService.EXPECT().Schedule(suite.authUserID, gomock.Any()).
		Return(nil, apperrors.NewMissingFieldsError("project_id", "call_time", "duration")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/calls/schedule", gin.H{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *CallHandlerTestSuite) TestSchedule_NotAssigned() {
	suite.mockService.EXPECT().Schedule(suite.authUserID, gomock.Any()).
		Return(nil, apperrors.ErrProjectNotAssigned).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/calls/schedule", gin.H{
		"project_id": uuid.New(),
		"call_time":  time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration":   30,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not assigned")
}

func (suite *CallHandlerTestSuite) TestSchedule_ProjectNotFound() {
	suite.mockService.EXPECT().Schedule(suite.authUserID, gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/calls/schedule", gin.H{
		"project_id": uuid.New(),
		"call_time":  time.Now().Add(time.Hour).Format(time.RFC3339),
		"duration":   30,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "project not found")
}

func (suite *CallHandlerTestSuite) TestRecent_Success() {
	calls := []models.Call{*testutils.NewCallFactory().Create()}

	suite.mockService.EXPECT().Recent(suite.authUserID).Return(calls, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/employee/calls/recent", gin.H{})

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *CallHandlerTestSuite) TestInsights_MissingCallID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/project/call/insight", gin.H{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *CallHandlerTestSuite) TestInsights_CallNotFound() {
	callID := uuid.New()

	suite.mockService.EXPECT().InsightsForCall(callID).Return(nil, apperrors.ErrCallNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/project/call/insight", gin.H{"call_id": callID})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "call not found")
}

func (suite *CallHandlerTestSuite) TestInsights_Success() {
	callID := uuid.New()
	insights := []models.Insight{{CallID: callID, Payload: []byte(`{"notes":null,"report":null}`)}}

	suite.mockService.EXPECT().InsightsForCall(callID).Return(insights, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/project/call/insight", gin.H{"call_id": callID})

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *CallHandlerTestSuite) TestNewEmbedding_Created() {
	callID := uuid.New()

	suite.mockEmbeddings.EXPECT().CreateForCall(callID, "transcript").Return(true, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/call/embedding/new", gin.H{
		"call_id":    callID,
		"transcript": "transcript",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Embedding created successfully", response["message"])
}

func (suite *CallHandlerTestSuite) TestNewEmbedding_AlreadyExists() {
	callID := uuid.New()

	suite.mockEmbeddings.EXPECT().CreateForCall(callID, "transcript").Return(false, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/call/embedding/new", gin.H{
		"call_id":    callID,
		"transcript": "transcript",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Embedding already exists", response["message"])
}

func (suite *CallHandlerTestSuite) TestNewEmbedding_MissingFields() {
	recorder := suite.httpSuite.MakeRequest("POST", "/call/embedding/new", gin.H{
		"transcript": "transcript",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing transcript or call_id")
}

func TestCallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallHandlerTestSuite))
}
