package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type InsightServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCallRepo    *mocks.MockCallRepositoryInterface
	mockInsightRepo *mocks.MockInsightRepositoryInterface
	mockAgents      *mocks.MockAgentServiceInterface
	service         *service.InsightService
}

func (suite *InsightServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCallRepo = mocks.NewMockCallRepositoryInterface(suite.ctrl)
	suite.mockInsightRepo = mocks.NewMockInsightRepositoryInterface(suite.ctrl)
	suite.mockAgents = mocks.NewMockAgentServiceInterface(suite.ctrl)
	suite.service = service.NewInsightService(
		suite.mockCallRepo,
		suite.mockInsightRepo,
		suite.mockAgents,
		logger.New(),
	)
}

func (suite *InsightServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleNotes() *service.NotesData {
	return &service.NotesData{
		Title:           "Weekly sync",
		Summary:         "Discussed delivery milestones",
		ImportantTopics: []string{"milestones"},
		Questions:       []string{"When is the next release?"},
		Decisions:       []string{"Ship on Friday"},
	}
}

func sampleReport() *service.ReportData {
	return &service.ReportData{
		ImprovingPoints:  []string{"speak slower"},
		PositiveFeedback: []string{"clear agenda"},
		NegativeFeedback: []string{"ran long"},
		Keywords:         []string{"release"},
		NextSteps:        []string{"send notes"},
	}
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_WithExplicitCall() {
	callID := uuid.New()
	transcript := "hello everyone, welcome to the weekly sync"
	notes := sampleNotes()
	report := sampleReport()

	suite.mockCallRepo.EXPECT().UpdateTranscription(callID, transcript).Return(nil).Times(1)
	suite.mockAgents.EXPECT().RunNotetaking(transcript).Return(notes, nil).Times(1)
	suite.mockAgents.EXPECT().RunReport(transcript).Return(report, nil).Times(1)
	suite.mockInsightRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	insight, err := suite.service.ProcessTranscript("auth-user", &callID, transcript)

	suite.NoError(err)
	suite.Require().NotNil(insight)
	suite.Equal(callID, insight.CallID)

	var payload map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(insight.Payload, &payload))
	suite.Contains(payload, "notes")
	suite.Contains(payload, "report")
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_FallsBackToLatestCall() {
	latestID := uuid.New()
	transcript := "transcript without an explicit call"

	suite.mockCallRepo.EXPECT().GetLatestCallID("auth-user").Return(latestID, nil).Times(1)
	suite.mockCallRepo.EXPECT().UpdateTranscription(latestID, transcript).Return(nil).Times(1)
	suite.mockAgents.EXPECT().RunNotetaking(transcript).Return(sampleNotes(), nil).Times(1)
	suite.mockAgents.EXPECT().RunReport(transcript).Return(sampleReport(), nil).Times(1)
	suite.mockInsightRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	insight, err := suite.service.ProcessTranscript("auth-user", nil, transcript)

	suite.NoError(err)
	suite.Equal(latestID, insight.CallID)
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_EmptyTranscript() {
	insight, err := suite.service.ProcessTranscript("auth-user", nil, "")

	suite.Nil(insight)
	suite.True(apperrors.IsValidation(err))
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_NoCallsForEmployee() {
	suite.mockCallRepo.EXPECT().GetLatestCallID("auth-user").Return(uuid.Nil, gorm.ErrRecordNotFound).Times(1)

	insight, err := suite.service.ProcessTranscript("auth-user", nil, "some transcript")

	suite.Nil(insight)
	suite.ErrorIs(err, apperrors.ErrNoCallsForEmployee)
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_CallNotFound() {
	callID := uuid.New()

	suite.mockCallRepo.EXPECT().UpdateTranscription(callID, "some transcript").Return(gorm.ErrRecordNotFound).Times(1)

	insight, err := suite.service.ProcessTranscript("auth-user", &callID, "some transcript")

	suite.Nil(insight)
	suite.ErrorIs(err, apperrors.ErrCallNotFound)
}

func (suite *InsightServiceTestSuite) TestProcessTranscript_AgentFailure() {
	callID := uuid.New()
	transcript := "some transcript"

	suite.mockCallRepo.EXPECT().UpdateTranscription(callID, transcript).Return(nil).Times(1)
	suite.mockAgents.EXPECT().RunNotetaking(transcript).Return(nil, errors.New("completion timed out")).Times(1)

	insight, err := suite.service.ProcessTranscript("auth-user", &callID, transcript)

	suite.Nil(insight)
	suite.Contains(err.Error(), "error processing text with agent")
}

func TestInsightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}
