package service_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompletions *mocks.MockCompletionClientInterface
	service         *service.AgentService
}

func (suite *AgentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompletions = mocks.NewMockCompletionClientInterface(suite.ctrl)
	suite.service = service.NewAgentService(suite.mockCompletions, nil, logger.New())
}

func (suite *AgentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AgentServiceTestSuite) TestRunNotetaking() {
	transcript := "we agreed to ship on friday"

	suite.mockCompletions.EXPECT().
		CompleteStructured("gpt-4o", gomock.Any(), transcript, "notes_data", gomock.Any(), gomock.Any()).
		DoAndReturn(func(model, description, input, schemaName string, schema []byte, out interface{}) error {
			// The schema sent over the wire must be valid JSON.
			var decoded map[string]interface{}
			suite.Require().NoError(json.Unmarshal(schema, &decoded))
			suite.Equal("object", decoded["type"])

			notes := out.(*service.NotesData)
			notes.Title = "Sync"
			notes.Summary = "Shipping friday"
			return nil
		}).Times(1)

	notes, err := suite.service.RunNotetaking(transcript)

	suite.NoError(err)
	suite.Equal("Sync", notes.Title)
}

func (suite *AgentServiceTestSuite) TestRunReport() {
	transcript := "we agreed to ship on friday"

	suite.mockCompletions.EXPECT().
		CompleteStructured("gpt-4o", gomock.Any(), transcript, "report_data", gomock.Any(), gomock.Any()).
		DoAndReturn(func(model, description, input, schemaName string, schema []byte, out interface{}) error {
			report := out.(*service.ReportData)
			report.Keywords = []string{"ship"}
			return nil
		}).Times(1)

	report, err := suite.service.RunReport(transcript)

	suite.NoError(err)
	suite.Equal([]string{"ship"}, report.Keywords)
}

func (suite *AgentServiceTestSuite) TestRunEmail() {
	suite.mockCompletions.EXPECT().
		CompleteStructured("gpt-4o", gomock.Any(), "meeting info", "email_data", gomock.Any(), gomock.Any()).
		DoAndReturn(func(model, description, input, schemaName string, schema []byte, out interface{}) error {
			email := out.(*service.EmailData)
			email.Subject = "Next steps"
			email.Body = "Here is what we agreed on."
			return nil
		}).Times(1)

	email, err := suite.service.RunEmail("meeting info")

	suite.NoError(err)
	suite.Equal("Next steps", email.Subject)
}

func (suite *AgentServiceTestSuite) TestRunNotetaking_CompletionFailure() {
	suite.mockCompletions.EXPECT().
		CompleteStructured(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.ErrCompletionRequestFailed).Times(1)

	notes, err := suite.service.RunNotetaking("transcript")

	suite.Nil(notes)
	suite.ErrorIs(err, apperrors.ErrCompletionRequestFailed)
}

func (suite *AgentServiceTestSuite) TestLoadAgentsConfig_MissingFileUsesDefaults() {
	config, err := service.LoadAgentsConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))

	suite.NoError(err)
	suite.Equal("gpt-4o", config.Notetaking.Model)
	suite.NotEmpty(config.Notetaking.Description)
	suite.NotEmpty(config.Report.Description)
	suite.NotEmpty(config.Email.Description)
}

func (suite *AgentServiceTestSuite) TestLoadAgentsConfig_OverridesMergeWithDefaults() {
	path := filepath.Join(suite.T().TempDir(), "agents.yaml")
	content := "notetaking:\n  model: gpt-4o-mini\n"
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	config, err := service.LoadAgentsConfig(path)

	suite.NoError(err)
	suite.Equal("gpt-4o-mini", config.Notetaking.Model)
	// Fields absent from the file keep their defaults.
	suite.NotEmpty(config.Notetaking.Description)
	suite.Equal("gpt-4o", config.Report.Model)
}

func (suite *AgentServiceTestSuite) TestLoadAgentsConfig_InvalidYAML() {
	path := filepath.Join(suite.T().TempDir(), "agents.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("notetaking: [unbalanced"), 0o644))

	config, err := service.LoadAgentsConfig(path)

	suite.Error(err)
	suite.Nil(config)
}

func TestAgentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgentServiceTestSuite))
}
