package service_test

import (
	"testing"

	apperrors "teamtrack-backend/internal/errors"
	"teamtrack-backend/internal/mocks"
	"teamtrack-backend/internal/service"
	"teamtrack-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SubclientServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockSubclientRepo *mocks.MockSubclientRepositoryInterface
	mockClientRepo    *mocks.MockClientRepositoryInterface
	service           *service.SubclientService
}

func (suite *SubclientServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubclientRepo = mocks.NewMockSubclientRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.service = service.NewSubclientService(suite.mockSubclientRepo, suite.mockClientRepo)
}

func (suite *SubclientServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubclientServiceTestSuite) TestCreate_Success() {
	orgID := uuid.New()
	client := testutils.NewClientFactory().WithOrganization(orgID)

	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil).Times(1)
	suite.mockSubclientRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	subclient, err := suite.service.Create(orgID, &service.CreateSubclientRequest{
		ClientID: client.ID,
		Name:     "Branch Office",
		Email:    "branch@client.com",
	})

	suite.NoError(err)
	suite.Equal(client.ID, subclient.ClientID)
	suite.Equal(orgID, subclient.OrganizationID)
}

func (suite *SubclientServiceTestSuite) TestCreate_MissingFields() {
	subclient, err := suite.service.Create(uuid.New(), &service.CreateSubclientRequest{
		ClientID: uuid.New(),
	})

	suite.Nil(subclient)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SubclientServiceTestSuite) TestCreate_ClientNotFound() {
	clientID := uuid.New()

	suite.mockClientRepo.EXPECT().GetByID(clientID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	subclient, err := suite.service.Create(uuid.New(), &service.CreateSubclientRequest{
		ClientID: clientID,
		Name:     "Branch Office",
	})

	suite.Nil(subclient)
	suite.ErrorIs(err, apperrors.ErrClientNotFound)
}

func (suite *SubclientServiceTestSuite) TestCreate_ClientInOtherOrganization() {
	client := testutils.NewClientFactory().Create()

	suite.mockClientRepo.EXPECT().GetByID(client.ID).Return(client, nil).Times(1)

	subclient, err := suite.service.Create(uuid.New(), &service.CreateSubclientRequest{
		ClientID: client.ID,
		Name:     "Branch Office",
	})

	suite.Nil(subclient)
	suite.ErrorIs(err, apperrors.ErrClientNotInOrg)
}

func (suite *SubclientServiceTestSuite) TestUpdate_Success() {
	existing := testutils.NewSubclientFactory().Create()

	suite.mockSubclientRepo.EXPECT().GetByID(existing.ID).Return(existing, nil).Times(1)
	suite.mockSubclientRepo.EXPECT().Update(existing).Return(nil).Times(1)

	subclient, err := suite.service.Update(&service.UpdateSubclientRequest{
		SubclientID: existing.ID,
		Name:        "Renamed",
		Phone:       "+1-555-0199",
	})

	suite.NoError(err)
	suite.Equal("Renamed", subclient.Name)
	suite.Equal("+1-555-0199", subclient.Phone)
	// The email was not part of the request and is untouched.
	suite.Equal("subclient@test.com", subclient.Email)
}

func (suite *SubclientServiceTestSuite) TestUpdate_NotFound() {
	subclientID := uuid.New()

	suite.mockSubclientRepo.EXPECT().GetByID(subclientID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	subclient, err := suite.service.Update(&service.UpdateSubclientRequest{
		SubclientID: subclientID,
		Name:        "Renamed",
	})

	suite.Nil(subclient)
	suite.ErrorIs(err, apperrors.ErrSubclientNotFound)
}

func (suite *SubclientServiceTestSuite) TestDelete_Success() {
	subclientID := uuid.New()

	suite.mockSubclientRepo.EXPECT().Delete(subclientID).Return(nil).Times(1)

	suite.NoError(suite.service.Delete(subclientID))
}

func (suite *SubclientServiceTestSuite) TestDelete_NotFound() {
	subclientID := uuid.New()

	suite.mockSubclientRepo.EXPECT().Delete(subclientID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Delete(subclientID)

	suite.ErrorIs(err, apperrors.ErrSubclientNotFound)
}

func TestSubclientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubclientServiceTestSuite))
}
