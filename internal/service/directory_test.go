package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/mocks"
	"lfg-backend/internal/repository"
	"lfg-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DirectoryServiceTestSuite defines the test suite for DirectoryService
type DirectoryServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	reputation *mocks.MockReputationClient
	players    *repository.MemoryPlayerRepository
	characters *repository.MemoryCharacterRepository
	svc        *service.DirectoryService
	ctx        context.Context
}

func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.reputation = mocks.NewMockReputationClient(suite.ctrl)
	suite.players = repository.NewMemoryPlayerRepository()
	suite.characters = repository.NewMemoryCharacterRepository()
	suite.svc = service.NewDirectoryService(suite.players, suite.characters, suite.reputation, validator.New())
	suite.ctx = context.Background()
}

func (suite *DirectoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DirectoryServiceTestSuite) register(handle, tag string) *service.PlayerResponse {
	player, err := suite.svc.Resolve(suite.ctx, handle, &service.ResolvePlayerRequest{Tag: tag})
	suite.Require().NoError(err)
	return player
}

func (suite *DirectoryServiceTestSuite) TestResolveCreatesOnFirstContact() {
	player := suite.register("1001", "Thrall#1234")

	suite.NotEqual(uuid.Nil, player.ID)
	suite.Equal("1001", player.Handle)
	suite.Equal("Thrall#1234", player.Tag)
	suite.NotEmpty(player.CreatedAt)
}

func (suite *DirectoryServiceTestSuite) TestResolveIsStableAndUpdatesTag() {
	first := suite.register("1001", "Thrall#1234")
	second := suite.register("1001", "Go'el#1234")

	suite.Equal(first.ID, second.ID)
	suite.Equal("Go'el#1234", second.Tag)

	got, err := suite.svc.GetPlayer(suite.ctx, "1001")
	suite.Require().NoError(err)
	suite.Equal("Go'el#1234", got.Tag)
}

func (suite *DirectoryServiceTestSuite) TestResolveValidation() {
	_, err := suite.svc.Resolve(suite.ctx, "  ", &service.ResolvePlayerRequest{Tag: "x"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.svc.Resolve(suite.ctx, "1001", &service.ResolvePlayerRequest{Tag: ""})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DirectoryServiceTestSuite) TestGetPlayerUnknown() {
	_, err := suite.svc.GetPlayer(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func (suite *DirectoryServiceTestSuite) TestLinkCharacterStoresScore() {
	player := suite.register("1001", "Thrall#1234")
	suite.reputation.EXPECT().GetScore(gomock.Any(), "Thrall", "Draenor").Return(2650, nil)

	character, err := suite.svc.LinkCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: " Thrall ", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620,
	})
	suite.Require().NoError(err)
	suite.Equal("Thrall", character.Name)
	suite.Require().NotNil(character.ReputationScore)
	suite.Equal(2650, *character.ReputationScore)

	list, err := suite.svc.ListCharacters(suite.ctx, player.ID)
	suite.Require().NoError(err)
	suite.Len(list, 1)
}

func (suite *DirectoryServiceTestSuite) TestLinkCharacterDuplicateIgnoresCase() {
	player := suite.register("1001", "Thrall#1234")
	suite.reputation.EXPECT().GetScore(gomock.Any(), gomock.Any(), gomock.Any()).Return(2650, nil).Times(1)

	req := &service.CharacterRequest{Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620}
	_, err := suite.svc.LinkCharacter(suite.ctx, player.ID, req)
	suite.Require().NoError(err)

	_, err = suite.svc.LinkCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "thrall", Realm: "DRAENOR", ClassName: "Shaman", ItemLevel: 600,
	})
	suite.ErrorIs(err, apperrors.ErrCharacterExists)
}

func (suite *DirectoryServiceTestSuite) TestLinkCharacterUnknownPlayer() {
	_, err := suite.svc.LinkCharacter(suite.ctx, uuid.New(), &service.CharacterRequest{
		Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620,
	})
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func (suite *DirectoryServiceTestSuite) TestLinkCharacterReputationDown() {
	player := suite.register("1001", "Thrall#1234")
	suite.reputation.EXPECT().GetScore(gomock.Any(), "Thrall", "Draenor").
		Return(0, apperrors.NewUnavailableError("reputation", errors.New("timeout")))

	_, err := suite.svc.LinkCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620,
	})
	suite.True(apperrors.IsUnavailable(err))

	list, err := suite.svc.ListCharacters(suite.ctx, player.ID)
	suite.Require().NoError(err)
	suite.Empty(list)
}

func (suite *DirectoryServiceTestSuite) TestLinkCharacterValidation() {
	player := suite.register("1001", "Thrall#1234")

	_, err := suite.svc.LinkCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: -5,
	})
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("item_level", verr.Field)
}

func (suite *DirectoryServiceTestSuite) TestUpdateCharacterRefreshesScore() {
	player := suite.register("1001", "Thrall#1234")
	gomock.InOrder(
		suite.reputation.EXPECT().GetScore(gomock.Any(), "Thrall", "Draenor").Return(2650, nil),
		suite.reputation.EXPECT().GetScore(gomock.Any(), "Thrall", "Draenor").Return(2801, nil),
	)

	_, err := suite.svc.LinkCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620,
	})
	suite.Require().NoError(err)

	updated, err := suite.svc.UpdateCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "thrall", Realm: "draenor", ClassName: "Shaman", ItemLevel: 628,
	})
	suite.Require().NoError(err)
	suite.Equal("Thrall", updated.Name)
	suite.Equal(628, updated.ItemLevel)
	suite.Equal(2801, *updated.ReputationScore)
}

func (suite *DirectoryServiceTestSuite) TestUpdateCharacterUnknown() {
	player := suite.register("1001", "Thrall#1234")

	_, err := suite.svc.UpdateCharacter(suite.ctx, player.ID, &service.CharacterRequest{
		Name: "Jaina", Realm: "Proudmoore", ClassName: "Mage", ItemLevel: 610,
	})
	suite.ErrorIs(err, apperrors.ErrCharacterNotFound)
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
