package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/repository"
	"lfg-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func noticeGroup(leader uuid.UUID, others ...uuid.UUID) *models.Group {
	group := &models.Group{
		Activity:   "Grim Batol",
		Difficulty: 12,
		Note:       "Bring a kick",
		LeaderID:   leader,
	}
	group.ID = uuid.New()
	group.AddMember(leader, testStart, 5)
	for i, id := range others {
		group.AddMember(id, testStart.Add(time.Duration(i+1)*time.Minute), 5)
	}
	return group
}

func TestRenderNotice_LeaderFirstWithBestCharacter(t *testing.T) {
	leader, member := uuid.New(), uuid.New()
	group := noticeGroup(leader, member)

	players := []models.Player{
		{BaseModel: models.BaseModel{ID: member}, Tag: "Jaina#2222"},
		{BaseModel: models.BaseModel{ID: leader}, Tag: "Thrall#1111"},
	}
	characters := []models.Character{
		{PlayerID: leader, Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620, ReputationScore: intPtr(2400)},
		{PlayerID: leader, Name: "Goel", Realm: "Draenor", ClassName: "Warrior", ItemLevel: 630, ReputationScore: intPtr(2900)},
		{PlayerID: leader, Name: "Alt", Realm: "Draenor", ClassName: "Mage", ItemLevel: 580},
	}

	notice := service.RenderNotice(group, players, characters, 5)

	assert.Equal(t, group.ID, notice.GroupID)
	assert.Equal(t, "LFG: Grim Batol +12", notice.Title)
	assert.Equal(t, "Bring a kick", notice.Description)
	require.Len(t, notice.Fields, 2)
	assert.Equal(t, "Leader", notice.Fields[0].Name)
	assert.Equal(t, "Thrall#1111 (Goel-Draenor)\nClass: Warrior, iLvl: 630, Score: 2900", notice.Fields[0].Value)
	assert.Equal(t, "Member", notice.Fields[1].Name)
	assert.Equal(t, "Jaina#2222", notice.Fields[1].Value)
	assert.Equal(t, "Group ID: "+group.ID.String()+" | Status: 2/5", notice.Footer)
}

func TestRenderNotice_FilledAndEmptyNote(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	group := noticeGroup(ids[0], ids[1:]...)
	group.Note = ""

	notice := service.RenderNotice(group, nil, nil, 5)

	assert.Equal(t, "No additional notes.", notice.Description)
	assert.True(t, strings.HasSuffix(notice.Footer, "| Status: Filled"))
	require.Len(t, notice.Fields, 5)
	// unknown players fall back to their id
	assert.Equal(t, ids[0].String(), notice.Fields[0].Value)
}

func TestRenderNotice_UnscoredCharacterShowsZero(t *testing.T) {
	leader := uuid.New()
	group := noticeGroup(leader)

	notice := service.RenderNotice(group,
		[]models.Player{{BaseModel: models.BaseModel{ID: leader}, Tag: "Anduin#3333"}},
		[]models.Character{{PlayerID: leader, Name: "Anduin", Realm: "Silvermoon", ClassName: "Priest", ItemLevel: 615}},
		5)

	require.Len(t, notice.Fields, 1)
	assert.Equal(t, "Anduin#3333 (Anduin-Silvermoon)\nClass: Priest, iLvl: 615, Score: 0", notice.Fields[0].Value)
	assert.Equal(t, "Group ID: "+group.ID.String()+" | Status: 1/5", notice.Footer)
}

func TestNoticeService_Render(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryGroupStore()
	players := repository.NewMemoryPlayerRepository()
	characters := repository.NewMemoryCharacterRepository()

	leader := &models.Player{Handle: "1001", Tag: "Thrall#1111"}
	require.NoError(t, players.Create(ctx, leader))
	require.NoError(t, characters.Create(ctx, &models.Character{
		PlayerID: leader.ID, Name: "Thrall", Realm: "Draenor", ClassName: "Shaman", ItemLevel: 620, ReputationScore: intPtr(2500),
	}))

	group := noticeGroup(leader.ID)
	require.NoError(t, store.WriteGroup(ctx, group))

	svc := service.NewNoticeService(store, players, characters, 5)
	notice, err := svc.Render(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, notice.Fields, 1)
	assert.Equal(t, "Thrall#1111 (Thrall-Draenor)\nClass: Shaman, iLvl: 620, Score: 2500", notice.Fields[0].Value)

	_, err = svc.Render(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
}
