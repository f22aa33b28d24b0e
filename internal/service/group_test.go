package service_test

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"lfg-backend/internal/config"
	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/mocks"
	"lfg-backend/internal/repository"
	"lfg-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}

var testStart = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func engineConfig(clock *fakeClock) service.EngineConfig {
	return service.EngineConfig{
		MaxGroupSize:    5,
		MinDifficulty:   2,
		MaxDifficulty:   30,
		ExpiryHorizon:   24 * time.Hour,
		MaxWriteRetries: 3,
		Now:             clock.Now,
	}
}

func mustNewGroupService(t *testing.T, store repository.GroupStore, cfg service.EngineConfig) *service.GroupService {
	t.Helper()
	svc, err := service.NewGroupService(store, cfg, validator.New())
	require.NoError(t, err)
	return svc
}

func lowest(ids ...uuid.UUID) uuid.UUID {
	sorted := append([]uuid.UUID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return models.LessID(sorted[i], sorted[j]) })
	return sorted[0]
}

func memberIDs(g *service.GroupResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.PlayerID
	}
	return ids
}

// GroupServiceTestSuite drives the engine against the in-memory store
type GroupServiceTestSuite struct {
	suite.Suite
	store   *repository.MemoryGroupStore
	clock   *fakeClock
	service *service.GroupService
	ctx     context.Context
}

// SetupTest sets up the test suite
func (suite *GroupServiceTestSuite) SetupTest() {
	suite.store = repository.NewMemoryGroupStore()
	suite.clock = newFakeClock(testStart)
	suite.service = mustNewGroupService(suite.T(), suite.store, engineConfig(suite.clock))
	suite.ctx = context.Background()
}

func (suite *GroupServiceTestSuite) create(leader uuid.UUID) *service.GroupResponse {
	group, err := suite.service.Create(suite.ctx, leader, &service.CreateGroupRequest{
		Activity:   "The Dawnbreaker",
		Difficulty: 10,
	})
	suite.Require().NoError(err)
	return group
}

func (suite *GroupServiceTestSuite) TestCreate() {
	leader := uuid.New()

	group, err := suite.service.Create(suite.ctx, leader, &service.CreateGroupRequest{
		Activity:   "  Ara-Kara, City of Echoes ",
		Difficulty: 12,
		Note:       "bring a lust",
	})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, group.ID)
	suite.Equal("Ara-Kara, City of Echoes", group.Activity)
	suite.Equal(12, group.Difficulty)
	suite.Equal(leader, group.LeaderID)
	suite.Equal([]uuid.UUID{leader}, memberIDs(group))
	suite.True(group.Members[0].IsLeader)
	suite.False(group.IsFilled)
	suite.Equal(1, group.MemberCount)
	suite.Equal(5, group.Capacity)
	suite.Equal(testStart.Format(time.RFC3339), group.CreatedAt)
	suite.Equal(testStart.Add(24*time.Hour).Format(time.RFC3339), group.ExpiresAt)
}

func (suite *GroupServiceTestSuite) TestCreateValidation() {
	long := strings.Repeat("x", 201)
	cases := []struct {
		name  string
		req   service.CreateGroupRequest
		field string
	}{
		{"difficulty below range", service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 1}, "difficulty"},
		{"difficulty above range", service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 31}, "difficulty"},
		{"missing activity", service.CreateGroupRequest{Activity: "   ", Difficulty: 5}, "activity"},
		{"note too long", service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 5, Note: long}, "note"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.service.Create(suite.ctx, uuid.New(), &req)

			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal(tc.field, verr.Field)
		})
	}

	active, err := suite.service.GetActiveGroups(suite.ctx)
	suite.NoError(err)
	suite.Empty(active)
}

func (suite *GroupServiceTestSuite) TestCreateBoundaryDifficulties() {
	for _, d := range []int{2, 30} {
		_, err := suite.service.Create(suite.ctx, uuid.New(), &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: d})
		suite.NoError(err)
	}
}

func (suite *GroupServiceTestSuite) TestCreateUnknownActivity() {
	cfg := engineConfig(suite.clock)
	cfg.Activities = config.DefaultActivities()
	svc := mustNewGroupService(suite.T(), suite.store, cfg)

	_, err := svc.Create(suite.ctx, uuid.New(), &service.CreateGroupRequest{Activity: "Molten Core", Difficulty: 5})
	suite.True(apperrors.IsValidation(err))

	_, err = svc.Create(suite.ctx, uuid.New(), &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 5})
	suite.NoError(err)
}

func (suite *GroupServiceTestSuite) TestCreateWhileInGroup() {
	player := uuid.New()
	suite.create(player)

	_, err := suite.service.Create(suite.ctx, player, &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 4})
	suite.ErrorIs(err, apperrors.ErrAlreadyInGroup)

	other := suite.create(uuid.New())
	_, err = suite.service.Join(suite.ctx, other.ID, player)
	suite.ErrorIs(err, apperrors.ErrAlreadyInGroup)
}

func (suite *GroupServiceTestSuite) TestFillGroupThenFull() {
	a, b, c, d, e, f := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	group := suite.create(a)

	for i, p := range []uuid.UUID{b, c, d, e} {
		joined, err := suite.service.Join(suite.ctx, group.ID, p)
		suite.Require().NoError(err)
		suite.Equal(i+2, joined.MemberCount)
		suite.Equal(i == 3, joined.IsFilled)
		suite.Equal(a, joined.LeaderID)
	}

	_, err := suite.service.Join(suite.ctx, group.ID, f)
	suite.ErrorIs(err, apperrors.ErrGroupFull)

	loaded, err := suite.service.GetByID(suite.ctx, group.ID)
	suite.Require().NoError(err)
	suite.Equal(5, loaded.MemberCount)
	suite.ElementsMatch([]uuid.UUID{a, b, c, d, e}, memberIDs(loaded))
	suite.Equal(a, loaded.Members[0].PlayerID)

	groups, err := suite.service.GetGroupsForPlayer(suite.ctx, f)
	suite.NoError(err)
	suite.Empty(groups)
}

func (suite *GroupServiceTestSuite) TestLeaderLeavesFilledGroup() {
	a, b, c, d, e := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	group := suite.create(a)
	for _, p := range []uuid.UUID{b, c, d, e} {
		_, err := suite.service.Join(suite.ctx, group.ID, p)
		suite.Require().NoError(err)
	}

	left, err := suite.service.Leave(suite.ctx, group.ID, a)

	suite.Require().NoError(err)
	suite.False(left.Disbanded)
	suite.Require().NotNil(left.Group)
	suite.Equal(lowest(b, c, d, e), left.Group.LeaderID)
	suite.False(left.Group.IsFilled)
	suite.Equal(4, left.Group.MemberCount)
	suite.True(left.Group.Members[0].IsLeader)
	suite.NotContains(memberIDs(left.Group), a)
}

func (suite *GroupServiceTestSuite) TestMemberLeavesKeepsLeader() {
	a, b := uuid.New(), uuid.New()
	group := suite.create(a)
	_, err := suite.service.Join(suite.ctx, group.ID, b)
	suite.Require().NoError(err)

	left, err := suite.service.Leave(suite.ctx, group.ID, b)
	suite.Require().NoError(err)
	suite.Equal(a, left.Group.LeaderID)
	suite.Equal(1, left.Group.MemberCount)
}

func (suite *GroupServiceTestSuite) TestLastMemberLeavesDisbands() {
	a := uuid.New()
	group := suite.create(a)

	left, err := suite.service.Leave(suite.ctx, group.ID, a)

	suite.Require().NoError(err)
	suite.True(left.Disbanded)
	suite.Nil(left.Group)

	_, err = suite.service.GetByID(suite.ctx, group.ID)
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)

	// the player is free to start over
	suite.create(a)
}

func (suite *GroupServiceTestSuite) TestLeaveNotAMember() {
	group := suite.create(uuid.New())

	_, err := suite.service.Leave(suite.ctx, group.ID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrNotAMember)

	_, err = suite.service.Leave(suite.ctx, uuid.New(), uuid.New())
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (suite *GroupServiceTestSuite) TestLeaveCurrent() {
	a, b := uuid.New(), uuid.New()
	group := suite.create(a)
	_, err := suite.service.Join(suite.ctx, group.ID, b)
	suite.Require().NoError(err)

	left, err := suite.service.LeaveCurrent(suite.ctx, b)
	suite.Require().NoError(err)
	suite.Equal(group.ID, left.GroupID)
	suite.False(left.Disbanded)

	_, err = suite.service.LeaveCurrent(suite.ctx, b)
	suite.ErrorIs(err, apperrors.ErrNotAMember)
}

func (suite *GroupServiceTestSuite) TestJoinMissingOrExpired() {
	_, err := suite.service.Join(suite.ctx, uuid.New(), uuid.New())
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)

	group := suite.create(uuid.New())
	suite.clock.Advance(24*time.Hour + time.Minute)

	_, err = suite.service.Join(suite.ctx, group.ID, uuid.New())
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (suite *GroupServiceTestSuite) TestJoinOwnGroup() {
	a := uuid.New()
	group := suite.create(a)

	_, err := suite.service.Join(suite.ctx, group.ID, a)
	suite.ErrorIs(err, apperrors.ErrAlreadyInGroup)
}

func (suite *GroupServiceTestSuite) TestGetActiveGroups() {
	first := suite.create(uuid.New())
	suite.clock.Advance(time.Minute)
	second := suite.create(uuid.New())
	suite.clock.Advance(time.Minute)

	filled := suite.create(uuid.New())
	for i := 0; i < 4; i++ {
		_, err := suite.service.Join(suite.ctx, filled.ID, uuid.New())
		suite.Require().NoError(err)
	}

	active, err := suite.service.GetActiveGroups(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal(second.ID, active[0].ID)
	suite.Equal(first.ID, active[1].ID)

	suite.clock.Set(testStart.Add(24*time.Hour + 30*time.Second))
	active, err = suite.service.GetActiveGroups(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(second.ID, active[0].ID)
}

func (suite *GroupServiceTestSuite) TestSweepExpiredHorizon() {
	group := suite.create(uuid.New())

	suite.clock.Set(testStart.Add(23 * time.Hour))
	deleted, err := suite.service.SweepExpired(suite.ctx, 24)
	suite.NoError(err)
	suite.Equal(0, deleted)
	_, err = suite.service.GetByID(suite.ctx, group.ID)
	suite.NoError(err)

	suite.clock.Set(testStart.Add(25 * time.Hour))
	deleted, err = suite.service.SweepExpired(suite.ctx, 24)
	suite.NoError(err)
	suite.Equal(1, deleted)
	_, err = suite.service.GetByID(suite.ctx, group.ID)
	suite.ErrorIs(err, apperrors.ErrGroupNotFound)
}

func (suite *GroupServiceTestSuite) TestSweepIsIdempotent() {
	open := suite.create(uuid.New())
	filled := suite.create(uuid.New())
	for i := 0; i < 4; i++ {
		_, err := suite.service.Join(suite.ctx, filled.ID, uuid.New())
		suite.Require().NoError(err)
	}
	suite.clock.Advance(12 * time.Hour)
	fresh := suite.create(uuid.New())

	suite.clock.Advance(13 * time.Hour)
	deleted, err := suite.service.SweepExpired(suite.ctx, 24)
	suite.NoError(err)
	suite.Equal(2, deleted)

	deleted, err = suite.service.SweepExpired(suite.ctx, 24)
	suite.NoError(err)
	suite.Equal(0, deleted)

	for _, id := range []uuid.UUID{open.ID, filled.ID} {
		_, err = suite.service.GetByID(suite.ctx, id)
		suite.ErrorIs(err, apperrors.ErrGroupNotFound)
	}
	_, err = suite.service.GetByID(suite.ctx, fresh.ID)
	suite.NoError(err)
}

func (suite *GroupServiceTestSuite) TestSweepRejectsNonPositiveAge() {
	_, err := suite.service.SweepExpired(suite.ctx, 0)
	suite.True(apperrors.IsValidation(err))
}

func (suite *GroupServiceTestSuite) TestConcurrentJoinIntoLastSlot() {
	for round := 0; round < 50; round++ {
		group := suite.create(uuid.New())
		for i := 0; i < 3; i++ {
			_, err := suite.service.Join(suite.ctx, group.ID, uuid.New())
			suite.Require().NoError(err)
		}

		var wg sync.WaitGroup
		start := make(chan struct{})
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, errs[i] = suite.service.Join(suite.ctx, group.ID, uuid.New())
			}(i)
		}
		close(start)
		wg.Wait()

		succeeded, full := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrGroupFull):
				full++
			default:
				suite.Failf("unexpected error", "%v", err)
			}
		}
		suite.Equal(1, succeeded)
		suite.Equal(1, full)

		loaded, err := suite.service.GetByID(suite.ctx, group.ID)
		suite.Require().NoError(err)
		suite.Equal(5, loaded.MemberCount)
		suite.True(loaded.IsFilled)
	}
}

func (suite *GroupServiceTestSuite) TestConcurrentCreateSamePlayer() {
	player := uuid.New()
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.Create(suite.ctx, player, &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 8})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			suite.ErrorIs(err, apperrors.ErrAlreadyInGroup)
		}()
	}
	wg.Wait()

	suite.Equal(1, succeeded)
	groups, err := suite.service.GetGroupsForPlayer(suite.ctx, player)
	suite.NoError(err)
	suite.Len(groups, 1)
}

func (suite *GroupServiceTestSuite) TestSweepRacesLeave() {
	for round := 0; round < 30; round++ {
		a, b := uuid.New(), uuid.New()
		group := suite.create(a)
		_, err := suite.service.Join(suite.ctx, group.ID, b)
		suite.Require().NoError(err)
		suite.clock.Advance(25 * time.Hour)

		var wg sync.WaitGroup
		var leaveErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, leaveErr = suite.service.Leave(suite.ctx, group.ID, a)
		}()
		go func() {
			defer wg.Done()
			_, _ = suite.service.SweepExpired(suite.ctx, 24)
		}()
		wg.Wait()

		if leaveErr != nil {
			suite.ErrorIs(leaveErr, apperrors.ErrGroupNotFound)
		}
		_, err = suite.service.GetByID(suite.ctx, group.ID)
		suite.ErrorIs(err, apperrors.ErrGroupNotFound)
		for _, p := range []uuid.UUID{a, b} {
			groups, err := suite.service.GetGroupsForPlayer(suite.ctx, p)
			suite.NoError(err)
			suite.Empty(groups)
		}
	}
}

// TestRandomConcurrentOperations checks the group invariants after many
// interleaved creates, joins and leaves
func (suite *GroupServiceTestSuite) TestRandomConcurrentOperations() {
	players := make([]uuid.UUID, 40)
	for i := range players {
		players[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				player := players[rng.Intn(len(players))]
				switch rng.Intn(3) {
				case 0:
					_, _ = suite.service.Create(suite.ctx, player, &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 2 + rng.Intn(29)})
				case 1:
					active, err := suite.service.GetActiveGroups(suite.ctx)
					if err != nil || len(active) == 0 {
						continue
					}
					_, _ = suite.service.Join(suite.ctx, active[rng.Intn(len(active))].ID, player)
				case 2:
					_, _ = suite.service.LeaveCurrent(suite.ctx, player)
				}
			}
		}(int64(w + 1))
	}
	wg.Wait()

	all, err := suite.store.ListGroupsOlderThan(suite.ctx, testStart.Add(time.Hour))
	suite.Require().NoError(err)

	seen := make(map[uuid.UUID]uuid.UUID)
	for _, g := range all {
		suite.NotEmpty(g.Members, "empty group %s exists", g.ID)
		suite.LessOrEqual(len(g.Members), 5)
		suite.Equal(len(g.Members) == 5, g.IsFilled)
		suite.True(g.HasMember(g.LeaderID), "leader of %s is not a member", g.ID)
		for _, m := range g.Members {
			other, dup := seen[m.PlayerID]
			suite.False(dup, "player %s in groups %s and %s", m.PlayerID, other, g.ID)
			seen[m.PlayerID] = g.ID
		}
	}
	for _, p := range players {
		groups, err := suite.service.GetGroupsForPlayer(suite.ctx, p)
		suite.NoError(err)
		suite.LessOrEqual(len(groups), 1)
	}
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}

func TestNewGroupService_RejectsInconsistentLimits(t *testing.T) {
	clock := newFakeClock(testStart)
	cases := []struct {
		name  string
		edit  func(*service.EngineConfig)
		field string
	}{
		{"group too small", func(c *service.EngineConfig) { c.MaxGroupSize = 1 }, "max_group_size"},
		{"inverted difficulty range", func(c *service.EngineConfig) { c.MinDifficulty, c.MaxDifficulty = 20, 10 }, "min_difficulty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engineConfig(clock)
			tc.edit(&cfg)

			svc, err := service.NewGroupService(repository.NewMemoryGroupStore(), cfg, validator.New())
			assert.Nil(t, svc)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestGroupService_RetriesVersionConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGroupStore(ctrl)
	clock := newFakeClock(testStart)
	svc := mustNewGroupService(t, store, engineConfig(clock))

	groupID, leader, joiner := uuid.New(), uuid.New(), uuid.New()
	snapshot := func() *models.Group {
		g := &models.Group{
			BaseModel:  models.BaseModel{ID: groupID, CreatedAt: testStart},
			Activity:   "Grim Batol",
			Difficulty: 6,
			LeaderID:   leader,
			Version:    3,
		}
		g.AddMember(leader, testStart, 5)
		return g
	}

	gomock.InOrder(
		store.EXPECT().ReadGroup(gomock.Any(), groupID).Return(snapshot(), nil),
		store.EXPECT().ListGroupsByPlayer(gomock.Any(), joiner).Return(nil, nil),
		store.EXPECT().WriteGroup(gomock.Any(), gomock.Any()).Return(apperrors.ErrVersionConflict),
		store.EXPECT().ReadGroup(gomock.Any(), groupID).Return(snapshot(), nil),
		store.EXPECT().ListGroupsByPlayer(gomock.Any(), joiner).Return(nil, nil),
		store.EXPECT().WriteGroup(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g *models.Group) error {
			assert.True(t, g.HasMember(joiner))
			g.Version++
			return nil
		}),
	)

	group, err := svc.Join(context.Background(), groupID, joiner)
	require.NoError(t, err)
	assert.Equal(t, 2, group.MemberCount)
	assert.Equal(t, int64(4), group.Version)
}

func TestGroupService_ConflictAfterRetryBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGroupStore(ctrl)
	clock := newFakeClock(testStart)
	svc := mustNewGroupService(t, store, engineConfig(clock))

	groupID, leader, member := uuid.New(), uuid.New(), uuid.New()
	store.EXPECT().ReadGroup(gomock.Any(), groupID).DoAndReturn(func(context.Context, uuid.UUID) (*models.Group, error) {
		g := &models.Group{BaseModel: models.BaseModel{ID: groupID, CreatedAt: testStart}, LeaderID: leader, Version: 1}
		g.AddMember(leader, testStart, 5)
		g.AddMember(member, testStart, 5)
		return g, nil
	}).Times(3)
	store.EXPECT().WriteGroup(gomock.Any(), gomock.Any()).Return(apperrors.ErrVersionConflict).Times(3)

	_, err := svc.Leave(context.Background(), groupID, member)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 3, conflict.Attempts)
}

func TestGroupService_WritesSurviveCallerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGroupStore(ctrl)
	clock := newFakeClock(testStart)
	svc := mustNewGroupService(t, store, engineConfig(clock))

	ctx, cancel := context.WithCancel(context.Background())
	player := uuid.New()

	store.EXPECT().ListGroupsByPlayer(gomock.Any(), player).Return(nil, nil)
	store.EXPECT().WriteGroup(gomock.Any(), gomock.Any()).DoAndReturn(func(wctx context.Context, g *models.Group) error {
		cancel()
		assert.NoError(t, wctx.Err())
		g.Version = 1
		return nil
	})

	_, err := svc.Create(ctx, player, &service.CreateGroupRequest{Activity: "Grim Batol", Difficulty: 3})
	assert.NoError(t, err)
}

func TestGroupService_SweepSkipsFailedDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGroupStore(ctrl)
	clock := newFakeClock(testStart.Add(48 * time.Hour))
	svc := mustNewGroupService(t, store, engineConfig(clock))

	broken := models.Group{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: testStart}}
	healthy := models.Group{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: testStart}}
	gone := models.Group{BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: testStart}}

	store.EXPECT().ListGroupsOlderThan(gomock.Any(), gomock.Any()).
		Return([]models.Group{broken, healthy, gone}, nil)
	store.EXPECT().ReadGroup(gomock.Any(), broken.ID).Return(broken.Clone(), nil)
	store.EXPECT().DeleteGroup(gomock.Any(), broken.ID).Return(errors.New("connection reset"))
	store.EXPECT().ReadGroup(gomock.Any(), healthy.ID).Return(healthy.Clone(), nil)
	store.EXPECT().DeleteGroup(gomock.Any(), healthy.ID).Return(nil)
	store.EXPECT().ReadGroup(gomock.Any(), gone.ID).Return(nil, apperrors.ErrGroupNotFound)

	deleted, err := svc.SweepExpired(context.Background(), 24)
	assert.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestGroupService_SweepListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGroupStore(ctrl)
	svc := mustNewGroupService(t, store, engineConfig(newFakeClock(testStart)))

	store.EXPECT().ListGroupsOlderThan(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	deleted, err := svc.SweepExpired(context.Background(), 24)
	assert.Error(t, err)
	assert.Zero(t, deleted)
}
