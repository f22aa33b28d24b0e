package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"lfg-backend/internal/config"
	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"
	"lfg-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EngineConfig holds the limits the membership engine enforces
type EngineConfig struct {
	MaxGroupSize    int
	MinDifficulty   int
	MaxDifficulty   int
	ExpiryHorizon   time.Duration
	MaxWriteRetries int
	// Activities, when set, restricts group creation to catalog entries
	Activities *config.ActivityCatalog
	// Now defaults to time.Now
	Now func() time.Time
}

// NewEngineConfig builds an EngineConfig from application config
func NewEngineConfig(cfg *config.Config, activities *config.ActivityCatalog) EngineConfig {
	return EngineConfig{
		MaxGroupSize:    cfg.MaxGroupSize,
		MinDifficulty:   cfg.MinDifficulty,
		MaxDifficulty:   cfg.MaxDifficulty,
		ExpiryHorizon:   cfg.ExpiryHorizon(),
		MaxWriteRetries: cfg.MaxWriteRetries,
		Activities:      activities,
	}
}

// GroupService is the group membership engine. It is the only writer of
// group membership and leadership.
//
// Join, leave and the per-group step of the sweep hold the group's lock for
// their whole read-modify-write. Create and join additionally hold the
// player's lock (always taken after the group lock) while they check and
// claim the player's single membership. Writes are version checked and
// retried on conflict.
type GroupService struct {
	store       repository.GroupStore
	validator   *validator.Validate
	cfg         EngineConfig
	now         func() time.Time
	groupLocks  *keyedLocks
	playerLocks *keyedLocks
}

// NewGroupService creates a new membership engine. It fails when the limits
// are inconsistent or the difficulty rule cannot be registered on v.
func NewGroupService(store repository.GroupStore, cfg EngineConfig, v *validator.Validate) (*GroupService, error) {
	if cfg.MaxGroupSize < 2 {
		return nil, apperrors.NewValidationError("max_group_size", "must be at least 2")
	}
	if cfg.MinDifficulty > cfg.MaxDifficulty {
		return nil, apperrors.NewValidationError("min_difficulty", "must not exceed max_difficulty")
	}
	if cfg.MaxWriteRetries < 1 {
		cfg.MaxWriteRetries = 1
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	lo, hi := int64(cfg.MinDifficulty), int64(cfg.MaxDifficulty)
	if err := v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		d := fl.Field().Int()
		return d >= lo && d <= hi
	}); err != nil {
		return nil, fmt.Errorf("failed to register difficulty validation: %w", err)
	}
	return &GroupService{
		store:       store,
		validator:   v,
		cfg:         cfg,
		now:         now,
		groupLocks:  newKeyedLocks(),
		playerLocks: newKeyedLocks(),
	}, nil
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Activity   string `json:"activity" validate:"required,max=100" example:"The Stonevault"`
	Difficulty int    `json:"difficulty" validate:"difficulty" example:"12"`
	Note       string `json:"note" validate:"max=200" example:"need a healer"`
}

// GroupMemberResponse represents one member in a group response
type GroupMemberResponse struct {
	PlayerID uuid.UUID `json:"player_id"`
	IsLeader bool      `json:"is_leader"`
	JoinedAt string    `json:"joined_at"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID          uuid.UUID             `json:"id"`
	Activity    string                `json:"activity"`
	Difficulty  int                   `json:"difficulty"`
	Note        string                `json:"note"`
	IsFilled    bool                  `json:"is_filled"`
	LeaderID    uuid.UUID             `json:"leader_id"`
	Members     []GroupMemberResponse `json:"members"`
	MemberCount int                   `json:"member_count"`
	Capacity    int                   `json:"capacity"`
	Version     int64                 `json:"version"`
	CreatedAt   string                `json:"created_at"`
	ExpiresAt   string                `json:"expires_at"`
}

// LeaveResponse represents the outcome of a leave
type LeaveResponse struct {
	GroupID   uuid.UUID      `json:"group_id"`
	Disbanded bool           `json:"disbanded"`
	Group     *GroupResponse `json:"group,omitempty"`
}

// Capacity returns the configured group size
func (s *GroupService) Capacity() int {
	return s.cfg.MaxGroupSize
}

// Create creates a group led by playerID, who becomes its only member
func (s *GroupService) Create(ctx context.Context, playerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	req.Activity = strings.TrimSpace(req.Activity)
	req.Note = strings.TrimSpace(req.Note)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if s.cfg.Activities != nil && !s.cfg.Activities.Contains(req.Activity) {
		return nil, apperrors.NewValidationError("activity", "unknown activity")
	}

	unlock, err := s.playerLocks.acquire(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	wctx := context.WithoutCancel(ctx)
	if err := s.ensureNoMembership(wctx, playerID); err != nil {
		return nil, err
	}

	now := s.now()
	group := &models.Group{
		BaseModel:  models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Activity:   req.Activity,
		Difficulty: req.Difficulty,
		Note:       req.Note,
		LeaderID:   playerID,
	}
	group.AddMember(playerID, now, s.cfg.MaxGroupSize)

	if err := s.store.WriteGroup(wctx, group); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyInGroup) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":   group.ID,
		"activity":   group.Activity,
		"difficulty": group.Difficulty,
	}).Debug("group created")
	return s.toResponse(group), nil
}

// Join adds playerID to the group. The capacity check and the insert happen
// under the group lock against a fresh read.
func (s *GroupService) Join(ctx context.Context, groupID, playerID uuid.UUID) (*GroupResponse, error) {
	unlockGroup, err := s.groupLocks.acquire(ctx, groupID)
	if err != nil {
		return nil, err
	}
	defer unlockGroup()
	unlockPlayer, err := s.playerLocks.acquire(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlockPlayer()

	wctx := context.WithoutCancel(ctx)
	var joined *models.Group
	err = s.withRetry(wctx, groupID, func() error {
		group, err := s.store.ReadGroup(wctx, groupID)
		if err != nil {
			return err
		}
		if s.isExpired(group) {
			return apperrors.ErrGroupNotFound
		}
		if group.HasMember(playerID) {
			return apperrors.ErrAlreadyInGroup
		}
		if group.IsFilled || len(group.Members) >= s.cfg.MaxGroupSize {
			return apperrors.ErrGroupFull
		}
		if err := s.ensureNoMembership(wctx, playerID); err != nil {
			return err
		}

		group.AddMember(playerID, s.now(), s.cfg.MaxGroupSize)
		if err := s.store.WriteGroup(wctx, group); err != nil {
			return err
		}
		joined = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":  groupID,
		"player_id": playerID,
		"filled":    joined.IsFilled,
	}).Debug("player joined group")
	return s.toResponse(joined), nil
}

// Leave removes playerID from the group. The group is deleted when it
// empties; a departing leader hands the lead to the lowest remaining id.
func (s *GroupService) Leave(ctx context.Context, groupID, playerID uuid.UUID) (*LeaveResponse, error) {
	unlock, err := s.groupLocks.acquire(ctx, groupID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	wctx := context.WithoutCancel(ctx)
	result := &LeaveResponse{GroupID: groupID}
	err = s.withRetry(wctx, groupID, func() error {
		group, err := s.store.ReadGroup(wctx, groupID)
		if err != nil {
			return err
		}
		if !group.RemoveMember(playerID, s.cfg.MaxGroupSize) {
			return apperrors.ErrNotAMember
		}

		if len(group.Members) == 0 {
			if err := s.store.DeleteGroup(wctx, groupID); err != nil {
				return err
			}
			result.Disbanded = true
			result.Group = nil
			return nil
		}
		if err := s.store.WriteGroup(wctx, group); err != nil {
			return err
		}
		result.Group = s.toResponse(group)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id":  groupID,
		"player_id": playerID,
		"disbanded": result.Disbanded,
	})
	if result.Group != nil {
		log = log.WithField("leader_id", result.Group.LeaderID)
	}
	log.Debug("player left group")
	return result, nil
}

// LeaveCurrent removes playerID from whichever group they are in
func (s *GroupService) LeaveCurrent(ctx context.Context, playerID uuid.UUID) (*LeaveResponse, error) {
	groups, err := s.store.ListGroupsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player groups: %w", err)
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrNotAMember
	}
	return s.Leave(ctx, groups[0].ID, playerID)
}

// GetByID retrieves a group snapshot
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.store.ReadGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(group), nil
}

// GetActiveGroups lists joinable groups, newest first
func (s *GroupService) GetActiveGroups(ctx context.Context) ([]GroupResponse, error) {
	groups, err := s.store.ListActiveGroups(ctx, s.now().Add(-s.cfg.ExpiryHorizon))
	if err != nil {
		return nil, fmt.Errorf("failed to list active groups: %w", err)
	}
	return s.toResponses(groups), nil
}

// GetGroupsForPlayer lists the groups playerID is in, read from the store
func (s *GroupService) GetGroupsForPlayer(ctx context.Context, playerID uuid.UUID) ([]GroupResponse, error) {
	groups, err := s.store.ListGroupsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player groups: %w", err)
	}
	return s.toResponses(groups), nil
}

// SweepExpired deletes every group created more than maxAgeHours ago and
// returns how many it deleted. Each deletion takes the group lock and
// re-reads the group first; groups that fail are logged and left for the
// next run.
func (s *GroupService) SweepExpired(ctx context.Context, maxAgeHours int) (int, error) {
	if maxAgeHours <= 0 {
		return 0, apperrors.NewValidationError("max_age_hours", "must be positive")
	}
	cutoff := s.now().Add(-time.Duration(maxAgeHours) * time.Hour)
	log := logger.WithContext(ctx).WithField("cutoff", cutoff)

	candidates, err := s.store.ListGroupsOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired groups: %w", err)
	}

	deleted, skipped := 0, 0
	for _, candidate := range candidates {
		ok, err := s.sweepOne(ctx, candidate.ID, cutoff)
		if err != nil {
			skipped++
			log.WithField("group_id", candidate.ID).WithError(err).Warn("skipping expired group")
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if ok {
			deleted++
		}
	}

	log.WithFields(map[string]interface{}{
		"deleted": deleted,
		"skipped": skipped,
	}).Info("expired group sweep finished")
	return deleted, nil
}

func (s *GroupService) sweepOne(ctx context.Context, groupID uuid.UUID, cutoff time.Time) (bool, error) {
	unlock, err := s.groupLocks.acquire(ctx, groupID)
	if err != nil {
		return false, err
	}
	defer unlock()

	wctx := context.WithoutCancel(ctx)
	group, err := s.store.ReadGroup(wctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return false, nil
		}
		return false, err
	}
	if !group.CreatedAt.Before(cutoff) {
		return false, nil
	}
	if err := s.store.DeleteGroup(wctx, groupID); err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// withRetry reruns fn while the store reports a stale version
func (s *GroupService) withRetry(ctx context.Context, groupID uuid.UUID, fn func() error) error {
	for attempt := 1; attempt <= s.cfg.MaxWriteRetries; attempt++ {
		err := fn()
		if !errors.Is(err, apperrors.ErrVersionConflict) {
			return err
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"group_id": groupID,
			"attempt":  attempt,
		}).Warn("group version conflict, retrying")
	}
	return apperrors.NewConflictError("group", s.cfg.MaxWriteRetries)
}

func (s *GroupService) ensureNoMembership(ctx context.Context, playerID uuid.UUID) error {
	memberships, err := s.store.ListGroupsByPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to check player membership: %w", err)
	}
	if len(memberships) > 0 {
		return apperrors.ErrAlreadyInGroup
	}
	return nil
}

func (s *GroupService) isExpired(group *models.Group) bool {
	return group.CreatedAt.Before(s.now().Add(-s.cfg.ExpiryHorizon))
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	members := make([]models.GroupMember, len(group.Members))
	copy(members, group.Members)
	sortMembers(members, group.LeaderID)

	out := make([]GroupMemberResponse, len(members))
	for i, m := range members {
		out[i] = GroupMemberResponse{
			PlayerID: m.PlayerID,
			IsLeader: m.PlayerID == group.LeaderID,
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		}
	}
	return &GroupResponse{
		ID:          group.ID,
		Activity:    group.Activity,
		Difficulty:  group.Difficulty,
		Note:        group.Note,
		IsFilled:    group.IsFilled,
		LeaderID:    group.LeaderID,
		Members:     out,
		MemberCount: len(out),
		Capacity:    s.cfg.MaxGroupSize,
		Version:     group.Version,
		CreatedAt:   group.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   group.CreatedAt.Add(s.cfg.ExpiryHorizon).Format(time.RFC3339),
	}
}

func (s *GroupService) toResponses(groups []models.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, *s.toResponse(&groups[i]))
	}
	return out
}

// sortMembers orders the leader first, then by join time
func sortMembers(members []models.GroupMember, leaderID uuid.UUID) {
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if (a.PlayerID == leaderID) != (b.PlayerID == leaderID) {
			return a.PlayerID == leaderID
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return models.LessID(a.PlayerID, b.PlayerID)
	})
}
