package service

import (
	"context"
	"strings"

	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Membership signal actions
const (
	SignalActionJoin  = "join"
	SignalActionLeave = "leave"
)

// SignalService turns inbound join/leave signals into engine calls
type SignalService struct {
	groups    GroupServiceInterface
	directory DirectoryServiceInterface
	validator *validator.Validate
}

// NewSignalService creates a new signal service
func NewSignalService(groups GroupServiceInterface, directory DirectoryServiceInterface, validator *validator.Validate) *SignalService {
	return &SignalService{
		groups:    groups,
		directory: directory,
		validator: validator,
	}
}

// MembershipSignal is a join or leave request raised on a group notice.
// PlayerHandle may be omitted; when set it must be the caller's own handle.
type MembershipSignal struct {
	GroupID      uuid.UUID `json:"group_id" validate:"required"`
	PlayerHandle string    `json:"player_handle,omitempty" validate:"omitempty,max=64"`
	Action       string    `json:"action" validate:"required" example:"join"`
}

// SignalResult reports what a signal did
type SignalResult struct {
	Action    string         `json:"action"`
	GroupID   uuid.UUID      `json:"group_id"`
	PlayerID  uuid.UUID      `json:"player_id"`
	Disbanded bool           `json:"disbanded"`
	Group     *GroupResponse `json:"group,omitempty"`
}

// Handle applies one membership signal on behalf of callerHandle, the
// authenticated player. A signal naming anyone else is rejected.
func (s *SignalService) Handle(ctx context.Context, callerHandle string, signal *MembershipSignal) (*SignalResult, error) {
	if callerHandle == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	signal.PlayerHandle = strings.TrimSpace(signal.PlayerHandle)
	if signal.PlayerHandle == "" {
		signal.PlayerHandle = callerHandle
	}
	if signal.PlayerHandle != callerHandle {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"group_id":      signal.GroupID,
			"player_handle": signal.PlayerHandle,
		}).Warn("rejected signal for another player")
		return nil, apperrors.ErrActingForOtherPlayer
	}

	signal.Action = strings.ToLower(strings.TrimSpace(signal.Action))
	if err := s.validator.Struct(signal); err != nil {
		return nil, validationError(err)
	}
	if signal.GroupID == uuid.Nil {
		return nil, apperrors.NewValidationError("group_id", "is required")
	}
	if signal.Action != SignalActionJoin && signal.Action != SignalActionLeave {
		return nil, apperrors.NewValidationError("action", "must be join or leave")
	}

	player, err := s.directory.GetPlayer(ctx, signal.PlayerHandle)
	if err != nil {
		return nil, err
	}

	result := &SignalResult{Action: signal.Action, GroupID: signal.GroupID, PlayerID: player.ID}
	switch signal.Action {
	case SignalActionJoin:
		group, err := s.groups.Join(ctx, signal.GroupID, player.ID)
		if err != nil {
			return nil, err
		}
		result.Group = group
	case SignalActionLeave:
		left, err := s.groups.Leave(ctx, signal.GroupID, player.ID)
		if err != nil {
			return nil, err
		}
		result.Disbanded = left.Disbanded
		result.Group = left.Group
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id": signal.GroupID,
		"action":   signal.Action,
	}).Debug("membership signal applied")
	return result, nil
}
