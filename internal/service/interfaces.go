package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for the membership engine
type GroupServiceInterface interface {
	Create(ctx context.Context, playerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	Join(ctx context.Context, groupID, playerID uuid.UUID) (*GroupResponse, error)
	Leave(ctx context.Context, groupID, playerID uuid.UUID) (*LeaveResponse, error)
	LeaveCurrent(ctx context.Context, playerID uuid.UUID) (*LeaveResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error)
	GetActiveGroups(ctx context.Context) ([]GroupResponse, error)
	GetGroupsForPlayer(ctx context.Context, playerID uuid.UUID) ([]GroupResponse, error)
	SweepExpired(ctx context.Context, maxAgeHours int) (int, error)
}

// DirectoryServiceInterface defines the interface for player and character lookups
type DirectoryServiceInterface interface {
	Resolve(ctx context.Context, handle string, req *ResolvePlayerRequest) (*PlayerResponse, error)
	GetPlayer(ctx context.Context, handle string) (*PlayerResponse, error)
	LinkCharacter(ctx context.Context, playerID uuid.UUID, req *CharacterRequest) (*CharacterResponse, error)
	UpdateCharacter(ctx context.Context, playerID uuid.UUID, req *CharacterRequest) (*CharacterResponse, error)
	ListCharacters(ctx context.Context, playerID uuid.UUID) ([]CharacterResponse, error)
}

// NoticeServiceInterface defines the interface for rendering group notices
type NoticeServiceInterface interface {
	Render(ctx context.Context, groupID uuid.UUID) (*GroupNotice, error)
}

// SignalServiceInterface defines the interface for inbound membership signals
type SignalServiceInterface interface {
	Handle(ctx context.Context, callerHandle string, signal *MembershipSignal) (*SignalResult, error)
}

// ReputationClient fetches a character's reputation score
type ReputationClient interface {
	GetScore(ctx context.Context, name, realm string) (int, error)
}

// ScoreCache stores recently fetched reputation scores
type ScoreCache interface {
	Get(ctx context.Context, key string) (score int, found bool, err error)
	Set(ctx context.Context, key string, score int, ttl time.Duration) error
}
