package repository

import (
	"context"
	"time"

	"lfg-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupStore is the storage the membership engine runs on. Every read returns
// a fully loaded snapshot, members included.
type GroupStore interface {
	// ReadGroup returns apperrors.ErrGroupNotFound when the group does not exist.
	ReadGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	// WriteGroup inserts a group with Version 0 and otherwise updates it only if
	// the stored version still equals group.Version (apperrors.ErrVersionConflict
	// if not). On success group.Version holds the new version. A member already
	// in another group fails the write with apperrors.ErrAlreadyInGroup.
	WriteGroup(ctx context.Context, group *models.Group) error
	// DeleteGroup removes the group and its memberships.
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ListGroupsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Group, error)
	// ListActiveGroups returns unfilled groups created at or after notBefore, newest first.
	ListActiveGroups(ctx context.Context, notBefore time.Time) ([]models.Group, error)
	ListGroupsOlderThan(ctx context.Context, cutoff time.Time) ([]models.Group, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetByHandle(ctx context.Context, handle string) (*models.Player, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
	UpdateTag(ctx context.Context, id uuid.UUID, tag string) error
}

// CharacterRepositoryInterface defines the interface for character repository operations
type CharacterRepositoryInterface interface {
	Create(ctx context.Context, character *models.Character) error
	Get(ctx context.Context, playerID uuid.UUID, name, realm string) (*models.Character, error)
	Update(ctx context.Context, character *models.Character) error
	ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Character, error)
	ListByPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.Character, error)
}
