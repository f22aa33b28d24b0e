package repository

import (
	"context"
	"errors"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	err := r.db.WithContext(ctx).Omit("Characters").Create(player).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrPlayerExists
	}
	return err
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetByHandle retrieves a player by platform handle
func (r *PlayerRepository) GetByHandle(ctx context.Context, handle string) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "handle = ?", handle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetByIDs retrieves the players with the given IDs; unknown IDs are skipped
func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	if len(ids) == 0 {
		return players, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// UpdateTag sets the display tag of a player
func (r *PlayerRepository) UpdateTag(ctx context.Context, id uuid.UUID, tag string) error {
	res := r.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).Update("tag", tag)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPlayerNotFound
	}
	return nil
}
