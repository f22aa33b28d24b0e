package repository

import (
	"context"
	"errors"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CharacterRepository handles database operations for characters
type CharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create creates a new character
func (r *CharacterRepository) Create(ctx context.Context, character *models.Character) error {
	err := r.db.WithContext(ctx).Create(character).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrCharacterExists
	}
	return err
}

// Get retrieves a player's character by name and realm
func (r *CharacterRepository) Get(ctx context.Context, playerID uuid.UUID, name, realm string) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).
		First(&character, "player_id = ? AND LOWER(name) = LOWER(?) AND LOWER(realm) = LOWER(?)", playerID, name, realm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCharacterNotFound
		}
		return nil, err
	}
	return &character, nil
}

// Update updates a character
func (r *CharacterRepository) Update(ctx context.Context, character *models.Character) error {
	return r.db.WithContext(ctx).Save(character).Error
}

// ListByPlayer retrieves all characters of a player ordered by name
func (r *CharacterRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Character, error) {
	var characters []models.Character
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Order("name ASC, realm ASC").Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

// ListByPlayers retrieves the characters of several players at once
func (r *CharacterRepository) ListByPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.Character, error) {
	var characters []models.Character
	if len(playerIDs) == 0 {
		return characters, nil
	}
	err := r.db.WithContext(ctx).Where("player_id IN ?", playerIDs).Order("name ASC, realm ASC").Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}
