package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/logger"
	"lfg-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// scoreRefresher is implemented by reputation clients that can bypass their cache
type scoreRefresher interface {
	RefreshScore(ctx context.Context, name, realm string) (int, error)
}

// DirectoryService maps caller handles to players and manages their characters
type DirectoryService struct {
	players    repository.PlayerRepositoryInterface
	characters repository.CharacterRepositoryInterface
	reputation ReputationClient
	validator  *validator.Validate
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(players repository.PlayerRepositoryInterface, characters repository.CharacterRepositoryInterface, reputation ReputationClient, validator *validator.Validate) *DirectoryService {
	return &DirectoryService{
		players:    players,
		characters: characters,
		reputation: reputation,
		validator:  validator,
	}
}

// ResolvePlayerRequest represents the request to register or refresh the caller
type ResolvePlayerRequest struct {
	Tag string `json:"tag" validate:"required,max=100" example:"Thrall#1234"`
}

// CharacterRequest represents the request to link or update a character
type CharacterRequest struct {
	Name      string `json:"name" validate:"required,max=64" example:"Thrall"`
	Realm     string `json:"realm" validate:"required,max=64" example:"Draenor"`
	ClassName string `json:"class_name" validate:"required,max=32" example:"Shaman"`
	ItemLevel int    `json:"item_level" validate:"min=0,max=1000" example:"620"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	Handle    string    `json:"handle"`
	Tag       string    `json:"tag"`
	CreatedAt string    `json:"created_at"`
}

// CharacterResponse represents the response for character operations
type CharacterResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Realm           string    `json:"realm"`
	ClassName       string    `json:"class_name"`
	ItemLevel       int       `json:"item_level"`
	ReputationScore *int      `json:"reputation_score,omitempty"`
	UpdatedAt       string    `json:"updated_at"`
}

// Resolve returns the player registered for handle, creating it on first
// contact. A changed tag is saved.
func (s *DirectoryService) Resolve(ctx context.Context, handle string, req *ResolvePlayerRequest) (*PlayerResponse, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, apperrors.NewValidationError("handle", "is required")
	}
	req.Tag = strings.TrimSpace(req.Tag)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	player, err := s.players.GetByHandle(ctx, handle)
	if err == nil {
		if player.Tag != req.Tag {
			if err := s.players.UpdateTag(ctx, player.ID, req.Tag); err != nil {
				return nil, fmt.Errorf("failed to update player tag: %w", err)
			}
			player.Tag = req.Tag
		}
		return toPlayerResponse(player), nil
	}
	if !errors.Is(err, apperrors.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}

	player = &models.Player{Handle: handle, Tag: req.Tag}
	if err := s.players.Create(ctx, player); err != nil {
		if !errors.Is(err, apperrors.ErrPlayerExists) {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		// Lost a first-contact race; the other request created the row
		player, err = s.players.GetByHandle(ctx, handle)
		if err != nil {
			return nil, fmt.Errorf("failed to look up player: %w", err)
		}
	} else {
		logger.WithContext(ctx).WithField("player_id", player.ID).Info("player registered")
	}
	return toPlayerResponse(player), nil
}

// GetPlayer returns the player registered for handle
func (s *DirectoryService) GetPlayer(ctx context.Context, handle string) (*PlayerResponse, error) {
	player, err := s.players.GetByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return nil, err
	}
	return toPlayerResponse(player), nil
}

// LinkCharacter links a new character to a player. The score is fetched
// before anything is written; when it cannot be fetched nothing is stored.
func (s *DirectoryService) LinkCharacter(ctx context.Context, playerID uuid.UUID, req *CharacterRequest) (*CharacterResponse, error) {
	normalizeCharacterRequest(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	_, err := s.characters.Get(ctx, playerID, req.Name, req.Realm)
	if err == nil {
		return nil, apperrors.ErrCharacterExists
	}
	if !errors.Is(err, apperrors.ErrCharacterNotFound) {
		return nil, fmt.Errorf("failed to check existing character: %w", err)
	}

	score, err := s.reputation.GetScore(ctx, req.Name, req.Realm)
	if err != nil {
		return nil, err
	}

	character := &models.Character{
		PlayerID:        playerID,
		Name:            req.Name,
		Realm:           req.Realm,
		ClassName:       req.ClassName,
		ItemLevel:       req.ItemLevel,
		ReputationScore: &score,
	}
	if err := s.characters.Create(context.WithoutCancel(ctx), character); err != nil {
		if errors.Is(err, apperrors.ErrCharacterExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"player_id": playerID,
		"character": req.Name + "-" + req.Realm,
		"score":     score,
	}).Info("character linked")
	return toCharacterResponse(character), nil
}

// UpdateCharacter refreshes class, item level and score of a linked character
func (s *DirectoryService) UpdateCharacter(ctx context.Context, playerID uuid.UUID, req *CharacterRequest) (*CharacterResponse, error) {
	normalizeCharacterRequest(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	character, err := s.characters.Get(ctx, playerID, req.Name, req.Realm)
	if err != nil {
		return nil, err
	}

	var score int
	if refresher, ok := s.reputation.(scoreRefresher); ok {
		score, err = refresher.RefreshScore(ctx, character.Name, character.Realm)
	} else {
		score, err = s.reputation.GetScore(ctx, character.Name, character.Realm)
	}
	if err != nil {
		return nil, err
	}

	character.ClassName = req.ClassName
	character.ItemLevel = req.ItemLevel
	character.ReputationScore = &score
	if err := s.characters.Update(context.WithoutCancel(ctx), character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return toCharacterResponse(character), nil
}

// ListCharacters lists the characters linked to a player
func (s *DirectoryService) ListCharacters(ctx context.Context, playerID uuid.UUID) ([]CharacterResponse, error) {
	characters, err := s.characters.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	out := make([]CharacterResponse, 0, len(characters))
	for i := range characters {
		out = append(out, *toCharacterResponse(&characters[i]))
	}
	return out, nil
}

func normalizeCharacterRequest(req *CharacterRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Realm = strings.TrimSpace(req.Realm)
	req.ClassName = strings.TrimSpace(req.ClassName)
}

func toPlayerResponse(p *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:        p.ID,
		Handle:    p.Handle,
		Tag:       p.Tag,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toCharacterResponse(c *models.Character) *CharacterResponse {
	return &CharacterResponse{
		ID:              c.ID,
		Name:            c.Name,
		Realm:           c.Realm,
		ClassName:       c.ClassName,
		ItemLevel:       c.ItemLevel,
		ReputationScore: c.ReputationScore,
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}
