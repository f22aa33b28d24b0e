package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"

	"github.com/google/uuid"
)

// MemoryGroupStore keeps groups in process memory. It enforces the same
// version check and one-group-per-player rule as the Postgres store.
type MemoryGroupStore struct {
	mu       sync.RWMutex
	groups   map[uuid.UUID]*models.Group
	byPlayer map[uuid.UUID]uuid.UUID
}

// NewMemoryGroupStore creates an empty in-memory group store
func NewMemoryGroupStore() *MemoryGroupStore {
	return &MemoryGroupStore{
		groups:   make(map[uuid.UUID]*models.Group),
		byPlayer: make(map[uuid.UUID]uuid.UUID),
	}
}

// ReadGroup returns a copy of the stored group
func (s *MemoryGroupStore) ReadGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[id]
	if !ok {
		return nil, apperrors.ErrGroupNotFound
	}
	return group.Clone(), nil
}

// WriteGroup inserts or version-checks and replaces a group
func (s *MemoryGroupStore) WriteGroup(ctx context.Context, group *models.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if group.Version == 0 {
		if group.ID == uuid.Nil {
			group.ID = uuid.New()
		}
		if _, exists := s.groups[group.ID]; exists {
			return apperrors.ErrVersionConflict
		}
		if group.CreatedAt.IsZero() {
			group.CreatedAt = now
		}
	} else {
		stored, ok := s.groups[group.ID]
		if !ok {
			return apperrors.ErrGroupNotFound
		}
		if stored.Version != group.Version {
			return apperrors.ErrVersionConflict
		}
	}
	for _, m := range group.Members {
		if owner, ok := s.byPlayer[m.PlayerID]; ok && owner != group.ID {
			return apperrors.ErrAlreadyInGroup
		}
	}

	if stored, ok := s.groups[group.ID]; ok {
		for _, m := range stored.Members {
			delete(s.byPlayer, m.PlayerID)
		}
	}
	for i := range group.Members {
		group.Members[i].GroupID = group.ID
		s.byPlayer[group.Members[i].PlayerID] = group.ID
	}
	group.UpdatedAt = now
	group.Version++
	s.groups[group.ID] = group.Clone()
	return nil
}

// DeleteGroup removes a group and frees its members
func (s *MemoryGroupStore) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[id]
	if !ok {
		return apperrors.ErrGroupNotFound
	}
	for _, m := range group.Members {
		delete(s.byPlayer, m.PlayerID)
	}
	delete(s.groups, id)
	return nil
}

// ListGroupsByPlayer returns the group the player belongs to, if any
func (s *MemoryGroupStore) ListGroupsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := []models.Group{}
	if id, ok := s.byPlayer[playerID]; ok {
		groups = append(groups, *s.groups[id].Clone())
	}
	return groups, nil
}

// ListActiveGroups returns unfilled groups created at or after notBefore, newest first
func (s *MemoryGroupStore) ListActiveGroups(ctx context.Context, notBefore time.Time) ([]models.Group, error) {
	return s.filter(ctx, func(g *models.Group) bool {
		return !g.IsFilled && !g.CreatedAt.Before(notBefore)
	}, true)
}

// ListGroupsOlderThan returns groups created before cutoff, oldest first
func (s *MemoryGroupStore) ListGroupsOlderThan(ctx context.Context, cutoff time.Time) ([]models.Group, error) {
	return s.filter(ctx, func(g *models.Group) bool {
		return g.CreatedAt.Before(cutoff)
	}, false)
}

func (s *MemoryGroupStore) filter(ctx context.Context, keep func(*models.Group) bool, newestFirst bool) ([]models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	groups := []models.Group{}
	for _, g := range s.groups {
		if keep(g) {
			groups = append(groups, *g.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if newestFirst {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return models.LessID(a.ID, b.ID)
	})
	return groups, nil
}

// MemoryPlayerRepository keeps players in process memory
type MemoryPlayerRepository struct {
	mu       sync.RWMutex
	players  map[uuid.UUID]models.Player
	byHandle map[string]uuid.UUID
}

// NewMemoryPlayerRepository creates an empty in-memory player repository
func NewMemoryPlayerRepository() *MemoryPlayerRepository {
	return &MemoryPlayerRepository{
		players:  make(map[uuid.UUID]models.Player),
		byHandle: make(map[string]uuid.UUID),
	}
}

// Create creates a new player; handles are unique
func (r *MemoryPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byHandle[player.Handle]; exists {
		return apperrors.ErrPlayerExists
	}
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	now := time.Now()
	player.CreatedAt, player.UpdatedAt = now, now

	stored := *player
	stored.Characters = nil
	r.players[player.ID] = stored
	r.byHandle[player.Handle] = player.ID
	return nil
}

// GetByID retrieves a player by ID
func (r *MemoryPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[id]
	if !ok {
		return nil, apperrors.ErrPlayerNotFound
	}
	return &player, nil
}

// GetByHandle retrieves a player by platform handle
func (r *MemoryPlayerRepository) GetByHandle(ctx context.Context, handle string) (*models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHandle[handle]
	if !ok {
		return nil, apperrors.ErrPlayerNotFound
	}
	player := r.players[id]
	return &player, nil
}

// GetByIDs retrieves the players with the given IDs; unknown IDs are skipped
func (r *MemoryPlayerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := []models.Player{}
	for _, id := range ids {
		if player, ok := r.players[id]; ok {
			players = append(players, player)
		}
	}
	return players, nil
}

// UpdateTag sets the display tag of a player
func (r *MemoryPlayerRepository) UpdateTag(ctx context.Context, id uuid.UUID, tag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[id]
	if !ok {
		return apperrors.ErrPlayerNotFound
	}
	player.Tag = tag
	player.UpdatedAt = time.Now()
	r.players[id] = player
	return nil
}

// MemoryCharacterRepository keeps characters in process memory
type MemoryCharacterRepository struct {
	mu         sync.RWMutex
	characters map[uuid.UUID]models.Character
}

// NewMemoryCharacterRepository creates an empty in-memory character repository
func NewMemoryCharacterRepository() *MemoryCharacterRepository {
	return &MemoryCharacterRepository{characters: make(map[uuid.UUID]models.Character)}
}

// Create creates a new character; (player, name, realm) is unique
func (r *MemoryCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.find(character.PlayerID, character.Name, character.Realm); ok {
		return apperrors.ErrCharacterExists
	}
	if character.ID == uuid.Nil {
		character.ID = uuid.New()
	}
	now := time.Now()
	character.CreatedAt, character.UpdatedAt = now, now
	r.characters[character.ID] = cloneCharacter(*character)
	return nil
}

// Get retrieves a player's character by name and realm, ignoring case
func (r *MemoryCharacterRepository) Get(ctx context.Context, playerID uuid.UUID, name, realm string) (*models.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.find(playerID, name, realm)
	if !ok {
		return nil, apperrors.ErrCharacterNotFound
	}
	out := cloneCharacter(character)
	return &out, nil
}

// Update replaces a stored character
func (r *MemoryCharacterRepository) Update(ctx context.Context, character *models.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[character.ID]; !ok {
		return apperrors.ErrCharacterNotFound
	}
	character.UpdatedAt = time.Now()
	r.characters[character.ID] = cloneCharacter(*character)
	return nil
}

// ListByPlayer retrieves all characters of a player ordered by name
func (r *MemoryCharacterRepository) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Character, error) {
	return r.ListByPlayers(ctx, []uuid.UUID{playerID})
}

// ListByPlayers retrieves the characters of several players at once
func (r *MemoryCharacterRepository) ListByPlayers(ctx context.Context, playerIDs []uuid.UUID) ([]models.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[uuid.UUID]bool, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = true
	}

	r.mu.RLock()
	characters := []models.Character{}
	for _, c := range r.characters {
		if wanted[c.PlayerID] {
			characters = append(characters, cloneCharacter(c))
		}
	}
	r.mu.RUnlock()

	sort.Slice(characters, func(i, j int) bool {
		if characters[i].Name != characters[j].Name {
			return characters[i].Name < characters[j].Name
		}
		return characters[i].Realm < characters[j].Realm
	})
	return characters, nil
}

func (r *MemoryCharacterRepository) find(playerID uuid.UUID, name, realm string) (models.Character, bool) {
	for _, c := range r.characters {
		if c.PlayerID == playerID && strings.EqualFold(c.Name, name) && strings.EqualFold(c.Realm, realm) {
			return c, true
		}
	}
	return models.Character{}, false
}

func cloneCharacter(c models.Character) models.Character {
	if c.ReputationScore != nil {
		score := *c.ReputationScore
		c.ReputationScore = &score
	}
	return c
}
