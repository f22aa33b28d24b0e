package testutils

import (
	"time"

	"lfg-backend/internal/database/models"

	"github.com/google/uuid"
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	id := uuid.New()
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique handle derived from the id to avoid conflicts
		Handle: "h-" + id.String()[:12],
		Tag:    "player#" + id.String()[:4],
	}
}

// WithHandle sets a custom handle for the player
func (f *PlayerFactory) WithHandle(handle string) *models.Player {
	player := f.Create()
	player.Handle = handle
	return player
}

// CharacterFactory provides methods to create test Character data
type CharacterFactory struct{}

// NewCharacterFactory creates a new CharacterFactory
func NewCharacterFactory() *CharacterFactory {
	return &CharacterFactory{}
}

// Create creates a test Character with default values
func (f *CharacterFactory) Create() *models.Character {
	score := 2500
	return &models.Character{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PlayerID:        uuid.New(),
		Name:            "Thrall",
		Realm:           "Draenor",
		ClassName:       "Shaman",
		ItemLevel:       620,
		ReputationScore: &score,
	}
}

// WithPlayer sets the owning player
func (f *CharacterFactory) WithPlayer(playerID uuid.UUID) *models.Character {
	character := f.Create()
	character.PlayerID = playerID
	return character
}

// WithName sets a custom name and realm for the character
func (f *CharacterFactory) WithName(playerID uuid.UUID, name, realm string) *models.Character {
	character := f.WithPlayer(playerID)
	character.Name = name
	character.Realm = realm
	return character
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct {
	Capacity int
}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{Capacity: 5}
}

// Create creates an unsaved single-member Group led by leaderID
func (f *GroupFactory) Create(leaderID uuid.UUID) *models.Group {
	now := time.Now()
	group := &models.Group{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Activity:   "The Stonevault",
		Difficulty: 12,
		Note:       "timing it",
		LeaderID:   leaderID,
	}
	group.AddMember(leaderID, now, f.Capacity)
	return group
}

// WithMembers creates an unsaved Group led by the first player and holding all of them
func (f *GroupFactory) WithMembers(players ...uuid.UUID) *models.Group {
	group := f.Create(players[0])
	for _, p := range players[1:] {
		group.AddMember(p, time.Now(), f.Capacity)
	}
	return group
}

// CreatedAt creates a single-member Group with a fixed creation time
func (f *GroupFactory) CreatedAt(leaderID uuid.UUID, at time.Time) *models.Group {
	group := f.Create(leaderID)
	group.CreatedAt = at
	group.UpdatedAt = at
	for i := range group.Members {
		group.Members[i].JoinedAt = at
	}
	return group
}

// FactorySet provides access to all factories
type FactorySet struct {
	Player    *PlayerFactory
	Character *CharacterFactory
	Group     *GroupFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Player:    NewPlayerFactory(),
		Character: NewCharacterFactory(),
		Group:     NewGroupFactory(),
	}
}
