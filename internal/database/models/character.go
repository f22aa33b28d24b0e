package models

import (
	"github.com/google/uuid"
)

// Character is an in-game persona owned by one player.
// (player_id, name, realm) is unique.
type Character struct {
	BaseModel
	PlayerID        uuid.UUID `json:"player_id" gorm:"type:uuid;not null;uniqueIndex:idx_player_character,priority:1" validate:"required"`
	Name            string    `json:"name" gorm:"not null;size:64;uniqueIndex:idx_player_character,priority:2" validate:"required,max=64"`
	Realm           string    `json:"realm" gorm:"not null;size:64;uniqueIndex:idx_player_character,priority:3" validate:"required,max=64"`
	ClassName       string    `json:"class_name" gorm:"not null;size:32" validate:"required,max=32"`
	ItemLevel       int       `json:"item_level" gorm:"not null" validate:"min=0,max=1000"`
	ReputationScore *int      `json:"reputation_score,omitempty"`
}

// TableName returns the table name for Character
func (Character) TableName() string {
	return "characters"
}

// ScoreOrZero returns the reputation score, treating an unfetched score as 0
func (c *Character) ScoreOrZero() int {
	if c.ReputationScore == nil {
		return 0
	}
	return *c.ReputationScore
}
