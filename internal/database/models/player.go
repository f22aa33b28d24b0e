package models

// Player is one registered user, keyed by the opaque handle of the
// messaging platform account that first contacted the service.
type Player struct {
	BaseModel
	Handle string `json:"handle" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	Tag    string `json:"tag" gorm:"not null;size:100" validate:"required,max=100"`

	// Relationships
	Characters []Character `json:"characters,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
