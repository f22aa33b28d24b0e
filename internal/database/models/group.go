package models

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Group is a capacity-bounded set of players formed around one activity.
// Members and LeaderID are always loaded together with the row; the
// membership engine is the only writer.
type Group struct {
	BaseModel
	Activity   string    `json:"activity" gorm:"not null;size:100"`
	Difficulty int       `json:"difficulty" gorm:"not null"`
	Note       string    `json:"note" gorm:"size:200"`
	IsFilled   bool      `json:"is_filled" gorm:"not null;default:false;index"`
	LeaderID   uuid.UUID `json:"leader_id" gorm:"type:uuid;not null"`
	Version    int64     `json:"version" gorm:"not null;default:0"`

	// Relationships
	Members []GroupMember `json:"members" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

// GroupMember is one membership row. PlayerID is unique across all groups,
// which keeps a player in at most one group even across processes.
type GroupMember struct {
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey"`
	PlayerID uuid.UUID `json:"player_id" gorm:"type:uuid;primaryKey;uniqueIndex:idx_group_members_player"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}

// HasMember reports whether playerID is in the group
func (g *Group) HasMember(playerID uuid.UUID) bool {
	for _, m := range g.Members {
		if m.PlayerID == playerID {
			return true
		}
	}
	return false
}

// MemberIDs returns the member ids in ascending byte order
func (g *Group) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.PlayerID
	}
	sort.Slice(ids, func(i, j int) bool { return LessID(ids[i], ids[j]) })
	return ids
}

// AddMember appends playerID and refreshes IsFilled against capacity
func (g *Group) AddMember(playerID uuid.UUID, at time.Time, capacity int) {
	g.Members = append(g.Members, GroupMember{GroupID: g.ID, PlayerID: playerID, JoinedAt: at})
	g.IsFilled = len(g.Members) >= capacity
}

// RemoveMember drops playerID, refreshes IsFilled and hands the lead to the
// lowest remaining id when the leader left. It reports whether playerID was a member.
func (g *Group) RemoveMember(playerID uuid.UUID, capacity int) bool {
	idx := -1
	for i, m := range g.Members {
		if m.PlayerID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	g.Members = append(g.Members[:idx], g.Members[idx+1:]...)
	g.IsFilled = len(g.Members) >= capacity
	if g.LeaderID == playerID && len(g.Members) > 0 {
		g.LeaderID = g.MemberIDs()[0]
	}
	return true
}

// Clone returns a deep copy, so callers never share member slices
func (g *Group) Clone() *Group {
	out := *g
	out.Members = make([]GroupMember, len(g.Members))
	copy(out.Members, g.Members)
	return &out
}

// LessID orders ids by their bytes; this is the leader tie-break order.
func LessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
