package service

import (
	"context"
	"fmt"
	"sort"

	"lfg-backend/internal/database/models"
	"lfg-backend/internal/repository"

	"github.com/google/uuid"
)

const noNoteText = "No additional notes."

// NoticeService renders the public notice of a group. It only reads.
type NoticeService struct {
	store      repository.GroupStore
	players    repository.PlayerRepositoryInterface
	characters repository.CharacterRepositoryInterface
	capacity   int
}

// NewNoticeService creates a new notice service
func NewNoticeService(store repository.GroupStore, players repository.PlayerRepositoryInterface, characters repository.CharacterRepositoryInterface, capacity int) *NoticeService {
	return &NoticeService{
		store:      store,
		players:    players,
		characters: characters,
		capacity:   capacity,
	}
}

// NoticeField is one member line of a notice
type NoticeField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GroupNotice is the rendered, platform-neutral notice of a group
type GroupNotice struct {
	GroupID     uuid.UUID     `json:"group_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Fields      []NoticeField `json:"fields"`
	Footer      string        `json:"footer"`
}

// Render builds the notice for a group from a fresh snapshot
func (s *NoticeService) Render(ctx context.Context, groupID uuid.UUID) (*GroupNotice, error) {
	group, err := s.store.ReadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(group.Members))
	for i, m := range group.Members {
		ids[i] = m.PlayerID
	}
	players, err := s.players.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load group players: %w", err)
	}
	characters, err := s.characters.ListByPlayers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load group characters: %w", err)
	}
	return RenderNotice(group, players, characters, s.capacity), nil
}

// RenderNotice projects a group snapshot into a notice. Each member shows
// their highest-scored character; members without characters show their tag.
func RenderNotice(group *models.Group, players []models.Player, characters []models.Character, capacity int) *GroupNotice {
	tags := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		tags[p.ID] = p.Tag
	}
	best := bestCharacters(characters)

	members := make([]models.GroupMember, len(group.Members))
	copy(members, group.Members)
	sortMembers(members, group.LeaderID)

	fields := make([]NoticeField, 0, len(members))
	for _, m := range members {
		name := "Member"
		if m.PlayerID == group.LeaderID {
			name = "Leader"
		}
		tag := tags[m.PlayerID]
		if tag == "" {
			tag = m.PlayerID.String()
		}
		value := tag
		if c, ok := best[m.PlayerID]; ok {
			value = fmt.Sprintf("%s (%s-%s)\nClass: %s, iLvl: %d, Score: %d",
				tag, c.Name, c.Realm, c.ClassName, c.ItemLevel, c.ScoreOrZero())
		}
		fields = append(fields, NoticeField{Name: name, Value: value})
	}

	description := group.Note
	if description == "" {
		description = noNoteText
	}
	return &GroupNotice{
		GroupID:     group.ID,
		Title:       fmt.Sprintf("LFG: %s +%d", group.Activity, group.Difficulty),
		Description: description,
		Fields:      fields,
		Footer:      fmt.Sprintf("Group ID: %s | Status: %s", group.ID, fillStatus(len(group.Members), capacity)),
	}
}

func fillStatus(count, capacity int) string {
	if count >= capacity {
		return "Filled"
	}
	return fmt.Sprintf("%d/%d", count, capacity)
}

// bestCharacters picks one character per player: highest score first,
// unscored characters last, then by name and realm
func bestCharacters(characters []models.Character) map[uuid.UUID]models.Character {
	sorted := make([]models.Character, len(characters))
	copy(sorted, characters)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.ReputationScore == nil) != (b.ReputationScore == nil) {
			return b.ReputationScore == nil
		}
		if a.ScoreOrZero() != b.ScoreOrZero() {
			return a.ScoreOrZero() > b.ScoreOrZero()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Realm < b.Realm
	})

	best := make(map[uuid.UUID]models.Character)
	for _, c := range sorted {
		if _, ok := best[c.PlayerID]; !ok {
			best[c.PlayerID] = c
		}
	}
	return best
}
