package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository is the Postgres GroupStore
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// ReadGroup retrieves a group with its members
func (r *GroupRepository) ReadGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Preload("Members").First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// WriteGroup inserts or version-checks and updates a group together with its member rows
func (r *GroupRepository) WriteGroup(ctx context.Context, group *models.Group) error {
	next := group.Version + 1
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if group.Version == 0 {
			return r.insert(tx, group, next)
		}
		return r.update(tx, group, next)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyInGroup
		}
		return err
	}
	group.Version = next
	return nil
}

func (r *GroupRepository) insert(tx *gorm.DB, group *models.Group, version int64) error {
	row := *group
	row.Version = version
	row.Members = nil
	if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
		return err
	}
	group.ID = row.ID
	group.CreatedAt = row.CreatedAt
	group.UpdatedAt = row.UpdatedAt

	for i := range group.Members {
		group.Members[i].GroupID = group.ID
	}
	if len(group.Members) == 0 {
		return nil
	}
	return tx.Create(&group.Members).Error
}

func (r *GroupRepository) update(tx *gorm.DB, group *models.Group, version int64) error {
	now := time.Now()
	res := tx.Model(&models.Group{}).
		Where("id = ? AND version = ?", group.ID, group.Version).
		Updates(map[string]interface{}{
			"activity":   group.Activity,
			"difficulty": group.Difficulty,
			"note":       group.Note,
			"is_filled":  group.IsFilled,
			"leader_id":  group.LeaderID,
			"version":    version,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Group{}).Where("id = ?", group.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrGroupNotFound
		}
		return apperrors.ErrVersionConflict
	}
	group.UpdatedAt = now

	var existing []models.GroupMember
	if err := tx.Where("group_id = ?", group.ID).Find(&existing).Error; err != nil {
		return err
	}
	keep := make(map[uuid.UUID]bool, len(group.Members))
	for _, m := range group.Members {
		keep[m.PlayerID] = true
	}
	present := make(map[uuid.UUID]bool, len(existing))
	var removed []uuid.UUID
	for _, m := range existing {
		present[m.PlayerID] = true
		if !keep[m.PlayerID] {
			removed = append(removed, m.PlayerID)
		}
	}
	if len(removed) > 0 {
		if err := tx.Where("group_id = ? AND player_id IN ?", group.ID, removed).
			Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
	}

	var added []models.GroupMember
	for _, m := range group.Members {
		if !present[m.PlayerID] {
			m.GroupID = group.ID
			added = append(added, m)
		}
	}
	if len(added) > 0 {
		if err := tx.Create(&added).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteGroup deletes a group and its member rows
func (r *GroupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete group members: %w", err)
		}
		res := tx.Delete(&models.Group{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrGroupNotFound
		}
		return nil
	})
}

// ListGroupsByPlayer retrieves every group the player is a member of
func (r *GroupRepository) ListGroupsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("id IN (?)", r.db.Model(&models.GroupMember{}).Select("group_id").Where("player_id = ?", playerID)).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ListActiveGroups retrieves unfilled groups created at or after notBefore, newest first
func (r *GroupRepository) ListActiveGroups(ctx context.Context, notBefore time.Time) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("is_filled = ? AND created_at >= ?", false, notBefore).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ListGroupsOlderThan retrieves groups created before cutoff, oldest first
func (r *GroupRepository) ListGroupsOlderThan(ctx context.Context, cutoff time.Time) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
