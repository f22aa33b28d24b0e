package service

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLocks_SerializesSameKey(t *testing.T) {
	locks := newKeyedLocks()
	id := uuid.New()

	var mu sync.Mutex
	inside, maxInside := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locks.acquire(context.Background(), id)
			require.NoError(t, err)
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
	assert.Zero(t, locks.size())
}

func TestKeyedLocks_IndependentKeys(t *testing.T) {
	locks := newKeyedLocks()

	unlockA, err := locks.acquire(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := locks.acquire(ctx, uuid.New())
	require.NoError(t, err)
	unlockB()
	assert.Equal(t, 1, locks.size())
}

func TestKeyedLocks_ContextCancelledWhileWaiting(t *testing.T) {
	locks := newKeyedLocks()
	id := uuid.New()

	unlock, err := locks.acquire(context.Background(), id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locks.acquire(ctx, id)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, apperrors.IsUnavailable(err))

	unlock()
	// double unlock is a no-op
	unlock()
	assert.Zero(t, locks.size())

	unlock, err = locks.acquire(context.Background(), id)
	require.NoError(t, err)
	unlock()
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "difficulty", snakeCase("Difficulty"))
	assert.Equal(t, "item_level", snakeCase("ItemLevel"))
	assert.Equal(t, "group_id", snakeCase("GroupID"))
	assert.Equal(t, "player_handle", snakeCase("PlayerHandle"))
}

func TestGroupService_LockWaitCancelledIsUnavailable(t *testing.T) {
	svc, err := NewGroupService(repository.NewMemoryGroupStore(), EngineConfig{
		MaxGroupSize:  5,
		MinDifficulty: 2,
		MaxDifficulty: 30,
		ExpiryHorizon: 24 * time.Hour,
	}, validator.New())
	require.NoError(t, err)

	leader := uuid.New()
	group, err := svc.Create(context.Background(), leader, &CreateGroupRequest{Activity: "Grim Batol", Difficulty: 10})
	require.NoError(t, err)

	// hold the group lock so Join has to wait for it
	unlock, err := svc.groupLocks.acquire(context.Background(), group.ID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Join(ctx, group.ID, uuid.New())

	assert.True(t, apperrors.IsUnavailable(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.IsMembership(err))
}
