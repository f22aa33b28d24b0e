package service

import (
	"context"
	"sync"

	apperrors "lfg-backend/internal/errors"

	"github.com/google/uuid"
)

// keyedLocks hands out one mutex per id. Slots are dropped once nobody holds
// or waits on them, so the map only grows with the number of contended ids.
type keyedLocks struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{slots: make(map[uuid.UUID]*lockSlot)}
}

// acquire blocks until the lock for id is held or ctx is done. Giving up on
// ctx returns an UnavailableError wrapping ctx.Err().
func (k *keyedLocks) acquire(ctx context.Context, id uuid.UUID) (func(), error) {
	k.mu.Lock()
	slot, ok := k.slots[id]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		k.slots[id] = slot
	}
	slot.refs++
	k.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.ch
				k.release(id, slot)
			})
		}, nil
	case <-ctx.Done():
		k.release(id, slot)
		return nil, apperrors.NewUnavailableError("membership lock", ctx.Err())
	}
}

func (k *keyedLocks) release(id uuid.UUID, slot *lockSlot) {
	k.mu.Lock()
	defer k.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(k.slots, id)
	}
}

// size reports how many ids currently have a slot
func (k *keyedLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.slots)
}
