package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	mu       sync.Mutex
	calls    int
	ages     []int
	result   int
	err      error
	delay    time.Duration
	inFlight atomic.Int32
}

func (f *fakeSweeper) SweepExpired(_ context.Context, maxAgeHours int) (int, error) {
	f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ages = append(f.ages, maxAgeHours)
	return f.result, f.err
}

func (f *fakeSweeper) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestRunOnce(t *testing.T) {
	engine := &fakeSweeper{result: 3}
	sweeper := NewExpirySweeper(engine, 24, time.Hour)

	deleted, err := sweeper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.Equal(t, []int{24}, engine.ages)
}

func TestRunOnceError(t *testing.T) {
	engine := &fakeSweeper{err: errors.New("store down")}
	sweeper := NewExpirySweeper(engine, 24, time.Hour)

	_, err := sweeper.RunOnce(context.Background())
	assert.EqualError(t, err, "store down")
}

func TestStartRunsImmediatelyThenOnInterval(t *testing.T) {
	engine := &fakeSweeper{}
	sweeper := NewExpirySweeper(engine, 24, 10*time.Millisecond)

	sweeper.Start()
	sweeper.Start()
	assert.Eventually(t, func() bool { return engine.callCount() >= 3 }, time.Second, 5*time.Millisecond)
	sweeper.Stop()

	after := engine.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, engine.callCount())
}

func TestStopIsIdempotentAndRestartable(t *testing.T) {
	engine := &fakeSweeper{}
	sweeper := NewExpirySweeper(engine, 24, time.Hour)

	sweeper.Stop()
	sweeper.Start()
	assert.Eventually(t, func() bool { return engine.callCount() == 1 }, time.Second, 5*time.Millisecond)
	sweeper.Stop()
	sweeper.Stop()

	sweeper.Start()
	assert.Eventually(t, func() bool { return engine.callCount() == 2 }, time.Second, 5*time.Millisecond)
	sweeper.Stop()
}

func TestDefaultInterval(t *testing.T) {
	sweeper := NewExpirySweeper(&fakeSweeper{}, 24, 0)
	assert.Equal(t, time.Hour, sweeper.interval)
}

func TestStopWaitsForSweepStartedConcurrently(t *testing.T) {
	engine := &fakeSweeper{delay: time.Millisecond}

	for i := 0; i < 200; i++ {
		sweeper := NewExpirySweeper(engine, 24, time.Hour)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); sweeper.Start() }()
		go func() { defer wg.Done(); sweeper.Stop() }()
		wg.Wait()

		sweeper.Stop()
		require.Zero(t, engine.inFlight.Load(), "sweep still running after Stop returned (iteration %d)", i)
	}
}
