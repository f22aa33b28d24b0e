package jobs

import (
	"context"
	"sync"
	"time"

	"lfg-backend/internal/logger"
)

// runTimeout bounds a single sweep
const runTimeout = 5 * time.Minute

// Sweeper is the part of the membership engine the expiry job needs
type Sweeper interface {
	SweepExpired(ctx context.Context, maxAgeHours int) (int, error)
}

// ExpirySweeper periodically deletes groups older than maxAgeHours
type ExpirySweeper struct {
	engine      Sweeper
	maxAgeHours int
	interval    time.Duration
	stopCh      chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.Mutex
}

// NewExpirySweeper creates a new expiry sweeper job
func NewExpirySweeper(engine Sweeper, maxAgeHours int, interval time.Duration) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpirySweeper{
		engine:      engine,
		maxAgeHours: maxAgeHours,
		interval:    interval,
	}
}

// Start begins the sweep loop. Calling Start on a running sweeper is a no-op.
func (s *ExpirySweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	// Add under mu: Stop must never Wait on a counter this loop is missing from
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(stopCh)
	logger.New().WithFields(map[string]interface{}{
		"interval":      s.interval.String(),
		"max_age_hours": s.maxAgeHours,
	}).Info("Expiry sweeper started")
}

// Stop stops the loop and waits for an in-flight sweep to finish
func (s *ExpirySweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	logger.New().Info("Expiry sweeper stopped")
}

func (s *ExpirySweeper) run(stopCh <-chan struct{}) {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-stopCh:
			return
		}
	}
}

func (s *ExpirySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Expiry sweep failed")
	}
}

// RunOnce runs a single sweep and returns how many groups it deleted
func (s *ExpirySweeper) RunOnce(ctx context.Context) (int, error) {
	deleted, err := s.engine.SweepExpired(ctx, s.maxAgeHours)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.WithContext(ctx).WithField("deleted", deleted).Info("Expired groups removed")
	}
	return deleted, nil
}
