package scheduler

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
)

// Sweeper deletes abandoned payment attempts
type Sweeper interface {
	SweepIncomplete(ctx context.Context) (int64, error)
}

// CleanupScheduler periodically removes incomplete transactions older than
// the retention window
type CleanupScheduler struct {
	sweeper  Sweeper
	interval time.Duration
	timeout  time.Duration
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCleanupScheduler creates a scheduler sweeping every interval
func NewCleanupScheduler(sweeper Sweeper, interval time.Duration, logger coreport.Logger) *CleanupScheduler {
	return &CleanupScheduler{
		sweeper:  sweeper,
		interval: interval,
		timeout:  time.Minute,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start runs one sweep immediately, then one per interval until Stop
func (s *CleanupScheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				return
			}
		}
	}()

	s.logger.Info("Cleanup scheduler started", map[string]any{
		"interval": s.interval.String(),
	})
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *CleanupScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

func (s *CleanupScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	deleted, err := s.sweeper.SweepIncomplete(ctx)
	if err != nil {
		// already logged by the sweeper
		return
	}
	if deleted > 0 {
		s.logger.Info("Swept incomplete transactions", map[string]any{
			"deleted": deleted,
		})
	}
}
