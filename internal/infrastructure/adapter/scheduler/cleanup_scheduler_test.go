package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/momo-gateway/mocks/port/usecase"
)

func TestCleanupScheduler(t *testing.T) {
	t.Run("Sweeps on start and on every tick", func(t *testing.T) {
		var calls atomic.Int32
		service := musecase.NewMockTransactionUseCase(t)
		service.EXPECT().SweepIncomplete(mock.Anything).RunAndReturn(func(_ context.Context) (int64, error) {
			calls.Add(1)
			return 1, nil
		})

		s := NewCleanupScheduler(service, 10*time.Millisecond, logger.NewNoopLogger())
		s.Start()
		assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
		s.Stop()

		after := calls.Load()
		time.Sleep(30 * time.Millisecond)
		assert.Equal(t, after, calls.Load(), "no sweeps after Stop")
	})

	t.Run("Sweep errors do not stop the scheduler", func(t *testing.T) {
		var calls atomic.Int32
		service := musecase.NewMockTransactionUseCase(t)
		service.EXPECT().SweepIncomplete(mock.Anything).RunAndReturn(func(_ context.Context) (int64, error) {
			calls.Add(1)
			return 0, assert.AnError
		})

		s := NewCleanupScheduler(service, 10*time.Millisecond, logger.NewNoopLogger())
		s.Start()
		assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
		s.Stop()
		s.Stop()
	})
}
