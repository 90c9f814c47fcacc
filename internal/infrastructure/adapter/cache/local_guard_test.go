package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/momo-gateway/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGuard(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Second acquire fails until release", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(base).Maybe()
		guard := NewLocalGuard(tp)

		ok, err := guard.Acquire(ctx, "ref-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = guard.Acquire(ctx, "ref-1", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = guard.Acquire(ctx, "ref-2", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "other references are independent")

		require.NoError(t, guard.Release(ctx, "ref-1"))

		ok, err = guard.Acquire(ctx, "ref-1", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Expired entry can be taken over", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(base).Once()
		tp.EXPECT().Now().Return(base.Add(2 * time.Minute)).Once()
		guard := NewLocalGuard(tp)

		ok, _ := guard.Acquire(ctx, "ref-1", time.Minute)
		assert.True(t, ok)

		ok, _ = guard.Acquire(ctx, "ref-1", time.Minute)
		assert.True(t, ok)
	})

	t.Run("Only one concurrent winner", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(base).Maybe()
		guard := NewLocalGuard(tp)

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if ok, _ := guard.Acquire(ctx, "ref-race", time.Minute); ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins)
	})
}
