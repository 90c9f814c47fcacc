package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when MOMO_TEST_REDIS_ADDR is set
func TestRedisGuard(t *testing.T) {
	addr := os.Getenv("MOMO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MOMO_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	prefix := "momo:test:" + uuid.NewString() + ":"
	first := NewRedisGuard(client, prefix, logger.NewNoopLogger())
	second := NewRedisGuard(client, prefix, logger.NewNoopLogger())

	ok, err := first.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "another instance holds the reference")

	require.NoError(t, second.Release(ctx, "ref-1"))
	ok, err = second.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "release by a non-holder leaves the key in place")

	require.NoError(t, first.Release(ctx, "ref-1"))
	ok, err = second.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, second.Release(ctx, "ref-1"))
}
