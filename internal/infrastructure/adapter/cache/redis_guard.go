package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	cacheport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisGuard is a settlement guard shared by every gateway instance
type RedisGuard struct {
	client    redis.UniversalClient
	logger    coreport.Logger
	keyPrefix string
	owner     string
}

// NewRedisClient creates a client and checks the connection
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisGuard creates a guard on an existing client
func NewRedisGuard(client redis.UniversalClient, keyPrefix string, logger coreport.Logger) *RedisGuard {
	if keyPrefix == "" {
		keyPrefix = "momo:settle:"
	}
	return &RedisGuard{
		client:    client,
		logger:    logger,
		keyPrefix: keyPrefix,
		owner:     uuid.NewString(),
	}
}

func (g *RedisGuard) key(reference string) string {
	return g.keyPrefix + reference
}

// Acquire sets the reference key with SET NX
func (g *RedisGuard) Acquire(ctx context.Context, reference string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(reference), g.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis SETNX error: %w", err)
	}
	if !ok {
		g.logger.Debug("Settlement already in flight", map[string]any{"reference": reference})
	}
	return ok, nil
}

// Release deletes the reference key if this instance still holds it
func (g *RedisGuard) Release(ctx context.Context, reference string) error {
	err := releaseScript.Run(ctx, g.client, []string{g.key(reference)}, g.owner).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release error: %w", err)
	}
	return nil
}

var _ cacheport.SettlementGuard = (*RedisGuard)(nil)
