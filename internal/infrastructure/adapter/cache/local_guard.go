package cache

import (
	"context"
	"sync"
	"time"

	cacheport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
)

// LocalGuard is an in-process settlement guard for single-instance deployments
type LocalGuard struct {
	mu           sync.Mutex
	held         map[string]time.Time // reference -> expiry
	timeProvider coreport.TimeProvider
}

// NewLocalGuard creates an empty LocalGuard
func NewLocalGuard(timeProvider coreport.TimeProvider) *LocalGuard {
	return &LocalGuard{
		held:         make(map[string]time.Time),
		timeProvider: timeProvider,
	}
}

// Acquire takes the reference unless a live entry exists
func (g *LocalGuard) Acquire(_ context.Context, reference string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.timeProvider.Now()
	if expiry, ok := g.held[reference]; ok && now.Before(expiry) {
		return false, nil
	}
	g.held[reference] = now.Add(ttl)
	return true, nil
}

// Release frees the reference
func (g *LocalGuard) Release(_ context.Context, reference string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, reference)
	return nil
}

var _ cacheport.SettlementGuard = (*LocalGuard)(nil)
