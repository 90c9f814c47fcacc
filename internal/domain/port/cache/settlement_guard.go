package cache

import (
	"context"
	"time"
)

// SettlementGuard is an in-flight lock keyed by external reference.
// It keeps a racing poll and callback from both entering settlement;
// correctness still rests on the conditional update in the store.
type SettlementGuard interface {
	// Acquire returns false when another settlement for the reference is in flight
	Acquire(ctx context.Context, reference string, ttl time.Duration) (bool, error)

	// Release frees the reference
	Release(ctx context.Context, reference string) error
}
