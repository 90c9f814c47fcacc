package transaction

import (
	"context"
	"time"

	cacheport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
)

// IdempotencyHandler keeps a racing poll and callback from entering settlement
// for the same reference at the same time. The conditional settle write in the
// store still decides the outcome when the guard is unavailable.
type IdempotencyHandler struct {
	guard  cacheport.SettlementGuard
	ttl    time.Duration
	logger coreport.Logger
}

// NewIdempotencyHandler creates a new IdempotencyHandler. A nil guard disables in-flight locking.
func NewIdempotencyHandler(guard cacheport.SettlementGuard, ttl time.Duration, logger coreport.Logger) *IdempotencyHandler {
	return &IdempotencyHandler{
		guard:  guard,
		ttl:    ttl,
		logger: logger,
	}
}

// RunExclusive runs fn while holding the in-flight lock of reference.
// It returns false without running fn when another settlement holds the lock.
func (h *IdempotencyHandler) RunExclusive(ctx context.Context, reference string, fn func() error) (bool, error) {
	if h.guard == nil {
		return true, fn()
	}

	acquired, err := h.guard.Acquire(ctx, reference, h.ttl)
	if err != nil {
		// Fall through to the store's conditional update
		h.logger.Warn("Settlement guard unavailable", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
		return true, fn()
	}
	if !acquired {
		h.logger.Info("Settlement already in flight", map[string]any{
			"reference": reference,
		})
		return false, nil
	}

	defer func() {
		if err := h.guard.Release(ctx, reference); err != nil {
			h.logger.Warn("Failed to release settlement guard", map[string]any{
				"reference": reference,
				"error":     err.Error(),
			})
		}
	}()

	return true, fn()
}
