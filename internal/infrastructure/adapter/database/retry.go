package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/cenkalti/backoff/v4"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Randomization factor applied to each interval (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// newBackOff builds an exponential backoff bounded by MaxRetries and ctx
func (c RetryConfig) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.RetryInterval
	b.MaxInterval = c.MaxInterval
	b.RandomizationFactor = c.JitterFactor
	b.MaxElapsedTime = 0

	var bo backoff.BackOff = b
	if c.MaxRetries > 0 {
		bo = backoff.WithMaxRetries(bo, uint64(c.MaxRetries-1))
	}
	return backoff.WithContext(bo, ctx)
}

// RetryOnTransientError retries an operation when a transient error occurs.
// Other errors are returned at once.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	attempt := 0
	err := backoff.RetryNotify(
		func() error {
			attempt++
			err := operation()
			if err != nil && !isTransientError(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		config.newBackOff(ctx),
		func(err error, wait time.Duration) {
			logger.Warn("Transient database error, retrying operation", map[string]any{
				"attempt":     attempt,
				"max_retries": config.MaxRetries,
				"error":       err.Error(),
				"retry_after": wait.String(),
			})
		},
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	if err != nil && isTransientError(err) {
		logger.Error("All retry attempts failed", map[string]any{
			"attempts":    attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
		})
	}
	return err
}

// isTransientError checks if an error is transient and can be retried
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "lock wait timeout") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "bad connection")
}
