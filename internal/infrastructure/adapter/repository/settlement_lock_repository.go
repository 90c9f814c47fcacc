package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SettlementLockRepository is a settlement guard backed by the settlement_locks table.
// Used when no Redis is configured.
type SettlementLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSettlementLockRepository creates a new SettlementLockRepository instance
func NewSettlementLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SettlementLockRepository {
	return &SettlementLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Acquire inserts a lock row for the reference. An expired row is cleared
// first; a live one makes the insert fail on the primary key.
func (r *SettlementLockRepository) Acquire(ctx context.Context, reference string, ttl time.Duration) (bool, error) {
	now := r.timeProvider.Now()
	conn := r.db.WithContext(ctx)

	if err := conn.
		Where("reference = ? AND expires_at <= ?", reference, now).
		Delete(&model.SettlementLock{}).Error; err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	lock := model.SettlementLock{
		Reference: reference,
		LockedAt:  now,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := conn.Create(&lock).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Debug("Settlement already in flight", map[string]any{
				"reference": reference,
			})
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return true, nil
}

// Release deletes the lock row
func (r *SettlementLockRepository) Release(ctx context.Context, reference string) error {
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Delete(&model.SettlementLock{}).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

var _ cache.SettlementGuard = (*SettlementLockRepository)(nil)
