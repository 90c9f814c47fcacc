package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) conn(ctx context.Context) *gorm.DB {
	return DBFromContext(ctx, r.db)
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.PaymentTransaction) model.PaymentTransaction {
	return model.PaymentTransaction{
		ID:                    txn.ID,
		Component:             txn.Component,
		PaymentArea:           txn.Area,
		ItemID:                txn.ItemID,
		UserID:                txn.UserID,
		ExternalReference:     txn.ExternalReference,
		ProviderToken:         txn.ProviderToken,
		Status:                string(txn.Status),
		SettlementID:          txn.SettlementID,
		ProviderTransactionID: txn.ProviderTransactionID,
		FlagReason:            txn.FlagReason,
		CreatedAt:             txn.CreatedAt,
		CompletedAt:           txn.CompletedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.PaymentTransaction) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:                    m.ID,
		Component:             m.Component,
		Area:                  m.PaymentArea,
		ItemID:                m.ItemID,
		UserID:                m.UserID,
		ExternalReference:     m.ExternalReference,
		ProviderToken:         m.ProviderToken,
		Status:                entity.TransactionStatus(m.Status),
		SettlementID:          m.SettlementID,
		ProviderTransactionID: m.ProviderTransactionID,
		FlagReason:            m.FlagReason,
		CreatedAt:             m.CreatedAt,
		CompletedAt:           m.CompletedAt,
	}
}

// Create saves a new pending transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.PaymentTransaction) error {
	r.logger.Debug("Creating payment transaction", map[string]any{
		"reference": txn.ExternalReference,
		"item_id":   txn.ItemID,
		"user_id":   txn.UserID,
	})

	row := r.entityToModel(txn)
	result := r.conn(ctx).Create(&row)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate payment reference", map[string]any{
				"reference": txn.ExternalReference,
			})
			return errs.ErrDuplicateReference
		}

		r.logger.Error("Failed to create payment transaction", map[string]any{
			"reference": txn.ExternalReference,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = row.ID
	return nil
}

// GetByReference retrieves a transaction by its provider reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.PaymentTransaction, error) {
	var row model.PaymentTransaction
	result := r.conn(ctx).
		Where("external_reference = ?", reference).
		First(&row)

	if err := r.lookupError(result.Error, "reference", reference); err != nil {
		return nil, err
	}
	return r.modelToEntity(&row), nil
}

// FindIncomplete retrieves the pending transaction for an item and user
func (r *TransactionRepository) FindIncomplete(ctx context.Context, itemID, userID uint64) (*entity.PaymentTransaction, error) {
	var row model.PaymentTransaction
	result := r.conn(ctx).
		Where("item_id = ? AND user_id = ? AND status = ? AND completed_at IS NULL", itemID, userID, string(entity.StatusPending)).
		Order("created_at desc").
		First(&row)

	if err := r.lookupError(result.Error, "item_id", itemID); err != nil {
		return nil, err
	}
	return r.modelToEntity(&row), nil
}

// LockIncomplete selects a pending transaction FOR UPDATE
func (r *TransactionRepository) LockIncomplete(ctx context.Context, reference string) (*entity.PaymentTransaction, error) {
	var row model.PaymentTransaction
	result := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("external_reference = ? AND status = ? AND completed_at IS NULL", reference, string(entity.StatusPending)).
		First(&row)

	if err := r.lookupError(result.Error, "reference", reference); err != nil {
		return nil, err
	}
	return r.modelToEntity(&row), nil
}

// MarkSettled completes a pending transaction. The completed_at guard makes
// the update a compare-and-set, so a record settles at most once.
func (r *TransactionRepository) MarkSettled(
	ctx context.Context,
	reference string,
	settlementID uint64,
	providerTxnID string,
	at time.Time,
) error {
	result := r.conn(ctx).Model(&model.PaymentTransaction{}).
		Where("external_reference = ? AND status = ? AND completed_at IS NULL", reference, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":                  string(entity.StatusSettled),
			"settlement_id":           settlementID,
			"provider_transaction_id": providerTxnID,
			"completed_at":            at,
		})

	if result.Error != nil {
		r.logger.Error("Failed to settle payment transaction", map[string]any{
			"reference": reference,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrAlreadySettled
	}

	r.logger.Info("Payment transaction settled", map[string]any{
		"reference":     reference,
		"settlement_id": settlementID,
	})
	return nil
}

// MarkFlagged moves a pending transaction to the fraud-flagged state
func (r *TransactionRepository) MarkFlagged(ctx context.Context, reference string, reason string) error {
	result := r.conn(ctx).Model(&model.PaymentTransaction{}).
		Where("external_reference = ? AND status = ? AND completed_at IS NULL", reference, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":      string(entity.StatusFraudFlagged),
			"flag_reason": reason,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Warn("Payment transaction flagged", map[string]any{
		"reference": reference,
		"reason":    reason,
	})
	return nil
}

// Delete removes a pending transaction by reference; settled and flagged
// records are left untouched
func (r *TransactionRepository) Delete(ctx context.Context, reference string) error {
	result := r.conn(ctx).
		Where("external_reference = ? AND status = ? AND completed_at IS NULL", reference, string(entity.StatusPending)).
		Delete(&model.PaymentTransaction{})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// DeleteIncomplete removes the pending transactions of an item and user
func (r *TransactionRepository) DeleteIncomplete(ctx context.Context, itemID, userID uint64) (int64, error) {
	result := r.conn(ctx).
		Where("item_id = ? AND user_id = ? AND status = ? AND completed_at IS NULL", itemID, userID, string(entity.StatusPending)).
		Delete(&model.PaymentTransaction{})

	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return result.RowsAffected, nil
}

// DeleteAllIncomplete removes pending transactions created before the cutoff
func (r *TransactionRepository) DeleteAllIncomplete(ctx context.Context, createdBefore time.Time) (int64, error) {
	result := r.conn(ctx).
		Where("status = ? AND completed_at IS NULL AND created_at < ?", string(entity.StatusPending), createdBefore).
		Delete(&model.PaymentTransaction{})

	if result.Error != nil {
		r.logger.Error("Failed to delete incomplete payment transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Deleted incomplete payment transactions", map[string]any{
			"count":          result.RowsAffected,
			"created_before": createdBefore,
		})
	}
	return result.RowsAffected, nil
}

// lookupError maps a single-row lookup error to a domain error
func (r *TransactionRepository) lookupError(err error, key string, value any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}
	r.logger.Error("Failed to get payment transaction", map[string]any{
		key:     value,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
