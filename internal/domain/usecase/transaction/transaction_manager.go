package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
)

// TransactionManager owns every write to the transaction store
type TransactionManager struct {
	uow          persistence.UnitOfWork
	delivery     platform.SettlementDelivery
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	gatewayName  string
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(
	uow persistence.UnitOfWork,
	delivery platform.SettlementDelivery,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	gatewayName string,
) *TransactionManager {
	if uow == nil || delivery == nil {
		panic("transaction manager needs a unit of work and a settlement delivery")
	}

	return &TransactionManager{
		uow:          uow,
		delivery:     delivery,
		timeProvider: timeProvider,
		logger:       logger,
		gatewayName:  gatewayName,
	}
}

// repository returns the store bound to ctx, joining a running transaction if any
func (m *TransactionManager) repository(ctx context.Context) persistence.TransactionRepository {
	return m.uow.GetTransactionRepository(ctx)
}

// ReplaceIncomplete deletes the pending attempts of the item and user and
// records txn in the same database transaction, so the pair never holds
// two incomplete records.
func (m *TransactionManager) ReplaceIncomplete(ctx context.Context, txn *entity.PaymentTransaction) error {
	return m.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := m.repository(txCtx)

		deleted, err := repo.DeleteIncomplete(txCtx, txn.ItemID, txn.UserID)
		if err != nil {
			return fmt.Errorf("failed to delete prior attempts: %w", err)
		}
		if deleted > 0 {
			m.logger.Debug("Replaced incomplete payment attempts", map[string]any{
				"item_id": txn.ItemID,
				"user_id": txn.UserID,
				"count":   deleted,
			})
		}

		if err := repo.Create(txCtx, txn); err != nil {
			return fmt.Errorf("failed to record payment attempt: %w", err)
		}
		return nil
	})
}

// Settle delivers the order and completes the record exactly once. The record is
// row-locked first; a record that is no longer incomplete yields ErrAlreadySettled.
func (m *TransactionManager) Settle(
	ctx context.Context,
	reference string,
	payable *platform.Payable,
	providerTxnID string,
) (uint64, error) {
	var settlementID uint64

	err := m.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := m.repository(txCtx)

		txn, err := repo.LockIncomplete(txCtx, reference)
		if err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				return errs.ErrAlreadySettled
			}
			return err
		}

		id, err := m.delivery.RecordAndDeliver(txCtx, platform.DeliveryRequest{
			AccountID:   payable.AccountID,
			Component:   txn.Component,
			Area:        txn.Area,
			ItemID:      txn.ItemID,
			UserID:      txn.UserID,
			Amount:      payable.Amount,
			Currency:    payable.Currency,
			GatewayName: m.gatewayName,
		})
		if err != nil {
			return fmt.Errorf("failed to deliver order: %w", err)
		}

		if err := repo.MarkSettled(txCtx, reference, id, providerTxnID, m.timeProvider.Now()); err != nil {
			return err
		}

		settlementID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	m.logger.Info("Payment settled", map[string]any{
		"reference":     reference,
		"settlement_id": settlementID,
	})
	return settlementID, nil
}

// Flag retains the record for review and takes it out of the settle path
func (m *TransactionManager) Flag(ctx context.Context, reference string, reason string) error {
	err := m.repository(ctx).MarkFlagged(ctx, reference, reason)
	if errors.Is(err, errs.ErrTransactionNotFound) {
		return nil
	}
	return err
}

// Discard deletes a record the provider reported as failed
func (m *TransactionManager) Discard(ctx context.Context, reference string) error {
	if err := m.repository(ctx).Delete(ctx, reference); err != nil {
		return fmt.Errorf("failed to delete failed attempt: %w", err)
	}
	m.logger.Info("Failed payment attempt deleted", map[string]any{
		"reference": reference,
	})
	return nil
}

// Sweep deletes pending records created before now minus retention
func (m *TransactionManager) Sweep(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := m.timeProvider.Now().Add(-retention)
	return m.repository(ctx).DeleteAllIncomplete(ctx, cutoff)
}
