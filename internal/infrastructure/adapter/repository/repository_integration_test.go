package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *database.TestDBManager {
	t.Helper()
	m := database.NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	m.SetupTestDB(t)
	return m
}

func pendingRecord(t *testing.T, m *database.TestDBManager, reference string, itemID, userID uint64) *entity.PaymentTransaction {
	t.Helper()
	ref, err := entity.NewPaymentReference("enrol_fee", "fee", itemID, userID)
	require.NoError(t, err)
	return entity.NewPaymentTransaction(ref, reference, "token-"+reference, m.TimeProvider)
}

func TestTransactionRepository_Lifecycle(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	repo := repository.NewTransactionRepository(m.Manager.DB(), logger.NewNoopLogger())

	txn := pendingRecord(t, m, "ref-1", 13, 4)
	require.NoError(t, repo.Create(ctx, txn))
	assert.NotZero(t, txn.ID)

	err := repo.Create(ctx, pendingRecord(t, m, "ref-1", 13, 4))
	assert.True(t, errors.Is(err, errs.ErrDuplicateReference))

	found, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "enrol_fee-fee-13-4", found.Reference().String())
	assert.Equal(t, "token-ref-1", found.ProviderToken)
	assert.True(t, found.IsIncomplete())

	incomplete, err := repo.FindIncomplete(ctx, 13, 4)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", incomplete.ExternalReference)

	now := m.TimeProvider.Now()
	require.NoError(t, repo.MarkSettled(ctx, "ref-1", 99, "363440463", now))

	err = repo.MarkSettled(ctx, "ref-1", 100, "363440463", now)
	assert.True(t, errors.Is(err, errs.ErrAlreadySettled), "a record settles at most once")

	settled, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.True(t, settled.IsCompleted())
	assert.Equal(t, uint64(99), settled.SettlementID)
	assert.Equal(t, entity.StatusSettled, settled.Status)

	_, err = repo.FindIncomplete(ctx, 13, 4)
	assert.True(t, errors.Is(err, errs.ErrTransactionNotFound))

	_, err = repo.GetByReference(ctx, "missing")
	assert.True(t, errors.Is(err, errs.ErrTransactionNotFound))
}

func TestTransactionRepository_DeleteKeepsResolvedRecords(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	repo := repository.NewTransactionRepository(m.Manager.DB(), logger.NewNoopLogger())

	require.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-settled", 1, 1)))
	require.NoError(t, repo.MarkSettled(ctx, "ref-settled", 5, "363440463", m.TimeProvider.Now()))
	require.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-flagged", 2, 1)))
	require.NoError(t, repo.MarkFlagged(ctx, "ref-flagged", "amount mismatch"))
	require.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-pending", 3, 1)))

	for _, ref := range []string{"ref-settled", "ref-flagged", "ref-pending", "missing"} {
		require.NoError(t, repo.Delete(ctx, ref))
	}

	settled, err := repo.GetByReference(ctx, "ref-settled")
	require.NoError(t, err)
	assert.True(t, settled.IsCompleted())
	_, err = repo.GetByReference(ctx, "ref-flagged")
	assert.NoError(t, err)
	_, err = repo.GetByReference(ctx, "ref-pending")
	assert.True(t, errors.Is(err, errs.ErrTransactionNotFound))
}

func TestTransactionRepository_OnePendingPerItemAndUser(t *testing.T) {
	m := setupDB(t)
	if m.Manager.DB().Dialector.Name() != "postgres" {
		t.Skip("pending uniqueness is enforced by a PostgreSQL partial index")
	}
	ctx := context.Background()
	repo := repository.NewTransactionRepository(m.Manager.DB(), logger.NewNoopLogger())

	require.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-a", 13, 4)))
	err := repo.Create(ctx, pendingRecord(t, m, "ref-b", 13, 4))
	assert.True(t, errors.Is(err, errs.ErrDuplicateReference))

	require.NoError(t, repo.MarkSettled(ctx, "ref-a", 1, "363440463", m.TimeProvider.Now()))
	assert.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-b", 13, 4)), "settled records do not block a new attempt")
}

func TestTransactionRepository_Cleanup(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	repo := repository.NewTransactionRepository(m.Manager.DB(), logger.NewNoopLogger())

	old := pendingRecord(t, m, "ref-old", 1, 1)
	old.CreatedAt = m.TimeProvider.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, old))

	flagged := pendingRecord(t, m, "ref-flagged", 2, 1)
	flagged.CreatedAt = m.TimeProvider.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, flagged))
	require.NoError(t, repo.MarkFlagged(ctx, "ref-flagged", "amount mismatch"))

	require.NoError(t, repo.Create(ctx, pendingRecord(t, m, "ref-fresh", 3, 1)))

	deleted, err := repo.DeleteAllIncomplete(ctx, m.TimeProvider.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetByReference(ctx, "ref-flagged")
	assert.NoError(t, err, "flagged records are kept for review")
	_, err = repo.GetByReference(ctx, "ref-fresh")
	assert.NoError(t, err)

	deleted, err = repo.DeleteIncomplete(ctx, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestUnitOfWork_SettlementRollsBackTogether(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	uow := m.Manager.CreateUnitOfWork()
	payments := repository.NewPaymentRepository(m.Manager.DB(), m.TimeProvider, logger.NewNoopLogger())

	require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, pendingRecord(t, m, "ref-1", 13, 4)))

	boom := errors.New("delivery failed downstream")
	err := uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := uow.GetTransactionRepository(txCtx)
		if _, err := repo.LockIncomplete(txCtx, "ref-1"); err != nil {
			return err
		}
		id, err := payments.RecordAndDeliver(txCtx, platform.DeliveryRequest{
			AccountID: 1, Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4,
			Amount: decimal.NewFromInt(66), Currency: "EUR", GatewayName: "mtnafrica",
		})
		if err != nil {
			return err
		}
		if err := repo.MarkSettled(txCtx, "ref-1", id, "1", m.TimeProvider.Now()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := payments.CountForItem(ctx, 13, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count, "the payment row rolls back with the settle write")

	txn, err := uow.GetTransactionRepository(ctx).GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.True(t, txn.IsIncomplete())
}

func TestPayableRepository(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	repo := repository.NewPayableRepository(m.Manager.DB(), logger.NewNoopLogger(), decimal.NewFromInt(10))

	require.NoError(t, repo.Upsert(ctx, "enrol_fee", "fee", 13, 1, decimal.NewFromInt(60), "eur"))

	payable, err := repo.GetExpectedAmountAndCurrency(ctx, "enrol_fee", "fee", 13)
	require.NoError(t, err)
	assert.Equal(t, "EUR", payable.Currency)
	assert.True(t, decimal.NewFromInt(66).Equal(payable.Amount), "60 EUR plus a 10 percent surcharge")

	_, err = repo.GetExpectedAmountAndCurrency(ctx, "enrol_fee", "fee", 99)
	assert.True(t, errors.Is(err, errs.ErrPayableNotFound))
}

func TestSettlementLockRepository(t *testing.T) {
	m := setupDB(t)
	ctx := context.Background()
	guard := repository.NewSettlementLockRepository(m.Manager.DB(), m.TimeProvider, logger.NewNoopLogger())

	ok, err := guard.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, guard.Release(ctx, "ref-1"))

	ok, err = guard.Acquire(ctx, "ref-1", -time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, "ref-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "an expired lock is taken over")
}
