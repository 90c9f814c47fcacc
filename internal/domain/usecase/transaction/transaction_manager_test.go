package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	mpers "github.com/amirhossein-jamali/momo-gateway/mocks/port/persistence"
	mplatform "github.com/amirhossein-jamali/momo-gateway/mocks/port/platform"
)

// contextKey marks the transactional context handed to repository calls
type contextKey string

const txKey contextKey = "tx"

func newMockUnitOfWork(t *testing.T, repo *mpers.MockTransactionRepository) *mpers.MockUnitOfWork {
	uow := mpers.NewMockUnitOfWork(t)
	uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(context.WithValue(ctx, txKey, "tx"))
		}).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(repo).Maybe()
	return uow
}

func inTx(ctx context.Context) bool {
	return ctx.Value(txKey) != nil
}

func TestNewTransactionManager(t *testing.T) {
	assert.Panics(t, func() {
		NewTransactionManager(nil, nil, newTimeProvider(t), newLogger(t), "mtnafrica")
	})
}

func TestTransactionManager_ReplaceIncomplete(t *testing.T) {
	ctx := context.Background()
	txn := &entity.PaymentTransaction{ExternalReference: "ref-2", ItemID: 13, UserID: 4, Status: entity.StatusPending}

	t.Run("Deletes the prior attempt before inserting", func(t *testing.T) {
		repo := mpers.NewMockTransactionRepository(t)
		var order []string
		repo.EXPECT().DeleteIncomplete(mock.MatchedBy(inTx), uint64(13), uint64(4)).
			RunAndReturn(func(context.Context, uint64, uint64) (int64, error) {
				order = append(order, "delete")
				return 1, nil
			}).Once()
		repo.EXPECT().Create(mock.MatchedBy(inTx), txn).
			RunAndReturn(func(context.Context, *entity.PaymentTransaction) error {
				order = append(order, "create")
				return nil
			}).Once()

		manager := NewTransactionManager(newMockUnitOfWork(t, repo), mplatform.NewMockSettlementDelivery(t), newTimeProvider(t), newLogger(t), "mtnafrica")

		require.NoError(t, manager.ReplaceIncomplete(ctx, txn))
		assert.Equal(t, []string{"delete", "create"}, order)
	})

	t.Run("Insert failure is returned", func(t *testing.T) {
		repo := mpers.NewMockTransactionRepository(t)
		repo.EXPECT().DeleteIncomplete(mock.Anything, uint64(13), uint64(4)).Return(0, nil).Once()
		repo.EXPECT().Create(mock.Anything, txn).Return(errs.ErrDuplicateReference).Once()

		manager := NewTransactionManager(newMockUnitOfWork(t, repo), mplatform.NewMockSettlementDelivery(t), newTimeProvider(t), newLogger(t), "mtnafrica")

		assert.True(t, errors.Is(manager.ReplaceIncomplete(ctx, txn), errs.ErrDuplicateReference))
	})
}

func TestTransactionManager_Settle(t *testing.T) {
	ctx := context.Background()
	payable := &platform.Payable{AccountID: 1, Amount: decimal.NewFromInt(66), Currency: "EUR"}
	locked := &entity.PaymentTransaction{
		Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4,
		ExternalReference: "ref-1", Status: entity.StatusPending,
	}

	t.Run("Delivers then marks settled inside one transaction", func(t *testing.T) {
		repo := mpers.NewMockTransactionRepository(t)
		delivery := mplatform.NewMockSettlementDelivery(t)

		repo.EXPECT().LockIncomplete(mock.MatchedBy(inTx), "ref-1").Return(locked, nil).Once()
		delivery.EXPECT().RecordAndDeliver(mock.MatchedBy(inTx), platform.DeliveryRequest{
			AccountID: 1, Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4,
			Amount: payable.Amount, Currency: "EUR", GatewayName: "mtnafrica",
		}).Return(uint64(77), nil).Once()
		repo.EXPECT().MarkSettled(mock.MatchedBy(inTx), "ref-1", uint64(77), "363440463", fixedNow).Return(nil).Once()

		manager := NewTransactionManager(newMockUnitOfWork(t, repo), delivery, newTimeProvider(t), newLogger(t), "mtnafrica")

		id, err := manager.Settle(ctx, "ref-1", payable, "363440463")
		require.NoError(t, err)
		assert.Equal(t, uint64(77), id)
	})

	t.Run("A record that is no longer incomplete is not delivered", func(t *testing.T) {
		repo := mpers.NewMockTransactionRepository(t)
		repo.EXPECT().LockIncomplete(mock.Anything, "ref-1").Return(nil, errs.ErrTransactionNotFound).Once()

		manager := NewTransactionManager(newMockUnitOfWork(t, repo), mplatform.NewMockSettlementDelivery(t), newTimeProvider(t), newLogger(t), "mtnafrica")

		_, err := manager.Settle(ctx, "ref-1", payable, "363440463")
		assert.True(t, errors.Is(err, errs.ErrAlreadySettled))
	})

	t.Run("Delivery failure leaves the record incomplete", func(t *testing.T) {
		repo := mpers.NewMockTransactionRepository(t)
		delivery := mplatform.NewMockSettlementDelivery(t)
		repo.EXPECT().LockIncomplete(mock.Anything, "ref-1").Return(locked, nil).Once()
		delivery.EXPECT().RecordAndDeliver(mock.Anything, mock.Anything).Return(uint64(0), errs.ErrDatabaseConnection).Once()

		manager := NewTransactionManager(newMockUnitOfWork(t, repo), delivery, newTimeProvider(t), newLogger(t), "mtnafrica")

		_, err := manager.Settle(ctx, "ref-1", payable, "363440463")
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
	})
}

func TestTransactionManager_FlagAndDiscard(t *testing.T) {
	ctx := context.Background()
	repo := mpers.NewMockTransactionRepository(t)
	repo.EXPECT().MarkFlagged(ctx, "ref-1", "amount mismatch").Return(nil).Once()
	repo.EXPECT().MarkFlagged(ctx, "ref-gone", "amount mismatch").Return(errs.ErrTransactionNotFound).Once()
	repo.EXPECT().Delete(ctx, "ref-2").Return(nil).Once()

	manager := NewTransactionManager(newMockUnitOfWork(t, repo), mplatform.NewMockSettlementDelivery(t), newTimeProvider(t), newLogger(t), "mtnafrica")

	assert.NoError(t, manager.Flag(ctx, "ref-1", "amount mismatch"))
	assert.NoError(t, manager.Flag(ctx, "ref-gone", "amount mismatch"), "a swept record is nothing to flag")
	assert.NoError(t, manager.Discard(ctx, "ref-2"))
}
