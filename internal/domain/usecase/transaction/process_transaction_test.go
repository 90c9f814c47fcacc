package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	mgateway "github.com/amirhossein-jamali/momo-gateway/mocks/port/gateway"
	mplatform "github.com/amirhossein-jamali/momo-gateway/mocks/port/platform"
)

type processorFixture struct {
	store    *memoryStore
	provider *mgateway.MockProviderClient
	payables *mplatform.MockPayableProvider
	delivery *mplatform.MockSettlementDelivery
	proc     *TransactionProcessor
}

func newProcessorFixture(t *testing.T, maxCollisions int) *processorFixture {
	f := &processorFixture{
		store:    newMemoryStore(),
		provider: mgateway.NewMockProviderClient(t),
		payables: mplatform.NewMockPayableProvider(t),
		delivery: mplatform.NewMockSettlementDelivery(t),
	}
	logger := newLogger(t)
	manager := NewTransactionManager(f.store, f.delivery, newTimeProvider(t), logger, "mtnafrica")
	f.proc = NewTransactionProcessor(
		f.provider,
		f.payables,
		manager,
		NewIdempotencyHandler(nil, time.Minute, logger),
		f.store,
		logger,
		maxCollisions,
	)
	return f
}

func (f *processorFixture) expectPayable(amount int64, currency string) {
	f.payables.EXPECT().GetExpectedAmountAndCurrency(mock.Anything, "enrol_fee", "fee", uint64(13)).
		Return(&platform.Payable{AccountID: 1, Amount: decimal.NewFromInt(amount), Currency: currency}, nil).Maybe()
	f.provider.EXPECT().SettlementCurrency(currency).Return(currency).Maybe()
}

func successDoc(reference, amount, currency, note string) *gateway.StatusDocument {
	return &gateway.StatusDocument{
		Status:                 entity.ProviderStatusSuccessful,
		Amount:                 amount,
		Currency:               currency,
		ExternalID:             reference,
		PayeeNote:              note,
		FinancialTransactionID: "363440463",
	}
}

func TestTransactionProcessor_Submit(t *testing.T) {
	ctx := context.Background()
	req := gateway.PaymentRequest{
		Amount:       decimal.NewFromInt(66),
		Currency:     "EUR",
		PayerPhone:   "46733123454",
		PayerCountry: "UG",
		Reference:    entity.PaymentReference{Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4},
	}

	t.Run("Collisions are retried until accepted", func(t *testing.T) {
		const collisions = 3
		f := newProcessorFixture(t, 20)
		f.provider.EXPECT().RequestPayment(ctx, req).
			Return(&gateway.PaymentResult{StatusCode: 409, ExternalReference: "dup"}, nil).Times(collisions)
		f.provider.EXPECT().RequestPayment(ctx, req).
			Return(&gateway.PaymentResult{StatusCode: 202, ExternalReference: "ref-4", Token: "tok"}, nil).Once()

		result, err := f.proc.Submit(ctx, req)

		require.NoError(t, err)
		assert.True(t, result.Accepted())
		assert.Equal(t, "ref-4", result.ExternalReference)
		f.provider.AssertNumberOfCalls(t, "RequestPayment", collisions+1)
	})

	t.Run("Persistent collisions stop at the bound", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.provider.EXPECT().RequestPayment(ctx, req).
			Return(&gateway.PaymentResult{StatusCode: 409}, nil).Times(20)

		result, err := f.proc.Submit(ctx, req)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrReferenceCollision))
		var collision *errs.CollisionError
		require.True(t, errors.As(err, &collision))
		assert.Equal(t, 20, collision.Attempts)
		f.provider.AssertNumberOfCalls(t, "RequestPayment", 20)
	})

	t.Run("Other rejections are not retried", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.provider.EXPECT().RequestPayment(ctx, req).
			Return(&gateway.PaymentResult{StatusCode: 500}, nil).Once()

		result, err := f.proc.Submit(ctx, req)

		require.NoError(t, err)
		assert.False(t, result.Accepted())
		assert.Equal(t, 500, result.StatusCode)
	})

	t.Run("Country validation is surfaced", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.provider.EXPECT().RequestPayment(ctx, req).
			Return(nil, errs.NewUnsupportedCountryError("XX")).Once()

		_, err := f.proc.Submit(ctx, req)

		assert.True(t, errors.Is(err, errs.ErrUnsupportedCountry))
	})
}

func TestTransactionProcessor_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Fraud guard flags a short payment and keeps the record", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		f.expectPayable(100, "EUR")
		txn, _ := f.store.GetByReference(ctx, "ref-1")

		result, err := f.proc.Resolve(ctx, txn, successDoc("ref-1", "50", "EUR", "enrol_fee-fee-13-4"))

		require.NoError(t, err)
		assert.False(t, result.Settled)
		assert.Equal(t, entity.ProviderStatusFailed, result.Status)

		stored, err := f.store.GetByReference(ctx, "ref-1")
		require.NoError(t, err, "flagged records are retained")
		assert.True(t, stored.IsFlagged())
		assert.Equal(t, "amount mismatch", stored.FlagReason)
		f.delivery.AssertNotCalled(t, "RecordAndDeliver", mock.Anything, mock.Anything)
	})

	mismatches := []struct {
		name   string
		doc    *gateway.StatusDocument
		reason string
	}{
		{"Currency", successDoc("ref-1", "100", "UGX", "enrol_fee-fee-13-4"), "currency mismatch"},
		{"Payer identity", successDoc("ref-1", "100", "EUR", "enrol_fee-fee-13-5"), "payee note does not match transaction"},
		{"Other item", successDoc("ref-1", "100", "EUR", "enrol_fee-fee-14-4"), "payee note does not match transaction"},
		{"Garbled note", successDoc("ref-1", "100", "EUR", "enrol fee 13 4"), "unparseable payee note"},
		{"Foreign external id", successDoc("ref-9", "100", "EUR", "enrol_fee-fee-13-4"), "external id does not match reference"},
	}
	for _, tt := range mismatches {
		t.Run(tt.name+" mismatch is flagged", func(t *testing.T) {
			f := newProcessorFixture(t, 20)
			f.store.seed("ref-1", 13, 4, fixedNow)
			f.expectPayable(100, "EUR")
			txn, _ := f.store.GetByReference(ctx, "ref-1")

			result, err := f.proc.Resolve(ctx, txn, tt.doc)

			require.NoError(t, err)
			assert.Equal(t, entity.ProviderStatusFailed, result.Status)
			stored, _ := f.store.GetByReference(ctx, "ref-1")
			assert.Equal(t, tt.reason, stored.FlagReason)
		})
	}

	t.Run("Settling twice delivers once", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		f.expectPayable(66, "EUR")
		f.delivery.EXPECT().RecordAndDeliver(mock.Anything, mock.Anything).Return(uint64(5), nil).Once()

		// Both paths read the record while it was still incomplete
		txn, _ := f.store.GetByReference(ctx, "ref-1")
		doc := successDoc("ref-1", "66.00", "EUR", "enrol_fee-fee-13-4")

		first, err := f.proc.Resolve(ctx, txn, doc)
		require.NoError(t, err)
		second, err := f.proc.Resolve(ctx, txn, doc)
		require.NoError(t, err)

		assert.True(t, first.Settled)
		assert.True(t, second.Settled)
		stored, _ := f.store.GetByReference(ctx, "ref-1")
		require.NotNil(t, stored.CompletedAt)
		assert.Equal(t, fixedNow, *stored.CompletedAt)
		assert.Equal(t, uint64(5), stored.SettlementID)
	})

	t.Run("Failed status deletes the record", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		txn, _ := f.store.GetByReference(ctx, "ref-1")

		result, err := f.proc.Resolve(ctx, txn, &gateway.StatusDocument{Status: entity.ProviderStatusFailed})

		require.NoError(t, err)
		assert.Equal(t, entity.ProviderStatusFailed, result.Status)
		_, err = f.store.GetByReference(ctx, "ref-1")
		assert.True(t, errors.Is(err, errs.ErrTransactionNotFound))
	})

	t.Run("Failure reported after settlement keeps the settled record", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		stale, _ := f.store.GetByReference(ctx, "ref-1")
		require.NoError(t, f.store.MarkSettled(ctx, "ref-1", 7, "363440463", fixedNow))

		result, err := f.proc.Resolve(ctx, stale, &gateway.StatusDocument{Status: entity.ProviderStatusFailed})

		require.NoError(t, err)
		assert.True(t, result.Settled)
		stored, err := f.store.GetByReference(ctx, "ref-1")
		require.NoError(t, err)
		assert.True(t, stored.IsCompleted())
		assert.Equal(t, uint64(7), stored.SettlementID)
	})

	t.Run("Failure reported after flagging keeps the flagged record", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		stale, _ := f.store.GetByReference(ctx, "ref-1")
		require.NoError(t, f.store.MarkFlagged(ctx, "ref-1", "amount mismatch"))

		result, err := f.proc.Resolve(ctx, stale, &gateway.StatusDocument{Status: entity.ProviderStatusFailed})

		require.NoError(t, err)
		assert.False(t, result.Settled)
		assert.Equal(t, entity.ProviderStatusFailed, result.Status)
		stored, err := f.store.GetByReference(ctx, "ref-1")
		require.NoError(t, err)
		assert.True(t, stored.IsFlagged())
	})

	t.Run("Unknown status keeps the record pending", func(t *testing.T) {
		f := newProcessorFixture(t, 20)
		f.store.seed("ref-1", 13, 4, fixedNow)
		txn, _ := f.store.GetByReference(ctx, "ref-1")

		result, err := f.proc.Resolve(ctx, txn, &gateway.StatusDocument{Status: entity.ProviderStatusUnknown})

		require.NoError(t, err)
		assert.False(t, result.Settled)
		assert.False(t, result.Status.IsTerminal())
		assert.Equal(t, "unknown", result.Message)
		stored, _ := f.store.GetByReference(ctx, "ref-1")
		assert.True(t, stored.IsIncomplete())
	})
}
