package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/momo-gateway/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestNewPaymentTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	ref := PaymentReference{Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4}
	txn := NewPaymentTransaction(ref, "9a5f3c1e-ref", "token-abc", mockTime)

	assert.Equal(t, "enrol_fee", txn.Component)
	assert.Equal(t, "fee", txn.Area)
	assert.Equal(t, uint64(13), txn.ItemID)
	assert.Equal(t, uint64(4), txn.UserID)
	assert.Equal(t, "9a5f3c1e-ref", txn.ExternalReference)
	assert.Equal(t, "token-abc", txn.ProviderToken)
	assert.Equal(t, StatusPending, txn.Status)
	assert.Equal(t, fixedTime, txn.CreatedAt)
	assert.Nil(t, txn.CompletedAt)
	assert.True(t, txn.IsIncomplete())
	assert.Equal(t, ref, txn.Reference())
}

func TestPaymentTransaction_States(t *testing.T) {
	now := time.Now()

	settled := &PaymentTransaction{Status: StatusSettled, CompletedAt: &now}
	assert.True(t, settled.IsCompleted())
	assert.False(t, settled.IsIncomplete())

	flagged := &PaymentTransaction{Status: StatusFraudFlagged}
	assert.True(t, flagged.IsFlagged())
	assert.False(t, flagged.IsCompleted())
	assert.False(t, flagged.IsIncomplete())
}

func TestPaymentTransaction_BelongsTo(t *testing.T) {
	txn := &PaymentTransaction{Component: "enrol_fee", Area: "fee", ItemID: 13}

	assert.True(t, txn.BelongsTo("enrol_fee", "fee", 13))
	assert.False(t, txn.BelongsTo("enrol_fee", "fee", 14))
	assert.False(t, txn.BelongsTo("shop", "fee", 13))
}

func TestProviderStatus_IsTerminal(t *testing.T) {
	assert.True(t, ProviderStatusSuccessful.IsTerminal())
	assert.True(t, ProviderStatusFailed.IsTerminal())
	assert.False(t, ProviderStatusPending.IsTerminal())
	assert.False(t, ProviderStatusUnknown.IsTerminal())
}
