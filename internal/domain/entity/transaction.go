package entity

import (
	"time"

	tport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
)

// TransactionStatus is the local lifecycle state of a payment attempt
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending      TransactionStatus = "pending"
	StatusSettled      TransactionStatus = "settled"
	StatusFraudFlagged TransactionStatus = "fraud_flagged"
)

// ProviderStatus is the status reported by the provider for a request-to-pay
type ProviderStatus string

// ProviderStatus values. An empty status means the provider could not be asked.
const (
	ProviderStatusUnknown    ProviderStatus = ""
	ProviderStatusPending    ProviderStatus = "PENDING"
	ProviderStatusSuccessful ProviderStatus = "SUCCESSFUL"
	ProviderStatusFailed     ProviderStatus = "FAILED"
)

// IsTerminal reports whether polling can stop on this status
func (s ProviderStatus) IsTerminal() bool {
	return s == ProviderStatusSuccessful || s == ProviderStatusFailed
}

// PaymentTransaction is one payment attempt for an item by a user
type PaymentTransaction struct {
	ID                    uint64
	Component             string
	Area                  string
	ItemID                uint64
	UserID                uint64
	ExternalReference     string            // Provider reference, globally unique
	ProviderToken         string            // Bearer token valid for enquiries on this reference
	Status                TransactionStatus // Local lifecycle state
	SettlementID          uint64            // Host platform payment id, set at settlement
	ProviderTransactionID string            // financialTransactionId reported by the provider
	FlagReason            string            // Why the fraud guard flagged the record
	CreatedAt             time.Time
	CompletedAt           *time.Time // Set exactly once, at settlement
}

// NewPaymentTransaction creates a pending record for an accepted request-to-pay
func NewPaymentTransaction(
	ref PaymentReference,
	externalReference string,
	providerToken string,
	timeProvider tport.TimeProvider,
) *PaymentTransaction {
	return &PaymentTransaction{
		Component:         ref.Component,
		Area:              ref.Area,
		ItemID:            ref.ItemID,
		UserID:            ref.UserID,
		ExternalReference: externalReference,
		ProviderToken:     providerToken,
		Status:            StatusPending,
		CreatedAt:         timeProvider.Now(),
	}
}

// Reference returns the payment reference the record was created for
func (t *PaymentTransaction) Reference() PaymentReference {
	return PaymentReference{
		Component: t.Component,
		Area:      t.Area,
		ItemID:    t.ItemID,
		UserID:    t.UserID,
	}
}

// IsCompleted reports whether the record has been settled
func (t *PaymentTransaction) IsCompleted() bool {
	return t.CompletedAt != nil
}

// IsFlagged reports whether the fraud guard rejected the record
func (t *PaymentTransaction) IsFlagged() bool {
	return t.Status == StatusFraudFlagged
}

// IsIncomplete reports whether the record still awaits settlement
func (t *PaymentTransaction) IsIncomplete() bool {
	return !t.IsCompleted() && !t.IsFlagged()
}

// BelongsTo reports whether the record was created for the given purchase
func (t *PaymentTransaction) BelongsTo(component, area string, itemID uint64) bool {
	return t.Component == component && t.Area == area && t.ItemID == itemID
}
