package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
)

// TransactionRepository defines the keyed operations on payment attempts
type TransactionRepository interface {
	// Create saves a new pending transaction
	//
	// Possible errors:
	// - ErrDuplicateReference: a record with the same external reference exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.PaymentTransaction) error

	// GetByReference retrieves a transaction by its provider reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: no record for the reference
	// - ErrDatabaseConnection: If database connection fails
	GetByReference(ctx context.Context, reference string) (*entity.PaymentTransaction, error)

	// FindIncomplete retrieves the pending transaction for an item and user
	//
	// Possible errors:
	// - ErrTransactionNotFound: no pending record for the pair
	// - ErrDatabaseConnection: If database connection fails
	FindIncomplete(ctx context.Context, itemID, userID uint64) (*entity.PaymentTransaction, error)

	// LockIncomplete retrieves a pending transaction by reference and row-locks it
	// for the rest of the surrounding database transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: no pending record for the reference
	// - ErrDatabaseConnection: If database connection fails
	LockIncomplete(ctx context.Context, reference string) (*entity.PaymentTransaction, error)

	// MarkSettled sets completed_at and the settlement ids, only while completed_at is null
	//
	// Possible errors:
	// - ErrAlreadySettled: the record was settled or flagged by someone else
	// - ErrDatabaseConnection: If database connection fails
	MarkSettled(ctx context.Context, reference string, settlementID uint64, providerTxnID string, at time.Time) error

	// MarkFlagged moves a pending transaction to the fraud-flagged state
	//
	// Possible errors:
	// - ErrTransactionNotFound: no pending record for the reference
	// - ErrDatabaseConnection: If database connection fails
	MarkFlagged(ctx context.Context, reference string, reason string) error

	// Delete removes a pending transaction by reference. Settled and flagged
	// records are kept, and deleting a missing record is not an error.
	Delete(ctx context.Context, reference string) error

	// DeleteIncomplete removes the pending transactions of an item and user
	DeleteIncomplete(ctx context.Context, itemID, userID uint64) (int64, error)

	// DeleteAllIncomplete removes pending transactions created before the cutoff.
	// Fraud-flagged records are kept for review.
	DeleteAllIncomplete(ctx context.Context, createdBefore time.Time) (int64, error)
}
