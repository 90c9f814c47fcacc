package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
)

const statusUnknownMessage = "unknown"

// TransactionProcessor drives a payment attempt through the provider and
// applies the provider's verdict to the stored record
type TransactionProcessor struct {
	provider           gateway.ProviderClient
	payables           platform.PayableProvider
	manager            *TransactionManager
	idempotencyHandler *IdempotencyHandler
	uow                persistence.UnitOfWork
	logger             coreport.Logger
	maxCollisions      int
}

// NewTransactionProcessor creates a new TransactionProcessor
func NewTransactionProcessor(
	provider gateway.ProviderClient,
	payables platform.PayableProvider,
	manager *TransactionManager,
	idempotencyHandler *IdempotencyHandler,
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	maxCollisions int,
) *TransactionProcessor {
	if maxCollisions < 1 {
		maxCollisions = 1
	}
	return &TransactionProcessor{
		provider:           provider,
		payables:           payables,
		manager:            manager,
		idempotencyHandler: idempotencyHandler,
		uow:                uow,
		logger:             logger,
		maxCollisions:      maxCollisions,
	}
}

// Submit sends the request-to-pay, regenerating the reference while the provider
// answers 409. Any other answer ends the loop; exhausting the bound yields a CollisionError.
func (p *TransactionProcessor) Submit(ctx context.Context, req gateway.PaymentRequest) (*gateway.PaymentResult, error) {
	for attempt := 1; attempt <= p.maxCollisions; attempt++ {
		result, err := p.provider.RequestPayment(ctx, req)
		if err != nil {
			return nil, err
		}
		if !result.Collision() {
			return result, nil
		}

		p.logger.Warn("Provider rejected reference as duplicate, regenerating", map[string]any{
			"reference": result.ExternalReference,
			"attempt":   attempt,
		})

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	collision := &errs.CollisionError{Attempts: p.maxCollisions}
	p.logger.Error("Reference collision bound exhausted", collision.LogFields())
	return nil, collision
}

// Resolve applies a provider status document to an incomplete record
func (p *TransactionProcessor) Resolve(
	ctx context.Context,
	txn *entity.PaymentTransaction,
	doc *gateway.StatusDocument,
) (*usecase.CheckResult, error) {
	switch doc.Status {
	case entity.ProviderStatusFailed:
		p.logger.Info("Provider reported payment failure", map[string]any{
			"reference": txn.ExternalReference,
			"reason":    doc.Reason,
		})
		if err := p.manager.Discard(ctx, txn.ExternalReference); err != nil {
			return nil, err
		}
		// A record settled or flagged meanwhile survives the discard
		kept, err := p.uow.GetTransactionRepository(ctx).GetByReference(ctx, txn.ExternalReference)
		if err == nil {
			return storedResult(kept), nil
		}
		return failedResult(), nil

	case entity.ProviderStatusSuccessful:
		return p.settle(ctx, txn, doc)

	default:
		// Unknown means the provider could not be asked; keep polling
		return pendingResult(doc.Status), nil
	}
}

// settle verifies a successful status against the payable and settles on a match
func (p *TransactionProcessor) settle(
	ctx context.Context,
	txn *entity.PaymentTransaction,
	doc *gateway.StatusDocument,
) (*usecase.CheckResult, error) {
	payable, err := p.payables.GetExpectedAmountAndCurrency(ctx, txn.Component, txn.Area, txn.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-derive expected payment: %w", err)
	}

	if mismatch := p.verify(txn, payable, doc); mismatch != nil {
		p.logger.Warn("Settlement mismatch, flagging transaction", mismatch.LogFields())
		if err := p.manager.Flag(ctx, txn.ExternalReference, mismatch.Reason); err != nil {
			return nil, err
		}
		return failedResult(), nil
	}

	ran, err := p.idempotencyHandler.RunExclusive(ctx, txn.ExternalReference, func() error {
		_, err := p.manager.Settle(ctx, txn.ExternalReference, payable, doc.FinancialTransactionID)
		return err
	})
	if !ran {
		return pendingResult(entity.ProviderStatusPending), nil
	}
	if errors.Is(err, errs.ErrAlreadySettled) {
		p.logger.Debug("Duplicate settlement attempt ignored", map[string]any{
			"reference": txn.ExternalReference,
		})
		return p.Current(ctx, txn.ExternalReference)
	}
	if err != nil {
		return nil, err
	}

	return settledResult(), nil
}

// verify compares the provider's successful status with what the payable says it
// should be. It returns nil when amount, currency and payer identity all match.
func (p *TransactionProcessor) verify(
	txn *entity.PaymentTransaction,
	payable *platform.Payable,
	doc *gateway.StatusDocument,
) *errs.SettlementMismatchError {
	expectedCurrency := p.provider.SettlementCurrency(payable.Currency)
	mismatch := &errs.SettlementMismatchError{
		Reference:        txn.ExternalReference,
		ExpectedAmount:   entity.FormatAmount(payable.Amount, expectedCurrency),
		ActualAmount:     doc.Amount,
		ExpectedCurrency: expectedCurrency,
		ActualCurrency:   doc.Currency,
		ExpectedUserID:   txn.UserID,
		ActualNote:       doc.PayeeNote,
	}

	if doc.ExternalID != "" && doc.ExternalID != txn.ExternalReference {
		mismatch.Reason = "external id does not match reference"
		return mismatch
	}
	if doc.Currency != expectedCurrency {
		mismatch.Reason = "currency mismatch"
		return mismatch
	}

	amount, err := entity.ParseAmount(doc.Amount)
	if err != nil || !entity.AmountsEqual(amount, payable.Amount, expectedCurrency) {
		mismatch.Reason = "amount mismatch"
		return mismatch
	}

	ref, err := entity.ParsePaymentReference(doc.PayeeNote)
	if err != nil {
		mismatch.Reason = "unparseable payee note"
		return mismatch
	}
	if ref.UserID != txn.UserID || !txn.BelongsTo(ref.Component, ref.Area, ref.ItemID) {
		mismatch.Reason = "payee note does not match transaction"
		return mismatch
	}

	return nil
}

// Current reports the stored state of a record without asking the provider
func (p *TransactionProcessor) Current(ctx context.Context, reference string) (*usecase.CheckResult, error) {
	txn, err := p.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if errors.Is(err, errs.ErrTransactionNotFound) {
		return unknownResult(), nil
	}
	if err != nil {
		return nil, err
	}
	return storedResult(txn), nil
}

// storedResult maps a record that no longer needs the provider to a result
func storedResult(txn *entity.PaymentTransaction) *usecase.CheckResult {
	switch {
	case txn.IsCompleted():
		return settledResult()
	case txn.IsFlagged():
		return failedResult()
	default:
		return pendingResult(entity.ProviderStatusPending)
	}
}

func settledResult() *usecase.CheckResult {
	return &usecase.CheckResult{
		Settled: true,
		Status:  entity.ProviderStatusSuccessful,
		Message: string(entity.ProviderStatusSuccessful),
	}
}

// failedResult is shared by rejected and fraud-flagged attempts
func failedResult() *usecase.CheckResult {
	return &usecase.CheckResult{
		Status:  entity.ProviderStatusFailed,
		Message: string(entity.ProviderStatusFailed),
	}
}

func pendingResult(status entity.ProviderStatus) *usecase.CheckResult {
	if status == entity.ProviderStatusUnknown {
		return unknownResult()
	}
	return &usecase.CheckResult{Status: status, Message: string(status)}
}

func unknownResult() *usecase.CheckResult {
	return &usecase.CheckResult{Status: entity.ProviderStatusUnknown, Message: statusUnknownMessage}
}
