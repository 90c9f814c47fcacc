package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	cacheport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
)

// Config tunes the purchase lifecycle
type Config struct {
	GatewayName         string
	BrandName           string
	PollAttempts        int
	PollInterval        time.Duration
	MaxCollisionRetries int
	GuardTTL            time.Duration
	Retention           time.Duration
}

// DefaultConfig returns the settings the provider integration was tuned for
func DefaultConfig() Config {
	return Config{
		GatewayName:         "mtnafrica",
		PollAttempts:        10,
		PollInterval:        5 * time.Second,
		MaxCollisionRetries: 20,
		GuardTTL:            30 * time.Second,
		Retention:           24 * time.Hour,
	}
}

// Dependencies groups the collaborators of the transaction service
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Payables     platform.PayableProvider
	Delivery     platform.SettlementDelivery
	Provider     gateway.ProviderClient
	Guard        cacheport.SettlementGuard // optional
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// Service implements usecase.TransactionUseCase
type Service struct {
	uow          persistence.UnitOfWork
	payables     platform.PayableProvider
	provider     gateway.ProviderClient
	manager      *TransactionManager
	processor    *TransactionProcessor
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(deps Dependencies, config Config) *Service {
	manager := NewTransactionManager(deps.UnitOfWork, deps.Delivery, deps.TimeProvider, deps.Logger, config.GatewayName)
	idempotencyHandler := NewIdempotencyHandler(deps.Guard, config.GuardTTL, deps.Logger)
	processor := NewTransactionProcessor(
		deps.Provider,
		deps.Payables,
		manager,
		idempotencyHandler,
		deps.UnitOfWork,
		deps.Logger,
		config.MaxCollisionRetries,
	)

	return &Service{
		uow:          deps.UnitOfWork,
		payables:     deps.Payables,
		provider:     deps.Provider,
		manager:      manager,
		processor:    processor,
		validator:    NewTransactionValidator(),
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger,
		config:       config,
	}
}

// StartTransaction prices the item, submits a request-to-pay and records the
// accepted attempt in place of any earlier incomplete one
func (s *Service) StartTransaction(ctx context.Context, req usecase.StartRequest) (*usecase.StartResult, error) {
	input, err := s.validator.ValidateStart(req)
	if err != nil {
		return nil, err
	}

	payable, err := s.payables.GetExpectedAmountAndCurrency(ctx, req.Component, req.Area, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to price item: %w", err)
	}

	result, err := s.processor.Submit(ctx, gateway.PaymentRequest{
		Amount:       payable.Amount,
		Currency:     payable.Currency,
		PayerPhone:   input.Phone,
		PayerCountry: input.Country,
		Reference:    input.Reference,
	})
	if err != nil {
		return nil, err
	}

	message := s.provider.StatusMessage(result.StatusCode)
	if !result.Accepted() {
		s.logger.Warn("Request-to-pay not accepted", map[string]any{
			"payee_note":  input.Reference.String(),
			"status_code": result.StatusCode,
		})
		return &usecase.StartResult{
			Accepted:   false,
			StatusCode: result.StatusCode,
			Message:    message,
		}, nil
	}

	txn := entity.NewPaymentTransaction(input.Reference, result.ExternalReference, result.Token, s.timeProvider)
	if err := s.manager.ReplaceIncomplete(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Payment attempt started", map[string]any{
		"reference":  result.ExternalReference,
		"payee_note": input.Reference.String(),
		"amount":     payable.Amount.String(),
		"currency":   payable.Currency,
	})

	return &usecase.StartResult{
		Reference:  result.ExternalReference,
		Accepted:   true,
		StatusCode: result.StatusCode,
		Message:    message,
	}, nil
}

// CheckTransaction asks the provider once about an attempt and settles it on success
func (s *Service) CheckTransaction(ctx context.Context, req usecase.CheckRequest) (*usecase.CheckResult, error) {
	if err := s.validator.ValidateCheck(req); err != nil {
		return nil, err
	}

	txn, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, req.Reference)
	if errors.Is(err, errs.ErrTransactionNotFound) {
		return unknownResult(), nil
	}
	if err != nil {
		return nil, err
	}

	if !txn.BelongsTo(req.Component, req.Area, req.ItemID) || (req.UserID != 0 && txn.UserID != req.UserID) {
		s.logger.Warn("Check for a reference of another purchase", map[string]any{
			"reference": req.Reference,
			"item_id":   req.ItemID,
			"user_id":   req.UserID,
		})
		return unknownResult(), nil
	}

	if !txn.IsIncomplete() {
		return storedResult(txn), nil
	}

	doc := s.provider.TransactionEnquiry(ctx, txn.ExternalReference, txn.ProviderToken)
	return s.processor.Resolve(ctx, txn, doc)
}

// PollTransaction checks an attempt up to PollAttempts times, PollInterval apart,
// and stops early once the attempt settles or fails
func (s *Service) PollTransaction(ctx context.Context, req usecase.CheckRequest) (*usecase.CheckResult, error) {
	var result *usecase.CheckResult

	for attempt := 1; attempt <= s.config.PollAttempts; attempt++ {
		var err error
		result, err = s.CheckTransaction(ctx, req)
		if err != nil {
			return nil, err
		}
		if result.Settled || result.Status.IsTerminal() {
			return result, nil
		}

		s.logger.Debug("Payment still pending", map[string]any{
			"reference": req.Reference,
			"attempt":   attempt,
			"status":    result.Message,
		})

		if attempt == s.config.PollAttempts {
			break
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-s.timeProvider.After(coreport.Duration(s.config.PollInterval)):
		}
	}

	if result == nil {
		result = unknownResult()
	}
	return result, nil
}

// HandleCallback re-checks a pushed notification with the provider and settles it.
// Notifications for unknown or already finished references are ignored.
func (s *Service) HandleCallback(ctx context.Context, notification usecase.CallbackNotification) error {
	if notification.ExternalID == "" {
		s.logger.Warn("Callback without externalId ignored", map[string]any{
			"status": notification.Status,
		})
		return nil
	}

	txn, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, notification.ExternalID)
	if errors.Is(err, errs.ErrTransactionNotFound) {
		s.logger.Info("Callback for unknown reference ignored", map[string]any{
			"reference": notification.ExternalID,
		})
		return nil
	}
	if err != nil {
		return err
	}
	if !txn.IsIncomplete() {
		return nil
	}

	// The pushed body is unauthenticated; the provider's own answer decides
	doc := s.provider.TransactionEnquiry(ctx, txn.ExternalReference, txn.ProviderToken)
	result, err := s.processor.Resolve(ctx, txn, doc)
	if err != nil {
		return err
	}

	s.logger.Info("Callback processed", map[string]any{
		"reference":       txn.ExternalReference,
		"notified_status": notification.Status,
		"status":          result.Message,
		"settled":         result.Settled,
	})
	return nil
}

// CheckoutConfig returns the data needed to render the checkout form
func (s *Service) CheckoutConfig(
	ctx context.Context,
	component, area string,
	itemID, userID uint64,
) (*usecase.CheckoutConfig, error) {
	ref, err := entity.NewPaymentReference(component, area, itemID, userID)
	if err != nil {
		return nil, err
	}

	payable, err := s.payables.GetExpectedAmountAndCurrency(ctx, component, area, itemID)
	if err != nil {
		return nil, err
	}

	return &usecase.CheckoutConfig{
		BrandName:   s.config.BrandName,
		Country:     s.provider.Country(),
		Cost:        entity.FormatAmount(payable.Amount, payable.Currency),
		Currency:    payable.Currency,
		UserID:      userID,
		PayeeNote:   ref.String(),
		Sandbox:     s.provider.IsSandbox(),
		PollRetries: s.config.PollAttempts,
		PollEvery:   s.config.PollInterval.Milliseconds(),
	}, nil
}

// SweepIncomplete deletes pending attempts older than the retention window
func (s *Service) SweepIncomplete(ctx context.Context) (int64, error) {
	deleted, err := s.manager.Sweep(ctx, s.config.Retention)
	if err != nil {
		s.logger.Error("Failed to sweep incomplete transactions", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}
	return deleted, nil
}
