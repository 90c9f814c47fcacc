package usecase

import (
	"context"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
)

// StartRequest asks the provider to charge a user for an item
type StartRequest struct {
	Component string
	Area      string
	ItemID    uint64
	UserID    uint64
	Phone     string
	Country   string
}

// StartResult reports whether the provider accepted the request-to-pay
type StartResult struct {
	Reference  string // External reference to poll with, empty when not accepted
	Accepted   bool
	StatusCode int
	Message    string
}

// CheckRequest asks for the state of one payment attempt
type CheckRequest struct {
	Component string
	Area      string
	ItemID    uint64
	UserID    uint64 // Zero skips the ownership check
	Reference string
}

// CheckResult is what the client polling loop sees
type CheckResult struct {
	Settled bool
	Status  entity.ProviderStatus // FAILED for rejected and fraud-flagged attempts alike
	Message string
}

// CallbackNotification is the body the provider pushes to the webhook
type CallbackNotification struct {
	ExternalID string
	Status     string
	Amount     string
	Currency   string
	PayeeNote  string
}

// CheckoutConfig is what a checkout page needs to render the payment form
type CheckoutConfig struct {
	BrandName   string
	Country     string
	Cost        string
	Currency    string
	UserID      uint64
	PayeeNote   string
	Sandbox     bool
	PollRetries int
	PollEvery   int64 // milliseconds
}

// TransactionUseCase defines the purchase lifecycle operations
type TransactionUseCase interface {
	// StartTransaction submits a request-to-pay and records the pending attempt
	StartTransaction(ctx context.Context, req StartRequest) (*StartResult, error)

	// CheckTransaction asks the provider once and settles on success
	CheckTransaction(ctx context.Context, req CheckRequest) (*CheckResult, error)

	// PollTransaction repeats CheckTransaction up to the configured attempt count
	PollTransaction(ctx context.Context, req CheckRequest) (*CheckResult, error)

	// HandleCallback settles a transaction pushed by the provider; unknown references are ignored
	HandleCallback(ctx context.Context, notification CallbackNotification) error

	// CheckoutConfig returns the data needed to render the checkout form
	CheckoutConfig(ctx context.Context, component, area string, itemID, userID uint64) (*CheckoutConfig, error)

	// SweepIncomplete deletes pending attempts older than the retention window
	SweepIncomplete(ctx context.Context) (int64, error)
}
