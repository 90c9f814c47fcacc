package gateway

import (
	"context"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PaymentRequest is a request-to-pay submitted to the provider
type PaymentRequest struct {
	Amount       decimal.Decimal
	Currency     string
	PayerPhone   string // MSISDN of the payer
	PayerCountry string // ISO 3166 alpha-2
	Reference    entity.PaymentReference
}

// PaymentResult is the outcome of a request-to-pay submission
type PaymentResult struct {
	StatusCode        int    // Provider HTTP status, 0 when the provider could not be reached
	ExternalReference string // Freshly generated reference for this attempt
	Token             string // Bearer token valid for enquiries on this reference
}

// Accepted reports whether the provider queued the request-to-pay
func (r *PaymentResult) Accepted() bool {
	return r.StatusCode == 202
}

// Collision reports whether the provider rejected the reference as a duplicate
func (r *PaymentResult) Collision() bool {
	return r.StatusCode == 409
}

// StatusDocument is the normalized answer to a status enquiry
type StatusDocument struct {
	Status                 entity.ProviderStatus
	Amount                 string
	Currency               string
	ExternalID             string
	PayeeNote              string
	FinancialTransactionID string
	Reason                 string
}

// ProviderClient wraps every outbound call to the mobile-money provider.
// Transport and provider-side failures are absorbed into degraded results;
// only input validation surfaces as an error.
type ProviderClient interface {
	// AcquireToken returns the cached bearer token, fetching it once on first use.
	// Returns an empty string when the token endpoint cannot be reached.
	AcquireToken(ctx context.Context) string

	// RequestPayment submits a request-to-pay under a newly generated reference
	//
	// Possible errors:
	// - ErrUnsupportedCountry: payer country outside the served set, no network call made
	RequestPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)

	// TransactionEnquiry returns the provider status of a reference.
	// The status is unknown when the provider could not be asked.
	TransactionEnquiry(ctx context.Context, reference string, token string) *StatusDocument

	// ValidUser reports whether the phone number belongs to an active account holder
	ValidUser(ctx context.Context, phone string) bool

	// SettlementCurrency returns the currency the provider will actually settle in
	SettlementCurrency(currency string) string

	// StatusMessage maps a request-to-pay HTTP status to a human message
	StatusMessage(statusCode int) string

	// IsSandbox reports whether the client targets the provider test environment
	IsSandbox() bool

	// Country returns the configured merchant country
	Country() string
}
