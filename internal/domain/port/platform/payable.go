package platform

import (
	"context"

	"github.com/shopspring/decimal"
)

// Payable is the priced item a user is buying
type Payable struct {
	AccountID uint64
	Amount    decimal.Decimal // Charge including the gateway surcharge
	Currency  string
}

// PayableProvider resolves the authoritative price of a purchase.
// Client-supplied costs are never trusted; settlement re-derives the price here.
type PayableProvider interface {
	// GetExpectedAmountAndCurrency returns the charge for an item
	//
	// Possible errors:
	// - ErrPayableNotFound: no payable exists for the component/area/item
	// - ErrDatabaseConnection: storage failure
	GetExpectedAmountAndCurrency(ctx context.Context, component, area string, itemID uint64) (*Payable, error)
}

// DeliveryRequest describes a verified payment to be recorded and delivered
type DeliveryRequest struct {
	AccountID   uint64
	Component   string
	Area        string
	ItemID      uint64
	UserID      uint64
	Amount      decimal.Decimal
	Currency    string
	GatewayName string
}

// SettlementDelivery records a verified payment and unlocks the purchased item
type SettlementDelivery interface {
	// RecordAndDeliver stores the payment and delivers the order, returning the payment id
	RecordAndDeliver(ctx context.Context, req DeliveryRequest) (uint64, error)
}
