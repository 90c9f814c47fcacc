package entity

import (
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
)

// ReferenceDelimiter separates the fields of a payee note. The provider echoes the
// note back verbatim, so the delimiter and field order are a fixed wire contract:
// component-area-itemid-userid
const ReferenceDelimiter = "-"

// PaymentReference identifies who pays for what on the host platform
type PaymentReference struct {
	Component string // Platform component owning the purchase, e.g. enrol_fee
	Area      string // Payment area inside the component, e.g. fee
	ItemID    uint64 // Purchased item
	UserID    uint64 // Paying user
}

// NewPaymentReference builds a reference and validates that it survives the wire format
func NewPaymentReference(component, area string, itemID, userID uint64) (PaymentReference, error) {
	ref := PaymentReference{Component: component, Area: area, ItemID: itemID, UserID: userID}
	if err := ref.Validate(); err != nil {
		return PaymentReference{}, err
	}
	return ref, nil
}

// Validate checks every field can be serialized and parsed back unambiguously
func (r PaymentReference) Validate() error {
	if r.Component == "" || strings.Contains(r.Component, ReferenceDelimiter) {
		return errs.NewValidationError("component", r.Component, "must be non-empty and contain no '-'")
	}
	if r.Area == "" || strings.Contains(r.Area, ReferenceDelimiter) {
		return errs.NewValidationError("paymentArea", r.Area, "must be non-empty and contain no '-'")
	}
	if r.ItemID == 0 {
		return errs.NewValidationError("itemId", "0", "must be positive")
	}
	if r.UserID == 0 {
		return errs.NewValidationError("userId", "0", "must be positive")
	}
	return nil
}

// String renders the payee note sent to the provider
func (r PaymentReference) String() string {
	return strings.Join([]string{
		r.Component,
		r.Area,
		strconv.FormatUint(r.ItemID, 10),
		strconv.FormatUint(r.UserID, 10),
	}, ReferenceDelimiter)
}

// ParsePaymentReference parses a payee note echoed back by the provider
func ParsePaymentReference(note string) (PaymentReference, error) {
	parts := strings.Split(note, ReferenceDelimiter)
	if len(parts) != 4 {
		return PaymentReference{}, errs.ErrInvalidReference
	}

	itemID, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return PaymentReference{}, errs.ErrInvalidReference
	}
	userID, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return PaymentReference{}, errs.ErrInvalidReference
	}

	ref := PaymentReference{Component: parts[0], Area: parts[1], ItemID: itemID, UserID: userID}
	if ref.Validate() != nil {
		return PaymentReference{}, errs.ErrInvalidReference
	}
	return ref, nil
}
