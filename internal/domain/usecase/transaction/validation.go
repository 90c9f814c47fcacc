package transaction

import (
	"strings"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
)

const (
	minPhoneDigits = 6
	maxPhoneDigits = 15
)

// TransactionValidator provides validation for transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// StartInput is a validated start request
type StartInput struct {
	Reference entity.PaymentReference
	Phone     string
	Country   string
}

// ValidateStart validates a start request and normalizes the payer fields.
// Whether the provider serves the country is decided by the provider client.
func (v *TransactionValidator) ValidateStart(req usecase.StartRequest) (*StartInput, error) {
	ref, err := entity.NewPaymentReference(req.Component, req.Area, req.ItemID, req.UserID)
	if err != nil {
		return nil, err
	}

	phone, err := v.normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	country, err := v.normalizeCountry(req.Country)
	if err != nil {
		return nil, err
	}

	return &StartInput{Reference: ref, Phone: phone, Country: country}, nil
}

// ValidateCheck validates a check request
func (v *TransactionValidator) ValidateCheck(req usecase.CheckRequest) error {
	if strings.TrimSpace(req.Reference) == "" {
		return errs.NewValidationError("reference", req.Reference, "must not be empty")
	}
	if req.Component == "" {
		return errs.NewValidationError("component", req.Component, "must not be empty")
	}
	if req.Area == "" {
		return errs.NewValidationError("paymentArea", req.Area, "must not be empty")
	}
	if req.ItemID == 0 {
		return errs.NewValidationError("itemId", "0", "must be positive")
	}
	return nil
}

// normalizePhone strips formatting and checks the MSISDN is plausible
func (v *TransactionValidator) normalizePhone(phone string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	cleaned = strings.TrimPrefix(cleaned, "+")

	if len(cleaned) < minPhoneDigits || len(cleaned) > maxPhoneDigits {
		return "", errs.NewValidationError("phone", phone, "must hold 6 to 15 digits")
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", errs.NewValidationError("phone", phone, "must contain digits only")
		}
	}
	return cleaned, nil
}

// normalizeCountry checks the ISO 3166 alpha-2 shape
func (v *TransactionValidator) normalizeCountry(country string) (string, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if len(country) != 2 {
		return "", errs.NewValidationError("country", country, "must be an ISO 3166 alpha-2 code")
	}
	for _, r := range country {
		if r < 'A' || r > 'Z' {
			return "", errs.NewValidationError("country", country, "must be an ISO 3166 alpha-2 code")
		}
	}
	return country, nil
}
