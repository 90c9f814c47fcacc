package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeUnsupportedCountry  = 4002
	CodeInvalidReference    = 4003
	CodeUnauthorized        = 4010
	CodeTransactionNotFound = 4040
	CodePayableNotFound     = 4041
	CodeReferenceCollision  = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeProviderTransport  = 5020
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidation is returned when request input fails validation
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedCountry is returned when the payer country is not served by the provider
	ErrUnsupportedCountry = errors.New("invalid country code")

	// ErrInvalidReference is returned when a payee note cannot be parsed into a payment reference
	ErrInvalidReference = errors.New("invalid payment reference")

	// ErrProviderTransport is returned when the provider could not be reached or answered garbage
	ErrProviderTransport = errors.New("provider transport failure")

	// ErrReferenceCollision is returned when the provider keeps rejecting generated references as duplicates
	ErrReferenceCollision = errors.New("conflict, duplicate reference id")

	// ErrSettlementMismatch is returned when a successful provider status does not match the expected payment
	ErrSettlementMismatch = errors.New("settlement mismatch")

	// ErrAlreadySettled is returned when a settle write finds the record already completed
	ErrAlreadySettled = errors.New("transaction already settled")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPayableNotFound is returned when no priced item exists for a component/area/item
	ErrPayableNotFound = errors.New("payable not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when the caller could not be authenticated
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateReference is returned when an insert hits the unique external reference
	ErrDuplicateReference = errors.New("transaction with this reference already exists")

	// ErrInvalidConfig is returned when required configuration is missing or malformed
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedCountry):
		return CodeUnsupportedCountry
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrPayableNotFound):
		return CodePayableNotFound
	case errors.Is(err, ErrReferenceCollision):
		return CodeReferenceCollision
	case errors.Is(err, ErrProviderTransport):
		return CodeProviderTransport
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", e.Err, e.Field, e.Value, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation or the wrapped error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"value":      e.Value,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error wrapping ErrValidation
func NewValidationError(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason, Err: ErrValidation}
}

// NewUnsupportedCountryError creates a validation error for a payer country outside the served set
func NewUnsupportedCountryError(country string) error {
	return &ValidationError{
		Field:  "country",
		Value:  country,
		Reason: "not supported by the provider",
		Err:    ErrUnsupportedCountry,
	}
}

// CollisionError is returned once the reference-collision retry bound is exhausted
type CollisionError struct {
	Attempts int
}

// Error implements the error interface
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: provider rejected %d generated references", ErrReferenceCollision, e.Attempts)
}

// Is checks if the target error is an ErrReferenceCollision
func (e *CollisionError) Is(target error) bool {
	return target == ErrReferenceCollision
}

// LogFields returns a map of fields for structured logging
func (e *CollisionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reference_collision",
		"attempts":   e.Attempts,
		"error_code": CodeReferenceCollision,
	}
}

// SettlementMismatchError carries the audit detail of a suspected fraudulent settlement.
// Callers only ever see a generic failure; this detail goes to logs and the flagged record.
type SettlementMismatchError struct {
	Reference        string
	ExpectedAmount   string
	ActualAmount     string
	ExpectedCurrency string
	ActualCurrency   string
	ExpectedUserID   uint64
	ActualNote       string
	Reason           string
}

// Error implements the error interface
func (e *SettlementMismatchError) Error() string {
	return fmt.Sprintf("settlement mismatch for %s: %s", e.Reference, e.Reason)
}

// Is checks if the target error is an ErrSettlementMismatch
func (e *SettlementMismatchError) Is(target error) bool {
	return target == ErrSettlementMismatch
}

// LogFields returns a map of fields for structured logging
func (e *SettlementMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "settlement_mismatch",
		"reference":         e.Reference,
		"expected_amount":   e.ExpectedAmount,
		"actual_amount":     e.ActualAmount,
		"expected_currency": e.ExpectedCurrency,
		"actual_currency":   e.ActualCurrency,
		"expected_user_id":  e.ExpectedUserID,
		"payee_note":        e.ActualNote,
		"reason":            e.Reason,
	}
}

// ProviderError wraps a transport failure talking to the provider
type ProviderError struct {
	Operation  string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status %d): %v", ErrProviderTransport, e.Operation, e.StatusCode, e.Err)
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrProviderTransport
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderTransport
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":  "provider_transport",
		"operation":   e.Operation,
		"status_code": e.StatusCode,
		"error_code":  CodeProviderTransport,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// IsValidationError checks if the error is a caller input problem
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrUnsupportedCountry) || errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) || errors.Is(err, ErrPayableNotFound)
}

// IsAlreadySettled checks if the error is a duplicate settlement attempt
func IsAlreadySettled(err error) bool {
	return errors.Is(err, ErrAlreadySettled)
}

// IsSettlementMismatch checks if the error is a fraud guard rejection
func IsSettlementMismatch(err error) bool {
	return errors.Is(err, ErrSettlementMismatch)
}
