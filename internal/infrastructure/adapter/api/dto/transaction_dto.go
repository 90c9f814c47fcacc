package dto

import "encoding/json"

// StartTransactionRequest represents the API request for starting a payment
type StartTransactionRequest struct {
	Component   string `json:"component" binding:"required"`
	PaymentArea string `json:"paymentArea" binding:"required"`
	ItemID      uint64 `json:"itemId" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Country     string `json:"country" binding:"required"`
}

// StartTransactionResponse represents the API response for a started payment
type StartTransactionResponse struct {
	Reference  string `json:"reference,omitempty"`
	Accepted   bool   `json:"accepted"`
	ReturnCode int    `json:"returnCode"`
	Message    string `json:"message"`
}

// CheckTransactionRequest represents the API request for checking a payment
type CheckTransactionRequest struct {
	Component   string `json:"component" binding:"required"`
	PaymentArea string `json:"paymentArea" binding:"required"`
	ItemID      uint64 `json:"itemId" binding:"required"`
}

// CheckTransactionResponse represents the API response for a checked payment
type CheckTransactionResponse struct {
	Settled bool   `json:"settled"`
	Message string `json:"message"`
}

// CheckoutConfigResponse carries what the checkout page needs
type CheckoutConfigResponse struct {
	BrandName   string `json:"brandName"`
	Country     string `json:"country"`
	Cost        string `json:"cost"`
	Currency    string `json:"currency"`
	UserID      uint64 `json:"userId"`
	Reference   string `json:"reference"`
	Sandbox     bool   `json:"sandbox"`
	PollRetries int    `json:"pollRetries"`
	PollEvery   int64  `json:"pollEvery"`
}

// CallbackRequest is the notification body pushed by the provider
type CallbackRequest struct {
	ExternalID string      `json:"externalId"`
	Status     string      `json:"status"`
	Amount     json.Number `json:"amount"`
	Currency   string      `json:"currency"`
	PayeeNote  string      `json:"payeeNote"`
}
