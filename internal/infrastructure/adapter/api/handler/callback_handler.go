package handler

import (
	"encoding/json"
	"io"
	"net/http"

	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// maxCallbackBody caps the notification body read from the provider
const maxCallbackBody = 64 << 10

// CallbackHandler receives asynchronous status notifications from the provider
type CallbackHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Handle answers every POST with 200 and an empty body; the provider only
// needs to know the notification arrived.
func (h *CallbackHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		c.Status(http.StatusMethodNotAllowed)
		return
	}
	defer c.Status(http.StatusOK)

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBody))
	if err != nil {
		h.logger.Warn("Failed to read callback body", map[string]any{
			"error": err.Error(),
		})
		return
	}

	h.logger.Info("Callback received", map[string]any{
		"body": string(body),
	})

	var req dto.CallbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("Malformed callback ignored", map[string]any{
			"error": err.Error(),
		})
		return
	}

	if err := h.transactionService.HandleCallback(c.Request.Context(), usecase.CallbackNotification{
		ExternalID: req.ExternalID,
		Status:     req.Status,
		Amount:     req.Amount.String(),
		Currency:   req.Currency,
		PayeeNote:  req.PayeeNote,
	}); err != nil {
		h.logger.Error("Failed to process callback", map[string]any{
			"reference": req.ExternalID,
			"error":     err.Error(),
		})
	}
}
