package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles payment-related HTTP requests
type TransactionHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// StartTransaction handles the POST /api/v1/transactions endpoint
func (h *TransactionHandler) StartTransaction(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	var req dto.StartTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid start request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.transactionService.StartTransaction(c.Request.Context(), usecase.StartRequest{
		Component: req.Component,
		Area:      req.PaymentArea,
		ItemID:    req.ItemID,
		UserID:    userID,
		Phone:     req.Phone,
		Country:   req.Country,
	})
	if err != nil {
		h.writeError(c, "Failed to start transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.StartTransactionResponse{
		Reference:  result.Reference,
		Accepted:   result.Accepted,
		ReturnCode: result.StatusCode,
		Message:    result.Message,
	})
}

// CheckTransaction handles the POST /api/v1/transactions/:reference/check endpoint.
// With ?wait=true the request blocks on the bounded poll loop instead of checking once.
func (h *TransactionHandler) CheckTransaction(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	var req dto.CheckTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	checkReq := usecase.CheckRequest{
		Reference: c.Param("reference"),
		Component: req.Component,
		Area:      req.PaymentArea,
		ItemID:    req.ItemID,
		UserID:    userID,
	}

	var (
		result *usecase.CheckResult
		err    error
	)
	if wait, _ := strconv.ParseBool(c.Query("wait")); wait {
		result, err = h.transactionService.PollTransaction(c.Request.Context(), checkReq)
	} else {
		result, err = h.transactionService.CheckTransaction(c.Request.Context(), checkReq)
	}
	if err != nil {
		h.writeError(c, "Failed to check transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckTransactionResponse{
		Settled: result.Settled,
		Message: result.Message,
	})
}

// CheckoutConfig handles the GET /api/v1/checkout/config endpoint
func (h *TransactionHandler) CheckoutConfig(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	itemID, err := strconv.ParseUint(c.Query("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid item ID format",
		})
		return
	}

	cfg, err := h.transactionService.CheckoutConfig(
		c.Request.Context(),
		c.Query("component"),
		c.Query("paymentArea"),
		itemID,
		userID,
	)
	if err != nil {
		h.writeError(c, "Failed to build checkout config", err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutConfigResponse{
		BrandName:   cfg.BrandName,
		Country:     cfg.Country,
		Cost:        cfg.Cost,
		Currency:    cfg.Currency,
		UserID:      cfg.UserID,
		Reference:   cfg.PayeeNote,
		Sandbox:     cfg.Sandbox,
		PollRetries: cfg.PollRetries,
		PollEvery:   cfg.PollEvery,
	})
}

func (h *TransactionHandler) unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: "Unauthorized",
	})
}

// writeError maps a use case error to its HTTP status
func (h *TransactionHandler) writeError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrInvalidReference):
		status = http.StatusBadRequest
	case errors.Is(err, domainerr.ErrPayableNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerr.ErrReferenceCollision):
		status = http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		status = http.StatusServiceUnavailable
	}

	fields := map[string]any{"error": err.Error()}
	var logged interface{ LogFields() map[string]any }
	if errors.As(err, &logged) {
		for k, v := range logged.LogFields() {
			fields[k] = v
		}
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, fields)
	} else {
		h.logger.Warn(message, fields)
	}

	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		resp.Message = "Internal server error"
	}
	c.JSON(status, resp)
}
