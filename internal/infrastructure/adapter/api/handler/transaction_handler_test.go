package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/momo-gateway/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser stands in for AuthRequired
func asUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func newTransactionRouter(t *testing.T, userID uint64) (*gin.Engine, *musecase.MockTransactionUseCase) {
	service := musecase.NewMockTransactionUseCase(t)
	h := NewTransactionHandler(service, logger.NewNoopLogger())

	router := gin.New()
	api := router.Group("/api/v1", asUser(userID))
	api.POST("/transactions", h.StartTransaction)
	api.POST("/transactions/:reference/check", h.CheckTransaction)
	api.GET("/checkout/config", h.CheckoutConfig)
	return router, service
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTransactionHandler_StartTransaction(t *testing.T) {
	body := dto.StartTransactionRequest{
		Component:   "enrol_fee",
		PaymentArea: "fee",
		ItemID:      13,
		Phone:       "46733123454",
		Country:     "UG",
	}

	t.Run("Accepted attempt returns its reference", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().StartTransaction(mock.Anything, usecase.StartRequest{
			Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4, Phone: "46733123454", Country: "UG",
		}).Return(&usecase.StartResult{Reference: "ref-1", Accepted: true, StatusCode: 202, Message: "Accepted"}, nil).Once()

		w := doJSON(router, http.MethodPost, "/api/v1/transactions", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.StartTransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.StartTransactionResponse{Reference: "ref-1", Accepted: true, ReturnCode: 202, Message: "Accepted"}, resp)
	})

	t.Run("Rejected attempt is still a 200", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().StartTransaction(mock.Anything, mock.Anything).
			Return(&usecase.StartResult{Accepted: false, StatusCode: 500, Message: "Internal error"}, nil).Once()

		w := doJSON(router, http.MethodPost, "/api/v1/transactions", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.StartTransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Accepted)
		assert.Empty(t, resp.Reference)
		assert.Equal(t, 500, resp.ReturnCode)
	})

	t.Run("Missing fields are rejected before the use case", func(t *testing.T) {
		router, _ := newTransactionRouter(t, 4)

		w := doJSON(router, http.MethodPost, "/api/v1/transactions", map[string]any{"component": "enrol_fee"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeValidation, decodeError(t, w).Code)
	})

	t.Run("Unauthenticated caller", func(t *testing.T) {
		router, _ := newTransactionRouter(t, 0)

		w := doJSON(router, http.MethodPost, "/api/v1/transactions", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"Unsupported country", domainerr.NewUnsupportedCountryError("XX"), http.StatusBadRequest, domainerr.CodeUnsupportedCountry},
		{"Invalid phone", domainerr.NewValidationError("phone", "abc", "must be digits"), http.StatusBadRequest, domainerr.CodeValidation},
		{"Unknown item", domainerr.ErrPayableNotFound, http.StatusNotFound, domainerr.CodePayableNotFound},
		{"Collision bound exhausted", &domainerr.CollisionError{Attempts: 20}, http.StatusConflict, domainerr.CodeReferenceCollision},
		{"Database down", domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable, domainerr.CodeDatabaseConnection},
		{"Unexpected failure", assert.AnError, http.StatusInternalServerError, domainerr.CodeInternalServer},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newTransactionRouter(t, 4)
			service.EXPECT().StartTransaction(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := doJSON(router, http.MethodPost, "/api/v1/transactions", body)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}

	t.Run("Internal errors are not leaked", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().StartTransaction(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		w := doJSON(router, http.MethodPost, "/api/v1/transactions", body)

		assert.Equal(t, "Internal server error", decodeError(t, w).Message)
	})
}

func TestTransactionHandler_CheckTransaction(t *testing.T) {
	body := dto.CheckTransactionRequest{Component: "enrol_fee", PaymentArea: "fee", ItemID: 13}
	want := usecase.CheckRequest{Reference: "ref-1", Component: "enrol_fee", Area: "fee", ItemID: 13, UserID: 4}

	t.Run("Single check", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().CheckTransaction(mock.Anything, want).
			Return(&usecase.CheckResult{Settled: true, Status: entity.ProviderStatusSuccessful, Message: "SUCCESSFUL"}, nil).Once()

		w := doJSON(router, http.MethodPost, "/api/v1/transactions/ref-1/check", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CheckTransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.CheckTransactionResponse{Settled: true, Message: "SUCCESSFUL"}, resp)
	})

	t.Run("Wait runs the bounded poll", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().PollTransaction(mock.Anything, want).
			Return(&usecase.CheckResult{Status: entity.ProviderStatusPending, Message: "PENDING"}, nil).Once()

		w := doJSON(router, http.MethodPost, "/api/v1/transactions/ref-1/check?wait=true", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CheckTransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Settled)
		assert.Equal(t, "PENDING", resp.Message)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := newTransactionRouter(t, 4)

		w := doJSON(router, http.MethodPost, "/api/v1/transactions/ref-1/check", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionHandler_CheckoutConfig(t *testing.T) {
	t.Run("Renders the checkout data", func(t *testing.T) {
		router, service := newTransactionRouter(t, 4)
		service.EXPECT().CheckoutConfig(mock.Anything, "enrol_fee", "fee", uint64(13), uint64(4)).
			Return(&usecase.CheckoutConfig{
				BrandName:   "Medical Access",
				Country:     "UG",
				Cost:        "66.00",
				Currency:    "EUR",
				UserID:      4,
				PayeeNote:   "enrol_fee-fee-13-4",
				Sandbox:     true,
				PollRetries: 10,
				PollEvery:   20000,
			}, nil).Once()

		w := doJSON(router, http.MethodGet, "/api/v1/checkout/config?component=enrol_fee&paymentArea=fee&itemId=13", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CheckoutConfigResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "enrol_fee-fee-13-4", resp.Reference)
		assert.Equal(t, "66.00", resp.Cost)
		assert.Equal(t, int64(20000), resp.PollEvery)
	})

	t.Run("Item id must be numeric", func(t *testing.T) {
		router, _ := newTransactionRouter(t, 4)

		w := doJSON(router, http.MethodGet, "/api/v1/checkout/config?component=enrol_fee&paymentArea=fee&itemId=x", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
