package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/momo-gateway/mocks/port/usecase"
)

func newCallbackRouter(t *testing.T) (*gin.Engine, *musecase.MockTransactionUseCase) {
	service := musecase.NewMockTransactionUseCase(t)
	router := gin.New()
	router.Any("/callback", NewCallbackHandler(service, logger.NewNoopLogger()).Handle)
	return router, service
}

func postCallback(router *gin.Engine, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/callback", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCallbackHandler_Handle(t *testing.T) {
	t.Run("Only POST is allowed", func(t *testing.T) {
		router, _ := newCallbackRouter(t)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			w := postCallback(router, method, "")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		}
	})

	t.Run("Notification is handed to the use case", func(t *testing.T) {
		router, service := newCallbackRouter(t)
		service.EXPECT().HandleCallback(mock.Anything, usecase.CallbackNotification{
			ExternalID: "ref-1",
			Status:     "SUCCESSFUL",
			Amount:     "66",
			Currency:   "EUR",
			PayeeNote:  "enrol_fee-fee-13-4",
		}).Return(nil).Once()

		w := postCallback(router, http.MethodPost,
			`{"externalId":"ref-1","status":"SUCCESSFUL","amount":"66","currency":"EUR","payeeNote":"enrol_fee-fee-13-4"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Numeric amounts are accepted", func(t *testing.T) {
		router, service := newCallbackRouter(t)
		service.EXPECT().HandleCallback(mock.Anything, mock.MatchedBy(func(n usecase.CallbackNotification) bool {
			return n.Amount == "66.5"
		})).Return(nil).Once()

		w := postCallback(router, http.MethodPost, `{"externalId":"ref-1","status":"PENDING","amount":66.5}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Malformed body is ignored with 200", func(t *testing.T) {
		router, _ := newCallbackRouter(t)

		w := postCallback(router, http.MethodPost, `{"externalId":`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Processing failure still answers 200", func(t *testing.T) {
		router, service := newCallbackRouter(t)
		service.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(assert.AnError).Once()

		w := postCallback(router, http.MethodPost, `{"externalId":"ref-1","status":"SUCCESSFUL"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
