package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database"
)

type stubDatabase struct {
	pingErr error
	metrics database.ConnectionPoolMetrics
}

func (s stubDatabase) Ping(context.Context) error {
	return s.pingErr
}

func (s stubDatabase) PoolMetrics() database.ConnectionPoolMetrics {
	return s.metrics
}

type stubProvider struct {
	sandbox bool
}

func (s stubProvider) IsSandbox() bool {
	return s.sandbox
}

func (s stubProvider) Country() string {
	return "UG"
}

func checkHealth(t *testing.T, db DatabaseStatus, provider ProviderEnvironment) (int, dto.HealthResponse) {
	router := gin.New()
	router.GET("/health", NewHealthHandler(db, provider).Check)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthHandler_Check(t *testing.T) {
	t.Run("Live provider and reachable database", func(t *testing.T) {
		code, resp := checkHealth(t, stubDatabase{metrics: database.ConnectionPoolMetrics{OpenConnections: 3, InUse: 1}}, stubProvider{})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, HealthOK, resp.Status)
		assert.Equal(t, 3, resp.Database.OpenConnections)
		assert.Equal(t, "UG", resp.Provider.Country)
	})

	t.Run("Sandbox is critical", func(t *testing.T) {
		code, resp := checkHealth(t, stubDatabase{}, stubProvider{sandbox: true})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, HealthCritical, resp.Status)
		assert.True(t, resp.Provider.Sandbox)
		assert.NotEmpty(t, resp.Provider.Message)
	})

	t.Run("Unreachable database", func(t *testing.T) {
		code, resp := checkHealth(t, stubDatabase{pingErr: errors.New("connection refused")}, stubProvider{})

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, HealthDown, resp.Status)
		assert.Equal(t, "connection refused", resp.Database.Error)
	})
}
