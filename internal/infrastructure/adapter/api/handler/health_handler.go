package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// Health statuses
const (
	HealthOK       = "ok"
	HealthCritical = "critical"
	HealthDown     = "down"
)

const healthPingTimeout = 2 * time.Second

// DatabaseStatus is the part of the database manager the health check reads
type DatabaseStatus interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// ProviderEnvironment is the part of the provider client the health check reads
type ProviderEnvironment interface {
	IsSandbox() bool
	Country() string
}

// HealthHandler reports gateway readiness
type HealthHandler struct {
	db       DatabaseStatus
	provider ProviderEnvironment
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseStatus, provider ProviderEnvironment) *HealthHandler {
	return &HealthHandler{db: db, provider: provider}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	resp := dto.HealthResponse{
		Status: HealthOK,
		Provider: dto.ProviderHealth{
			Sandbox: h.provider.IsSandbox(),
			Country: h.provider.Country(),
		},
	}

	if resp.Provider.Sandbox {
		resp.Status = HealthCritical
		resp.Provider.Message = "provider is running against the sandbox, payments are not real"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		resp.Status = HealthDown
		resp.Database = dto.DatabaseHealth{Status: HealthDown, Error: err.Error()}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	metrics := h.db.PoolMetrics()
	resp.Database = dto.DatabaseHealth{
		Status:          HealthOK,
		OpenConnections: metrics.OpenConnections,
		InUse:           metrics.InUse,
	}
	c.JSON(http.StatusOK, resp)
}
