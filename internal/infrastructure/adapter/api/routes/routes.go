package routes

import (
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Transaction *handler.TransactionHandler
	Callback    *handler.CallbackHandler
	Health      *handler.HealthHandler
}

// AuthConfig holds the bearer token settings for the protected routes
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// CallbackPath is where the provider posts payment notifications
const CallbackPath = "/callback"

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, auth AuthConfig, logger coreport.Logger) {
	router.GET("/health", handlers.Health.Check)

	// Provider webhook; method checking is done by the handler so it can answer 405
	router.Any(CallbackPath, handlers.Callback.Handle)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthRequired(auth.JWTSecret, auth.Issuer, logger))
	{
		api.POST("/transactions", handlers.Transaction.StartTransaction)
		api.POST("/transactions/:reference/check", handlers.Transaction.CheckTransaction)
		api.GET("/checkout/config", handlers.Transaction.CheckoutConfig)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	// The webhook is server to server and answers 405 to anything but POST
	router.Use(middleware.CORS(CallbackPath))
}
