package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cacheport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	transactionUseCase "github.com/amirhossein-jamali/momo-gateway/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/provider/momo"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Settlement guard kinds
const (
	guardLocal    = "local"
	guardRedis    = "redis"
	guardDatabase = "database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		fatal(appLogger, "Failed to connect to database", err)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(ctx); err != nil {
		fatal(appLogger, "Failed to run migrations", err)
	}

	// Repositories
	surcharge, err := decimal.NewFromString(cfg.Gateway.SurchargePercent)
	if err != nil {
		fatal(appLogger, "Invalid gateway.surchargePercent", err)
	}
	payableRepo := repository.NewPayableRepository(dbManager.DB(), appLogger, surcharge)
	paymentRepo := repository.NewPaymentRepository(dbManager.DB(), tp, appLogger)

	seeds := make([]migration.PayableSeed, 0, len(cfg.Payables))
	for _, p := range cfg.Payables {
		seeds = append(seeds, migration.PayableSeed(p))
	}
	if err := migration.SeedPayables(ctx, payableRepo, seeds, appLogger); err != nil {
		fatal(appLogger, "Failed to seed payables", err)
	}

	guard, closeGuard := newSettlementGuard(ctx, cfg, dbManager, tp, appLogger)
	defer closeGuard()

	// Provider
	provider, err := momo.NewClient(momo.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if err != nil {
		fatal(appLogger, "Invalid provider configuration", err)
	}
	if cfg.Environment == config.Production && provider.IsSandbox() {
		appLogger.Warn("Production is running against the provider sandbox", map[string]any{
			"country": provider.Country(),
		})
	}

	// Use case
	serviceConfig := transactionUseCase.DefaultConfig()
	serviceConfig.GatewayName = cfg.Gateway.Name
	serviceConfig.BrandName = cfg.Gateway.BrandName
	serviceConfig.PollAttempts = cfg.Gateway.PollAttempts
	serviceConfig.PollInterval = cfg.Gateway.PollInterval
	serviceConfig.MaxCollisionRetries = cfg.Gateway.MaxCollisionRetries
	serviceConfig.GuardTTL = cfg.Gateway.GuardTTL
	serviceConfig.Retention = cfg.Gateway.Retention

	transactionService := transactionUseCase.NewTransactionService(transactionUseCase.Dependencies{
		UnitOfWork:   dbManager.CreateUnitOfWork(),
		Payables:     payableRepo,
		Delivery:     paymentRepo,
		Provider:     provider,
		Guard:        guard,
		TimeProvider: tp,
		Logger:       appLogger,
	}, serviceConfig)

	cleanup := scheduler.NewCleanupScheduler(transactionService, cfg.Gateway.CleanupInterval, appLogger)
	cleanup.Start()

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService, appLogger),
		Callback:    handler.NewCallbackHandler(transactionService, appLogger),
		Health:      handler.NewHealthHandler(dbManager, provider),
	}, routes.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.Issuer,
	}, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"sandbox":  provider.IsSandbox(),
			"country":  provider.Country(),
			"currency": momo.CurrencyForCountry(provider.Country()),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(appLogger, "Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}
	cleanup.Stop()

	appLogger.Info("Server exited gracefully", nil)
}

// newSettlementGuard builds the in-flight settlement lock. Redis and the
// database table are shared by every instance; the local guard only covers one process.
func newSettlementGuard(
	ctx context.Context,
	cfg *config.Config,
	dbManager *database.Manager,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (cacheport.SettlementGuard, func()) {
	kind := strings.ToLower(cfg.Gateway.Guard)
	if kind == "" && cfg.Redis.Addr != "" {
		kind = guardRedis
	}

	switch kind {
	case guardLocal:
		appLogger.Info("Using in-process settlement guard", nil)
		return cache.NewLocalGuard(tp), func() {}
	case guardRedis:
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			fatal(appLogger, "Failed to connect to redis", err)
		}
		appLogger.Info("Using redis settlement guard", map[string]any{
			"addr": cfg.Redis.Addr,
		})
		return cache.NewRedisGuard(client, cfg.Redis.KeyPrefix, appLogger), func() { _ = client.Close() }
	default:
		appLogger.Info("Using database settlement guard", nil)
		return repository.NewSettlementLockRepository(dbManager.DB(), tp, appLogger), func() {}
	}
}

func fatal(appLogger coreport.Logger, message string, err error) {
	appLogger.Error(message, map[string]any{
		"error": err.Error(),
	})
	_ = appLogger.Flush()
	os.Exit(1)
}
