package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for integration tests against a real database.
// Tests are skipped unless MOMO_TEST_DB_HOST is set.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager or skips the test
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv("MOMO_TEST_DB_HOST")
	if host == "" {
		t.Skip("MOMO_TEST_DB_HOST not set, skipping database integration test")
	}

	driver := getEnvOrDefault("MOMO_TEST_DB_DRIVER", DriverPostgres)
	defaultPort := 5432
	if driver == DriverMySQL {
		defaultPort = 3306
	}

	config := &Config{
		Driver:          driver,
		Host:            host,
		Port:            getEnvIntOrDefault("MOMO_TEST_DB_PORT", defaultPort),
		Username:        getEnvOrDefault("MOMO_TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("MOMO_TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("MOMO_TEST_DB_DATABASE", "momo_gateway_test"),
		SSLMode:         getEnvOrDefault("MOMO_TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	timeProvider := timeprovider.NewRealTimeProvider()
	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})
	return db
}

// SetupTestDB recreates the gateway tables through the schema migrations
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	models := []any{
		&model.PaymentTransaction{},
		&model.Payable{},
		&model.Payment{},
		&model.SettlementLock{},
		&model.MigrationVersion{},
	}

	if err := db.Migrator().DropTable(models...); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	migrator := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)
	if err := migrator.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
}

// Helper functions to get environment variables or defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
