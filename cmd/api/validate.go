package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/provider/momo"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	required := map[string]string{
		"database.host":     cfg.Database.Host,
		"database.username": cfg.Database.Username,
		"database.password": cfg.Database.Password,
		"database.database": cfg.Database.Database,
		"auth.jwtSecret":    cfg.Auth.JWTSecret,
		"gateway.name":      cfg.Gateway.Name,
		"logger.level":      cfg.Logger.Level,
	}
	for key, value := range required {
		if value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s_%s)", key, config.EnvPrefix, envName(key)))
		}
	}

	if cfg.Gateway.PollAttempts <= 0 {
		missingConfigs = append(missingConfigs, "gateway.pollAttempts")
	}
	if cfg.Gateway.MaxCollisionRetries <= 0 {
		missingConfigs = append(missingConfigs, "gateway.maxCollisionRetries")
	}
	if cfg.Gateway.CleanupInterval <= 0 {
		missingConfigs = append(missingConfigs, "gateway.cleanupInterval")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	switch strings.ToLower(cfg.Gateway.Guard) {
	case "", guardLocal, guardDatabase:
	case guardRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("gateway.guard is redis but redis.addr is empty")
		}
	default:
		return fmt.Errorf("invalid gateway.guard value: %s, must be one of: %s, %s, or %s",
			cfg.Gateway.Guard, guardLocal, guardRedis, guardDatabase)
	}

	if _, err := decimal.NewFromString(cfg.Gateway.SurchargePercent); err != nil {
		return fmt.Errorf("gateway.surchargePercent must be a decimal: %w", err)
	}

	if err := momo.CreateConfigFromViperConfig(cfg).Validate(); err != nil {
		return err
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if strings.EqualFold(cfg.Provider.Environment, string(momo.EnvironmentSandbox)) {
			warnings = append(warnings, "provider.environment is sandbox, payments are not real")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != "mysql" && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
		}
		if cfg.Server.WriteTimeout < cfg.Gateway.PollInterval*time.Duration(cfg.Gateway.PollAttempts) {
			warnings = append(warnings, "server.writeTimeout is shorter than a full poll loop")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}

// envName maps a config key to the suffix of its environment override
func envName(key string) string {
	switch key {
	case "database.host":
		return "DB_HOST"
	case "database.username":
		return "DB_USERNAME"
	case "database.password":
		return "DB_PASSWORD"
	case "database.database":
		return "DB_NAME"
	case "auth.jwtSecret":
		return "JWT_SECRET"
	default:
		return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	}
}
