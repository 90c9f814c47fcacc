package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MOMO"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, covers a full poll loop
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")

	v.SetDefault("provider.environment", "sandbox")
	v.SetDefault("provider.timeout", 30)            // seconds
	v.SetDefault("provider.breakerMaxFailures", 5)  // consecutive failures
	v.SetDefault("provider.breakerOpenTimeout", 30) // seconds

	v.SetDefault("gateway.name", "mtnafrica")
	v.SetDefault("gateway.brandName", "MTN MoMo")
	v.SetDefault("gateway.surchargePercent", "0")
	v.SetDefault("gateway.pollAttempts", 10)
	v.SetDefault("gateway.pollInterval", 5000) // milliseconds
	v.SetDefault("gateway.maxCollisionRetries", 20)
	v.SetDefault("gateway.guardTtl", 30)        // seconds
	v.SetDefault("gateway.retention", 24)       // hours
	v.SetDefault("gateway.cleanupInterval", 60) // minutes
	v.SetDefault("gateway.guard", "")           // redis when redis.addr is set, else database

	v.SetDefault("redis.keyPrefix", "momo:settle:")

	v.SetDefault("auth.issuer", "momo-gateway")
}

// getEnvironment determines the environment to use based on MOMO_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// Nested keys are not picked up by AutomaticEnv during Unmarshal, so the
// sensitive ones are copied explicitly.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DB_HOST":                   "database.host",
		"DB_PORT":                   "database.port",
		"DB_DRIVER":                 "database.driver",
		"DB_USERNAME":               "database.username",
		"DB_PASSWORD":               "database.password",
		"DB_NAME":                   "database.database",
		"DB_SSL_MODE":               "database.sslMode",
		"SERVER_HOST":               "server.host",
		"SERVER_PORT":               "server.port",
		"LOGGER_LEVEL":              "logger.level",
		"PROVIDER_CLIENT_ID":        "provider.clientId",
		"PROVIDER_API_KEY":          "provider.apiKey",
		"PROVIDER_SECRET":           "provider.secret",
		"PROVIDER_SECONDARY_SECRET": "provider.secondarySecret",
		"PROVIDER_COUNTRY":          "provider.country",
		"PROVIDER_ENVIRONMENT":      "provider.environment",
		"PROVIDER_CALLBACK_HOST":    "provider.callbackHost",
		"PROVIDER_BASE_URL":         "provider.baseUrl",
		"GATEWAY_GUARD":             "gateway.guard",
		"REDIS_ADDR":                "redis.addr",
		"REDIS_PASSWORD":            "redis.password",
		"JWT_SECRET":                "auth.jwtSecret",
		"GATEWAY_SURCHARGE_PERCENT": "gateway.surchargePercent",
	}
	for env, key := range overrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if queryTimeout := getEnvInt(EnvPrefix+"_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if pollAttempts := getEnvInt(EnvPrefix+"_GATEWAY_POLL_ATTEMPTS", 0); pollAttempts > 0 {
		v.Set("gateway.pollAttempts", pollAttempts)
	}
	if redisDB := getEnvInt(EnvPrefix+"_REDIS_DB", -1); redisDB >= 0 {
		v.Set("redis.db", redisDB)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw unit counts read from the file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Provider.Timeout = time.Duration(config.Provider.Timeout) * time.Second
	config.Provider.BreakerOpenTimeout = time.Duration(config.Provider.BreakerOpenTimeout) * time.Second

	config.Gateway.PollInterval = time.Duration(config.Gateway.PollInterval) * time.Millisecond
	config.Gateway.GuardTTL = time.Duration(config.Gateway.GuardTTL) * time.Second
	config.Gateway.Retention = time.Duration(config.Gateway.Retention) * time.Hour
	config.Gateway.CleanupInterval = time.Duration(config.Gateway.CleanupInterval) * time.Minute
}
