package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Provider    ProviderConfig  `mapstructure:"provider"`
	Gateway     GatewayConfig   `mapstructure:"gateway"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Payables    []PayableConfig `mapstructure:"payables"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// ProviderConfig holds the mobile money provider credentials
type ProviderConfig struct {
	ClientID           string        `mapstructure:"clientId"`
	APIKey             string        `mapstructure:"apiKey"`
	Secret             string        `mapstructure:"secret"`
	SecondarySecret    string        `mapstructure:"secondarySecret"`
	Country            string        `mapstructure:"country"`
	Environment        string        `mapstructure:"environment"` // sandbox or live
	CallbackHost       string        `mapstructure:"callbackHost"`
	BaseURL            string        `mapstructure:"baseUrl"`
	Timeout            time.Duration `mapstructure:"timeout"` // seconds
	BreakerMaxFailures uint32        `mapstructure:"breakerMaxFailures"`
	BreakerOpenTimeout time.Duration `mapstructure:"breakerOpenTimeout"` // seconds
}

// GatewayConfig contains the payment orchestration settings
type GatewayConfig struct {
	Name                string        `mapstructure:"name"`
	BrandName           string        `mapstructure:"brandName"`
	SurchargePercent    string        `mapstructure:"surchargePercent"`
	PollAttempts        int           `mapstructure:"pollAttempts"`
	PollInterval        time.Duration `mapstructure:"pollInterval"` // milliseconds
	MaxCollisionRetries int           `mapstructure:"maxCollisionRetries"`
	GuardTTL            time.Duration `mapstructure:"guardTtl"`        // seconds
	Retention           time.Duration `mapstructure:"retention"`       // hours
	CleanupInterval     time.Duration `mapstructure:"cleanupInterval"` // minutes
	Guard               string        `mapstructure:"guard"`           // local, redis or database
}

// RedisConfig contains the settlement guard store used when gateway.guard is redis
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// AuthConfig contains the bearer token settings of the payment API
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// PayableConfig is an item price seeded at startup
type PayableConfig struct {
	Component string `mapstructure:"component"`
	Area      string `mapstructure:"area"`
	ItemID    uint64 `mapstructure:"itemId"`
	AccountID uint64 `mapstructure:"accountId"`
	Amount    string `mapstructure:"amount"`
	Currency  string `mapstructure:"currency"`
}
