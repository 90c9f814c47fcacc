package momo

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
)

// Environment selects the provider deployment
type Environment string

// Environment values
const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

// Base URLs of the provider API
const (
	SandboxBaseURL = "https://sandbox.momodeveloper.mtn.com/"
	LiveBaseURL    = "https://api.mtn.com/"
)

// FakeClientID skips sandbox user provisioning; used against local fakes
const FakeClientID = "fakelogin"

// Config holds the credentials and tuning of a provider client
type Config struct {
	ClientID        string        // API user id
	APIKey          string        // API user key, replaced by a provisioned key in the sandbox
	Secret          string        // Primary subscription key (Ocp-Apim-Subscription-Key)
	SecondarySecret string        // Secondary subscription key, used when the primary is rejected
	Country         string        // Merchant country, selects the live target environment
	Environment     Environment   // sandbox or live
	CallbackHost    string        // Host announced when provisioning a sandbox user
	BaseURL         string        // Overrides the environment base URL
	Timeout         time.Duration // Per-request timeout

	BreakerMaxFailures uint32        // Consecutive failures before the breaker opens
	BreakerOpenTimeout time.Duration // How long the breaker stays open
}

// Validate checks every required field is present
func (c Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if c.Secret == "" {
		missing = append(missing, "secret")
	}
	if c.SecondarySecret == "" {
		missing = append(missing, "secondary_secret")
	}
	if c.Country == "" {
		missing = append(missing, "country")
	}
	if c.Environment == "" {
		missing = append(missing, "environment")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing provider settings %s", errs.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	if c.Environment != EnvironmentSandbox && c.Environment != EnvironmentLive {
		return fmt.Errorf("%w: provider environment must be sandbox or live, got %q", errs.ErrInvalidConfig, c.Environment)
	}
	if len(c.Country) != 2 {
		return fmt.Errorf("%w: provider country must be an ISO alpha-2 code, got %q", errs.ErrInvalidConfig, c.Country)
	}
	return nil
}

// baseURL returns the API root, always ending in a slash
func (c Config) baseURL() string {
	base := c.BaseURL
	if base == "" {
		base = LiveBaseURL
		if c.Environment == EnvironmentSandbox {
			base = SandboxBaseURL
		}
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

func (c Config) withDefaults() Config {
	c.Country = strings.ToUpper(c.Country)
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.BreakerMaxFailures == 0 {
		c.BreakerMaxFailures = 5
	}
	if c.BreakerOpenTimeout <= 0 {
		c.BreakerOpenTimeout = 30 * time.Second
	}
	return c
}
