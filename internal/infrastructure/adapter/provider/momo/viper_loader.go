package momo

import (
	"strings"

	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the loaded application configuration to a client configuration
func CreateConfigFromViperConfig(conf *config.Config) Config {
	return Config{
		ClientID:           conf.Provider.ClientID,
		APIKey:             conf.Provider.APIKey,
		Secret:             conf.Provider.Secret,
		SecondarySecret:    conf.Provider.SecondarySecret,
		Country:            conf.Provider.Country,
		Environment:        Environment(strings.ToLower(conf.Provider.Environment)),
		CallbackHost:       conf.Provider.CallbackHost,
		BaseURL:            conf.Provider.BaseURL,
		Timeout:            conf.Provider.Timeout,
		BreakerMaxFailures: conf.Provider.BreakerMaxFailures,
		BreakerOpenTimeout: conf.Provider.BreakerOpenTimeout,
	}
}
