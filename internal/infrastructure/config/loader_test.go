package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  host: db.internal
  username: momo
  database: momo_gateway
provider:
  clientId: client-id
  apiKey: api-key
  country: UG
gateway:
  pollAttempts: 3
  pollInterval: 250
payables:
  - component: enrol_fee
    area: fee
    itemId: 13
    accountId: 1
    amount: "60"
    currency: EUR
`

func withConfigDir(t *testing.T, name, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = nil
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})
}

func TestLoadConfig(t *testing.T) {
	withConfigDir(t, Test, testYAML)
	t.Setenv("MOMO_ENV", "TEST")
	t.Setenv("MOMO_PROVIDER_SECRET", "primary-from-env")
	t.Setenv("MOMO_DB_HOST", "db.override")
	t.Setenv("MOMO_JWT_SECRET", "jwt-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "momo", cfg.Database.Username)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)

	assert.Equal(t, "client-id", cfg.Provider.ClientID)
	assert.Equal(t, "primary-from-env", cfg.Provider.Secret)
	assert.Equal(t, "sandbox", cfg.Provider.Environment)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, uint32(5), cfg.Provider.BreakerMaxFailures)

	assert.Equal(t, "mtnafrica", cfg.Gateway.Name)
	assert.Equal(t, 3, cfg.Gateway.PollAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Gateway.PollInterval)
	assert.Equal(t, 20, cfg.Gateway.MaxCollisionRetries)
	assert.Equal(t, 24*time.Hour, cfg.Gateway.Retention)
	assert.Equal(t, time.Hour, cfg.Gateway.CleanupInterval)

	assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "momo:settle:", cfg.Redis.KeyPrefix)

	require.Len(t, cfg.Payables, 1)
	assert.Equal(t, uint64(13), cfg.Payables[0].ItemID)
	assert.Equal(t, "60", cfg.Payables[0].Amount)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	withConfigDir(t, Production, "server:\n  port: 1\n")
	t.Setenv("MOMO_ENV", Development)

	_, err := LoadConfig()

	assert.Error(t, err)
}
