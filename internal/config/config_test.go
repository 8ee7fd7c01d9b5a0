package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/config"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadAPIConfig("", "")
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 120, cfg.Server.IdleTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int64(2017), cfg.Chain.ChainID)
	assert.Equal(t, "config/contracts.json", cfg.Chain.ContractsPath)
	assert.Equal(t, time.Hour, cfg.Company.RefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.Company.RequestTimeout)
	assert.False(t, cfg.ExplorerEnabled)
}

func TestLoadAPIConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
debug: true
explorer_enabled: true
server:
  port: 8080
database:
  host: db.internal
  dbname: ibet_indexer
auth:
  api_keys:
    - key-one
    - key-two
chain:
  rpc_url: http://localhost:8545
  token_list_address: "0x1000000000000000000000000000000000000001"
`)

	cfg, err := config.LoadAPIConfig(path, "")
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.ExplorerEnabled)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "ibet_indexer", cfg.Database.DBName)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
	assert.Equal(t, "0x1000000000000000000000000000000000000001", cfg.Chain.TokenListAddress)
	// untouched values keep their defaults
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, int64(2017), cfg.Chain.ChainID)
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("IBET_INDEXER_SERVER_PORT", "9000")
	t.Setenv("IBET_INDEXER_DATABASE_HOST", "env-db")
	t.Setenv("IBET_INDEXER_CHAIN_RPC_URL", "http://env-node:8545")

	cfg, err := config.LoadAPIConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, "http://env-node:8545", cfg.Chain.RPCURL)
}

func TestLoadTokenSyncConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadTokenSyncConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.SecPerRecord)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)

	// all token templates are indexed unless disabled
	assert.True(t, cfg.Templates.BondEnabled)
	assert.True(t, cfg.Templates.ShareEnabled)
	assert.True(t, cfg.Templates.MembershipEnabled)
	assert.True(t, cfg.Templates.CouponEnabled)
	assert.Equal(t, domain.AllTemplates, cfg.Templates.EnabledTemplates())
}

func TestLoadTokenSyncConfig_DisableTemplates(t *testing.T) {
	path := writeConfigFile(t, `
templates:
  membership_enabled: false
  coupon_enabled: false
`)

	cfg, err := config.LoadTokenSyncConfig(path, "")
	require.NoError(t, err)

	assert.True(t, cfg.Templates.BondEnabled)
	assert.False(t, cfg.Templates.MembershipEnabled)
	assert.Equal(t,
		[]domain.TokenTemplate{domain.TemplateStraightBond, domain.TemplateShare},
		cfg.Templates.EnabledTemplates())
}

func TestLoadTokenSyncConfig_DisableTemplatesFromEnv(t *testing.T) {
	t.Setenv("IBET_INDEXER_TEMPLATES_SHARE_ENABLED", "false")

	cfg, err := config.LoadTokenSyncConfig("", "")
	require.NoError(t, err)

	assert.False(t, cfg.Templates.ShareEnabled)
	assert.NotContains(t, cfg.Templates.EnabledTemplates(), domain.TemplateShare)
}

func TestLoadBlockSyncConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadBlockSyncConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), cfg.BatchSize)
	assert.Equal(t, 20, cfg.WorkerPoolSize)
	assert.Equal(t, 10*time.Second, cfg.Interval)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestLoadEventEmitterConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadEventEmitterConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "IBET_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, 10, cfg.NATS.MaxReconnects)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Equal(t, uint64(100), cfg.CursorSaveFreq)
	assert.Equal(t, 30*time.Second, cfg.CursorSaveDelay)
}

func TestLoadEventBridgeConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadEventBridgeConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "IBET_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
	assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
	assert.Equal(t, 5, cfg.NATS.MaxDeliver)
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "ibet_indexer",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=ibet_indexer sslmode=disable",
		cfg.DSN())
}
