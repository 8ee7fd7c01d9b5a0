package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// ChainConfig holds ibet network connection configuration
type ChainConfig struct {
	RPCURL            string   `mapstructure:"rpc_url"`
	WebSocketURL      string   `mapstructure:"websocket_url"`
	ChainID           int64    `mapstructure:"chain_id"`
	TokenListAddress  string   `mapstructure:"token_list_address"`
	ExchangeAddresses []string `mapstructure:"exchange_addresses"`
	StartBlock        uint64   `mapstructure:"start_block"`
	ContractsPath     string   `mapstructure:"contracts_path"`
}

// CompanyConfig holds company list resolver configuration
type CompanyConfig struct {
	ListURL         string        `mapstructure:"list_url"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// TemplateConfig holds the per-template enable flags for the token-sync
// worker
type TemplateConfig struct {
	BondEnabled       bool `mapstructure:"bond_enabled"`
	ShareEnabled      bool `mapstructure:"share_enabled"`
	MembershipEnabled bool `mapstructure:"membership_enabled"`
	CouponEnabled     bool `mapstructure:"coupon_enabled"`
}

// EnabledTemplates returns the token templates the worker should index
func (c *TemplateConfig) EnabledTemplates() []domain.TokenTemplate {
	var templates []domain.TokenTemplate
	if c.BondEnabled {
		templates = append(templates, domain.TemplateStraightBond)
	}
	if c.ShareEnabled {
		templates = append(templates, domain.TemplateShare)
	}
	if c.MembershipEnabled {
		templates = append(templates, domain.TemplateMembership)
	}
	if c.CouponEnabled {
		templates = append(templates, domain.TemplateCoupon)
	}
	return templates
}

// TokenSyncConfig holds configuration for the token-sync worker
type TokenSyncConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Database        DatabaseConfig `mapstructure:"database"`
	Chain           ChainConfig    `mapstructure:"chain"`
	Company         CompanyConfig  `mapstructure:"company"`
	Templates       TemplateConfig `mapstructure:"templates"`
	SecPerRecord    time.Duration  `mapstructure:"sec_per_record"`
	RefreshInterval time.Duration  `mapstructure:"refresh_interval"`
}

// BlockSyncConfig holds configuration for the block-sync worker
type BlockSyncConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Database       DatabaseConfig `mapstructure:"database"`
	Chain          ChainConfig    `mapstructure:"chain"`
	BatchSize      uint64         `mapstructure:"batch_size"`
	WorkerPoolSize int            `mapstructure:"worker_pool_size"`
	Interval       time.Duration  `mapstructure:"interval"`
}

// EventEmitterConfig holds configuration for event-emitter
type EventEmitterConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Database        DatabaseConfig `mapstructure:"database"`
	NATS            NATSConfig     `mapstructure:"nats"`
	Chain           ChainConfig    `mapstructure:"chain"`
	CursorSaveFreq  uint64         `mapstructure:"cursor_save_freq"`
	CursorSaveDelay time.Duration  `mapstructure:"cursor_save_delay"`
}

// EventBridgeConfig holds configuration for event-bridge
type EventBridgeConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Chain      ChainConfig    `mapstructure:"chain"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Server          ServerConfig   `mapstructure:"server"`
	Database        DatabaseConfig `mapstructure:"database"`
	Auth            AuthConfig     `mapstructure:"auth"`
	Chain           ChainConfig    `mapstructure:"chain"`
	Company         CompanyConfig  `mapstructure:"company"`
	ExplorerEnabled bool           `mapstructure:"explorer_enabled"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.chain_id", 2017)
	v.SetDefault("chain.contracts_path", "config/contracts.json")
	v.SetDefault("company.refresh_interval", "1h")
	v.SetDefault("company.request_timeout", "10s")
	v.SetDefault("explorer_enabled", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadTokenSyncConfig loads configuration for the token-sync worker
func LoadTokenSyncConfig(configFile string, envPath string) (*TokenSyncConfig, error) {
	v := configureViper("token-sync", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("chain.chain_id", 2017)
	v.SetDefault("chain.contracts_path", "config/contracts.json")
	v.SetDefault("company.refresh_interval", "1h")
	v.SetDefault("company.request_timeout", "10s")
	v.SetDefault("templates.bond_enabled", true)
	v.SetDefault("templates.share_enabled", true)
	v.SetDefault("templates.membership_enabled", true)
	v.SetDefault("templates.coupon_enabled", true)
	v.SetDefault("sec_per_record", "3s")
	v.SetDefault("refresh_interval", "10m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config TokenSyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadBlockSyncConfig loads configuration for the block-sync worker
func LoadBlockSyncConfig(configFile string, envPath string) (*BlockSyncConfig, error) {
	v := configureViper("block-sync", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("chain.chain_id", 2017)
	v.SetDefault("batch_size", 1000)
	v.SetDefault("worker_pool_size", 20)
	v.SetDefault("interval", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config BlockSyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEventEmitterConfig loads configuration for event-emitter
func LoadEventEmitterConfig(configFile string, envPath string) (*EventEmitterConfig, error) {
	v := configureViper("event-emitter", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "IBET_EVENTS")
	v.SetDefault("chain.chain_id", 2017)
	v.SetDefault("chain.contracts_path", "config/contracts.json")
	v.SetDefault("cursor_save_freq", 100)
	v.SetDefault("cursor_save_delay", "30s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config EventEmitterConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEventBridgeConfig loads configuration for event-bridge
func LoadEventBridgeConfig(configFile string, envPath string) (*EventBridgeConfig, error) {
	v := configureViper("event-bridge", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "IBET_EVENTS")
	v.SetDefault("nats.consumer_name", "event-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("chain.chain_id", 2017)
	v.SetDefault("chain.contracts_path", "config/contracts.json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config EventBridgeConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/token-sync/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("IBET_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Chain
		"chain.rpc_url",
		"chain.websocket_url",
		"chain.chain_id",
		"chain.token_list_address",
		"chain.exchange_addresses",
		"chain.start_block",
		"chain.contracts_path",
		// Company
		"company.list_url",
		"company.refresh_interval",
		"company.request_timeout",
		// Token templates
		"templates.bond_enabled",
		"templates.share_enabled",
		"templates.membership_enabled",
		"templates.coupon_enabled",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker specific
		"sec_per_record",
		"refresh_interval",
		"batch_size",
		"worker_pool_size",
		"interval",
		"cursor_save_freq",
		"cursor_save_delay",
		"explorer_enabled",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
