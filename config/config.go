package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Crypto    CryptoConfig    `mapstructure:"crypto"`
	Log       LogConfig       `mapstructure:"log"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Currency  CurrencyConfig  `mapstructure:"currency"`
	SDK       SDKConfig       `mapstructure:"sdk"`
	Mediation MediationConfig `mapstructure:"mediation"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// StorageConfig selects where credentials, preferences and logs live.
// "memory" keeps everything in-process and disables redis-backed features.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// CryptoConfig configures encryption of security tokens at rest.
// AESKey wins over Passphrase when both are set.
type CryptoConfig struct {
	AESKey     string `mapstructure:"aes_key"` // 32-byte hex-encoded key for AES-256
	Passphrase string `mapstructure:"passphrase"`
	Salt       string `mapstructure:"salt"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// BackendConfig describes the rewards backend the gateway talks to.
type BackendConfig struct {
	Staging           bool              `mapstructure:"staging"`
	Timeout           time.Duration     `mapstructure:"timeout"`
	RequestsPerSecond float64           `mapstructure:"requests_per_second"`
	Burst             int               `mapstructure:"burst"`
	MaxResponseBytes  int64             `mapstructure:"max_response_bytes"`
	URLs              map[string]string `mapstructure:"urls"` // endpoint name -> URL override
}

type CurrencyConfig struct {
	CacheWindow      time.Duration `mapstructure:"cache_window"`
	ShowNotification bool          `mapstructure:"show_notification"`
	DefaultName      string        `mapstructure:"default_name"`
}

type SDKConfig struct {
	Version          string            `mapstructure:"version"`
	CustomParameters map[string]string `mapstructure:"custom_parameters"`
}

// MediationConfig holds per-network adapter settings keyed by adapter name.
type MediationConfig struct {
	Adapters map[string]map[string]interface{} `mapstructure:"adapters"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RMG_ (Rewards Mediation Gateway).
// Nested keys use underscore: RMG_DATABASE_HOST, RMG_BACKEND_STAGING, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "rewards_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "rewards-mediation-gateway")
	v.SetDefault("crypto.aes_key", "")
	v.SetDefault("crypto.passphrase", "")
	v.SetDefault("crypto.salt", "rewards-mediation-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("backend.staging", false)
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.requests_per_second", 20.0)
	v.SetDefault("backend.burst", 40)
	v.SetDefault("backend.max_response_bytes", 1<<20)
	v.SetDefault("currency.cache_window", "15s")
	v.SetDefault("currency.show_notification", true)
	v.SetDefault("currency.default_name", "coins")
	v.SetDefault("sdk.version", "6.5.2")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RMG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("RMG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Currency.CacheWindow <= 0 {
		return fmt.Errorf("currency.cache_window must be positive, got %s", c.Currency.CacheWindow)
	}
	return nil
}
