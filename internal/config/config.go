// Package config loads oafund settings from defaults, an optional
// config.yaml and OAFUND_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Snapshot store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

const envPrefix = "OAFUND"

// Config holds all configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ExchangeConfig holds rate provider and cache settings.
type ExchangeConfig struct {
	// ProviderURL is the latest-rates endpoint; the base code is appended.
	ProviderURL string `mapstructure:"provider_url"`
	// MaxAge is the freshness window of a cached snapshot.
	MaxAge time.Duration `mapstructure:"max_age"`
	// Timeout bounds one provider request.
	Timeout time.Duration `mapstructure:"timeout"`
	// Store selects the snapshot backend: memory, postgres or redis.
	Store string `mapstructure:"store"`
}

// PostgresConfig holds the snapshot table connection.
type PostgresConfig struct {
	// DSN is read from OAFUND_POSTGRES_DSN only.
	DSN      string `mapstructure:"-"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// RedisConfig holds the snapshot cache connection.
type RedisConfig struct {
	// URL is read from OAFUND_REDIS_URL only.
	URL string        `mapstructure:"-"`
	TTL time.Duration `mapstructure:"ttl"`
}

// CatalogConfig holds the currency catalog generator settings.
type CatalogConfig struct {
	SourceURL string `mapstructure:"source_url"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/oafund")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	loadSecrets(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadSecrets populates connection strings from the environment only, so
// credentials never live in config files.
func loadSecrets(cfg *Config) {
	cfg.Postgres.DSN = os.Getenv(envPrefix + "_POSTGRES_DSN")
	cfg.Redis.URL = os.Getenv(envPrefix + "_REDIS_URL")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)

	v.SetDefault("exchange.provider_url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("exchange.max_age", "24h")
	v.SetDefault("exchange.timeout", "10s")
	v.SetDefault("exchange.store", StoreMemory)

	v.SetDefault("postgres.max_conns", 4)
	v.SetDefault("redis.ttl", "48h")

	v.SetDefault("catalog.source_url", "https://www.six-group.com/dam/download/financial-information/data-center/iso-currrency/lists/list-one.xml")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Exchange.MaxAge <= 0 {
		return fmt.Errorf("exchange max_age must be positive, got %s", c.Exchange.MaxAge)
	}
	if c.Exchange.Timeout <= 0 {
		return fmt.Errorf("exchange timeout must be positive, got %s", c.Exchange.Timeout)
	}
	if u, err := url.Parse(c.Exchange.ProviderURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid exchange provider_url: %q", c.Exchange.ProviderURL)
	}

	switch c.Exchange.Store {
	case StoreMemory:
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("store %q requires %s_POSTGRES_DSN to be set", StorePostgres, envPrefix)
		}
		if c.Postgres.MaxConns <= 0 {
			return fmt.Errorf("postgres max_conns must be positive")
		}
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("store %q requires %s_REDIS_URL to be set", StoreRedis, envPrefix)
		}
		if c.Redis.TTL < c.Exchange.MaxAge {
			return fmt.Errorf("redis ttl (%s) must not be shorter than exchange max_age (%s)", c.Redis.TTL, c.Exchange.MaxAge)
		}
	default:
		return fmt.Errorf("unknown exchange store: %q", c.Exchange.Store)
	}

	return nil
}
