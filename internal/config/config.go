// Package config provides application configuration management using Viper.
// Configuration is loaded from YAML files and environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Store  StoreConfig  `mapstructure:"store"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Logger LoggerConfig `mapstructure:"logger"`
	Sentry SentryConfig `mapstructure:"sentry"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name  string `mapstructure:"name"`
	Env   string `mapstructure:"env"` // development, staging, production
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

// IsProduction reports whether the app runs in the production environment.
func (a *AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// StoreConfig holds the hosted resource store settings.
// URL and Key are the two required values; everything else has defaults.
type StoreConfig struct {
	Driver  string        `mapstructure:"driver"` // rest, postgres
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Table   string        `mapstructure:"table"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retry   RetryConfig   `mapstructure:"retry"`
	CB      CBConfig      `mapstructure:"circuit_breaker"`

	// Postgres driver only
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	MaxLifetime  time.Duration `mapstructure:"max_lifetime"`
	Migrate      bool          `mapstructure:"migrate"`
}

// RetryConfig holds retry settings.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	WaitTime    time.Duration `mapstructure:"wait_time"`
	MaxWaitTime time.Duration `mapstructure:"max_wait_time"`
}

// CBConfig holds circuit breaker settings.
type CBConfig struct {
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	BodyLimit int         `mapstructure:"body_limit"`
	Cache     CacheConfig `mapstructure:"cache"`
}

// CacheConfig holds the Cache-Control directive of the query gateway.
type CacheConfig struct {
	SharedMaxAge         time.Duration `mapstructure:"s_maxage"`
	StaleWhileRevalidate time.Duration `mapstructure:"stale_while_revalidate"`
}

// Header renders the Cache-Control header value.
func (c CacheConfig) Header() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(c.SharedMaxAge.Seconds()), int(c.StaleWhileRevalidate.Seconds()))
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
	Output string `mapstructure:"output"` // stdout, stderr, file path
}

// SentryConfig holds Sentry error tracking settings.
type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// Environment variables accepted for the two required store values.
var (
	StoreURLEnv = []string{"APP_STORE_URL", "SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL"}
	StoreKeyEnv = []string{"APP_STORE_KEY", "SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY"}
)

// Load reads configuration from file and environment variables.
// Priority: env vars > config file > defaults
//
// Load does not validate the store credentials; call StoreConfig.Validate.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Config file not found, continue with defaults + env vars
	}

	// Environment variable settings
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(append([]string{"store.url"}, StoreURLEnv...)...); err != nil {
		return nil, fmt.Errorf("binding store url env: %w", err)
	}
	if err := v.BindEnv(append([]string{"store.key"}, StoreKeyEnv...)...); err != nil {
		return nil, fmt.Errorf("binding store key env: %w", err)
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Store.URL = strings.TrimSpace(cfg.Store.URL)
	cfg.Store.Key = strings.TrimSpace(cfg.Store.Key)

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "resource-catalog-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.debug", false)

	// Store defaults
	v.SetDefault("store.driver", DriverREST)
	v.SetDefault("store.url", "")
	v.SetDefault("store.key", "")
	v.SetDefault("store.table", "resources")
	v.SetDefault("store.timeout", "10s")
	v.SetDefault("store.retry.max_attempts", 2)
	v.SetDefault("store.retry.wait_time", "200ms")
	v.SetDefault("store.retry.max_wait_time", "2s")
	v.SetDefault("store.circuit_breaker.max_requests", 3)
	v.SetDefault("store.circuit_breaker.interval", "60s")
	v.SetDefault("store.circuit_breaker.timeout", "30s")
	v.SetDefault("store.circuit_breaker.failure_ratio", 0.5)
	v.SetDefault("store.max_open_conns", 10)
	v.SetDefault("store.max_idle_conns", 2)
	v.SetDefault("store.max_lifetime", "5m")
	v.SetDefault("store.migrate", false)

	// HTTP defaults
	v.SetDefault("http.body_limit", 64*1024)
	v.SetDefault("http.cache.s_maxage", "60s")
	v.SetDefault("http.cache.stale_while_revalidate", "300s")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")

	// Sentry defaults
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)
}
