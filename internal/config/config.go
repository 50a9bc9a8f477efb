package config

import (
	"errors"
	"time"
)

// Config represents the locale service configuration
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Cache       CacheConfig       `mapstructure:"cache"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects and configures the settings store backend
type StorageConfig struct {
	// Driver is "memory" or "postgres"
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// PostgresConfig represents PostgreSQL settings store configuration
type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MinConnections int    `mapstructure:"min_connections"`
}

// CacheConfig represents settings cache configuration
type CacheConfig struct {
	SettingsTTL time.Duration `mapstructure:"settings_ttl"`
	MaxSize     int           `mapstructure:"max_size"`
}

// RateLimiterConfig represents request rate limiting configuration
type RateLimiterConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// MetricsConfig represents Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("server.port must be between 1 and 65535")
	}
	if !isValidDriver(c.Storage.Driver) {
		return errors.New("storage.driver must be one of: memory, postgres")
	}
	if c.Storage.Driver == "postgres" {
		if c.Storage.Postgres.Host == "" {
			return errors.New("storage.postgres.host is required")
		}
		if c.Storage.Postgres.Database == "" {
			return errors.New("storage.postgres.database is required")
		}
		if c.Storage.Postgres.User == "" {
			return errors.New("storage.postgres.user is required")
		}
	}
	if c.Cache.SettingsTTL <= 0 {
		return errors.New("cache.settings_ttl must be positive")
	}
	if c.RateLimiter.Enabled && c.RateLimiter.RequestsPerSecond <= 0 {
		return errors.New("rate_limiter.requests_per_second must be positive")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	return nil
}

// isValidDriver checks if the storage driver is valid
func isValidDriver(driver string) bool {
	switch driver {
	case "memory", "postgres":
		return true
	default:
		return false
	}
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8090,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "memory",
			Postgres: PostgresConfig{
				Host:           "localhost",
				Port:           5432,
				Database:       "shelfline_locale",
				User:           "locale",
				Password:       "",
				MaxConnections: 20,
				MinConnections: 2,
			},
		},
		Cache: CacheConfig{
			SettingsTTL: 5 * time.Minute,
			MaxSize:     10000,
		},
		RateLimiter: RateLimiterConfig{
			Enabled:           false,
			RequestsPerSecond: 100,
			BurstSize:         200,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
