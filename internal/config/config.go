// file: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Events   EventsConfig
	Logging  LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
	RateLimitPerMin int
}

// DatabaseConfig holds database configuration. An empty URL switches
// the service to the in-memory repositories (development mode).
type DatabaseConfig struct {
	URL                 string
	MaxOpenConns        int
	MaxIdleConns        int
	ConnMaxLifetime     time.Duration
	ConnMaxIdleTime     time.Duration
	ConnectTimeout      time.Duration
	MigrationsPath      string
	HealthCheckInterval time.Duration
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	Provider   string // "memory" or "redis"
	RedisURL   string
	DefaultTTL time.Duration
	MaxEntries int
}

// EventsConfig holds event bus configuration
type EventsConfig struct {
	Workers   int
	QueueSize int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, .env included.
func Load() (*Config, error) {
	// Missing .env is fine in production; env vars take precedence.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("HOST", "0.0.0.0"),
			Port:            getEnv("PORT", "8080"),
			Environment:     getEnv("GO_ENV", "development"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			GracefulTimeout: getEnvDuration("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		},
		Database: DatabaseConfig{
			URL:                 getEnv("DATABASE_URL", ""),
			MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime:     getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime:     getEnvDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
			ConnectTimeout:      getEnvDuration("DB_CONNECT_TIMEOUT", 30*time.Second),
			MigrationsPath:      getEnv("DB_MIGRATIONS_PATH", "migrations"),
			HealthCheckInterval: getEnvDuration("DB_HEALTH_CHECK_INTERVAL", 30*time.Second),
		},
		Cache: CacheConfig{
			Provider:   getEnv("CACHE_PROVIDER", "memory"),
			RedisURL:   getEnv("REDIS_URL", ""),
			DefaultTTL: getEnvDuration("CACHE_DEFAULT_TTL", 5*time.Minute),
			MaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 10000),
		},
		Events: EventsConfig{
			Workers:   getEnvInt("EVENT_WORKERS", 4),
			QueueSize: getEnvInt("EVENT_QUEUE_SIZE", 256),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	applyEnvironmentDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvironmentDefaults tightens settings per environment
func applyEnvironmentDefaults(cfg *Config) {
	switch cfg.Server.Environment {
	case "production":
		if cfg.Logging.Level == "debug" {
			cfg.Logging.Level = "info"
		}
	case "development", "test":
		if os.Getenv("LOG_FORMAT") == "" {
			cfg.Logging.Format = "console"
		}
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	switch c.Server.Environment {
	case "development", "test", "staging", "production":
	default:
		return fmt.Errorf("unknown environment %q", c.Server.Environment)
	}

	if c.Server.Environment == "production" && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}

	switch c.Cache.Provider {
	case "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_PROVIDER is redis")
		}
	default:
		return fmt.Errorf("unknown cache provider %q", c.Cache.Provider)
	}

	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		c.Database.MaxIdleConns = c.Database.MaxOpenConns
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the host:port the server listens on
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// ===============================
// ENV HELPERS
// ===============================

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
