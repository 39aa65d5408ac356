// Package config loads the API server configuration from an optional YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"qa-forum/internal/infra/db"
	env "qa-forum/pkg/config"
)

// DefaultPath is read when CONFIG_FILE is unset.
const DefaultPath = "config/server.yaml"

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ServerConfig is the complete runtime configuration of cmd/api.
type ServerConfig struct {
	Server    HTTPConfig      `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Stats     StatsConfig     `yaml:"stats"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	Addr              string        `yaml:"addr" validate:"required,hostname_port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gt=0"`
	// RequestTimeout bounds each handler; 0 disables the limit.
	RequestTimeout  time.Duration `yaml:"request_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver" validate:"oneof=postgres memory"`
	URL             string        `yaml:"url" validate:"required_if=Driver postgres"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gte=0"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" validate:"gte=0"`
	// Breaker wraps the pool in a circuit breaker.
	Breaker bool `yaml:"breaker"`
}

// Pool converts the pool settings for db.Open.
func (d DatabaseConfig) Pool() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
		ConnMaxIdleTime: d.ConnMaxIdleTime,
	}
}

// RateLimitConfig limits write requests per client.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps" validate:"gt=0"`
	Burst   int     `yaml:"burst" validate:"gte=1"`
}

// StatsConfig schedules the totals refresh. An empty schedule disables it.
type StatsConfig struct {
	Schedule string        `yaml:"schedule" validate:"omitempty,cron"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Default returns the configuration used when nothing is set.
func Default() ServerConfig {
	pool := db.DefaultConnectionConfig()
	return ServerConfig{
		Server: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Database: DatabaseConfig{
			Driver:          DriverMemory,
			MaxOpenConns:    pool.MaxOpenConns,
			MaxIdleConns:    pool.MaxIdleConns,
			ConnMaxLifetime: pool.ConnMaxLifetime,
			ConnMaxIdleTime: pool.ConnMaxIdleTime,
			Breaker:         true,
		},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 10, Burst: 20},
		Stats:     StatsConfig{Schedule: "@every 1m", Timeout: 30 * time.Second},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates the result.
// A missing file is not an error.
func Load(path string) (*ServerConfig, error) {
	cfg := Default()

	// #nosec G304 -- path comes from CONFIG_FILE or the built-in default
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by CONFIG_FILE, or DefaultPath.
func LoadFromEnv() (*ServerConfig, error) {
	return Load(env.GetEnvString("CONFIG_FILE", DefaultPath))
}

func (c *ServerConfig) applyEnv() {
	c.Server.Addr = env.GetEnvString("HTTP_ADDR", c.Server.Addr)
	c.Server.ReadHeaderTimeout = env.GetEnvDuration("READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout)
	c.Server.RequestTimeout = env.GetEnvDuration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.ShutdownTimeout = env.GetEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.MaxBodyBytes = env.GetEnvInt64("MAX_BODY_BYTES", c.Server.MaxBodyBytes)

	// A database URL alone selects Postgres.
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.Database.URL = url
		c.Database.Driver = DriverPostgres
	}
	c.Database.Driver = env.GetEnvString("DB_DRIVER", c.Database.Driver)
	c.Database.MaxOpenConns = env.GetEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = env.GetEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = env.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.ConnMaxIdleTime = env.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime)
	c.Database.Breaker = env.GetEnvBool("DB_CIRCUIT_BREAKER", c.Database.Breaker)

	c.RateLimit.Enabled = env.GetEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = env.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = env.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)

	if v, ok := os.LookupEnv("STATS_SCHEDULE"); ok {
		c.Stats.Schedule = v
	}
	c.Stats.Timeout = env.GetEnvDuration("STATS_TIMEOUT", c.Stats.Timeout)

	c.Log.Level = env.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = env.GetEnvString("LOG_FORMAT", c.Log.Format)
}
