// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds the service settings.
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8443"`
	TLSCertFile     string        `envconfig:"TLS_CERT_FILE"`
	TLSKeyFile      string        `envconfig:"TLS_KEY_FILE"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"INFO"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	RedisAddr   string `envconfig:"REDIS_ADDR"`
	RedisPass   string `envconfig:"REDIS_PASS"`

	// ClientTTL bounds how long an issued client id is remembered when
	// REDIS_ADDR is set.
	ClientTTL time.Duration `envconfig:"CLIENT_TTL" default:"720h"`

	OTELHost         string  `envconfig:"OTEL_HOST"`
	TraceProbability float64 `envconfig:"TRACE_PROBABILITY" default:"1.0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.TraceProbability < 0 || c.TraceProbability > 1 {
		return fmt.Errorf("TRACE_PROBABILITY must be within [0,1], got %v", c.TraceProbability)
	}
	return nil
}

// TLSEnabled reports whether the server should serve HTTPS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}
