package server

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every server environment variable (IGTAX_ADDR, ...).
const EnvPrefix = "IGTAX"

// Config holds runtime configuration for the HTTP API.
type Config struct {
	Addr           string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	RateLimit      int           `envconfig:"RATE_LIMIT" default:"60"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read server environment: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("max body size must be positive, got %d", cfg.MaxBodyBytes)
	}
	return &cfg, nil
}
