package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN             string `env:"DB_DSN"`
	DBConnectAttempts int    `env:"DB_CONNECT_ATTEMPTS" envDefault:"10"`
	ServerPort        string `env:"SERVER_PORT" envDefault:"8080"`
	SessionSecret     string `env:"SESSION_SECRET"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// default organization and admin created on first start
	AdminOrganization string `env:"ADMIN_ORGANIZATION" envDefault:"Default Organization"`
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin@aiact.local"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
}

var (
	ErrMissingDSN    = errors.New("DB_DSN is not set")
	ErrMissingSecret = errors.New("SESSION_SECRET is not set")
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBDSN == "" {
		return cfg, ErrMissingDSN
	}
	return cfg, nil
}

// Validate checks settings only the HTTP server needs.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSecret
	}
	if c.DBConnectAttempts < 1 {
		return fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive, got %d", c.DBConnectAttempts)
	}
	return nil
}
