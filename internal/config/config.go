package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Notify  NotifyConfig
	Pricing PricingConfig
	Logger  LoggerConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
}

// StorageConfig holds order storage configuration.
type StorageConfig struct {
	// DataDir is where order records are written, one JSON file per order.
	// Created on first use if absent.
	DataDir string `env:"DATA_DIR" envDefault:"data/orders"`
}

// NotifyConfig holds email notification configuration.
type NotifyConfig struct {
	// Enabled switches between the Resend mailer and a log-only notifier.
	Enabled bool   `env:"NOTIFY_ENABLED" envDefault:"true"`
	APIKey  string `env:"RESEND_API_KEY"`
	// To is the fixed operator address every order notification goes to.
	To      string        `env:"ORDER_NOTIFICATION_EMAIL"`
	From    string        `env:"NOTIFY_FROM" envDefault:"Zigueroutine <onboarding@resend.dev>"`
	Timeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
}

// PricingConfig holds VAT and eco-fee settings for cart totals.
type PricingConfig struct {
	VATRate float64 `env:"VAT_RATE" envDefault:"0.23"`
	// EcoFeeEnabled turns on the eco-fee catalogue variant: a fixed per-unit
	// charge on commercial tires, added before tax.
	EcoFeeEnabled bool    `env:"ECO_FEE_ENABLED" envDefault:"false"`
	EcoFee        float64 `env:"ECO_FEE" envDefault:"2.25"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "console"
}

// CORSConfig holds CORS configuration for the storefront UI origin.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load loads configuration from the environment. A .env file in the working
// directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}

	if c.Notify.Enabled {
		if c.Notify.APIKey == "" {
			return fmt.Errorf("RESEND_API_KEY is required when notifications are enabled")
		}
		if c.Notify.To == "" {
			return fmt.Errorf("ORDER_NOTIFICATION_EMAIL is required when notifications are enabled")
		}
	}

	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("notify timeout must be positive")
	}

	if c.Pricing.VATRate < 0 || c.Pricing.VATRate >= 1 {
		return fmt.Errorf("invalid VAT rate: %v (must be in [0, 1))", c.Pricing.VATRate)
	}

	if c.Pricing.EcoFee < 0 {
		return fmt.Errorf("eco-fee cannot be negative: %v", c.Pricing.EcoFee)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
