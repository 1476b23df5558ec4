// Package common provides shared utilities for Hiver
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Hiver
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Alerts      AlertsConfig  `toml:"alerts"`
	SMTP        SMTPConfig    `toml:"smtp"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	OpenExchange OpenExchangeConfig `toml:"openexchange"`
	Binance      BinanceConfig      `toml:"binance"`
	Finnhub      FinnhubConfig      `toml:"finnhub"`
}

// OpenExchangeConfig holds Open Exchange Rates API configuration
type OpenExchangeConfig struct {
	BaseURL   string `toml:"base_url"`
	AppID     string `toml:"app_id"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *OpenExchangeConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// BinanceConfig holds Binance public API configuration
type BinanceConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BinanceConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// FinnhubConfig holds Finnhub API configuration
type FinnhubConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *FinnhubConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// AlertsConfig holds price alert loop configuration
type AlertsConfig struct {
	CheckInterval string `toml:"check_interval"`
}

// GetCheckInterval parses and returns the check interval duration
func (c *AlertsConfig) GetCheckInterval() time.Duration {
	d, err := time.ParseDuration(c.CheckInterval)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SMTPConfig holds outbound email configuration.
// Address is both the sender and the recipient of contact messages.
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Address  string `toml:"address"`
	Password string `toml:"password"`
}

// Configured reports whether enough SMTP settings are present to send mail.
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port > 0 && c.Address != ""
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Clients: ClientsConfig{
			OpenExchange: OpenExchangeConfig{
				BaseURL:   "https://openexchangerates.org/api",
				RateLimit: 5,
				Timeout:   "10s",
			},
			Binance: BinanceConfig{
				BaseURL:   "https://api.binance.com",
				RateLimit: 10,
				Timeout:   "5s",
			},
			Finnhub: FinnhubConfig{
				BaseURL:   "https://finnhub.io/api/v1",
				RateLimit: 10,
				Timeout:   "10s",
			},
		},
		Alerts: AlertsConfig{
			CheckInterval: "30s",
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is loaded first so the overrides
// below can see it.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("HIVER_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("HIVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("HIVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("HIVER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	// API credentials use unprefixed names so the same .env works across tooling
	if v := os.Getenv("OPENEXCHANGE_APP_ID"); v != "" {
		config.Clients.OpenExchange.AppID = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		config.Clients.Finnhub.APIKey = v
	}

	if v := os.Getenv("HIVER_SMTP_HOST"); v != "" {
		config.SMTP.Host = v
	}
	if v := os.Getenv("HIVER_SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			config.SMTP.Port = p
		}
	}
	if v := os.Getenv("HIVER_SMTP_ADDRESS"); v != "" {
		config.SMTP.Address = v
	}
	if v := os.Getenv("HIVER_SMTP_PASSWORD"); v != "" {
		config.SMTP.Password = v
	}

	if v := os.Getenv("HIVER_ALERT_INTERVAL"); v != "" {
		config.Alerts.CheckInterval = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
