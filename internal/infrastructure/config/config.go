package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all showcase service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LogConfig       `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8600" yaml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" yaml:"host"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" yaml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"enabled"`
}

// CatalogConfig holds catalog presentation configuration.
type CatalogConfig struct {
	DefaultTheme string `envconfig:"DEFAULT_THEME" default:"one-dark" yaml:"default_theme"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("showcase", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadFile loads configuration from a YAML file layered over the defaults.
// Environment variables still win over file values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var env Config
	if err := envconfig.Process("showcase", &env); err == nil {
		overlayEnv(cfg, &env)
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8600",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Catalog: CatalogConfig{
			DefaultTheme: "one-dark",
		},
	}
}

// overlayEnv applies explicitly-set environment values on top of file
// configuration. envconfig cannot distinguish defaults from set values, so
// only variables actually present in the environment are applied.
func overlayEnv(cfg, env *Config) {
	if _, ok := os.LookupEnv("SHOWCASE_PORT"); ok {
		cfg.Server.Port = env.Server.Port
	}
	if _, ok := os.LookupEnv("SHOWCASE_HOST"); ok {
		cfg.Server.Host = env.Server.Host
	}
	if _, ok := os.LookupEnv("SHOWCASE_LOG_LEVEL"); ok {
		cfg.Logging.Level = env.Logging.Level
	}
	if _, ok := os.LookupEnv("SHOWCASE_LOG_DEV"); ok {
		cfg.Logging.Development = env.Logging.Development
	}
	if _, ok := os.LookupEnv("SHOWCASE_RATE_LIMIT_RPS"); ok {
		cfg.RateLimit.RequestsPerSecond = env.RateLimit.RequestsPerSecond
	}
	if _, ok := os.LookupEnv("SHOWCASE_RATE_LIMIT_BURST"); ok {
		cfg.RateLimit.Burst = env.RateLimit.Burst
	}
	if _, ok := os.LookupEnv("SHOWCASE_RATE_LIMIT_ENABLED"); ok {
		cfg.RateLimit.Enabled = env.RateLimit.Enabled
	}
	if _, ok := os.LookupEnv("SHOWCASE_DEFAULT_THEME"); ok {
		cfg.Catalog.DefaultTheme = env.Catalog.DefaultTheme
	}
}
