package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration. It is read once at startup
// and treated as immutable afterwards.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Upstream UpstreamConfig `toml:"upstream"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Port                   int `toml:"port" env:"PORT,overwrite"`
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds" env:"SHUTDOWN_TIMEOUT_SECONDS,overwrite"`
}

// UpstreamConfig describes the D-ATIS provider
type UpstreamConfig struct {
	ICAO    string `toml:"icao" env:"icao,overwrite"`
	BaseURL string `toml:"base_url" env:"DATIS_BASE_URL,overwrite"`
	// Zero leaves the transport default in place
	TimeoutSeconds int `toml:"timeout_seconds" env:"DATIS_TIMEOUT_SECONDS,overwrite"`
}

// LoggingConfig mirrors logger.Config
type LoggingConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL,overwrite"`
	Format string `toml:"format" env:"LOG_FORMAT,overwrite"`
}

// Timeout returns the upstream request timeout, zero meaning none
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown window
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   3000,
			ShutdownTimeoutSeconds: 10,
		},
		Upstream: UpstreamConfig{
			BaseURL: "https://datis.clowd.io/api",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded into the environment first, then the optional TOML file at path
// is applied over the defaults, and finally environment variables win.
func Load(ctx context.Context, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadWith(ctx, path, envconfig.OsLookuper())
}

// LoadWith is Load without the .env step and with an explicit lookuper
func LoadWith(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late. The ICAO
// code and port are passed through as given.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream base_url must not be empty")
	}
	if c.Upstream.TimeoutSeconds < 0 {
		return errors.New("upstream timeout_seconds cannot be negative")
	}
	return nil
}
