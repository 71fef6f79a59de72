// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings of the reference persistence server.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"CHATFLOW_ADDR" envDefault:":8080"`

	// RedisAddr enables the Redis listing cache when non-empty.
	RedisAddr     string        `env:"CHATFLOW_REDIS_ADDR"`
	RedisPassword string        `env:"CHATFLOW_REDIS_PASSWORD"`
	RedisDB       int           `env:"CHATFLOW_REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CHATFLOW_CACHE_TTL" envDefault:"30s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CHATFLOW_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
