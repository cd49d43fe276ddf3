// Package config loads the runtime settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	LogLevel  slog.Level `env:"FIBER_LOG_LEVEL" envDefault:"WARN"`
	LogFormat string     `env:"FIBER_LOG_FORMAT" envDefault:"text"`
}

// Default returns the settings used when the environment sets nothing.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelWarn,
		LogFormat: FormatText,
	}
}

// Load reads the config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Default(), err
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat != FormatText && cfg.LogFormat != FormatJSON {
		return Default(), fmt.Errorf("parse env: unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

var (
	defaultOnce   sync.Once
	defaultLogger *slog.Logger
)

// DefaultLogger is the stderr logger built from the environment on first use.
// A malformed environment is reported once and the defaults are used.
func DefaultLogger() *slog.Logger {
	defaultOnce.Do(func() {
		cfg, err := Load()
		defaultLogger = NewLogger(cfg, os.Stderr)

		if err != nil {
			defaultLogger.Error("invalid fiber configuration, using defaults", slog.Any("error", err))
		}
	})

	return defaultLogger
}
