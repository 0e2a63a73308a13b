package app

import (
	"errors"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // files to touch, in argument order

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("Paths is a required configuration field and cannot be empty")
	}

	// Logging settings come from the environment rather than the argument
	// list, so an invalid value falls back to its default instead of
	// failing the run.
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cfg.LogLevel = "warn"
	}

	return &cfg, nil
}
