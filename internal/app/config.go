package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataPaths []string // .hcl, .yaml and .yml files or directories

	LogFormat string // text | json
	LogLevel  string // debug | info | warn | error
	Output    string // text | json

	level slog.Level
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.DataPaths) == 0 {
		return nil, errors.New("at least one data path is required")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if _, ok := logHandlers[cfg.LogFormat]; !ok {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.level = level

	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}

	return &cfg, nil
}
