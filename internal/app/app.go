package app

import (
	"io"
	"log/slog"

	"github.com/vk/pvcircus/internal/config"
	"github.com/vk/pvcircus/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// Datum is the value stored in the registry for every loaded entry.
type Datum struct {
	Value any
	Units string
	File  string
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW, through the App's own isolated logger.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// ToBatch translates loaded entries into one registration batch, preserving
// their order.
func ToBatch(model *config.Model) []registry.Entry {
	batch := make([]registry.Entry, 0, len(model.Entries))
	for _, e := range model.Entries {
		batch = append(batch, registry.Entry{
			Key:   e.Key,
			Value: Datum{Value: e.Value, Units: e.Units, File: e.File},
			Meta:  e.Meta,
		})
	}
	return batch
}
