package app

import (
	"context"
	"fmt"

	"github.com/vk/pvcircus/internal/ctxlog"
	"github.com/vk/pvcircus/internal/registry"
	"github.com/vk/pvcircus/internal/uncertainty"
)

// Run executes one full session and writes the report to the App's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fin, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := a.report(fin); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Resolve loads every data path, registers the result as one batch,
// finalizes the registry, and validates uncertainty bounds.
func (a *App) Resolve(ctx context.Context) (*registry.Finalized, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	a.logger.Debug("Loading data...", "paths", a.config.DataPaths)
	model, err := a.loader.Load(ctx, a.config.DataPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	for _, src := range model.Sources {
		a.logger.Info("Source loaded.", "name", src.Name, "timezone", src.Timezone, "file", src.File)
	}
	a.logger.Info("Data loaded.", "entries", len(model.Entries), "sources", len(model.Sources))

	reg := registry.New()
	if err := reg.Register(ctx, ToBatch(model)); err != nil {
		return nil, fmt.Errorf("failed to register data: %w", err)
	}

	fin, err := reg.Finalize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	a.logger.Info("Dependency order resolved.", "entries", fin.Len())

	if err := uncertainty.Check(ctx, fin); err != nil {
		return nil, fmt.Errorf("failed to validate uncertainty: %w", err)
	}

	return fin, nil
}
