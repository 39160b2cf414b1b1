package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/flowgrid/internal/builder"
	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/pipeline"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, cfg.GridPath)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}
	a.logger.Debug("Grid loaded into unified model.",
		"nodes", len(model.Grid.Nodes), "connections", len(model.Grid.Connections))

	p := pipeline.New()
	if _, err := builder.Build(ctx, model.Grid, a.registry, p); err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	if cfg.Export {
		a.logger.Debug("Exporting pipeline structure.")
		return p.WriteDOT(a.outW)
	}

	if len(model.Grid.Nodes) == 0 {
		a.logger.Warn("No nodes found in grid, execution not required.")
		return nil
	}

	if !p.Valid() {
		return errors.New("pipeline failed validation: check slot wiring, producer consumption, cycles and connectivity")
	}
	a.logger.Debug("Pipeline validation passed.")

	a.logger.Info("Starting pipeline execution.")
	if err := p.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Execution finished.")

	return nil
}
