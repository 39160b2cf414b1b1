package app

import (
	"io"
	"log/slog"

	"github.com/vk/flowgrid/internal/config"
	"github.com/vk/flowgrid/internal/registry"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath  string
	LogFormat string
	LogLevel  string
	Export    bool
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are passed, the compiled-in core set is used.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All node modules registered.", "kinds", reg.Kinds())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
