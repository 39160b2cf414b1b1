package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads grid definitions from the given paths (files or
	// directories), translates them into the format-agnostic model,
	// and merges them.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
