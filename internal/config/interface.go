package config

import "context"

// Loader is the interface for a format-specific data loader.
type Loader interface {
	// Load reads every file it understands under the given paths and
	// translates it into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
