package config

import "context"

// Loader reads a defaults file into the agnostic model.
type Loader interface {
	// Load reads the defaults file at path. A missing file is not an
	// error: the built-in defaults are returned. A present but
	// malformed file is an error.
	Load(ctx context.Context, path string) (Defaults, error)
}
