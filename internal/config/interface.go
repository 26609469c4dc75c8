package config

import "context"

// Loader is the interface for a DSL engine.
type Loader interface {
	// Load reads DSL source text and returns the intermediate document.
	// filename is used for diagnostics only.
	Load(ctx context.Context, filename string, src []byte) (*Document, error)
}
