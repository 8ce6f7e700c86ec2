// Package cache stores rendered artifacts between runs.
//
// # Overview
//
// Rendering a layout through Graphviz is the slowest step of the pipeline,
// so the rendered bytes (SVG, PNG, PDF, HTML, DOT) are cached under a key
// derived from the layout's hash and the render options. Layouts
// themselves are recomputed on every run and never cached.
//
// # Backends
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//
// # Keys
//
// A [Keyer] builds keys; [NewScopedKeyer] prefixes every key, for example
// to separate catalogs of different departments on one Redis instance.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the cached value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
