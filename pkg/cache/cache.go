// Package cache provides caching of rendered artifacts.
//
// Rendering an execution to SVG or PNG means running Graphviz layout, which
// dominates the cost of re-drawing an unchanged execution. The CLI caches
// rendered bytes keyed by a hash of the DOT text plus the output format, so
// repeated renders of the same selection are served from disk.
//
// Only derived artifacts are cached. Execution documents themselves are
// never persisted by this tool.
//
// Backends:
//   - FileCache: TTL-stamped files under a directory, for normal CLI use
//   - NullCache: no-op backend for --no-cache and tests
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact from the hash
	// of its DOT source and the output format.
	ArtifactKey(dotHash, format string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(dotHash, format string) string {
	return hashKey("artifact", dotHash, format)
}
