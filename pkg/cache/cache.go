// Package cache provides pluggable artifact caching for the border
// generator.
//
// Generation is deterministic, so a rendered artifact can be cached
// forever under a key derived from the full parameter set: the same key
// always names byte-identical content. Three backends are provided:
//
//   - FileCache: on-disk cache for CLI usage (~/.cache/wigglyborder/)
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching entirely
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A ttl of 0 means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer derives cache keys from generation inputs.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact, given the
	// content hash of the serialized generation options and the output
	// format.
	ArtifactKey(optsHash, format string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(optsHash, format string) string {
	return hashKey("artifact", optsHash, format)
}
