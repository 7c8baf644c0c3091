// Package cache stores rendered artifacts keyed by document content.
//
// Rendering through Graphviz or rsvg-convert is the slowest thing the tool
// does, and the same document is often exported repeatedly (the watch
// command, the HTTP export route). Artifacts are keyed by the document hash
// plus the rendering options, so any edit to a map yields a fresh key and
// stale entries simply expire.
//
// Two implementations are provided:
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [NullCache]: stores nothing, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// TTLArtifact is the lifetime of a rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with expiry.
type Cache interface {
	// Get returns the data stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}
