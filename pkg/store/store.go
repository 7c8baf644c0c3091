// Package store persists map documents by id.
//
// Four backends implement [Store]:
//   - [MemoryStore]: in-process, for tests and throwaway servers
//   - [FileStore]: one JSON file per map, for the CLI
//   - [RedisStore]: Redis keys under a prefix, for shared deployments
//   - [MongoStore]: a MongoDB collection, for shared deployments
//
// [Open] picks a backend from a URL:
//
//	memory://
//	file:///home/me/.local/share/roguemap
//	redis://localhost:6379/0
//	mongodb://localhost:27017/roguemap
//
// Ids are generated with [NewID] (random UUIDs) but any id accepted by
// [ValidateID] may be used, so CLI users can name their maps.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
)

// ErrNotFound is returned when no document is stored under an id.
var ErrNotFound = errors.New("map not found")

// ErrInvalidID is returned for ids that cannot be used as keys.
var ErrInvalidID = errors.New("invalid map id")

// Store persists documents. Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (document.Document, error)
	Put(ctx context.Context, id string, d document.Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// NewID returns a fresh random map id.
func NewID() string {
	return uuid.NewString()
}

// ValidateID checks that id is usable as a file name and key: 1 to 64
// characters from letters, digits, '-' and '_'.
func ValidateID(id string) error {
	if id == "" || len(id) > 64 {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

// Open returns the store described by rawURL.
func Open(ctx context.Context, rawURL string) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	switch u.Scheme {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(strings.TrimPrefix(rawURL, "file://"))
	case "redis", "rediss":
		return NewRedisStore(ctx, RedisConfig{URL: rawURL})
	case "mongodb", "mongodb+srv":
		db := strings.TrimPrefix(u.Path, "/")
		return NewMongoStore(ctx, MongoConfig{URI: rawURL, Database: db})
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}
}
