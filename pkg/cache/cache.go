// Package cache provides byte caches for rendered drawings.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: stores nothing; every Get misses
//   - [FileCache]: one JSON entry per key under a directory, for the CLI
//   - [RedisCache]: a shared cache for the preview server
//
// Keys are derived by a [Keyer] so that backends never see raw documents.
// The default keyer hashes a document digest together with the render
// options; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/drawset/pkg/errors"
)

// Cache stores opaque byte values by key. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options select and configure a backend.
type Options struct {
	Backend   string
	Dir       string // file backend
	RedisAddr string // redis backend
}

// Open returns the backend named by opts.Backend. An empty name selects
// the null cache.
func Open(opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "file cache needs a directory")
		}
		fc, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open file cache")
		}
		return fc, nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis cache needs an address")
		}
		return NewRedisCache(opts.RedisAddr), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (must be none, file or redis)", opts.Backend)
}
