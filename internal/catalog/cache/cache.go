package cache

import (
	"context"
	"errors"
)

// Cache stores raw catalog API payloads keyed by query identity
// ("products", "categories", "product:42", ...). Keying per query is what
// keeps a superseded fetch from clobbering a fresher entry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrCacheMiss = errors.New("cache miss")
