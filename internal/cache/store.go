// Package cache memoizes computed payloads behind a pluggable key/value store.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is a byte-oriented key/value backend with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Purge removes every key starting with prefix and returns the removed keys.
	Purge(ctx context.Context, prefix string) ([]string, error)
}
