package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
)

// Keys for the memoized operations.
const (
	KeyRoster       = "roster"
	KeySchedule     = "schedule"
	KeyDefenseRanks = "defense_ranks"
	playerKeyPrefix = "player:"
)

// PlayerKey returns the memo key for one player's bundle.
func PlayerKey(playerID int) string {
	return fmt.Sprintf("%s%d", playerKeyPrefix, playerID)
}

// LookupRecorder receives hit/miss outcomes per operation.
type LookupRecorder interface {
	RecordCacheLookup(operation string, hit bool)
}

// Memo is an explicit keyed memoization layer. Successful results are stored as
// JSON under prefix+key; errors are never stored. Concurrent misses for one key
// share a single computation.
type Memo struct {
	store    Store
	prefix   string
	recorder LookupRecorder
	logger   *slog.Logger
	group    singleflight.Group

	// computeTimeout bounds a shared computation once detached from its callers.
	computeTimeout time.Duration
}

// DefaultComputeTimeout caps one shared computation.
const DefaultComputeTimeout = 2 * time.Minute

// NewMemo wraps store. A nil store disables caching; every call computes.
func NewMemo(store Store, prefix string, recorder LookupRecorder, logger *slog.Logger) *Memo {
	return &Memo{
		store:    store,
		prefix:   prefix,
		recorder: recorder,
		logger:   logger,

		computeTimeout: DefaultComputeTimeout,
	}
}

// Remember returns the cached value for key, computing and storing it on a miss.
// A backend failure falls through to compute.
func Remember[T any](ctx context.Context, m *Memo, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if m == nil || m.store == nil {
		return compute(ctx)
	}

	if cached, ok := lookup[T](ctx, m, key); ok {
		m.record(key, true)
		return cached, nil
	}
	m.record(key, false)

	return load(ctx, m, key, ttl, compute)
}

// Refresh recomputes key and overwrites the stored value. On failure the
// previous entry is left in place.
func Refresh[T any](ctx context.Context, m *Memo, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if m == nil || m.store == nil {
		return compute(ctx)
	}
	return load(ctx, m, key, ttl, compute)
}

// Invalidate removes the given keys, or every key under the memo prefix when none
// are given. It returns the removed keys without the prefix.
func (m *Memo) Invalidate(ctx context.Context, keys ...string) ([]string, error) {
	if m == nil || m.store == nil {
		return []string{}, nil
	}
	if len(keys) == 0 {
		removed, err := m.store.Purge(ctx, m.prefix)
		for i, k := range removed {
			removed[i] = strings.TrimPrefix(k, m.prefix)
		}
		return removed, err
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = m.prefix + k
	}
	if err := m.store.Delete(ctx, full...); err != nil {
		return nil, err
	}
	return keys, nil
}

func lookup[T any](ctx context.Context, m *Memo, key string) (T, bool) {
	var zero T
	raw, err := m.store.Get(ctx, m.prefix+key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			logging.Warn(logging.FromContext(ctx, m.logger), "cache get failed", logging.FieldCacheKey, key, logging.FieldError, err)
		}
		return zero, false
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		logging.Warn(logging.FromContext(ctx, m.logger), "cache entry undecodable", logging.FieldCacheKey, key, logging.FieldError, err)
		return zero, false
	}
	logging.Debug(logging.FromContext(ctx, m.logger), "cache hit", logging.FieldCacheKey, key)
	return out, true
}

// load runs compute once per key across concurrent callers. The computation
// runs on a context detached from any single caller, so a caller that gives up
// returns its own context error while the others still get the shared result.
func load[T any](ctx context.Context, m *Memo, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	ch := m.group.DoChan(key, func() (any, error) {
		timeout := m.computeTimeout
		if timeout <= 0 {
			timeout = DefaultComputeTimeout
		}
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		value, err := compute(shared)
		if err != nil {
			return value, err
		}
		m.save(shared, key, ttl, value)
		return value, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (m *Memo) save(ctx context.Context, key string, ttl time.Duration, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, m.logger), "cache encode failed", logging.FieldCacheKey, key, logging.FieldError, err)
		return
	}
	if err := m.store.Set(ctx, m.prefix+key, raw, ttl); err != nil {
		logging.Warn(logging.FromContext(ctx, m.logger), "cache set failed", logging.FieldCacheKey, key, logging.FieldError, err)
	}
}

func (m *Memo) record(key string, hit bool) {
	if m.recorder == nil {
		return
	}
	m.recorder.RecordCacheLookup(operation(key), hit)
}

// operation collapses parameterized keys ("player:2544") to their family name.
func operation(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
