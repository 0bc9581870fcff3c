package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
)

var newRedisStore = func(ctx context.Context, url string) (cache.Store, func() error, error) {
	store, err := cache.NewRedisStore(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// buildCacheStore picks the memo backend. A Redis backend that cannot be reached
// falls back to memory so the service still starts.
func buildCacheStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Store, func() error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == config.CacheBackendRedis {
		store, closeFn, err := newRedisStore(ctx, cfg.RedisURL)
		if err == nil {
			logging.Info(logger, "cache backend ready", "backend", config.CacheBackendRedis)
			return store, closeFn
		}
		logging.Warn(logger, "redis cache unavailable, falling back to memory", "error", err)
	} else if backend != config.CacheBackendMemory && backend != "" {
		logging.Warn(logger, "unknown cache backend, using memory", "backend", cfg.Backend)
	}
	return cache.NewMemoryStore(cfg.Capacity), nil
}
