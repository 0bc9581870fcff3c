package server

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/testutil"
)

func TestBuildCacheStoreDefaultsToMemory(t *testing.T) {
	for _, backend := range []string{"", "memory", "bogus"} {
		store, closeFn := buildCacheStore(context.Background(), config.CacheConfig{Backend: backend, Capacity: 4}, nil)
		if _, ok := store.(*cache.MemoryStore); !ok {
			t.Fatalf("backend %q: expected memory store, got %T", backend, store)
		}
		if closeFn != nil {
			t.Fatalf("backend %q: expected no close func for memory store", backend)
		}
	}
}

func TestBuildCacheStoreUsesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, closeFn := buildCacheStore(context.Background(), config.CacheConfig{
		Backend:  config.CacheBackendRedis,
		RedisURL: "redis://" + mr.Addr(),
	}, nil)
	if _, ok := store.(*cache.RedisStore); !ok {
		t.Fatalf("expected redis store, got %T", store)
	}
	if closeFn == nil {
		t.Fatalf("expected close func for redis store")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestBuildCacheStoreFallsBackWhenRedisUnavailable(t *testing.T) {
	orig := newRedisStore
	defer func() { newRedisStore = orig }()
	newRedisStore = func(context.Context, string) (cache.Store, func() error, error) {
		return nil, nil, errors.New("connection refused")
	}

	logger, buf := testutil.NewBufferLogger()
	store, _ := buildCacheStore(context.Background(), config.CacheConfig{Backend: "REDIS"}, logger)
	if _, ok := store.(*cache.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", store)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected fallback warning")
	}
}
