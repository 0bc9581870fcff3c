package cache

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisPingTimeout = 5 * time.Second
	redisScanCount   = 100
)

// RedisStore keeps entries in Redis with native key expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at redisURL and verifies it with a ping.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Purge collects every key under prefix, then deletes them in batches. Keys are
// not deleted while the scan cursor is open, since some servers shift cursor
// offsets on delete.
func (s *RedisStore) Purge(ctx context.Context, prefix string) ([]string, error) {
	var matched []string
	iter := s.client.Scan(ctx, 0, escapeGlob(prefix)+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		matched = append(matched, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return []string{}, err
	}

	removed := make([]string, 0, len(matched))
	for start := 0; start < len(matched); start += redisScanCount {
		end := min(start+redisScanCount, len(matched))
		batch := matched[start:end]
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			sort.Strings(removed)
			return removed, err
		}
		removed = append(removed, batch...)
	}
	sort.Strings(removed)
	return removed, nil
}

// HealthCheck pings Redis to verify the connection.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var globReplacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globReplacer.Replace(s)
}
