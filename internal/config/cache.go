package config

import "time"

// CacheConfig selects the memo backend and per-operation lifetimes.
type CacheConfig struct {
	Backend     string
	RedisURL    string
	Prefix      string
	Capacity    int
	RosterTTL   time.Duration
	ScheduleTTL time.Duration
	DefenseTTL  time.Duration
	PlayerTTL   time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:     envOrDefault(envCacheBackend, defaultCacheBackend),
		RedisURL:    envOrDefault(envRedisURL, ""),
		Prefix:      envOrDefault(envCachePrefix, defaultCachePrefix),
		Capacity:    intEnvOrDefault(envCacheCapacity, defaultCacheCapacity),
		RosterTTL:   durationEnvOrDefault(envCacheTTLRoster, defaultTTLRoster),
		ScheduleTTL: durationEnvOrDefault(envCacheTTLSchedule, defaultTTLSchedule),
		DefenseTTL:  durationEnvOrDefault(envCacheTTLDefense, defaultTTLDefense),
		PlayerTTL:   durationEnvOrDefault(envCacheTTLPlayer, defaultTTLPlayer),
	}
}
