package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
	envVersion           = "APP_VERSION"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken        = "ADMIN_TOKEN"
	envStatsBaseURL      = "STATS_NBA_BASE_URL"
	envStatsTimeout      = "STATS_NBA_TIMEOUT"
	envSeason            = "NBA_SEASON"
	envTimezone          = "NBA_TIMEZONE"
	envLookaheadDays     = "SCHEDULE_LOOKAHEAD_DAYS"
	envScheduleTimeout   = "SCHEDULE_FETCH_TIMEOUT"
	envRecentGamesLimit  = "RECENT_GAMES_LIMIT"
	envNeutralZoneRank   = "NEUTRAL_ZONE_RANK"
	envTrackedTeams      = "TRACKED_TEAMS"
	envHeadshotURL       = "HEADSHOT_URL_TEMPLATE"
	envCacheBackend      = "CACHE_BACKEND"
	envRedisURL          = "REDIS_URL"
	envCachePrefix       = "CACHE_PREFIX"
	envCacheCapacity     = "CACHE_CAPACITY"
	envCacheTTLRoster    = "CACHE_TTL_ROSTER"
	envCacheTTLSchedule  = "CACHE_TTL_SCHEDULE"
	envCacheTTLDefense   = "CACHE_TTL_DEFENSE"
	envCacheTTLPlayer    = "CACHE_TTL_PLAYER"
	envWarmerEnabled     = "WARMER_ENABLED"
	envWarmerInterval    = "WARMER_INTERVAL"
	envCORSAllowedOrigin = "CORS_ALLOWED_ORIGINS"

	defaultPort         = "5000"
	defaultProvider     = ProviderStatsNBA
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nba-stats-aggregator"
	defaultStatsBaseURL = "https://stats.nba.com/stats"
	// stats.nba.com is slow under load; the original client waited this long.
	defaultStatsTimeout    = 30 * time.Second
	defaultSeason          = "2025-26"
	defaultTimezone        = "America/New_York"
	defaultScheduleTimeout = 5 * time.Second
	defaultCacheBackend    = CacheBackendMemory
	defaultCachePrefix     = "nbastats:"
	defaultCacheCapacity   = 256
	defaultTTLRoster       = 12 * time.Hour
	defaultTTLSchedule     = time.Hour
	defaultTTLDefense      = 12 * time.Hour
	defaultTTLPlayer       = 30 * time.Minute
	defaultWarmerInterval  = 30 * time.Minute
	defaultCORSOrigin      = "*"
)

// Provider names.
const (
	ProviderStatsNBA = "statsnba"
	ProviderFixture  = "fixture"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)
