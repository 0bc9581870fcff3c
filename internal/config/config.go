package config

import "time"

// WarmerConfig controls the background cache warmer.
type WarmerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	LogLevel    string
	LogFormat   string
	Version     string
	AdminToken  string
	CORSOrigins []string
	StatsNBA    StatsNBAConfig
	Schedule    ScheduleConfig
	League      LeagueConfig
	Cache       CacheConfig
	Warmer      WarmerConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		Version:     envOrDefault(envVersion, ""),
		AdminToken:  envOrDefault(envAdminToken, ""),
		CORSOrigins: listEnvOrDefault(envCORSAllowedOrigin, []string{defaultCORSOrigin}),
		StatsNBA:    loadStatsNBA(),
		Schedule:    loadSchedule(),
		League:      loadLeague(),
		Cache:       loadCache(),
		Warmer: WarmerConfig{
			Enabled:  boolEnvOrDefault(envWarmerEnabled, false),
			Interval: durationEnvOrDefault(envWarmerInterval, defaultWarmerInterval),
		},
		Metrics: loadMetrics(),
	}
}
