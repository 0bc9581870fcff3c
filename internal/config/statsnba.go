package config

import "time"

// StatsNBAConfig controls how we talk to stats.nba.com.
type StatsNBAConfig struct {
	BaseURL string
	Timeout time.Duration
	Season  string
}

func loadStatsNBA() StatsNBAConfig {
	return StatsNBAConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		Season:  envOrDefault(envSeason, defaultSeason),
	}
}
