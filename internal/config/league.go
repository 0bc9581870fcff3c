package config

import (
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/schedule"
)

// ScheduleConfig controls the upcoming-games lookahead window.
type ScheduleConfig struct {
	Timezone      string
	LookaheadDays int
	FetchTimeout  time.Duration
}

// LeagueConfig holds the domain tunables for derived views.
type LeagueConfig struct {
	TrackedTeams     []string
	RecentGamesLimit int
	NeutralZoneRank  int
	HeadshotURL      string
}

func loadSchedule() ScheduleConfig {
	return ScheduleConfig{
		Timezone:      envOrDefault(envTimezone, defaultTimezone),
		LookaheadDays: intEnvOrDefault(envLookaheadDays, schedule.DefaultLookaheadDays),
		FetchTimeout:  durationEnvOrDefault(envScheduleTimeout, defaultScheduleTimeout),
	}
}

func loadLeague() LeagueConfig {
	return LeagueConfig{
		TrackedTeams:     listEnvOrDefault(envTrackedTeams, nil),
		RecentGamesLimit: intEnvOrDefault(envRecentGamesLimit, players.DefaultRecentLimit),
		NeutralZoneRank:  intEnvOrDefault(envNeutralZoneRank, defense.DefaultNeutralRank),
		HeadshotURL:      envOrDefault(envHeadshotURL, ""),
	}
}
