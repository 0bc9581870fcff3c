package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/roster"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/schedule"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/timeutil"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/warmer"
)

type services struct {
	memo     *cache.Memo
	roster   *roster.Service
	schedule *schedule.Service
	players  *players.Service
	defense  *defense.Service
}

func buildServices(cfg config.Config, provider providers.StatsProvider, store cache.Store, recorder *metrics.Recorder, logger *slog.Logger) services {
	registry, unknown := teams.NewRegistry(teams.Franchises(), cfg.League.TrackedTeams)
	if len(unknown) > 0 {
		logging.Warn(logger, "ignoring unknown tracked teams", "teams", unknown)
	}

	loc := timeutil.ResolveTimezone(cfg.Schedule.Timezone)
	if loc == nil {
		logging.Warn(logger, "invalid schedule timezone, using UTC", "timezone", cfg.Schedule.Timezone)
		loc = time.UTC
	}

	memo := cache.NewMemo(store, cfg.Cache.Prefix, recorder, logger)
	return services{
		memo: memo,
		roster: roster.NewService(provider, memo, registry, roster.Options{
			TTL:         cfg.Cache.RosterTTL,
			HeadshotURL: cfg.League.HeadshotURL,
			Logger:      logger,
		}),
		schedule: schedule.NewService(provider, memo, registry, schedule.Options{
			TTL:          cfg.Cache.ScheduleTTL,
			Days:         cfg.Schedule.LookaheadDays,
			FetchTimeout: cfg.Schedule.FetchTimeout,
			Location:     loc,
			Logger:       logger,
		}),
		players: players.NewService(provider, memo, players.Options{
			TTL:         cfg.Cache.PlayerTTL,
			RecentLimit: cfg.League.RecentGamesLimit,
			Logger:      logger,
		}),
		defense: defense.NewService(provider, memo, registry, defense.Options{
			TTL:         cfg.Cache.DefenseTTL,
			NeutralRank: cfg.League.NeutralZoneRank,
			Logger:      logger,
		}),
	}
}

func (s services) handlerServices() handlers.Services {
	return handlers.Services{
		Roster:   s.roster,
		Schedule: s.schedule,
		Players:  s.players,
		Defense:  s.defense,
	}
}

// warmTasks lists the league-wide views the warmer keeps fresh.
func (s services) warmTasks() []warmer.Task {
	return []warmer.Task{
		{Name: cache.KeyRoster, Run: s.roster.Refresh},
		{Name: cache.KeySchedule, Run: s.schedule.Refresh},
		{Name: cache.KeyDefenseRanks, Run: s.defense.Refresh},
	}
}

func buildWarmer(cfg config.Config, svcs services, logger *slog.Logger, recorder *metrics.Recorder) Warmer {
	if !cfg.Warmer.Enabled {
		return nil
	}
	return warmer.New(svcs.warmTasks(), logger, recorder, cfg.Warmer.Interval)
}
