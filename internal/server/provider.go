package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers/statsnba"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case config.ProviderStatsNBA:
		return statsnba.NewClient(statsnba.Config{
			BaseURL: cfg.StatsNBA.BaseURL,
			Season:  cfg.StatsNBA.Season,
			Timeout: cfg.StatsNBA.Timeout,
		})
	case config.ProviderFixture, "":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
