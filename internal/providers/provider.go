package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// Endpoint names used for metrics and logs.
const (
	EndpointGameLog               = "playergamelog"
	EndpointPlayerInfo            = "commonplayerinfo"
	EndpointPlayerShotLocations   = "leaguedashplayershotlocations"
	EndpointScoreboard            = "scoreboardv2"
	EndpointRoster                = "commonallplayers"
	EndpointOpponentShotLocations = "leaguedashteamshotlocations"
)

// StatsProvider fetches the upstream result sets the aggregator reshapes.
// Every method returns the primary result set of its endpoint as a table.
type StatsProvider interface {
	// FetchGameLog returns one row per game for the player in the configured season, most recent first.
	FetchGameLog(ctx context.Context, playerID int) (tabular.Table, error)
	// FetchPlayerInfo returns the player's common info row (DISPLAY_FIRST_LAST et al).
	FetchPlayerInfo(ctx context.Context, playerID int) (tabular.Table, error)
	// FetchPlayerShotLocations returns league-wide per-player shooting by zone (two-level columns).
	FetchPlayerShotLocations(ctx context.Context) (tabular.Table, error)
	// FetchScoreboard returns the game header rows for a calendar day.
	FetchScoreboard(ctx context.Context, date time.Time) (tabular.Table, error)
	// FetchRoster returns every player active in the configured season.
	FetchRoster(ctx context.Context) (tabular.Table, error)
	// FetchOpponentShotLocations returns per-team opponent shooting by zone (two-level columns).
	FetchOpponentShotLocations(ctx context.Context) (tabular.Table, error)
}
