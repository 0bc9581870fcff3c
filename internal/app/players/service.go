package players

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
)

const defaultTTL = 30 * time.Minute

// ErrInvalidPlayerID rejects non-positive player ids before any upstream call.
var ErrInvalidPlayerID = errors.New("invalid player id")

// Options tunes a players Service.
type Options struct {
	TTL         time.Duration
	RecentLimit int
	Logger      *slog.Logger
}

// Service assembles the per-player bundle: summary, recent games and zone splits.
type Service struct {
	provider providers.StatsProvider
	memo     *cache.Memo
	opts     Options
}

// NewService constructs a Service with defaults for unset options.
func NewService(provider providers.StatsProvider, memo *cache.Memo, opts Options) *Service {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = players.DefaultRecentLimit
	}
	return &Service{provider: provider, memo: memo, opts: opts}
}

// Bundle returns the player's bundle, memoized per player id.
// An empty game log yields players.ErrNoGames.
func (s *Service) Bundle(ctx context.Context, playerID int) (players.Bundle, error) {
	if playerID <= 0 {
		return players.Bundle{}, fmt.Errorf("%w: %d", ErrInvalidPlayerID, playerID)
	}
	return cache.Remember(ctx, s.memo, cache.PlayerKey(playerID), s.opts.TTL, func(ctx context.Context) (players.Bundle, error) {
		return s.compute(ctx, playerID)
	})
}

func (s *Service) compute(ctx context.Context, playerID int) (players.Bundle, error) {
	if s.provider == nil {
		return players.Bundle{}, providers.ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, s.opts.Logger)

	logTable, err := s.provider.FetchGameLog(ctx, playerID)
	if err != nil {
		return players.Bundle{}, fmt.Errorf("fetch game log: %w", err)
	}
	records := logTable.Flatten()
	if len(records) == 0 {
		return players.Bundle{}, players.ErrNoGames
	}
	games, err := players.Derive(records)
	if err != nil {
		return players.Bundle{}, err
	}

	name, err := s.playerName(ctx, playerID)
	if err != nil {
		return players.Bundle{}, err
	}
	summary, err := players.Summarize(name, games)
	if err != nil {
		return players.Bundle{}, err
	}

	shots, err := s.provider.FetchPlayerShotLocations(ctx)
	if err != nil {
		return players.Bundle{}, fmt.Errorf("fetch shot locations: %w", err)
	}
	row := players.FindPlayer(shots.Flatten(), playerID)
	if row == nil {
		logging.Warn(logger, "no shot-location row for player", logging.FieldPlayerID, playerID)
	}

	logging.Info(logger, "player bundle built", logging.FieldPlayerID, playerID, logging.FieldCount, len(games))
	return players.Bundle{
		Stats:       summary,
		RecentGames: players.Recent(games, s.opts.RecentLimit),
		Zones:       players.ZoneSplits(row),
	}, nil
}

func (s *Service) playerName(ctx context.Context, playerID int) (string, error) {
	info, err := s.provider.FetchPlayerInfo(ctx, playerID)
	if err != nil {
		return "", fmt.Errorf("fetch player info: %w", err)
	}
	records := info.Flatten()
	if len(records) == 0 {
		return "", fmt.Errorf("%w: empty player info", providers.ErrMalformedResponse)
	}
	return records[0].String(players.ColDisplayFirstLast, ""), nil
}
