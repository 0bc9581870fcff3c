package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
)

const defaultTTL = 12 * time.Hour

// Options tunes a roster Service.
type Options struct {
	TTL         time.Duration
	HeadshotURL string
	Logger      *slog.Logger
}

// Service builds the tracked-team roster from the league player list.
type Service struct {
	provider providers.StatsProvider
	memo     *cache.Memo
	registry *teams.Registry
	opts     Options
}

// NewService constructs a Service. A nil registry tracks every franchise.
func NewService(provider providers.StatsProvider, memo *cache.Memo, registry *teams.Registry, opts Options) *Service {
	if registry == nil {
		registry = teams.Default()
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	return &Service{provider: provider, memo: memo, registry: registry, opts: opts}
}

// Roster returns players on tracked teams, memoized under cache.KeyRoster.
func (s *Service) Roster(ctx context.Context) ([]players.RosterEntry, error) {
	return cache.Remember(ctx, s.memo, cache.KeyRoster, s.opts.TTL, s.compute)
}

// Refresh recomputes the roster and overwrites the cached copy.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := cache.Refresh(ctx, s.memo, cache.KeyRoster, s.opts.TTL, s.compute)
	return err
}

func (s *Service) compute(ctx context.Context) ([]players.RosterEntry, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	table, err := s.provider.FetchRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	entries := players.Roster(table.Flatten(), s.registry, s.opts.HeadshotURL)
	logging.Info(logging.FromContext(ctx, s.opts.Logger), "roster built", logging.FieldCount, len(entries))
	return entries, nil
}
