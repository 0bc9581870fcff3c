package defense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	domain "github.com/preston-bernstein/nba-stats-aggregator/internal/domain/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
)

const defaultTTL = 12 * time.Hour

// Options tunes a defense Service.
type Options struct {
	TTL         time.Duration
	NeutralRank int
	Logger      *slog.Logger
}

// Service ranks every team's opponent shooting per zone.
type Service struct {
	provider providers.StatsProvider
	memo     *cache.Memo
	registry *teams.Registry
	opts     Options
}

// NewService constructs a Service with defaults for unset options.
func NewService(provider providers.StatsProvider, memo *cache.Memo, registry *teams.Registry, opts Options) *Service {
	if registry == nil {
		registry = teams.Default()
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.NeutralRank <= 0 {
		opts.NeutralRank = domain.DefaultNeutralRank
	}
	return &Service{provider: provider, memo: memo, registry: registry, opts: opts}
}

// Ranks returns the rank table, memoized under cache.KeyDefenseRanks.
func (s *Service) Ranks(ctx context.Context) (domain.Table, error) {
	return cache.Remember(ctx, s.memo, cache.KeyDefenseRanks, s.opts.TTL, s.compute)
}

// Refresh recomputes the rank table and overwrites the cached copy.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := cache.Refresh(ctx, s.memo, cache.KeyDefenseRanks, s.opts.TTL, s.compute)
	return err
}

func (s *Service) compute(ctx context.Context) (domain.Table, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	table, err := s.provider.FetchOpponentShotLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch opponent shot locations: %w", err)
	}
	ranks := domain.Rank(table.Flatten(), s.registry, s.opts.NeutralRank)
	logging.Info(logging.FromContext(ctx, s.opts.Logger), "defense ranks built", logging.FieldCount, len(ranks))
	return ranks, nil
}
