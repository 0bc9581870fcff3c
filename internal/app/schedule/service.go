package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/cache"
	domain "github.com/preston-bernstein/nba-stats-aggregator/internal/domain/schedule"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/timeutil"
)

const (
	defaultTTL          = time.Hour
	defaultFetchTimeout = 5 * time.Second
)

// ErrNoBoards is returned when every day in the window failed to load.
var ErrNoBoards = errors.New("no scoreboards loaded")

// Options tunes a schedule Service.
type Options struct {
	TTL          time.Duration
	Days         int
	FetchTimeout time.Duration
	Location     *time.Location
	Logger       *slog.Logger
}

// Service resolves each tracked team's next game over a lookahead window.
type Service struct {
	provider providers.StatsProvider
	memo     *cache.Memo
	registry *teams.Registry
	opts     Options
	now      func() time.Time
}

// NewService constructs a Service with defaults for unset options.
func NewService(provider providers.StatsProvider, memo *cache.Memo, registry *teams.Registry, opts Options) *Service {
	if registry == nil {
		registry = teams.Default()
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Days <= 0 {
		opts.Days = domain.DefaultLookaheadDays
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{provider: provider, memo: memo, registry: registry, opts: opts, now: time.Now}
}

// Schedule returns the next game per tracked team, memoized under cache.KeySchedule.
func (s *Service) Schedule(ctx context.Context) (map[string]domain.Entry, error) {
	return cache.Remember(ctx, s.memo, cache.KeySchedule, s.opts.TTL, s.compute)
}

// Refresh recomputes the schedule and overwrites the cached copy.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := cache.Refresh(ctx, s.memo, cache.KeySchedule, s.opts.TTL, s.compute)
	return err
}

func (s *Service) compute(ctx context.Context) (map[string]domain.Entry, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	logger := logging.FromContext(ctx, s.opts.Logger)

	days := timeutil.Window(s.now().In(s.opts.Location), s.opts.Days)
	boards := make([]domain.Board, 0, len(days))
	var lastErr error
	for offset, day := range days {
		if ctx.Err() != nil {
			break
		}
		board, err := s.fetchDay(ctx, offset, day)
		if err != nil {
			lastErr = err
			logging.Warn(logger, "scoreboard skipped",
				logging.FieldDate, timeutil.FormatDate(day),
				logging.FieldOffset, offset,
				"error", err,
			)
			continue
		}
		if len(board.Games) == 0 {
			logging.Warn(logger, "scoreboard empty", logging.FieldDate, timeutil.FormatDate(day), logging.FieldOffset, offset)
		}
		boards = append(boards, board)
	}
	// A window cut short by the caller is incomplete and must not be cached.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("schedule window interrupted: %w", err)
	}
	if len(boards) == 0 && lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoBoards, lastErr)
	}

	entries := domain.Resolve(boards, s.registry)
	logging.Info(logger, "schedule resolved", logging.FieldCount, len(entries))
	return entries, nil
}

func (s *Service) fetchDay(ctx context.Context, offset int, day time.Time) (domain.Board, error) {
	dayCtx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	table, err := s.provider.FetchScoreboard(dayCtx, day)
	if err != nil {
		return domain.Board{}, err
	}
	return domain.Board{
		Offset: offset,
		Label:  timeutil.DayLabel(day),
		Games:  domain.GamesFromRecords(table.Flatten()),
	}, nil
}
