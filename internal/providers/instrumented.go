package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// MetricsRecorder receives per-endpoint call outcomes.
type MetricsRecorder interface {
	RecordProviderAttempt(provider, endpoint string, duration time.Duration, err error)
	RecordRateLimit(provider, endpoint string, retryAfter time.Duration)
}

// instrumentedProvider wraps a StatsProvider, timing and logging every call.
type instrumentedProvider struct {
	name     string
	next     StatsProvider
	recorder MetricsRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedProvider returns a StatsProvider that records metrics and logs for each upstream call.
func NewInstrumentedProvider(name string, next StatsProvider, recorder MetricsRecorder, logger *slog.Logger) StatsProvider {
	return &instrumentedProvider{
		name:     name,
		next:     next,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchGameLog(ctx context.Context, playerID int) (tabular.Table, error) {
	return p.observe(ctx, EndpointGameLog, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchGameLog(ctx, playerID)
	}, slog.Int(logging.FieldPlayerID, playerID))
}

func (p *instrumentedProvider) FetchPlayerInfo(ctx context.Context, playerID int) (tabular.Table, error) {
	return p.observe(ctx, EndpointPlayerInfo, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchPlayerInfo(ctx, playerID)
	}, slog.Int(logging.FieldPlayerID, playerID))
}

func (p *instrumentedProvider) FetchPlayerShotLocations(ctx context.Context) (tabular.Table, error) {
	return p.observe(ctx, EndpointPlayerShotLocations, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchPlayerShotLocations(ctx)
	})
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, date time.Time) (tabular.Table, error) {
	return p.observe(ctx, EndpointScoreboard, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchScoreboard(ctx, date)
	}, slog.String(logging.FieldDate, date.Format("2006-01-02")))
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context) (tabular.Table, error) {
	return p.observe(ctx, EndpointRoster, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchRoster(ctx)
	})
}

func (p *instrumentedProvider) FetchOpponentShotLocations(ctx context.Context) (tabular.Table, error) {
	return p.observe(ctx, EndpointOpponentShotLocations, func(next StatsProvider) (tabular.Table, error) {
		return next.FetchOpponentShotLocations(ctx)
	})
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, call func(StatsProvider) (tabular.Table, error), attrs ...any) (tabular.Table, error) {
	logger := logging.FromContext(ctx, p.logger)

	if p.next == nil {
		logCall(ctx, logger, p.name, endpoint, ErrProviderUnavailable, attrs...)
		return tabular.Table{}, ErrProviderUnavailable
	}

	start := p.now()
	table, err := call(p.next)
	duration := p.now().Sub(start)

	if p.recorder != nil {
		p.recorder.RecordProviderAttempt(p.name, endpoint, duration, err)
		if rl, ok := AsRateLimitError(err); ok {
			p.recorder.RecordRateLimit(p.name, endpoint, rl.RetryAfter)
		}
	}

	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
	if err != nil {
		logCall(ctx, logger, p.name, endpoint, err, attrs...)
		return tabular.Table{}, err
	}
	logCall(ctx, logger, p.name, endpoint, nil, append(attrs, slog.Int(logging.FieldCount, len(table.Rows)))...)
	return table, nil
}
