package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
)

// providerFactory assembles the provider with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	return f.wrap(cfg.Provider, selectProvider(cfg, f.logger))
}

// wrap instruments a provider; upstream calls are never retried.
func (f providerFactory) wrap(name string, base providers.StatsProvider) providers.StatsProvider {
	return providers.NewInstrumentedProvider(normalizeProviderName(name, base), base, f.metrics, f.logger)
}
