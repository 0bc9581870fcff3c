package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, fixture.New(), rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no owned metrics shutdown with injected recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected injected shutdown to succeed, got %v", err)
	}

	_ = testutil.Serve(srv.Handler(), http.MethodGet, "/api/defense_ranks", nil)
	if got := rec.Snapshot(config.ProviderFixture, "leaguedashteamshotlocations").Calls; got != 1 {
		t.Fatalf("expected provider call recorded on injected recorder, got %d", got)
	}
	_ = testutil.Serve(srv.Handler(), http.MethodGet, "/api/defense_ranks", nil)
	if rec.CacheHits("defense_ranks") != 1 || rec.CacheMisses("defense_ranks") != 1 {
		t.Fatalf("expected one miss then one hit, got hits=%d misses=%d", rec.CacheHits("defense_ranks"), rec.CacheMisses("defense_ranks"))
	}
}
