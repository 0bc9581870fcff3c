package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExposesPrometheusSeries(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-stats-aggregator",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	if rec == nil || handler == nil {
		t.Fatalf("expected recorder and handler when enabled")
	}

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordWarmerCycle(time.Millisecond, errors.New("boom"))
	rec.RecordProviderAttempt("statsnba", "scoreboardv2", time.Millisecond, nil)
	rec.RecordRateLimit("statsnba", "scoreboardv2", time.Second)
	rec.RecordCacheLookup("roster", true)
	rec.RecordCacheLookup("roster", false)

	srv := httptest.NewServer(handler)
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, series := range []string{"http_requests_total", "cache_hits_total", "cache_misses_total", "warmer_errors_total", "provider_attempts_total"} {
		if !strings.Contains(string(body), series) {
			t.Fatalf("expected %s in scrape output", series)
		}
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp down")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"}); err == nil {
		t.Fatalf("expected otlp reader error")
	}
}
