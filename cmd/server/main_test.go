package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestNewLoggerFallsBackToAppVersion(t *testing.T) {
	var buf bytes.Buffer
	newLogger(config.Config{LogFormat: "json"}, &buf).Info("boot")

	out := buf.String()
	if !strings.Contains(out, `"service":"`+serviceName+`"`) || !strings.Contains(out, `"version":"`+appVersion+`"`) {
		t.Fatalf("expected service and fallback version, got %q", out)
	}
}

func TestNewLoggerUsesConfiguredVersion(t *testing.T) {
	var buf bytes.Buffer
	newLogger(config.Config{Version: "1.4.0"}, &buf).Info("boot")

	if !strings.Contains(buf.String(), "version=1.4.0") {
		t.Fatalf("expected configured version, got %q", buf.String())
	}
}
