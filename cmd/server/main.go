package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "nba-stats-aggregator"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	dotEnvErr := config.LoadDotEnv()
	cfg := config.Load()
	logger := newLogger(cfg, os.Stdout)
	if dotEnvErr != nil {
		logger.Warn("failed to load .env file", "error", dotEnvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	version := cfg.Version
	if version == "" {
		version = appVersion
	}
	return logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: version,
		Output:  out,
	})
}
