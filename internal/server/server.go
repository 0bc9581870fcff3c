package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/config"
	httpserver "github.com/preston-bernstein/nba-stats-aggregator/internal/http"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/warmer"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	services      services
	httpServer    httpServer
	metricsServer httpServer
	warmer        Warmer
	metricsStop   func(context.Context) error
	cacheClose    func() error
}

// New constructs a server with the configured provider, cache and warmer.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg.Provider, provider)
	}

	store, cacheClose := buildCacheStore(context.Background(), cfg.Cache, logger)
	svcs := buildServices(cfg, provider, store, recorder, logger)
	w := buildWarmer(cfg, svcs, logger, recorder)
	httpSrv := buildHTTPServer(cfg, svcs, logger, recorder, w)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		services:      svcs,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		warmer:        w,
		metricsStop:   metricsShutdown,
		cacheClose:    cacheClose,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, w Warmer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		warmer:     w,
	}
}

func buildHTTPServer(cfg config.Config, svcs services, logger *slog.Logger, recorder *metrics.Recorder, w Warmer) httpServer {
	var statusFn func() warmer.Status
	if w != nil {
		statusFn = w.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(svcs.handlerServices(), logger, statusFn)
	opts := httpserver.RouterOptions{
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.CORSOrigins,
	}
	// Admin invalidation is mounted only when a token is configured.
	if cfg.AdminToken != "" {
		opts.Admin = handlers.NewAdminHandler(svcs.memo, cfg.AdminToken, logger)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpserver.NewRouter(handler, opts),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop warmer", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.cacheClose != nil {
		if err := s.cacheClose(); err != nil {
			logging.Warn(s.logger, "cache close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
