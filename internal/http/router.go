package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router installs.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
	// Admin is mounted under /admin when non-nil.
	Admin *handlers.AdminHandler
}

// NewRouter registers HTTP routes on a chi mux.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestutil.HeaderRequestID, handlers.HeaderAdminToken},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/roster", handler.Roster)
		r.Get("/schedule", handler.Schedule)
		r.Get("/player/{playerID}", handler.Player)
		r.Get("/defense_ranks", handler.DefenseRanks)
	})

	if opts.Admin != nil {
		r.Post("/admin/cache/invalidate", opts.Admin.InvalidateCache)
	}
	return r
}
