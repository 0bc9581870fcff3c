package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	appplayers "github.com/preston-bernstein/nba-stats-aggregator/internal/app/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/schedule"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/warmer"
)

// RosterSource lists players on tracked teams.
type RosterSource interface {
	Roster(ctx context.Context) ([]players.RosterEntry, error)
}

// ScheduleSource resolves each tracked team's next game.
type ScheduleSource interface {
	Schedule(ctx context.Context) (map[string]schedule.Entry, error)
}

// PlayerSource assembles one player's bundle.
type PlayerSource interface {
	Bundle(ctx context.Context, playerID int) (players.Bundle, error)
}

// DefenseSource ranks opponent shooting per zone.
type DefenseSource interface {
	Ranks(ctx context.Context) (defense.Table, error)
}

// Services groups the read paths the API serves.
type Services struct {
	Roster   RosterSource
	Schedule ScheduleSource
	Players  PlayerSource
	Defense  DefenseSource
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc      Services
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. A nil statusFn means the service is always ready.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Root answers the legacy liveness probe at "/".
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "NBA Backend is running!",
		"status":  "success",
	}, loggerFromContext(r, h.logger))
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Roster returns tracked-team players; upstream failure degrades to an empty list.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	entries, err := h.roster(r.Context())
	if err != nil {
		logging.Warn(logger, "roster unavailable", "error", err)
		entries = []players.RosterEntry{}
	}
	writeJSON(w, http.StatusOK, entries, logger)
}

// Schedule returns each tracked team's next game; failure degrades to an empty object.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	entries, err := h.schedule(r.Context())
	if err != nil {
		logging.Warn(logger, "schedule unavailable", "error", err)
		entries = map[string]schedule.Entry{}
	}
	writeJSON(w, http.StatusOK, entries, logger)
}

// DefenseRanks returns per-zone opponent shooting ranks; failure degrades to an empty object.
func (h *Handler) DefenseRanks(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	ranks, err := h.defense(r.Context())
	if err != nil {
		logging.Warn(logger, "defense ranks unavailable", "error", err)
		ranks = defense.Table{}
	}
	writeJSON(w, http.StatusOK, ranks, logger)
}

// Player returns the bundle for /api/player/{playerID}.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	raw := strings.TrimSpace(chi.URLParam(r, "playerID"))
	playerID, err := strconv.Atoi(raw)
	if err != nil || playerID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid player id", logger)
		return
	}
	if h.svc.Players == nil {
		writeError(w, r, http.StatusServiceUnavailable, "player service not configured", logger)
		return
	}

	bundle, err := h.svc.Players.Bundle(r.Context(), playerID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, bundle, logger)
	case errors.Is(err, players.ErrNoGames):
		writeError(w, r, http.StatusNotFound, "No games found", logger)
	case errors.Is(err, appplayers.ErrInvalidPlayerID):
		writeError(w, r, http.StatusBadRequest, "invalid player id", logger)
	default:
		logging.Warn(logger, "player bundle failed", logging.FieldPlayerID, playerID, logging.FieldError, err)
		writeError(w, r, http.StatusBadGateway, msgUpstreamUnavailable, logger)
	}
}

func (h *Handler) roster(ctx context.Context) ([]players.RosterEntry, error) {
	if h.svc.Roster == nil {
		return nil, errNotConfigured
	}
	out, err := h.svc.Roster.Roster(ctx)
	if err == nil && out == nil {
		out = []players.RosterEntry{}
	}
	return out, err
}

func (h *Handler) schedule(ctx context.Context) (map[string]schedule.Entry, error) {
	if h.svc.Schedule == nil {
		return nil, errNotConfigured
	}
	out, err := h.svc.Schedule.Schedule(ctx)
	if err == nil && out == nil {
		out = map[string]schedule.Entry{}
	}
	return out, err
}

func (h *Handler) defense(ctx context.Context) (defense.Table, error) {
	if h.svc.Defense == nil {
		return nil, errNotConfigured
	}
	out, err := h.svc.Defense.Ranks(ctx)
	if err == nil && out == nil {
		out = defense.Table{}
	}
	return out, err
}

// msgUpstreamUnavailable is the client-facing 502 message; details stay in logs.
const msgUpstreamUnavailable = "upstream unavailable"

var errNotConfigured = errors.New("service not configured")
