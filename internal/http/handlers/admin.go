package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
)

// HeaderAdminToken is the alternative to a bearer Authorization header.
const HeaderAdminToken = "X-Admin-Token"

// Invalidator drops memoized keys; no keys means everything.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) ([]string, error)
}

// AdminHandler exposes admin-only endpoints (cache invalidation).
type AdminHandler struct {
	cache  Invalidator
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(cache Invalidator, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:  cache,
		token:  token,
		logger: logger,
	}
}

// InvalidateCache drops the keys named by repeated "key" query params, or every key.
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", logger)
		return
	}

	var keys []string
	for _, k := range r.URL.Query()["key"] {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	removed, err := h.cache.Invalidate(r.Context(), keys...)
	if err != nil {
		logging.Error(logger, "cache invalidation failed", err, logging.FieldCount, len(keys))
		writeError(w, r, http.StatusInternalServerError, "cache invalidation failed", logger)
		return
	}
	if removed == nil {
		removed = []string{}
	}

	logging.Info(logger, "cache invalidated", logging.FieldCount, len(removed))
	writeJSON(w, http.StatusOK, map[string]any{"invalidated": removed}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	presented := r.Header.Get(HeaderAdminToken)
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		presented = strings.TrimPrefix(auth, "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}
