package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appplayers "github.com/preston-bernstein/nba-stats-aggregator/internal/app/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/schedule"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/testutil"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/warmer"
)

type stubRoster struct {
	entries []players.RosterEntry
	err     error
}

func (s stubRoster) Roster(context.Context) ([]players.RosterEntry, error) { return s.entries, s.err }

type stubSchedule struct {
	entries map[string]schedule.Entry
	err     error
}

func (s stubSchedule) Schedule(context.Context) (map[string]schedule.Entry, error) {
	return s.entries, s.err
}

type stubPlayers struct {
	bundle players.Bundle
	err    error
	gotID  int
}

func (s *stubPlayers) Bundle(_ context.Context, playerID int) (players.Bundle, error) {
	s.gotID = playerID
	return s.bundle, s.err
}

type stubDefense struct {
	ranks defense.Table
	err   error
}

func (s stubDefense) Ranks(context.Context) (defense.Table, error) { return s.ranks, s.err }

func TestRoot(t *testing.T) {
	h := NewHandler(Services{}, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != "NBA Backend is running!" || resp["status"] != "success" {
		t.Fatalf("unexpected root payload %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(Services{}, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(Services{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if got := testutil.ErrorBody(t, rr)["error"]; got != "shutting down" {
		t.Fatalf("unexpected error %q", got)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		status func() warmer.Status
		want   int
		errMsg string
	}{
		{"no warmer", nil, http.StatusOK, ""},
		{"warm", func() warmer.Status { return warmer.Status{LastSuccess: time.Now()} }, http.StatusOK, ""},
		{"never warmed", func() warmer.Status { return warmer.Status{} }, http.StatusServiceUnavailable, "not ready"},
		{"failing", func() warmer.Status {
			return warmer.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "roster: down"}
		}, http.StatusServiceUnavailable, "roster: down"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(Services{}, nil, tc.status)
			rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
			if tc.errMsg != "" {
				if got := testutil.ErrorBody(t, rr)["error"]; got != tc.errMsg {
					t.Fatalf("expected error %q, got %q", tc.errMsg, got)
				}
			}
		})
	}
}

func TestRosterSuccessAndDegradation(t *testing.T) {
	entry := players.RosterEntry{ID: "2544", Name: "LeBron James", Team: "LAL", Image: "img"}
	h := NewHandler(Services{Roster: stubRoster{entries: []players.RosterEntry{entry}}}, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Roster), http.MethodGet, "/api/roster", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got []players.RosterEntry
	testutil.DecodeJSON(t, rr, &got)
	if len(got) != 1 || got[0] != entry {
		t.Fatalf("unexpected roster %+v", got)
	}

	for _, svc := range []Services{{Roster: stubRoster{err: errors.New("down")}}, {}} {
		h = NewHandler(svc, nil, nil)
		rr = testutil.Serve(http.HandlerFunc(h.Roster), http.MethodGet, "/api/roster", nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if body := rr.Body.String(); body != "[]\n" {
			t.Fatalf("expected empty list on failure, got %q", body)
		}
	}
}

func TestScheduleSuccessAndDegradation(t *testing.T) {
	entries := map[string]schedule.Entry{
		"LAL": {Opponent: "BOS", IsHome: true, Time: "7:30 pm", Day: "Oct 14", SortOrder: 0, OpponentID: 1610612738},
	}
	h := NewHandler(Services{Schedule: stubSchedule{entries: entries}}, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/api/schedule", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var raw map[string]map[string]any
	testutil.DecodeJSON(t, rr, &raw)
	lal := raw["LAL"]
	if lal["opponent"] != "BOS" || lal["isHome"] != true || lal["sortOrder"] != 0.0 || lal["opponentId"] != 1610612738.0 {
		t.Fatalf("unexpected wire shape %+v", lal)
	}

	h = NewHandler(Services{Schedule: stubSchedule{err: errors.New("down")}}, nil, nil)
	rr = testutil.Serve(http.HandlerFunc(h.Schedule), http.MethodGet, "/api/schedule", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "{}\n" {
		t.Fatalf("expected empty object on failure, got %q", body)
	}
}

func TestDefenseRanksSuccessAndDegradation(t *testing.T) {
	ranks := defense.Table{"BOS": {"ra": 1, "paint": 2, "mid": 15, "lc3": 3, "rc3": 4, "ab3": 5}}
	h := NewHandler(Services{Defense: stubDefense{ranks: ranks}}, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.DefenseRanks), http.MethodGet, "/api/defense_ranks", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got defense.Table
	testutil.DecodeJSON(t, rr, &got)
	if got["BOS"]["mid"] != 15 || got["BOS"]["ra"] != 1 {
		t.Fatalf("unexpected ranks %+v", got)
	}

	h = NewHandler(Services{Defense: stubDefense{err: errors.New("down")}}, nil, nil)
	rr = testutil.Serve(http.HandlerFunc(h.DefenseRanks), http.MethodGet, "/api/defense_ranks", nil)
	if body := rr.Body.String(); body != "{}\n" {
		t.Fatalf("expected empty object on failure, got %q", body)
	}
}

func TestPlayerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{"ok", "2544", nil, http.StatusOK},
		{"non-numeric id", "abc", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
		{"service rejects id", "5", fmt.Errorf("%w: 5", appplayers.ErrInvalidPlayerID), http.StatusBadRequest},
		{"no games", "2544", players.ErrNoGames, http.StatusNotFound},
		{"upstream", "2544", errors.New("upstream 500"), http.StatusBadGateway},
		{"malformed", "2544", fmt.Errorf("wrapped: %w", players.ErrNonNumericStat), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubPlayers{bundle: players.Bundle{Stats: players.Summary{Name: "LeBron James"}}, err: tc.err}
			h := NewHandler(Services{Players: stub}, nil, nil)
			req := testutil.WithURLParams(httptest.NewRequest(http.MethodGet, "/api/player/"+tc.id, nil), "playerID", tc.id)
			rr := testutil.ServeRequest(http.HandlerFunc(h.Player), req)
			testutil.AssertStatus(t, rr, tc.want)
			if tc.want == http.StatusOK {
				var got players.Bundle
				testutil.DecodeJSON(t, rr, &got)
				if got.Stats.Name != "LeBron James" || stub.gotID != 2544 {
					t.Fatalf("unexpected bundle %+v for id %d", got, stub.gotID)
				}
			}
			if tc.want == http.StatusNotFound {
				if got := testutil.ErrorBody(t, rr)["error"]; got != "No games found" {
					t.Fatalf("unexpected not-found message %q", got)
				}
			}
		})
	}
}

func TestPlayerUpstreamErrorIsNotEchoed(t *testing.T) {
	upstream := errors.New("statsnba playergamelog: unexpected status 500: <html>internal trace</html>")
	stub := &stubPlayers{err: upstream}
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(Services{Players: stub}, logger, nil)
	req := testutil.WithURLParams(httptest.NewRequest(http.MethodGet, "/api/player/2544", nil), "playerID", "2544")
	req.Header.Set("X-Request-ID", "req-502")

	rr := testutil.ServeRequest(http.HandlerFunc(h.Player), req)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	body := testutil.ErrorBody(t, rr)
	if body["error"] != "upstream unavailable" || body["requestId"] != "req-502" {
		t.Fatalf("unexpected error body %+v", body)
	}
	if strings.Contains(rr.Body.String(), "playergamelog") || strings.Contains(rr.Body.String(), "internal trace") {
		t.Fatalf("upstream detail leaked to client: %s", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "internal trace") {
		t.Fatalf("expected upstream detail in logs, got %q", buf.String())
	}
}

func TestPlayerWithoutService(t *testing.T) {
	h := NewHandler(Services{}, nil, nil)
	req := testutil.WithURLParams(httptest.NewRequest(http.MethodGet, "/api/player/1", nil), "playerID", "1")
	rr := testutil.ServeRequest(http.HandlerFunc(h.Player), req)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
