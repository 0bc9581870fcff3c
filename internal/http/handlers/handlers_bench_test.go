package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/defense"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/app/roster"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers/fixture"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/testutil"
)

func BenchmarkRosterCached(b *testing.B) {
	memo, _ := testutil.NewMemo()
	svc := roster.NewService(fixture.New(), memo, nil, roster.Options{})
	if _, err := svc.Roster(context.Background()); err != nil {
		b.Fatalf("warm roster: %v", err)
	}
	h := NewHandler(Services{Roster: svc}, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/roster", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Roster(rr, req)
	}
}

func BenchmarkDefenseRanksUncached(b *testing.B) {
	svc := defense.NewService(fixture.New(), nil, nil, defense.Options{})
	h := NewHandler(Services{Defense: svc}, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/defense_ranks", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.DefenseRanks(rr, req)
	}
}
