package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/timeutil"
)

// StubStatsProvider is a test double for providers.StatsProvider. Each endpoint
// returns its configured table and error; scoreboards are keyed by YYYY-MM-DD.
type StubStatsProvider struct {
	GameLog       tabular.Table
	PlayerInfo    tabular.Table
	PlayerShots   tabular.Table
	Roster        tabular.Table
	OpponentShots tabular.Table
	Scoreboards   map[string]tabular.Table

	GameLogErr       error
	PlayerInfoErr    error
	PlayerShotsErr   error
	RosterErr        error
	OpponentShotsErr error
	ScoreboardErrs   map[string]error
	// BlockDates makes FetchScoreboard wait for context cancellation on those days.
	BlockDates map[string]bool

	Calls  atomic.Int32
	Notify chan struct{}

	mu         sync.Mutex
	byEndpoint map[string]int
}

func (s *StubStatsProvider) FetchGameLog(ctx context.Context, playerID int) (tabular.Table, error) {
	_, _ = ctx, playerID
	s.track(providers.EndpointGameLog)
	return s.GameLog, s.GameLogErr
}

func (s *StubStatsProvider) FetchPlayerInfo(ctx context.Context, playerID int) (tabular.Table, error) {
	_, _ = ctx, playerID
	s.track(providers.EndpointPlayerInfo)
	return s.PlayerInfo, s.PlayerInfoErr
}

func (s *StubStatsProvider) FetchPlayerShotLocations(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	s.track(providers.EndpointPlayerShotLocations)
	return s.PlayerShots, s.PlayerShotsErr
}

func (s *StubStatsProvider) FetchScoreboard(ctx context.Context, date time.Time) (tabular.Table, error) {
	s.track(providers.EndpointScoreboard)
	day := timeutil.FormatDate(date)
	if s.BlockDates[day] {
		<-ctx.Done()
		return tabular.Table{}, ctx.Err()
	}
	if err := s.ScoreboardErrs[day]; err != nil {
		return tabular.Table{}, err
	}
	return s.Scoreboards[day], nil
}

func (s *StubStatsProvider) FetchRoster(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	s.track(providers.EndpointRoster)
	return s.Roster, s.RosterErr
}

func (s *StubStatsProvider) FetchOpponentShotLocations(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	s.track(providers.EndpointOpponentShotLocations)
	return s.OpponentShots, s.OpponentShotsErr
}

// CallCount returns how many times the endpoint was called.
func (s *StubStatsProvider) CallCount(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byEndpoint[endpoint]
}

func (s *StubStatsProvider) track(endpoint string) {
	s.mu.Lock()
	if s.byEndpoint == nil {
		s.byEndpoint = make(map[string]int)
	}
	s.byEndpoint[endpoint]++
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Unlock()
	s.Calls.Add(1)
}
