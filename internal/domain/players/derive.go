package players

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/zones"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

var (
	// ErrNoGames signals an empty game log; callers map it to "not found".
	ErrNoGames = errors.New("no games found")
	// ErrNonNumericStat signals a base stat that could not be coerced to a number.
	ErrNonNumericStat = errors.New("non-numeric base stat")
)

// Derive coerces the base stats of each game-log row and attaches the derived sums.
// A single bad base stat fails the whole log, since every sum built on it would be wrong.
func Derive(records []tabular.Record) ([]GameRecord, error) {
	games := make([]GameRecord, 0, len(records))
	for i, rec := range records {
		pts, err := rec.Number(ColPoints)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrNonNumericStat, i, err)
		}
		reb, err := rec.Number(ColRebounds)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrNonNumericStat, i, err)
		}
		ast, err := rec.Number(ColAssists)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrNonNumericStat, i, err)
		}
		games = append(games, NewGameRecord(
			rec.String(ColGameDate, ""),
			rec.String(ColMatchup, ""),
			rec.String(ColWinLoss, ""),
			pts, reb, ast,
		))
	}
	return games, nil
}

// NewGameRecord builds a GameRecord and fills in its derived sums.
func NewGameRecord(date, matchup, wl string, pts, reb, ast float64) GameRecord {
	return GameRecord{
		Date:            date,
		Matchup:         matchup,
		WinLoss:         wl,
		Points:          pts,
		Rebounds:        reb,
		Assists:         ast,
		PointsRebounds:  pts + reb,
		PointsAssists:   pts + ast,
		ReboundsAssists: reb + ast,
		PRA:             pts + reb + ast,
	}
}

// Summarize averages every base stat and derived sum across games.
func Summarize(name string, games []GameRecord) (Summary, error) {
	if len(games) == 0 {
		return Summary{}, ErrNoGames
	}
	var pts, reb, ast, ptsReb, ptsAst, rebAst, pra float64
	for _, g := range games {
		pts += g.Points
		reb += g.Rebounds
		ast += g.Assists
		ptsReb += g.PointsRebounds
		ptsAst += g.PointsAssists
		rebAst += g.ReboundsAssists
		pra += g.PRA
	}
	n := float64(len(games))
	return Summary{
		Name:               name,
		PointsPerGame:      round1(pts / n),
		ReboundsPerGame:    round1(reb / n),
		AssistsPerGame:     round1(ast / n),
		AvgPRA:             round1(pra / n),
		AvgPointsRebounds:  round1(ptsReb / n),
		AvgPointsAssists:   round1(ptsAst / n),
		AvgReboundsAssists: round1(rebAst / n),
	}, nil
}

// Recent projects the first limit games (the log is most-recent-first) for display.
func Recent(games []GameRecord, limit int) []RecentGame {
	if limit < 0 {
		limit = 0
	}
	if limit > len(games) {
		limit = len(games)
	}
	out := make([]RecentGame, 0, limit)
	for _, g := range games[:limit] {
		out = append(out, RecentGame{
			Date:            g.Date,
			Matchup:         g.Matchup,
			Points:          g.Points,
			Rebounds:        g.Rebounds,
			Assists:         g.Assists,
			WinLoss:         g.WinLoss,
			PRA:             g.PRA,
			PointsRebounds:  g.PointsRebounds,
			PointsAssists:   g.PointsAssists,
			ReboundsAssists: g.ReboundsAssists,
			Opponent:        OpponentCode(g.Matchup),
		})
	}
	return out
}

// OpponentCode extracts the opponent from a matchup such as "LAL @ BOS" or "LAL vs. BOS".
func OpponentCode(matchup string) string {
	fields := strings.Fields(matchup)
	if len(fields) < 2 {
		return NoOpponent
	}
	return fields[len(fields)-1]
}

// ZoneSplits reads a player's shot-location row. A nil row or missing key yields zeros.
func ZoneSplits(rec tabular.Record) map[string]ZoneSplit {
	out := EmptyZones()
	if rec == nil {
		return out
	}
	for _, z := range zones.All() {
		out[z.Key] = ZoneSplit{
			Pct: rec.Float(tabular.Key(z.Label, "FG_PCT"), 0) * 100,
			FGA: rec.Float(tabular.Key(z.Label, "FGA"), 0),
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
