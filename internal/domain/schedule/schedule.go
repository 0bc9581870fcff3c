// Package schedule resolves each tracked team's next game from per-day scoreboards.
package schedule

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// Upstream scoreboard columns.
const (
	ColHomeTeamID     = "HOME_TEAM_ID"
	ColVisitorTeamID  = "VISITOR_TEAM_ID"
	ColGameStatusText = "GAME_STATUS_TEXT"
)

// DefaultLookaheadDays is the schedule window length, today included.
const DefaultLookaheadDays = 7

var timeZoneSuffixes = []string{" ET", " EST", " EDT", " CT", " MT", " PT"}

// Game is one scheduled matchup on a board.
type Game struct {
	HomeTeamID int
	AwayTeamID int
	StatusText string
}

// Board is the set of games for one day of the lookahead window.
type Board struct {
	Offset int
	Label  string
	Games  []Game
}

// Entry is a tracked team's soonest upcoming game.
type Entry struct {
	Opponent   string `json:"opponent"`
	IsHome     bool   `json:"isHome"`
	Time       string `json:"time"`
	Day        string `json:"day"`
	SortOrder  int    `json:"sortOrder"`
	OpponentID int    `json:"opponentId"`
}

// GamesFromRecords maps scoreboard rows to games, skipping rows without both team ids.
func GamesFromRecords(records []tabular.Record) []Game {
	games := make([]Game, 0, len(records))
	for _, rec := range records {
		home := rec.Int(ColHomeTeamID, 0)
		away := rec.Int(ColVisitorTeamID, 0)
		if home == 0 || away == 0 {
			continue
		}
		games = append(games, Game{
			HomeTeamID: home,
			AwayTeamID: away,
			StatusText: rec.String(ColGameStatusText, ""),
		})
	}
	return games
}

// Resolve returns at most one entry per tracked team, taken from the earliest
// board on which the team plays. Boards are processed by increasing offset
// regardless of input order.
func Resolve(boards []Board, reg *teams.Registry) map[string]Entry {
	ordered := make([]Board, len(boards))
	copy(ordered, boards)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Offset < ordered[j].Offset })

	out := make(map[string]Entry)
	for _, board := range ordered {
		for _, g := range board.Games {
			claim(out, reg, board, g.HomeTeamID, g.AwayTeamID, true, g.StatusText)
			claim(out, reg, board, g.AwayTeamID, g.HomeTeamID, false, g.StatusText)
		}
	}
	return out
}

func claim(out map[string]Entry, reg *teams.Registry, board Board, teamID, opponentID int, home bool, status string) {
	abbr, ok := reg.TrackedAbbreviation(teamID)
	if !ok {
		return
	}
	if _, taken := out[abbr]; taken {
		return
	}
	out[abbr] = Entry{
		Opponent:   reg.AbbreviationOr(opponentID, teams.UnknownOpponent),
		IsHome:     home,
		Time:       DisplayTime(status),
		Day:        board.Label,
		SortOrder:  board.Offset,
		OpponentID: opponentID,
	}
}

// DisplayTime strips a trailing US time-zone marker from upstream status text.
func DisplayTime(status string) string {
	s := strings.TrimSpace(status)
	for _, suffix := range timeZoneSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return strings.TrimSpace(s)
}
