package players

import "github.com/preston-bernstein/nba-stats-aggregator/internal/domain/zones"

// Upstream game-log column names.
const (
	ColGameDate = "GAME_DATE"
	ColMatchup  = "MATCHUP"
	ColPoints   = "PTS"
	ColRebounds = "REB"
	ColAssists  = "AST"
	ColWinLoss  = "WL"
)

// DefaultRecentLimit caps the recent-games list (about three weeks of games).
const DefaultRecentLimit = 20

// NoOpponent marks a recent game whose matchup string has no opponent token.
const NoOpponent = "-"

// GameRecord is one player's line for one game with its derived sums.
type GameRecord struct {
	Date     string
	Matchup  string
	WinLoss  string
	Points   float64
	Rebounds float64
	Assists  float64

	PointsRebounds  float64
	PointsAssists   float64
	ReboundsAssists float64
	PRA             float64
}

// Summary holds per-game averages over a player's game log.
type Summary struct {
	Name               string  `json:"name"`
	PointsPerGame      float64 `json:"ppg"`
	ReboundsPerGame    float64 `json:"rpg"`
	AssistsPerGame     float64 `json:"apg"`
	AvgPRA             float64 `json:"avg_pra"`
	AvgPointsRebounds  float64 `json:"avg_pts_reb"`
	AvgPointsAssists   float64 `json:"avg_pts_ast"`
	AvgReboundsAssists float64 `json:"avg_reb_ast"`
}

// RecentGame is the display projection of a GameRecord.
type RecentGame struct {
	Date            string  `json:"date"`
	Matchup         string  `json:"matchup"`
	Points          float64 `json:"pts"`
	Rebounds        float64 `json:"reb"`
	Assists         float64 `json:"ast"`
	WinLoss         string  `json:"wl"`
	PRA             float64 `json:"pra"`
	PointsRebounds  float64 `json:"pts_reb"`
	PointsAssists   float64 `json:"pts_ast"`
	ReboundsAssists float64 `json:"reb_ast"`
	Opponent        string  `json:"opp"`
}

// ZoneSplit is a player's shooting in one zone; Pct is on a 0-100 scale.
type ZoneSplit struct {
	Pct float64 `json:"pct"`
	FGA float64 `json:"fga"`
}

// Bundle is the full per-player payload.
type Bundle struct {
	Stats       Summary              `json:"stats"`
	RecentGames []RecentGame         `json:"recentGames"`
	Zones       map[string]ZoneSplit `json:"zones"`
}

// RosterEntry is one player on a tracked team.
type RosterEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Image string `json:"img"`
}

// EmptyZones returns zero splits for every zone.
func EmptyZones() map[string]ZoneSplit {
	out := make(map[string]ZoneSplit, len(zones.All()))
	for _, z := range zones.All() {
		out[z.Key] = ZoneSplit{}
	}
	return out
}
