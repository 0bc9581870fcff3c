// Package fixture serves deterministic stats tables for local development and tests.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/zones"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// UnknownPlayerID has a roster row but no games, for exercising the not-found path.
const UnknownPlayerID = 999999

type player struct {
	id     int
	name   string
	teamID int
	games  [][]any
}

var fixturePlayers = []player{
	{id: 2544, name: "LeBron James", teamID: 1610612747, games: [][]any{
		{"OCT 22, 2025", "LAL vs. GSW", "W", 28.0, 9.0, 11.0},
		{"OCT 24, 2025", "LAL @ PHX", "L", 21.0, 7.0, 8.0},
		{"OCT 26, 2025", "LAL vs. SAC", "W", 33.0, 10.0, 6.0},
	}},
	{id: 1628369, name: "Jayson Tatum", teamID: 1610612738, games: [][]any{
		{"OCT 22, 2025", "BOS @ NYK", "L", 31.0, 8.0, 4.0},
		{"OCT 24, 2025", "BOS vs. MIA", "W", "26", "11", "5"},
	}},
	{id: 201939, name: "Stephen Curry", teamID: 1610612744, games: [][]any{
		{"OCT 22, 2025", "GSW @ LAL", "L", 29.0, 4.0, 7.0},
	}},
	{id: UnknownPlayerID, name: "Free Agent", teamID: 0},
}

// Provider returns static tables shaped like stats.nba.com result sets.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGameLog returns the fixture game log for a player; unknown players get an empty table.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int) (tabular.Table, error) {
	_ = ctx
	table := tabular.Table{
		Name:    "PlayerGameLog",
		Columns: tabular.FlatColumns("GAME_DATE", "MATCHUP", "WL", "PTS", "REB", "AST"),
	}
	if pl, ok := findPlayer(playerID); ok {
		table.Rows = pl.games
	}
	return table, nil
}

// FetchPlayerInfo returns the player's display name row.
func (p *Provider) FetchPlayerInfo(ctx context.Context, playerID int) (tabular.Table, error) {
	_ = ctx
	table := tabular.Table{
		Name:    "CommonPlayerInfo",
		Columns: tabular.FlatColumns("PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ID"),
	}
	if pl, ok := findPlayer(playerID); ok {
		table.Rows = [][]any{{float64(pl.id), pl.name, float64(pl.teamID)}}
	}
	return table, nil
}

// FetchPlayerShotLocations returns two-level zone shooting for every fixture player.
func (p *Provider) FetchPlayerShotLocations(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	lead := []string{"PLAYER_ID", "PLAYER_NAME", "TEAM_ID"}
	table := tabular.Table{Name: "ShotLocations", Columns: zoneColumns(lead, "FGM", "FGA", "FG_PCT")}
	for i, pl := range fixturePlayers {
		row := []any{float64(pl.id), pl.name, float64(pl.teamID)}
		for j := range zones.All() {
			fga := float64(2 + (i+j)%5)
			pct := 0.35 + float64((i*3+j*5)%20)/100
			row = append(row, fga*pct, fga, pct)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// FetchScoreboard returns five games whose pairings rotate with the calendar day.
func (p *Provider) FetchScoreboard(ctx context.Context, date time.Time) (tabular.Table, error) {
	_ = ctx
	table := tabular.Table{
		Name:    "GameHeader",
		Columns: tabular.FlatColumns("GAME_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID"),
	}
	franchises := teams.Franchises()
	shift := date.YearDay()
	for i := 0; i < 5; i++ {
		home := franchises[(2*i+shift)%len(franchises)]
		away := franchises[(2*i+1+shift)%len(franchises)]
		table.Rows = append(table.Rows, []any{
			fmt.Sprintf("fixture-%s-%d", date.Format("20060102"), i),
			fmt.Sprintf("%d:00 pm ET", 7+i%3),
			float64(home.ID),
			float64(away.ID),
		})
	}
	return table, nil
}

// FetchRoster returns every fixture player, including one without a team.
func (p *Provider) FetchRoster(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	table := tabular.Table{
		Name:    "CommonAllPlayers",
		Columns: tabular.FlatColumns("PERSON_ID", "DISPLAY_FIRST_LAST", "TEAM_ID"),
	}
	for _, pl := range fixturePlayers {
		table.Rows = append(table.Rows, []any{float64(pl.id), pl.name, float64(pl.teamID)})
	}
	return table, nil
}

// FetchOpponentShotLocations returns two-level opponent shooting for all 30 franchises.
func (p *Provider) FetchOpponentShotLocations(ctx context.Context) (tabular.Table, error) {
	_ = ctx
	lead := []string{"TEAM_ID", "TEAM_NAME"}
	table := tabular.Table{Name: "ShotLocations", Columns: zoneColumns(lead, "OPP_FGM", "OPP_FGA", "OPP_FG_PCT")}
	for i, team := range teams.Franchises() {
		row := []any{float64(team.ID), team.Abbreviation}
		for j := range zones.All() {
			fga := float64(5 + (i+j)%10)
			pct := 0.30 + float64((i*7+j*11)%30)/100
			row = append(row, fga*pct, fga, pct)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func zoneColumns(lead []string, stats ...string) []tabular.Column {
	cols := tabular.FlatColumns(lead...)
	for _, z := range zones.All() {
		for _, s := range stats {
			cols = append(cols, tabular.Column{Group: z.Label, Name: s})
		}
	}
	return cols
}

func findPlayer(id int) (player, bool) {
	for _, pl := range fixturePlayers {
		if pl.id == id {
			return pl, true
		}
	}
	return player{}, false
}
