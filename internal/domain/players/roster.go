package players

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// Upstream roster column names.
const (
	ColPersonID         = "PERSON_ID"
	ColDisplayFirstLast = "DISPLAY_FIRST_LAST"
	ColTeamID           = "TEAM_ID"
	ColPlayerID         = "PLAYER_ID"
)

// DefaultHeadshotURL is the headshot template; %d is replaced with the player id.
const DefaultHeadshotURL = "https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png"

// Roster keeps players on tracked teams. Rows without a usable person or team id are skipped.
func Roster(records []tabular.Record, reg *teams.Registry, headshotURL string) []RosterEntry {
	if headshotURL == "" || !strings.Contains(headshotURL, "%d") {
		headshotURL = DefaultHeadshotURL
	}
	out := make([]RosterEntry, 0, len(records))
	for _, rec := range records {
		personID := rec.Int(ColPersonID, 0)
		if personID <= 0 {
			continue
		}
		abbr, ok := reg.TrackedAbbreviation(rec.Int(ColTeamID, 0))
		if !ok {
			continue
		}
		out = append(out, RosterEntry{
			ID:    strconv.Itoa(personID),
			Name:  rec.String(ColDisplayFirstLast, ""),
			Team:  abbr,
			Image: fmt.Sprintf(headshotURL, personID),
		})
	}
	return out
}

// FindPlayer returns the shot-location record for playerID, or nil when absent.
func FindPlayer(records []tabular.Record, playerID int) tabular.Record {
	for _, rec := range records {
		if rec.Int(ColPlayerID, 0) == playerID {
			return rec
		}
	}
	return nil
}
