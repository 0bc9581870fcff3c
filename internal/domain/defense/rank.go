// Package defense ranks teams by the opponent field-goal percentage they allow per shot zone.
package defense

import (
	"sort"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/zones"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// Upstream column names used by the rank table.
const (
	ColTeamID           = "TEAM_ID"
	ColTeamAbbreviation = "TEAM_ABBREVIATION"
	StatOppFGPct        = "OPP_FG_PCT"
)

// DefaultNeutralRank is assigned when a zone cannot be ranked (roughly mid-table of 30).
const DefaultNeutralRank = 15

// Ranks maps zone key to rank (1 = lowest opponent FG% allowed).
type Ranks map[string]int

// Table maps team abbreviation to its zone ranks.
type Table map[string]Ranks

// Rank computes per-zone ranks for every row of the opponent shooting table.
// Each zone is ranked independently, ascending, with min tie-break. A zone whose
// column is absent from every row gives every team the neutral rank; a row with a
// missing or non-numeric value in a present column gets the neutral rank for that
// zone and is left out of that zone's ranking.
func Rank(records []tabular.Record, reg *teams.Registry, neutral int) Table {
	if neutral <= 0 {
		neutral = DefaultNeutralRank
	}
	perRow := make([]Ranks, len(records))
	for i := range perRow {
		perRow[i] = make(Ranks, len(zones.All()))
	}

	for _, z := range zones.All() {
		col := tabular.Key(z.Label, StatOppFGPct)
		if !tabular.HasColumn(records, col) {
			for i := range perRow {
				perRow[i][z.Key] = neutral
			}
			continue
		}

		values := make([]float64, len(records))
		valid := make([]bool, len(records))
		for i, rec := range records {
			v, err := rec.Number(col)
			if err != nil {
				perRow[i][z.Key] = neutral
				continue
			}
			values[i] = v
			valid[i] = true
		}
		for i, rank := range minRanks(values, valid) {
			if valid[i] {
				perRow[i][z.Key] = rank
			}
		}
	}

	out := make(Table, len(records))
	for i, rec := range records {
		out[teamKey(rec, reg)] = perRow[i]
	}
	return out
}

// minRanks returns, for each valid index, one plus the number of valid values strictly lower.
func minRanks(values []float64, valid []bool) []int {
	idx := make([]int, 0, len(values))
	for i := range values {
		if valid[i] {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]int, len(values))
	for pos, i := range idx {
		if pos > 0 && values[i] == values[idx[pos-1]] {
			ranks[i] = ranks[idx[pos-1]]
			continue
		}
		ranks[i] = pos + 1
	}
	return ranks
}

func teamKey(rec tabular.Record, reg *teams.Registry) string {
	if abbr, ok := reg.Abbreviation(rec.Int(ColTeamID, 0)); ok {
		return abbr
	}
	return rec.String(ColTeamAbbreviation, teams.UnknownTeam)
}
