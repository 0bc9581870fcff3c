package defense

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/domain/zones"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

const (
	bosID = 1610612738.0
	lalID = 1610612747.0
	gswID = 1610612744.0
	miaID = 1610612748.0
)

func teamRow(teamID float64, pct map[string]float64) tabular.Record {
	rec := tabular.Record{ColTeamID: teamID}
	for _, z := range zones.All() {
		if v, ok := pct[z.Key]; ok {
			rec[tabular.Key(z.Label, StatOppFGPct)] = v
		}
	}
	return rec
}

func allZones(v float64) map[string]float64 {
	out := map[string]float64{}
	for _, z := range zones.All() {
		out[z.Key] = v
	}
	return out
}

func TestRankAscendingWithMinTieBreak(t *testing.T) {
	bos := allZones(0.40)
	lal := allZones(0.40)
	gsw := allZones(0.45)
	mia := allZones(0.50)
	mia[zones.RestrictedArea] = 0.30

	table := Rank([]tabular.Record{
		teamRow(bosID, bos),
		teamRow(lalID, lal),
		teamRow(gswID, gsw),
		teamRow(miaID, mia),
	}, teams.Default(), DefaultNeutralRank)

	if len(table) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(table))
	}
	// Mid-range: BOS and LAL tie for best, GSW is third, MIA fourth.
	if table["BOS"][zones.MidRange] != 1 || table["LAL"][zones.MidRange] != 1 {
		t.Fatalf("expected tied teams to share rank 1, got %+v / %+v", table["BOS"], table["LAL"])
	}
	if table["GSW"][zones.MidRange] != 3 {
		t.Fatalf("expected next team to get rank 3, got %d", table["GSW"][zones.MidRange])
	}
	if table["MIA"][zones.MidRange] != 4 {
		t.Fatalf("expected worst team rank 4, got %d", table["MIA"][zones.MidRange])
	}
	// Restricted area is ranked independently: MIA best.
	if table["MIA"][zones.RestrictedArea] != 1 || table["BOS"][zones.RestrictedArea] != 2 || table["GSW"][zones.RestrictedArea] != 4 {
		t.Fatalf("unexpected restricted area ranks %+v", table)
	}
	for abbr, ranks := range table {
		if len(ranks) != 6 {
			t.Fatalf("expected 6 zone ranks for %s, got %d", abbr, len(ranks))
		}
	}
}

func TestRankRankEqualsStrictlyBetterPlusOne(t *testing.T) {
	values := []float64{0.41, 0.39, 0.41, 0.35, 0.39, 0.50}
	ids := []float64{bosID, lalID, gswID, miaID, 1610612737, 1610612739}
	records := make([]tabular.Record, len(values))
	for i, v := range values {
		records[i] = teamRow(ids[i], map[string]float64{zones.AboveBreak3: v})
	}

	table := Rank(records, teams.Default(), DefaultNeutralRank)
	reg := teams.Default()
	for i, v := range values {
		better := 0
		for _, other := range values {
			if other < v {
				better++
			}
		}
		abbr, _ := reg.Abbreviation(int(ids[i]))
		if got := table[abbr][zones.AboveBreak3]; got != better+1 {
			t.Fatalf("%s: expected rank %d, got %d", abbr, better+1, got)
		}
	}
}

func TestRankMissingZoneColumnUsesNeutral(t *testing.T) {
	withoutMid := func(v float64) map[string]float64 {
		m := allZones(v)
		delete(m, zones.MidRange)
		return m
	}
	table := Rank([]tabular.Record{
		teamRow(bosID, withoutMid(0.40)),
		teamRow(lalID, withoutMid(0.45)),
		teamRow(gswID, withoutMid(0.50)),
	}, teams.Default(), DefaultNeutralRank)

	for abbr, ranks := range table {
		if ranks[zones.MidRange] != 15 {
			t.Fatalf("expected neutral mid rank 15 for %s, got %d", abbr, ranks[zones.MidRange])
		}
	}
	if table["BOS"][zones.Paint] != 1 || table["GSW"][zones.Paint] != 3 {
		t.Fatalf("expected other zones still ranked, got %+v", table)
	}
}

func TestRankMissingValueInPresentColumn(t *testing.T) {
	bos := teamRow(bosID, allZones(0.40))
	lal := teamRow(lalID, allZones(0.45))
	lal[tabular.Key("Left Corner 3", StatOppFGPct)] = nil
	gsw := teamRow(gswID, allZones(0.50))

	table := Rank([]tabular.Record{bos, lal, gsw}, teams.Default(), 12)

	if table["LAL"][zones.LeftCorner3] != 12 {
		t.Fatalf("expected neutral rank for missing value, got %d", table["LAL"][zones.LeftCorner3])
	}
	if table["GSW"][zones.LeftCorner3] != 2 {
		t.Fatalf("expected missing row excluded from ranked set, got %d", table["GSW"][zones.LeftCorner3])
	}
}

func TestRankKeyFallbacks(t *testing.T) {
	unknownWithAbbr := teamRow(99, allZones(0.4))
	unknownWithAbbr[ColTeamAbbreviation] = "SEA"
	unknown := teamRow(98, allZones(0.5))

	table := Rank([]tabular.Record{unknownWithAbbr, unknown}, teams.Default(), DefaultNeutralRank)

	if _, ok := table["SEA"]; !ok {
		t.Fatalf("expected upstream abbreviation fallback, got %+v", table)
	}
	if _, ok := table[teams.UnknownTeam]; !ok {
		t.Fatalf("expected unknown sentinel fallback, got %+v", table)
	}
}

func TestRankDefaultsNonPositiveNeutral(t *testing.T) {
	table := Rank([]tabular.Record{{ColTeamID: bosID}}, teams.Default(), 0)
	if table["BOS"][zones.Paint] != DefaultNeutralRank {
		t.Fatalf("expected default neutral rank, got %d", table["BOS"][zones.Paint])
	}
}

func TestRankEmptyInput(t *testing.T) {
	if table := Rank(nil, teams.Default(), DefaultNeutralRank); len(table) != 0 {
		t.Fatalf("expected empty table, got %+v", table)
	}
}
