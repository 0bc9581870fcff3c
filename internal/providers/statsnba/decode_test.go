package statsnba

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

const flatPayload = `{
	"resource": "scoreboardV2",
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "GAME_STATUS_TEXT"],
			"rowSet": [["0022500001", 1610612747, 1610612738, "7:30 pm ET"]]
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID"],
			"rowSet": []
		}
	]
}`

const twoLevelPayload = `{
	"resource": "leaguedashteamshotlocations",
	"resultSets": {
		"name": "ShotLocations",
		"headers": [
			{"name": "SHOT_CATEGORY", "columnsToSkip": 2, "columnSpan": 2, "columnNames": ["Restricted Area", "In The Paint (Non-RA)"]},
			{"name": "columns", "columnSpan": 1, "columnNames": ["TEAM_ID", "TEAM_NAME", "OPP_FGA", "OPP_FG_PCT", "OPP_FGA", "OPP_FG_PCT"]}
		],
		"rowSet": [[1610612738, "Boston Celtics", 20.1, 0.61, 8.4, 0.42]]
	}
}`

func TestDecodeFlatArray(t *testing.T) {
	tables, err := decodeTables([]byte(flatPayload))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	table, err := selectTable(tables, resultSetGameHeader)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	records := table.Flatten()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Int("HOME_TEAM_ID", 0) != 1610612747 || records[0].String("GAME_STATUS_TEXT", "") != "7:30 pm ET" {
		t.Fatalf("unexpected record %+v", records[0])
	}
}

func TestDecodeTwoLevelObject(t *testing.T) {
	tables, err := decodeTables([]byte(twoLevelPayload))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected a single table, got %d", len(tables))
	}

	want := []string{
		"TEAM_ID",
		"TEAM_NAME",
		"Restricted_Area_OPP_FGA",
		"Restricted_Area_OPP_FG_PCT",
		"In_The_Paint_(Non-RA)_OPP_FGA",
		"In_The_Paint_(Non-RA)_OPP_FG_PCT",
	}
	keys := tables[0].Keys()
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}

	rec := tables[0].Flatten()[0]
	if rec.Float(tabular.Key("In The Paint (Non-RA)", "OPP_FG_PCT"), 0) != 0.42 {
		t.Fatalf("expected paint pct from composite key, got %+v", rec)
	}
}

func TestDecodeSingularResultSetKey(t *testing.T) {
	body := `{"resultSet": {"name": "CommonAllPlayers", "headers": ["PERSON_ID"], "rowSet": [[1]]}}`
	tables, err := decodeTables([]byte(body))
	if err != nil || len(tables) != 1 || tables[0].Name != resultSetAllPlayers {
		t.Fatalf("expected singular result set, got %+v, %v", tables, err)
	}
}

func TestDecodeFailures(t *testing.T) {
	cases := map[string]string{
		"invalid json":   `{bad`,
		"no result sets": `{"resource": "x"}`,
		"null sets":      `{"resultSets": null}`,
		"bad headers":    `{"resultSets": [{"name": "x", "headers": 5, "rowSet": []}]}`,
		"bad set":        `{"resultSets": "nope"}`,
	}
	for name, body := range cases {
		if _, err := decodeTables([]byte(body)); !errors.Is(err, providers.ErrMalformedResponse) {
			t.Fatalf("%s: expected ErrMalformedResponse, got %v", name, err)
		}
	}
}

func TestSelectTableFallsBackToFirst(t *testing.T) {
	tables := []tabular.Table{{Name: "A"}, {Name: "B"}}
	if got, _ := selectTable(tables, "missing"); got.Name != "A" {
		t.Fatalf("expected first table fallback, got %s", got.Name)
	}
	if got, _ := selectTable(tables, "b"); got.Name != "B" {
		t.Fatalf("expected case-insensitive match, got %s", got.Name)
	}
	if _, err := selectTable(nil, "A"); !errors.Is(err, providers.ErrMalformedResponse) {
		t.Fatalf("expected error for empty result sets, got %v", err)
	}
}

func TestExpandGroupLabels(t *testing.T) {
	labels := expandGroupLabels(headerGroup{ColumnsToSkip: 1, ColumnSpan: 2, ColumnNames: []string{"A", "B"}})
	want := []string{"", "A", "A", "B", "B"}
	if len(labels) != len(want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, labels)
		}
	}
	if got := expandGroupLabels(headerGroup{ColumnNames: []string{"A"}}); len(got) != 1 {
		t.Fatalf("expected span to default to 1, got %v", got)
	}
}
