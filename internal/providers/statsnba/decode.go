package statsnba

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/providers"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/tabular"
)

// decodeTables parses a response body into its result sets, in upstream order.
func decodeTables(body []byte) ([]tabular.Table, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrMalformedResponse, err)
	}
	raw := env.ResultSets
	if isNull(raw) {
		raw = env.ResultSet
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: no result sets", providers.ErrMalformedResponse)
	}

	var sets []resultSet
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		if err := json.Unmarshal(raw, &sets); err != nil {
			return nil, fmt.Errorf("%w: result sets: %v", providers.ErrMalformedResponse, err)
		}
	} else {
		var single resultSet
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("%w: result set: %v", providers.ErrMalformedResponse, err)
		}
		sets = []resultSet{single}
	}

	tables := make([]tabular.Table, 0, len(sets))
	for _, set := range sets {
		columns, err := decodeHeaders(set.Headers)
		if err != nil {
			return nil, fmt.Errorf("%w: %s headers: %v", providers.ErrMalformedResponse, set.Name, err)
		}
		tables = append(tables, tabular.Table{Name: set.Name, Columns: columns, Rows: set.RowSet})
	}
	return tables, nil
}

// selectTable returns the named result set, or the first one when name is empty
// or absent.
func selectTable(tables []tabular.Table, name string) (tabular.Table, error) {
	if len(tables) == 0 {
		return tabular.Table{}, fmt.Errorf("%w: empty result sets", providers.ErrMalformedResponse)
	}
	for _, t := range tables {
		if name != "" && strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return tables[0], nil
}

func decodeHeaders(raw json.RawMessage) ([]tabular.Column, error) {
	if isNull(raw) {
		return nil, nil
	}
	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return tabular.FlatColumns(flat...), nil
	}

	var groups []headerGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}

	names := groups[len(groups)-1].ColumnNames
	columns := make([]tabular.Column, len(names))
	for i, n := range names {
		columns[i] = tabular.Column{Name: n}
	}
	if len(groups) == 1 {
		return columns, nil
	}

	labels := expandGroupLabels(groups[0])
	for i := range columns {
		if i < len(labels) {
			columns[i].Group = labels[i]
		}
	}
	return columns, nil
}

// expandGroupLabels lays a group header out per column: columnsToSkip empty
// labels followed by each group name repeated columnSpan times.
func expandGroupLabels(g headerGroup) []string {
	span := g.ColumnSpan
	if span <= 0 {
		span = 1
	}
	labels := make([]string, 0, g.ColumnsToSkip+span*len(g.ColumnNames))
	for i := 0; i < g.ColumnsToSkip; i++ {
		labels = append(labels, "")
	}
	for _, name := range g.ColumnNames {
		for i := 0; i < span; i++ {
			labels = append(labels, name)
		}
	}
	return labels
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
