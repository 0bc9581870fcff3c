package statsnba

import "encoding/json"

// envelope is the top level of every stats.nba.com response. Most endpoints
// return resultSets as an array; the league dashboard shot endpoints return a
// single object, and a few use the singular resultSet key.
type envelope struct {
	ResultSets json.RawMessage `json:"resultSets"`
	ResultSet  json.RawMessage `json:"resultSet"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers json.RawMessage `json:"headers"`
	RowSet  [][]any         `json:"rowSet"`
}

// headerGroup is one level of a multi-level header. The first level labels
// column groups; the last level (named "columns") carries the stat names.
type headerGroup struct {
	Name          string   `json:"name"`
	ColumnsToSkip int      `json:"columnsToSkip"`
	ColumnSpan    int      `json:"columnSpan"`
	ColumnNames   []string `json:"columnNames"`
}
