// Package tabular flattens provider result sets into records keyed by stable composite names.
package tabular

import (
	"strings"
	"unicode"
)

// Separator joins a column group (zone) and a stat name in composite keys.
const Separator = "_"

// Column is one result-set column. Group is empty for flat columns and holds the
// upper header level (for example a shot zone) for two-level tables.
type Column struct {
	Group string
	Name  string
}

// Key returns the composite key for the column.
func (c Column) Key() string {
	return Key(c.Group, c.Name)
}

// Table is a provider result set: ordered columns and positional rows.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// FlatColumns builds single-level columns from header names.
func FlatColumns(names ...string) []Column {
	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n}
	}
	return cols
}

// Key builds the composite key for a group/name pair. An empty group yields the name
// alone; otherwise the two are joined with Separator. Whitespace runs become Separator
// and every other character, punctuation included, is preserved.
func Key(group, name string) string {
	group = strings.TrimSpace(group)
	name = strings.TrimSpace(name)
	if group == "" {
		return collapseSpace(name)
	}
	return collapseSpace(group) + Separator + collapseSpace(name)
}

func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteString(Separator)
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Keys returns the composite keys of every column in order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		keys[i] = c.Key()
	}
	return keys
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Flatten converts every row into a Record. Flat and two-level tables go through
// the same path. Rows shorter than the header leave trailing keys unset; extra
// cells are dropped. When two columns collapse to the same key the later wins.
func (t Table) Flatten() []Record {
	keys := t.Keys()
	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(Record, len(keys))
		for i, key := range keys {
			if i >= len(row) {
				break
			}
			rec[key] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

// HasColumn reports whether the table carries a column with the composite key.
func (t Table) HasColumn(key string) bool {
	for _, c := range t.Columns {
		if c.Key() == key {
			return true
		}
	}
	return false
}
