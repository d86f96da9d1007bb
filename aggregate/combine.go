package aggregate

import (
	"strings"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

// Direction selects how multiple tables are merged into one.
type Direction int

const (
	// Vertical stacks tables on top of each other, aligning columns by name.
	Vertical Direction = iota

	// Horizontal places tables side by side, padding shorter tables with
	// empty rows.
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name to a Direction. It accepts
// the names String returns, case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return Vertical, true
	case "horizontal":
		return Horizontal, true
	default:
		return Vertical, false
	}
}

// Combine merges tables according to the direction policy. A single table is
// returned as-is, and an empty input yields an empty table. When vertical
// stacking is impossible because column shapes are incompatible, Combine
// degrades to returning the first table rather than failing.
func Combine(tables []*model.Table, dir Direction) *model.Table {
	if len(tables) == 0 {
		return model.NewTable()
	}
	if len(tables) == 1 {
		return tables[0]
	}

	if dir == Horizontal {
		return combineHorizontal(tables)
	}
	return combineVertical(tables)
}

// combineVertical stacks rows. Tables with identical column tuples append
// directly. Otherwise columns are aligned by name, unioned in first-seen
// order with empty cells where a table lacks a column. Name-based alignment
// is ambiguous when a table repeats a column name, so that case degrades to
// the first table.
func combineVertical(tables []*model.Table) *model.Table {
	identical := true
	for _, t := range tables[1:] {
		if !equalColumns(tables[0].Columns, t.Columns) {
			identical = false
			break
		}
	}

	if identical {
		out := model.NewTable(tables[0].Columns...)
		for _, t := range tables {
			for _, row := range t.Rows {
				out.AppendRow(row...)
			}
		}
		return out
	}

	for _, t := range tables {
		if hasDuplicateColumns(t) {
			return tables[0]
		}
	}

	var union []string
	seen := make(map[string]int)
	for _, t := range tables {
		for _, name := range t.Columns {
			if _, ok := seen[name]; !ok {
				seen[name] = len(union)
				union = append(union, name)
			}
		}
	}

	out := model.NewTable(union...)
	for _, t := range tables {
		for _, row := range t.Rows {
			merged := make([]string, len(union))
			for j, name := range t.Columns {
				if j < len(row) {
					merged[seen[name]] = row[j]
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}

// combineHorizontal concatenates column sets side by side. Rows align by
// position; tables with fewer rows contribute empty cells.
func combineHorizontal(tables []*model.Table) *model.Table {
	var cols []string
	maxRows := 0
	for _, t := range tables {
		cols = append(cols, t.Columns...)
		if t.RowCount() > maxRows {
			maxRows = t.RowCount()
		}
	}

	out := model.NewTable(cols...)
	for i := 0; i < maxRows; i++ {
		row := make([]string, 0, len(cols))
		for _, t := range tables {
			if i < t.RowCount() {
				cells := make([]string, t.ColCount())
				copy(cells, t.Rows[i])
				row = append(row, cells...)
			} else {
				row = append(row, make([]string, t.ColCount())...)
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasDuplicateColumns(t *model.Table) bool {
	seen := make(map[string]bool, len(t.Columns))
	for _, name := range t.Columns {
		if seen[name] {
			return true
		}
		seen[name] = true
	}
	return false
}
