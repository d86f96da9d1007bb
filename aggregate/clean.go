package aggregate

import (
	"strings"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

// Clean applies the final cleanup pass to a shaped table: trim whitespace on
// every cell, normalize literal "None" placeholders to empty, then drop rows
// and columns that are entirely empty. Cleaning an already-clean table is a
// no-op, so the pass is safe to reason about as idempotent.
func Clean(t *model.Table) *model.Table {
	if t == nil {
		return nil
	}

	out := model.NewTable(t.Columns...)
	for _, row := range t.Rows {
		cleaned := make([]string, len(row))
		for j, cell := range row {
			cleaned[j] = normalizeCell(cell)
		}
		out.Rows = append(out.Rows, cleaned)
	}

	out.Rows = dropEmptyRows(out.Rows)

	// Column drop looks at data cells only; a table with zero rows keeps its
	// columns so headers survive an all-placeholder extraction.
	if len(out.Rows) > 0 {
		keep := occupiedColumns(out)
		out.Columns = filterColumns(out.Columns, keep)
		for i, row := range out.Rows {
			out.Rows[i] = filterColumns(row, keep)
		}
	}

	return out
}

// normalizeCell trims surrounding whitespace and maps the literal string
// "None" to an absent value.
func normalizeCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "None" {
		return ""
	}
	return cell
}

func dropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, row)
		}
	}
	return kept
}

// occupiedColumns reports, per column, whether any data cell is non-empty.
func occupiedColumns(t *model.Table) []bool {
	keep := make([]bool, len(t.Columns))
	for _, row := range t.Rows {
		for j, cell := range row {
			if j < len(keep) && cell != "" {
				keep[j] = true
			}
		}
	}
	return keep
}

func filterColumns(cells []string, keep []bool) []string {
	out := make([]string, 0, len(cells))
	for j, cell := range cells {
		if j < len(keep) && keep[j] {
			out = append(out, cell)
		}
	}
	return out
}
