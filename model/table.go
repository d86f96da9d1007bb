package model

import (
	"fmt"
	"strings"
)

// Table represents structured tabular data with named columns and
// insertion-ordered rows. Rows hold data cells only; the header lives in
// Columns. A Table is always rectangular: every row has len(Columns) cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable creates an empty table with the given column names.
func NewTable(columns ...string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0),
	}
}

// FromGrid converts a raw cell grid (header row first, body rows after) into
// a Table. Body rows shorter than the header are padded with empty cells.
// A body row wider than the header is an error: the grid does not describe
// a rectangular table.
func FromGrid(grid [][]string) (*Table, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	t := NewTable(grid[0]...)
	for i, row := range grid[1:] {
		if len(row) > len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d columns", i+1, len(row), len(t.Columns))
		}
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		t.Rows = append(t.Rows, padded)
	}
	return t, nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// IsEmpty reports whether the table has no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Cell returns the cell at the given row and column (0-indexed), or an
// empty string if the position is out of bounds.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// SetCell sets the cell at the given position.
func (t *Table) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = value
	return nil
}

// AppendRow adds a data row. Rows shorter than the column set are padded
// with empty cells; longer rows are truncated.
func (t *Table) AppendRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable(t.Columns...)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// GetText returns the table as tab-separated text, one line per row,
// header first.
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Columns, "\t"))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format.
func (t *Table) ToMarkdown() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for j, name := range t.Columns {
		sb.WriteString("| ")
		sb.WriteString(strings.ReplaceAll(name, "\n", " "))
		sb.WriteString(" ")
		if j == len(t.Columns)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range t.Columns {
		sb.WriteString("|---")
		if j == len(t.Columns)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
			if j == len(row)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Extracted tags a table with its origin: the 1-based source page and the
// table's 1-based position within that page.
type Extracted struct {
	Page  int
	Index int
	Table *Table
}

// PageText holds the raw text of one page, tagged with its 1-based number.
type PageText struct {
	Page int
	Text string
}
