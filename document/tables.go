package document

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// GridFinder clusters positioned text fragments into table cell grids.
type GridFinder struct {
	// RowTolerance is the maximum vertical distance (in points)
	// between baselines considered part of the same row.
	RowTolerance float64

	// CellGap is the minimum horizontal gap (in points) between
	// fragments that starts a new cell.
	CellGap float64

	// WordGap is the gap, as a fraction of the font size, above which
	// adjacent fragments in a cell are joined with a space.
	WordGap float64

	// MinRows is the minimum number of consecutive multi-cell rows
	// that form a grid.
	MinRows int

	// MaxShapes is the maximum number of distinct cell counts a run
	// of rows may span before it is rejected as free-form text.
	MaxShapes int
}

// NewGridFinder returns a finder with default tolerances.
func NewGridFinder() *GridFinder {
	return &GridFinder{
		RowTolerance: 3.0,  // 3 points baseline tolerance
		CellGap:      12.0, // roughly two space widths
		MinRows:      2,
		WordGap:      0.3,
		MaxShapes:    3,
	}
}

// Grids detects cell grids on a page from its positioned fragments.
// Grids are returned top to bottom, row-major.
func (g *GridFinder) Grids(texts []pdf.Text) [][][]string {
	return g.gridRuns(g.rows(texts))
}

// rows clusters fragments into visual rows by baseline, top of the
// page first, and splits each row into cells.
func (g *GridFinder) rows(texts []pdf.Text) [][]string {
	frags := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		frags = append(frags, t)
	}
	if len(frags) == 0 {
		return nil
	}
	// PDF user space grows upward, so descending Y is reading order.
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].Y > frags[j].Y })

	var out [][]string
	var row []pdf.Text
	anchor := frags[0].Y
	for _, w := range frags {
		if math.Abs(w.Y-anchor) > g.RowTolerance {
			out = append(out, g.cells(row))
			row = nil
			anchor = w.Y
		}
		row = append(row, w)
	}
	return append(out, g.cells(row))
}

// cells splits one visual row into cell strings on horizontal gaps.
func (g *GridFinder) cells(row []pdf.Text) []string {
	frags := make([]pdf.Text, 0, len(row))
	for _, w := range row {
		if strings.TrimSpace(w.S) == "" {
			continue
		}
		frags = append(frags, w)
	}
	if len(frags) == 0 {
		return nil
	}
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	var cells []string
	var cell strings.Builder
	end := frags[0].X
	for i, w := range frags {
		if i > 0 {
			switch gap := w.X - end; {
			case gap >= g.CellGap:
				cells = append(cells, strings.TrimSpace(cell.String()))
				cell.Reset()
			case gap > g.WordGap*fontSize(w):
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(w.S)
		if e := w.X + w.W; e > end {
			end = e
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

// gridRuns groups consecutive multi-cell rows into grids.
func (g *GridFinder) gridRuns(rows [][]string) [][][]string {
	var grids [][][]string
	var run [][]string
	flush := func() {
		if g.isGrid(run) {
			grids = append(grids, padRun(run))
		}
		run = nil
	}
	for _, cells := range rows {
		if len(cells) >= 2 {
			run = append(run, cells)
			continue
		}
		flush()
	}
	flush()
	return grids
}

// isGrid accepts a run that is tall enough and whose cell counts are
// stable across rows.
func (g *GridFinder) isGrid(run [][]string) bool {
	if len(run) < g.MinRows {
		return false
	}
	shapes := make(map[int]struct{})
	for _, row := range run {
		shapes[len(row)] = struct{}{}
	}
	return len(shapes) <= g.MaxShapes
}

// padRun right-pads every row of a run to the widest row.
func padRun(run [][]string) [][]string {
	width := 0
	for _, row := range run {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(run))
	for i, row := range run {
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

func fontSize(t pdf.Text) float64 {
	if t.FontSize > 0 {
		return t.FontSize
	}
	return 10
}
