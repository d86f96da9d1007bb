package document

import (
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PageTables holds the grids harvested from one page by a whole-file
// pass.
type PageTables struct {
	// Page is the 1-based page number.
	Page int

	// Grids holds the detected cell grids, in reading order.
	Grids [][][]string

	// Err records a page-level harvest failure.
	Err error
}

// HarvestTables runs a whole-file table pass over a PDF on disk. It
// works from the row buckets the parser exposes rather than from raw
// fragment positions, so it trades layout fidelity for resilience on
// densely set pages. Page failures are recorded per page; only a file
// that cannot be opened makes HarvestTables fail.
func HarvestTables(path string) ([]PageTables, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	finder := NewGridFinder()
	out := make([]PageTables, 0, r.NumPage())
	for n := 1; n <= r.NumPage(); n++ {
		out = append(out, harvestPage(r, n, finder))
	}
	return out, nil
}

// harvestPage collects the grids of one page, isolating parser panics
// the same way loadPage does.
func harvestPage(r *pdf.Reader, n int, finder *GridFinder) (pt PageTables) {
	pt = PageTables{Page: n}
	defer func() {
		if rec := recover(); rec != nil {
			pt.Err = fmt.Errorf("parse page: %v", rec)
			pt.Grids = nil
		}
	}()

	p := r.Page(n)
	if p.V.IsNull() {
		pt.Err = errors.New("missing page object")
		return pt
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		pt.Err = fmt.Errorf("read rows: %w", err)
		return pt
	}
	cellRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		if cells := finder.cells([]pdf.Text(row.Content)); len(cells) > 0 {
			cellRows = append(cellRows, cells)
		}
	}
	pt.Grids = finder.gridRuns(cellRows)
	return pt
}
