package strategy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
)

// Tabular extracts tables from text PDFs that are dominated by
// tabular content.
type Tabular struct{}

// Name returns the strategy name.
func (Tabular) Name() string { return "tabular" }

// Run collects every table of the document. The layout backend works
// from the grids detected at load time; the document backend re-reads
// the file through a scoped temp artifact.
func (Tabular) Run(doc *document.Document, opts Options) (*Result, *Diagnostics) {
	if opts.Backend == BackendDocument {
		return harvestWholeFile(doc, opts)
	}

	d := newDiagnostics(BackendLayout.String())
	res := &Result{}
	if doc == nil {
		d.fail("document", errNoDocument)
		return res, d
	}
	d.PagesProcessed = doc.PageCount()
	for _, page := range doc.Pages {
		if page.Err != nil {
			d.pageError(page.Number, page.Err)
			continue
		}
		collectGrids(res, d, page.Number, page.Tables)
	}
	d.TablesFound = len(res.Tables)
	return res, d
}

// harvestWholeFile writes the document to a uniquely named temp
// artifact, runs the whole-file table pass over it and removes the
// artifact on every exit path.
func harvestWholeFile(doc *document.Document, opts Options) (*Result, *Diagnostics) {
	d := newDiagnostics(BackendDocument.String())
	res := &Result{}
	if doc == nil {
		d.fail("document", errNoDocument)
		return res, d
	}
	d.PagesProcessed = doc.PageCount()

	path := filepath.Join(os.TempDir(), fmt.Sprintf("pdfextract-%s.pdf", uuid.NewString()))
	if err := os.WriteFile(path, doc.Bytes(), 0o600); err != nil {
		d.fail("write artifact", err)
		return res, d
	}
	defer os.Remove(path)
	opts.logger().Debug("tabular.artifact", "path", path)

	pages, err := document.HarvestTables(path)
	if err != nil {
		d.fail("harvest", err)
		return res, d
	}
	for _, pt := range pages {
		if pt.Err != nil {
			d.pageError(pt.Page, pt.Err)
			continue
		}
		collectGrids(res, d, pt.Page, pt.Grids)
	}
	d.TablesFound = len(res.Tables)
	return res, d
}

// Shape merges the collected tables into one output table.
func (Tabular) Shape(res *Result, opts Options) *model.Table {
	if len(res.Tables) == 0 {
		return placeholderTable("Message", "No tables found")
	}
	tables := make([]*model.Table, 0, len(res.Tables))
	for _, e := range res.Tables {
		tables = append(tables, e.Table)
	}
	if !opts.Combine {
		return tables[0]
	}
	return aggregate.Combine(tables, opts.Direction)
}
