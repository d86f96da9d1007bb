package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
)

var errNoDocument = errors.New("no document loaded")

// Strategy is one extraction path. Implementations are stateless; all
// per-run knobs travel in Options.
type Strategy interface {
	// Name returns the strategy name.
	Name() string

	// Run walks the document and collects raw tables and text. It
	// never fails: problems are recorded on the returned Diagnostics
	// and the Result holds whatever was recovered.
	Run(doc *document.Document, opts Options) (*Result, *Diagnostics)

	// Shape folds a Result into the final output table. It always
	// returns a table, substituting a placeholder when the run
	// produced nothing.
	Shape(res *Result, opts Options) *model.Table
}

// Result is the raw material collected by a run.
type Result struct {
	// Tables holds every extracted table tagged with its origin, in
	// page order.
	Tables []model.Extracted

	// Texts holds the pages that produced text, in page order. Pages
	// without text do not appear.
	Texts []model.PageText
}

// Diagnostics records how a run went. A run always produces a record,
// even when it recovers nothing.
type Diagnostics struct {
	// Method names the extraction path that ran.
	Method string `json:"method"`

	// PagesProcessed is the page count the run covered.
	PagesProcessed int `json:"pages_processed"`

	// TablesFound counts the tables collected.
	TablesFound int `json:"tables_found,omitempty"`

	// TextLength is the length of the assembled page-block text.
	TextLength int `json:"text_length,omitempty"`

	// DPI is the resolution hint handed to recognition (OCR runs).
	DPI int `json:"dpi,omitempty"`

	// OutputFormat is the shaping mode of an OCR run.
	OutputFormat string `json:"output_format,omitempty"`

	// OutputType is the shaping mode of a report run.
	OutputType string `json:"output_type,omitempty"`

	// Errors lists recovered failures, one line per failure. Page
	// failures read "page N: cause".
	Errors []string `json:"errors"`
}

func newDiagnostics(method string) *Diagnostics {
	return &Diagnostics{Method: method, Errors: []string{}}
}

// pageError records a failure scoped to a single page.
func (d *Diagnostics) pageError(page int, err error) {
	d.Errors = append(d.Errors, fmt.Sprintf("page %d: %v", page, err))
}

// fail records a failure that ended the whole run.
func (d *Diagnostics) fail(context string, err error) {
	d.Errors = append(d.Errors, fmt.Sprintf("%s: %v", context, err))
}

var registry = map[classify.Verdict]Strategy{}

// Register binds a strategy to a verdict, replacing any previous
// binding.
func Register(v classify.Verdict, s Strategy) {
	registry[v] = s
}

// For returns the strategy registered for a verdict.
func For(v classify.Verdict) Strategy {
	return registry[v]
}

func init() {
	Register(classify.TabularDocument, Tabular{})
	Register(classify.ScannedDocument, Scanned{})
	Register(classify.ReportDocument, Report{})
}

// placeholderTable builds the single-cell table used when a run
// recovered nothing worth shaping.
func placeholderTable(column, message string) *model.Table {
	t := model.NewTable(column)
	t.AppendRow(message)
	return t
}

// pageBlocks renders per-page text as delimited blocks, the shared
// textual form of OCR and report output.
func pageBlocks(texts []model.PageText) string {
	blocks := make([]string, 0, len(texts))
	for _, pt := range texts {
		blocks = append(blocks, fmt.Sprintf("--- Page %d ---\n%s\n", pt.Page, pt.Text))
	}
	return strings.Join(blocks, "\n")
}

// collectGrids converts the raw grids of one page into tagged tables.
// Conversion stops at the first bad grid on a page, recording one
// error line for it.
func collectGrids(res *Result, d *Diagnostics, page int, grids [][][]string) {
	for i, grid := range grids {
		if len(grid) == 0 {
			continue
		}
		t, err := model.FromGrid(grid)
		if err != nil {
			d.pageError(page, err)
			return
		}
		res.Tables = append(res.Tables, model.Extracted{Page: page, Index: i + 1, Table: t})
	}
}
