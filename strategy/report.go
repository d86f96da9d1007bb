package strategy

import (
	"strconv"
	"strings"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
)

// Report handles mixed documents: prose with embedded tables. It
// collects both signals and lets the output mode decide which wins.
type Report struct{}

// Name returns the strategy name.
func (Report) Name() string { return "report" }

// Run collects per-page text and tables in one pass.
func (Report) Run(doc *document.Document, opts Options) (*Result, *Diagnostics) {
	d := newDiagnostics("report")
	d.OutputType = opts.ReportOutput.String()
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
		if strings.TrimSpace(page.Text) != "" {
			res.Texts = append(res.Texts, model.PageText{Page: page.Number, Text: page.Text})
		}
		collectGrids(res, d, page.Number, page.Tables)
	}
	d.TablesFound = len(res.Tables)
	d.TextLength = len(pageBlocks(res.Texts))
	return res, d
}

// Shape folds the collected content according to the output mode. The
// combined mode prefers tables anywhere in the document and only falls
// back to per-page text when no table was found.
func (Report) Shape(res *Result, opts Options) *model.Table {
	switch opts.ReportOutput {
	case OutputTablesOnly:
		return reportTables(res)
	case OutputTextOnly:
		return reportTextLines(res)
	default:
		if len(res.Tables) > 0 {
			return reportTables(res)
		}
		if len(res.Texts) > 0 {
			return reportPageRows(res)
		}
		return placeholderTable("Message", "No content extracted")
	}
}

// reportTables merges every collected table, tagging each row with the
// page it came from.
func reportTables(res *Result) *model.Table {
	if len(res.Tables) == 0 {
		return placeholderTable("Message", "No content extracted")
	}
	tagged := make([]*model.Table, 0, len(res.Tables))
	for _, e := range res.Tables {
		tagged = append(tagged, tagSourcePage(e))
	}
	return aggregate.Combine(tagged, aggregate.Vertical)
}

// tagSourcePage prepends a Source_Page column to an extracted table.
func tagSourcePage(e model.Extracted) *model.Table {
	page := strconv.Itoa(e.Page)
	columns := append([]string{"Source_Page"}, e.Table.Columns...)
	out := model.NewTable(columns...)
	for _, row := range e.Table.Rows {
		out.AppendRow(append([]string{page}, row...)...)
	}
	return out
}

// reportTextLines emits every non-blank line of the page blocks as a
// row.
func reportTextLines(res *Result) *model.Table {
	t := model.NewTable("Text")
	for _, line := range strings.Split(pageBlocks(res.Texts), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.AppendRow(line)
	}
	if t.RowCount() == 0 {
		return placeholderTable("Message", "No text extracted")
	}
	return t
}

// reportPageRows emits one row per text-bearing page.
func reportPageRows(res *Result) *model.Table {
	t := model.NewTable("Page", "Content")
	for _, pt := range res.Texts {
		t.AppendRow(strconv.Itoa(pt.Page), pt.Text)
	}
	return t
}
