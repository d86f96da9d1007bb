package strategy

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
)

func TestReportRunCollectsTextAndTables(t *testing.T) {
	doc := document.New(
		&document.Page{
			Number: 1,
			Text:   "Revenue 100\nCost 50",
			Tables: [][][]string{{{"Name", "Val"}, {"A", "1"}, {"B", "2"}}},
		},
		&document.Page{Number: 2, Text: "  \n"},
	)

	res, diags := Report{}.Run(doc, DefaultOptions())
	if len(diags.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", diags.Errors)
	}
	if len(res.Texts) != 1 || res.Texts[0].Page != 1 {
		t.Errorf("texts = %v", res.Texts)
	}
	if len(res.Tables) != 1 || res.Tables[0].Page != 1 {
		t.Errorf("tables = %v", res.Tables)
	}
	if diags.Method != "report" || diags.PagesProcessed != 2 || diags.TablesFound != 1 {
		t.Errorf("diags = %+v", diags)
	}
}

func TestReportRunIsolatesPageFailures(t *testing.T) {
	doc := document.New(
		&document.Page{Number: 1, Text: "fine"},
		&document.Page{Number: 2, Err: errTest("damaged stream")},
		&document.Page{Number: 3, Text: "also fine"},
	)

	res, diags := Report{}.Run(doc, DefaultOptions())
	if len(res.Texts) != 2 {
		t.Errorf("texts = %v", res.Texts)
	}
	if len(diags.Errors) != 1 || !strings.HasPrefix(diags.Errors[0], "page 2:") {
		t.Errorf("errors = %v", diags.Errors)
	}
}

func TestReportCombinedPrefersTables(t *testing.T) {
	// A two-page document: prose plus one table on page one, an empty
	// second page. The combined shape keeps the table and tags every
	// row with its page.
	doc := document.New(
		&document.Page{
			Number: 1,
			Text:   "Revenue 100\nCost 50",
			Tables: [][][]string{{{"Name", "Val"}, {"A", "1"}, {"B", "2"}}},
		},
		&document.Page{Number: 2},
	)

	strat := For(classify.ReportDocument)
	res, diags := strat.Run(doc, DefaultOptions())
	if len(diags.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", diags.Errors)
	}

	got := strat.Shape(res, DefaultOptions())
	if !reflect.DeepEqual(got.Columns, []string{"Source_Page", "Name", "Val"}) {
		t.Fatalf("columns = %v", got.Columns)
	}
	want := [][]string{{"1", "A", "1"}, {"1", "B", "2"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func TestReportCombinedFallsBackToText(t *testing.T) {
	res := &Result{Texts: []model.PageText{
		{Page: 1, Text: "first page"},
		{Page: 3, Text: "third page"},
	}}

	got := Report{}.Shape(res, DefaultOptions())
	if !reflect.DeepEqual(got.Columns, []string{"Page", "Content"}) {
		t.Fatalf("columns = %v", got.Columns)
	}
	want := [][]string{{"1", "first page"}, {"3", "third page"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func TestReportCombinedEmpty(t *testing.T) {
	got := Report{}.Shape(&Result{}, DefaultOptions())
	if got.Cell(0, 0) != "No content extracted" {
		t.Errorf("cell = %q", got.Cell(0, 0))
	}
}

func TestReportTablesOnlyMergesAcrossPages(t *testing.T) {
	a, _ := model.FromGrid([][]string{{"Name", "Val"}, {"A", "1"}})
	b, _ := model.FromGrid([][]string{{"Name", "Qty"}, {"B", "7"}})
	res := &Result{
		Tables: []model.Extracted{
			{Page: 1, Index: 1, Table: a},
			{Page: 4, Index: 1, Table: b},
		},
		Texts: []model.PageText{{Page: 2, Text: "ignored"}},
	}
	opts := DefaultOptions()
	opts.ReportOutput = OutputTablesOnly

	got := Report{}.Shape(res, opts)
	// Differing column sets union in first-seen order.
	if !reflect.DeepEqual(got.Columns, []string{"Source_Page", "Name", "Val", "Qty"}) {
		t.Fatalf("columns = %v", got.Columns)
	}
	want := [][]string{
		{"1", "A", "1", ""},
		{"4", "B", "", "7"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func TestReportTablesOnlyEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.ReportOutput = OutputTablesOnly

	got := Report{}.Shape(&Result{Texts: []model.PageText{{Page: 1, Text: "x"}}}, opts)
	if got.Cell(0, 0) != "No content extracted" {
		t.Errorf("cell = %q", got.Cell(0, 0))
	}
}

func TestReportTextOnly(t *testing.T) {
	res := &Result{
		Tables: []model.Extracted{{Page: 1, Index: 1, Table: model.NewTable("x")}},
		Texts:  []model.PageText{{Page: 1, Text: "alpha\nbeta"}},
	}
	opts := DefaultOptions()
	opts.ReportOutput = OutputTextOnly

	got := Report{}.Shape(res, opts)
	if !reflect.DeepEqual(got.Columns, []string{"Text"}) {
		t.Fatalf("columns = %v", got.Columns)
	}
	want := [][]string{{"--- Page 1 ---"}, {"alpha"}, {"beta"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("rows = %v, want %v", got.Rows, want)
	}
}

func TestReportTextOnlyEmpty(t *testing.T) {
	opts := DefaultOptions()
	opts.ReportOutput = OutputTextOnly

	got := Report{}.Shape(&Result{}, opts)
	if got.Cell(0, 0) != "No text extracted" {
		t.Errorf("cell = %q", got.Cell(0, 0))
	}
}

func TestRegistryBindsAllVerdicts(t *testing.T) {
	cases := []struct {
		verdict classify.Verdict
		name    string
	}{
		{classify.TabularDocument, "tabular"},
		{classify.ScannedDocument, "scanned"},
		{classify.ReportDocument, "report"},
	}
	for _, c := range cases {
		strat := For(c.verdict)
		if strat == nil {
			t.Fatalf("no strategy for %s", c.verdict)
		}
		if strat.Name() != c.name {
			t.Errorf("For(%s).Name() = %q", c.verdict, strat.Name())
		}
	}
}

func TestOptionParsers(t *testing.T) {
	if b, ok := ParseBackend("document"); !ok || b != BackendDocument {
		t.Error("ParseBackend(document) failed")
	}
	if _, ok := ParseBackend("bogus"); ok {
		t.Error("bogus backend should not parse")
	}
	if f, ok := ParseScannedFormat("text"); !ok || f != OutputText {
		t.Error("ParseScannedFormat(text) failed")
	}
	if o, ok := ParseReportOutput("tables_only"); !ok || o != OutputTablesOnly {
		t.Error("ParseReportOutput(tables_only) failed")
	}
	if DefaultOptions().DPI != DefaultDPI || !DefaultOptions().Combine {
		t.Error("unexpected defaults")
	}
}
