package pdfextract

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

// reportDoc builds a two-page document that classifies as a report:
// enough prose on page one to count as a text layer, one table, and an
// empty second page.
func reportDoc() *document.Document {
	return document.New(
		&document.Page{
			Number: 1,
			Text:   "Quarterly summary with itemized operating figures for the period.\nRevenue 100\nCost 50",
			Tables: [][][]string{{{"Name", "Val"}, {"A", "1"}, {"B", "2"}}},
		},
		&document.Page{Number: 2},
	)
}

type fakeOCR map[string]string

func (f fakeOCR) RecognizeImage(image []byte) (string, error) {
	if text, ok := f[string(image)]; ok {
		return text, nil
	}
	return "", errors.New("unreadable image")
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("disk error") }

func TestOptionMethodsDoNotMutateReceiver(t *testing.T) {
	base := FromDocument(reportDoc())
	derived := base.DPI(400).CombineTables(false).OCRLanguage("deu")

	if derived == base {
		t.Fatal("expected option methods to return a new pipeline")
	}
	if base.options.dpi != strategy.DefaultDPI || !base.options.combine || base.options.language != strategy.DefaultLanguage {
		t.Errorf("base options changed: %+v", base.options)
	}
	if derived.options.dpi != 400 || derived.options.combine || derived.options.language != "deu" {
		t.Errorf("derived options = %+v", derived.options)
	}
}

func TestExtractReportDocument(t *testing.T) {
	out, warnings, err := FromDocument(reportDoc()).Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if out.Classification.Type != classify.ReportDocument || out.Classification.Confidence != classify.Medium {
		t.Errorf("classification = %+v", out.Classification)
	}
	if out.Forced != nil {
		t.Errorf("forced = %v", out.Forced)
	}
	if out.Diagnostics.Method != "report" || out.Diagnostics.PagesProcessed != 2 {
		t.Errorf("diagnostics = %+v", out.Diagnostics)
	}
	if want := []string{"Source_Page", "Name", "Val"}; !reflect.DeepEqual(out.Table.Columns, want) {
		t.Errorf("columns = %v", out.Table.Columns)
	}
	if want := [][]string{{"1", "A", "1"}, {"1", "B", "2"}}; !reflect.DeepEqual(out.Table.Rows, want) {
		t.Errorf("rows = %v", out.Table.Rows)
	}
}

func TestExtractForcedType(t *testing.T) {
	out, _, err := FromDocument(reportDoc()).ForceType(TypeTabular).Extract()
	if err != nil {
		t.Fatal(err)
	}
	if out.Forced == nil || *out.Forced != TypeTabular {
		t.Errorf("forced = %v", out.Forced)
	}
	if out.Classification.Type != classify.ReportDocument {
		t.Errorf("automatic verdict should still be recorded, got %v", out.Classification.Type)
	}
	if out.Diagnostics.Method != "layout" {
		t.Errorf("method = %q", out.Diagnostics.Method)
	}
	if want := []string{"Name", "Val"}; !reflect.DeepEqual(out.Table.Columns, want) {
		t.Errorf("columns = %v", out.Table.Columns)
	}
	if want := [][]string{{"A", "1"}, {"B", "2"}}; !reflect.DeepEqual(out.Table.Rows, want) {
		t.Errorf("rows = %v", out.Table.Rows)
	}
}

func TestExtractScannedWithRecognizer(t *testing.T) {
	doc := document.New(
		&document.Page{Number: 1, Image: []byte("img-1"), ImageType: "png"},
		&document.Page{Number: 2, Image: []byte("img-2"), ImageType: "png"},
	)
	rec := fakeOCR{"img-1": "Invoice 42", "img-2": "Total 10"}

	out, warnings, err := FromDocument(doc).
		WithRecognizer(rec).
		ScannedFormat(ScannedText).
		Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if out.Classification.Type != classify.ScannedDocument || out.Classification.Confidence != classify.High {
		t.Errorf("classification = %+v", out.Classification)
	}
	if out.Diagnostics.Method != "ocr" || out.Diagnostics.DPI != strategy.DefaultDPI || out.Diagnostics.OutputFormat != "text" {
		t.Errorf("diagnostics = %+v", out.Diagnostics)
	}
	if want := []string{"Extracted_Text"}; !reflect.DeepEqual(out.Table.Columns, want) {
		t.Errorf("columns = %v", out.Table.Columns)
	}
	want := [][]string{{"--- Page 1 ---"}, {"Invoice 42"}, {"--- Page 2 ---"}, {"Total 10"}}
	if !reflect.DeepEqual(out.Table.Rows, want) {
		t.Errorf("rows = %v", out.Table.Rows)
	}
}

func TestExtractCombineControls(t *testing.T) {
	doc := document.New(&document.Page{
		Number: 1,
		Tables: [][][]string{
			{{"Name", "Val"}, {"A", "1"}},
			{{"Qty"}, {"7"}},
		},
	})
	base := FromDocument(doc).ForceType(TypeTabular)

	wide := MustResult(base.CombineDirection(Horizontal).Extract())
	if want := []string{"Name", "Val", "Qty"}; !reflect.DeepEqual(wide.Table.Columns, want) {
		t.Errorf("horizontal columns = %v", wide.Table.Columns)
	}
	if want := [][]string{{"A", "1", "7"}}; !reflect.DeepEqual(wide.Table.Rows, want) {
		t.Errorf("horizontal rows = %v", wide.Table.Rows)
	}

	first := MustResult(base.CombineTables(false).Extract())
	if want := []string{"Name", "Val"}; !reflect.DeepEqual(first.Table.Columns, want) {
		t.Errorf("first-table columns = %v", first.Table.Columns)
	}
}

func TestExtractFallsBackOnGarbage(t *testing.T) {
	out, warnings, err := FromBytes([]byte("definitely not a pdf")).Extract()
	if err != nil {
		t.Fatal(err)
	}
	if out.Classification.Type != classify.TabularDocument || out.Classification.Confidence != classify.Low {
		t.Errorf("classification = %+v", out.Classification)
	}
	if got := out.Table.Columns; len(got) != 1 || got[0] != "Message" {
		t.Errorf("columns = %v", got)
	}
	if got := out.Table.Cell(0, 0); got != "No tables found" {
		t.Errorf("cell = %q", got)
	}
	stages := make(map[string]bool)
	for _, w := range warnings {
		stages[w.Stage] = true
	}
	for _, stage := range []string{"load", "classify", "layout"} {
		if !stages[stage] {
			t.Errorf("missing %q warning in %v", stage, warnings)
		}
	}
}

func TestClassifyGarbageFallsBack(t *testing.T) {
	res, warnings, err := FromReader(bytes.NewReader([]byte("junk"))).Classify()
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != classify.TabularDocument || res.Confidence != classify.Low || res.TotalPages != 0 {
		t.Errorf("result = %+v", res)
	}
	if len(warnings) == 0 {
		t.Error("expected load and classify warnings")
	}
}

func TestExtractWarningsMirrorDiagnostics(t *testing.T) {
	doc := document.New(
		&document.Page{
			Number: 1,
			Text:   "A plain page of prose, long enough to register as a text layer.",
		},
		&document.Page{Number: 2, Err: errors.New("damaged stream")},
	)

	out, warnings, err := FromDocument(doc).Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Diagnostics.Errors) != 1 || !strings.HasPrefix(out.Diagnostics.Errors[0], "page 2:") {
		t.Fatalf("diagnostics errors = %v", out.Diagnostics.Errors)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v", warnings)
	}
	if warnings[0].Stage != "classify" {
		t.Errorf("warnings[0] = %v", warnings[0])
	}
	if warnings[1].Stage != out.Diagnostics.Method || warnings[1].Message != out.Diagnostics.Errors[0] {
		t.Errorf("warnings[1] = %v", warnings[1])
	}
}

func TestSourceReadFailures(t *testing.T) {
	if _, _, err := FromReader(failReader{}).Extract(); err == nil || !strings.Contains(err.Error(), "failed to read source") {
		t.Errorf("reader failure err = %v", err)
	}
	if _, err := Open("testdata/does-not-exist.pdf").PageCount(); err == nil || !strings.Contains(err.Error(), "failed to open PDF") {
		t.Errorf("missing file err = %v", err)
	}
}

func TestPageCountRequiresParsableDocument(t *testing.T) {
	if _, err := FromBytes([]byte("junk")).PageCount(); err == nil {
		t.Error("expected an error for an unparsable document")
	}
	got, err := FromDocument(reportDoc()).PageCount()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("page count = %d", got)
	}
}

func TestInvalidOptionsSurfaceAtTerminal(t *testing.T) {
	cases := []struct {
		name string
		p    *Pipeline
	}{
		{"zero dpi", Open("x.pdf").DPI(0)},
		{"zero sample size", Open("x.pdf").SampleSize(0)},
		{"empty language", Open("x.pdf").OCRLanguage("")},
	}
	for _, tc := range cases {
		if _, _, err := tc.p.Extract(); err == nil {
			t.Errorf("%s: Extract succeeded", tc.name)
		}
		if _, _, err := tc.p.Classify(); err == nil {
			t.Errorf("%s: Classify succeeded", tc.name)
		}
		if _, err := tc.p.PageCount(); err == nil {
			t.Errorf("%s: PageCount succeeded", tc.name)
		}
	}
}

func TestExtractLogsThroughConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := FromDocument(reportDoc()).WithLogger(logger).Extract()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "extract.done") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Stage: "load", Message: "open document: bad header"},
		{Stage: "ocr", Message: "page 3: unreadable image"},
	}
	want := "load: open document: bad header; ocr: page 3: unreadable image"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if FormatWarnings(nil) != "" {
		t.Error("nil slice should format to an empty string")
	}
}
