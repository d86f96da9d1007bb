package strategy

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
	"github.com/sameernimse09/pdf-data-extractor/ocr"
)

// structureSampleLines bounds how many leading lines the auto format
// probes for tabular structure.
const structureSampleLines = 10

// cellSplitRe splits a recognized line into cells on runs of two or
// more spaces or on tabs.
var cellSplitRe = regexp.MustCompile(`\s{2,}|\t+`)

// Scanned recognizes text from image-based PDFs. Each page is
// represented by its dominant embedded image, which for scanned
// documents is the page scan itself.
type Scanned struct{}

// Name returns the strategy name.
func (Scanned) Name() string { return "scanned" }

// Run feeds every page image through the recognizer and collects the
// recognized text per page. Pages without an image and pages the
// recognizer rejects add one error line each and are skipped.
func (Scanned) Run(doc *document.Document, opts Options) (*Result, *Diagnostics) {
	d := newDiagnostics("ocr")
	d.DPI = opts.DPI
	d.OutputFormat = opts.ScannedFormat.String()
	res := &Result{}
	if doc == nil {
		d.fail("document", errNoDocument)
		return res, d
	}
	d.PagesProcessed = doc.PageCount()

	rec := opts.Recognizer
	if rec == nil {
		client, err := newRecognizer(opts)
		if err != nil {
			d.fail("ocr", err)
			return res, d
		}
		defer client.Close()
		rec = client
	}

	for _, page := range doc.Pages {
		if len(page.Image) == 0 {
			if page.Err != nil {
				d.pageError(page.Number, page.Err)
			} else {
				d.pageError(page.Number, errors.New("no page image"))
			}
			continue
		}
		img, err := ocr.NormalizeImage(page.Image)
		if err != nil {
			d.pageError(page.Number, err)
			continue
		}
		text, err := rec.RecognizeImage(img)
		if err != nil {
			d.pageError(page.Number, err)
			continue
		}
		text = ocr.NormalizeText(text)
		if strings.TrimSpace(text) != "" {
			res.Texts = append(res.Texts, model.PageText{Page: page.Number, Text: text})
		}
	}
	d.TextLength = len(pageBlocks(res.Texts))
	return res, d
}

// newRecognizer builds a configured OCR client for one run.
func newRecognizer(opts Options) (*ocr.Client, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	if opts.Language != "" {
		if err := client.SetLanguage(opts.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("set language %q: %w", opts.Language, err)
		}
	}
	if opts.DPI > 0 {
		if err := client.SetDPI(opts.DPI); err != nil {
			client.Close()
			return nil, fmt.Errorf("set dpi %d: %w", opts.DPI, err)
		}
	}
	return client, nil
}

// Shape turns the recognized page blocks into a table. The text format
// emits one line per row; the auto format first probes the leading
// lines for columnar structure.
func (Scanned) Shape(res *Result, opts Options) *model.Table {
	text := pageBlocks(res.Texts)
	if opts.ScannedFormat == OutputText {
		return textLineTable(text)
	}
	return autoTable(text)
}

// textLineTable emits every non-blank line as one row, preserving the
// original spacing inside the line.
func textLineTable(text string) *model.Table {
	t := model.NewTable("Extracted_Text")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.AppendRow(line)
	}
	if t.RowCount() == 0 {
		t.AppendRow("No text extracted")
	}
	return t
}

// autoTable probes the leading lines for a stable column structure.
// Structured text is split into cells; anything else degrades to one
// trimmed line per row.
func autoTable(text string) *model.Table {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return placeholderTable("Text", "No text extracted")
	}

	if !looksTabular(lines) {
		t := model.NewTable("Extracted_Text")
		for _, line := range lines {
			t.AppendRow(line)
		}
		return t
	}

	rows := make([][]string, 0, len(lines))
	width := 0
	for _, line := range lines {
		cells := cellSplitRe.Split(line, -1)
		rows = append(rows, cells)
		if len(cells) > width {
			width = len(cells)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	// A numeric first row is data, not a header.
	if rowLooksNumeric(rows[0]) {
		columns := make([]string, width)
		for i := range columns {
			columns[i] = fmt.Sprintf("Column_%d", i+1)
		}
		t := model.NewTable(columns...)
		for _, row := range rows {
			t.AppendRow(row...)
		}
		return t
	}

	t := model.NewTable(rows[0]...)
	for _, row := range rows[1:] {
		t.AppendRow(row...)
	}
	return t
}

// looksTabular reports whether the leading lines share a stable
// multi-token structure: some line has more than one token and the
// sample spans at most three distinct token counts.
func looksTabular(lines []string) bool {
	sample := lines
	if len(sample) > structureSampleLines {
		sample = sample[:structureSampleLines]
	}
	counts := make(map[int]struct{})
	max := 0
	for _, line := range sample {
		n := len(strings.Fields(line))
		counts[n] = struct{}{}
		if n > max {
			max = n
		}
	}
	return max > 1 && len(counts) <= 3
}

// rowLooksNumeric reports whether any cell of the row is a bare number
// once grouping separators are removed.
func rowLooksNumeric(row []string) bool {
	for _, cell := range row {
		if isNumericCell(cell) {
			return true
		}
	}
	return false
}

func isNumericCell(cell string) bool {
	s := strings.NewReplacer(".", "", ",", "").Replace(cell)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
