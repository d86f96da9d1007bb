// Package export renders extraction results in the formats callers
// download: CSV, XLSX, and HTML.
package export

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

// Format is an output rendering.
type Format int

const (
	// CSV renders the table as comma-separated values.
	CSV Format = iota
	// XLSX renders the table as an Excel workbook.
	XLSX
	// HTML renders the table as a standalone HTML page.
	HTML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case XLSX:
		return "xlsx"
	case HTML:
		return "html"
	default:
		return "csv"
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case HTML:
		return "text/html; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseFormat converts a format name to a Format. It accepts the names
// String returns, case-insensitively.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, true
	case "xlsx":
		return XLSX, true
	case "html":
		return HTML, true
	default:
		return CSV, false
	}
}

// Render produces the bytes of t in the given format.
func Render(t *model.Table, f Format) ([]byte, error) {
	if t == nil {
		return nil, errors.New("no table to render")
	}
	switch f {
	case XLSX:
		return renderXLSX(t)
	case HTML:
		return renderHTML(t)
	default:
		return renderCSV(t)
	}
}

// Filename derives the download name for an extraction of the named
// source: the source stem plus an "_extracted" suffix and the format
// extension. Sources without a usable stem become "output".
//
// Example:
//
//	export.Filename("reports/q3.pdf", export.XLSX) // "q3_extracted.xlsx"
func Filename(source string, f Format) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "output"
	}
	return stem + "_extracted." + f.String()
}
