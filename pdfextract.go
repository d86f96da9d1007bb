// Package pdfextract provides a fluent API for classifying PDF files by
// content shape and extracting their data as a single structured table.
//
// Basic usage:
//
//	out, warnings, err := pdfextract.Open("document.pdf").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfextract.FormatWarnings(warnings))
//	}
//	fmt.Println(out.Table.ToMarkdown())
//
// Documents are classified as tabular, scanned, or report-like, and the
// matching extraction method runs automatically. With options:
//
//	out, _, err := pdfextract.Open("scan.pdf").
//	    ForceType(pdfextract.TypeScanned).
//	    DPI(400).
//	    ScannedFormat(pdfextract.ScannedText).
//	    Extract()
//
// For advanced use cases, the lower-level document, classify, and
// strategy packages are also available.
package pdfextract

import (
	"io"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

// DocumentType identifies the content archetype a document is
// classified as.
type DocumentType = classify.Verdict

// Document types, in classifier precedence order.
const (
	TypeTabular = classify.TabularDocument
	TypeScanned = classify.ScannedDocument
	TypeReport  = classify.ReportDocument
)

// Backend selects how the tabular method reads the document.
type Backend = strategy.Backend

// Tabular extraction backends.
const (
	BackendLayout   = strategy.BackendLayout
	BackendDocument = strategy.BackendDocument
)

// ScannedFormat selects how OCR output is shaped.
type ScannedFormat = strategy.ScannedFormat

// Scanned output formats.
const (
	ScannedAuto = strategy.OutputAuto
	ScannedText = strategy.OutputText
)

// ReportOutput selects what the report method emits.
type ReportOutput = strategy.ReportOutput

// Report output modes.
const (
	ReportCombined   = strategy.OutputCombined
	ReportTablesOnly = strategy.OutputTablesOnly
	ReportTextOnly   = strategy.OutputTextOnly
)

// Direction controls how extracted tables are merged.
type Direction = aggregate.Direction

// Merge directions.
const (
	Vertical   = aggregate.Vertical
	Horizontal = aggregate.Horizontal
)

// Recognizer converts a page image to text. The built-in OCR engine is
// used when none is supplied.
type Recognizer = strategy.Recognizer

// Open creates a Pipeline for the PDF at the given path. The file is
// read when the first terminal operation (Classify, Extract,
// PageCount) runs.
//
// Example:
//
//	out, warnings, err := pdfextract.Open("document.pdf").Extract()
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Pipeline that reads the PDF from r. The reader
// is drained when the first terminal operation runs; the caller keeps
// ownership and closes it if needed.
//
// Example:
//
//	f, err := os.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//	res, _, err := pdfextract.FromReader(f).Classify()
func FromReader(r io.Reader) *Pipeline {
	return &Pipeline{
		source:  r,
		options: defaultOptions(),
	}
}

// FromBytes creates a Pipeline over an in-memory PDF. The data is not
// copied; the caller must not modify it while the Pipeline is in use.
func FromBytes(data []byte) *Pipeline {
	return &Pipeline{
		data:    data,
		options: defaultOptions(),
	}
}

// FromDocument creates a Pipeline over an already parsed document.
// This skips loading entirely, which is useful for re-running
// extraction with different options or for feeding assembled documents
// into the pipeline.
func FromDocument(doc *document.Document) *Pipeline {
	return &Pipeline{
		doc:     doc,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfextract.Must(pdfextract.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Extract() or Classify()
// and panics if the error is non-nil. It discards warnings and returns
// just the value. It is intended for use in scripts or tests where
// error handling would be cumbersome.
//
// Example:
//
//	out := pdfextract.MustResult(pdfextract.Open("document.pdf").Extract())
//	fmt.Println(out.Table.ToMarkdown())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
