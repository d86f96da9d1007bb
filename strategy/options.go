package strategy

import (
	"log/slog"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
)

// DefaultDPI is the resolution hint handed to OCR when none is
// configured.
const DefaultDPI = 300

// DefaultLanguage is the OCR language model used when none is
// configured.
const DefaultLanguage = "eng"

// Backend selects how the tabular strategy reads tables.
type Backend int

const (
	// BackendLayout analyses fragment positions page by page on the
	// already loaded document.
	BackendLayout Backend = iota

	// BackendDocument re-reads the whole document from a scoped temp
	// artifact using the parser's row buckets.
	BackendDocument
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendLayout:
		return "layout"
	case BackendDocument:
		return "document"
	default:
		return "unknown"
	}
}

// ParseBackend converts a backend name back to a Backend.
func ParseBackend(s string) (Backend, bool) {
	switch s {
	case "layout":
		return BackendLayout, true
	case "document":
		return BackendDocument, true
	default:
		return BackendLayout, false
	}
}

// ScannedFormat selects how OCR text is shaped.
type ScannedFormat int

const (
	// OutputAuto probes recognized text for tabular structure and
	// falls back to one line per row.
	OutputAuto ScannedFormat = iota

	// OutputText always emits one line per row.
	OutputText
)

// String returns the format name.
func (f ScannedFormat) String() string {
	switch f {
	case OutputAuto:
		return "auto"
	case OutputText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseScannedFormat converts a format name back to a ScannedFormat.
func ParseScannedFormat(s string) (ScannedFormat, bool) {
	switch s {
	case "auto":
		return OutputAuto, true
	case "text":
		return OutputText, true
	default:
		return OutputAuto, false
	}
}

// ReportOutput selects how report content is shaped.
type ReportOutput int

const (
	// OutputCombined prefers tables and falls back to per-page text.
	OutputCombined ReportOutput = iota

	// OutputTablesOnly ignores text and merges the tables, tagging
	// every row with its source page.
	OutputTablesOnly

	// OutputTextOnly ignores tables and emits one line per row.
	OutputTextOnly
)

// String returns the output name.
func (o ReportOutput) String() string {
	switch o {
	case OutputCombined:
		return "combined"
	case OutputTablesOnly:
		return "tables_only"
	case OutputTextOnly:
		return "text_only"
	default:
		return "unknown"
	}
}

// ParseReportOutput converts an output name back to a ReportOutput.
func ParseReportOutput(s string) (ReportOutput, bool) {
	switch s {
	case "combined":
		return OutputCombined, true
	case "tables_only":
		return OutputTablesOnly, true
	case "text_only":
		return OutputTextOnly, true
	default:
		return OutputCombined, false
	}
}

// Recognizer turns an encoded image into text. The OCR client
// satisfies it; tests substitute fakes.
type Recognizer interface {
	RecognizeImage(image []byte) (string, error)
}

// Options carries the per-run knobs of every strategy. The zero value
// is not useful; start from DefaultOptions.
type Options struct {
	// Backend selects the tabular extraction path.
	Backend Backend

	// Combine merges all collected tables into one. When false, only
	// the first table survives shaping.
	Combine bool

	// Direction selects how Combine merges tables.
	Direction aggregate.Direction

	// ScannedFormat shapes OCR output.
	ScannedFormat ScannedFormat

	// ReportOutput shapes report output.
	ReportOutput ReportOutput

	// DPI is the resolution hint handed to OCR.
	DPI int

	// Language is the OCR language model.
	Language string

	// Recognizer overrides the OCR engine. When nil, a client is
	// constructed per run.
	Recognizer Recognizer

	// Logger receives debug events. When nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns the options every run starts from.
func DefaultOptions() Options {
	return Options{
		Combine:  true,
		DPI:      DefaultDPI,
		Language: DefaultLanguage,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
