package pdfextract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/document"
	"github.com/sameernimse09/pdf-data-extractor/model"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

// Pipeline classifies a PDF and runs the extraction method that
// matches its content shape. Pipelines are immutable: every option
// method returns a new Pipeline, so a configured base can be branched
// without the branches affecting each other.
//
// The source is read and parsed once, when the first terminal
// operation (Classify, Extract, PageCount) runs.
type Pipeline struct {
	filename string
	source   io.Reader
	data     []byte

	doc     *document.Document
	loaded  bool
	loadErr error

	options  pipelineOptions
	err      error
	warnings []Warning
}

// Output is the result of a full extraction run.
type Output struct {
	// Table holds the shaped output. Never nil: runs that recover
	// nothing yield a single-column placeholder table.
	Table *model.Table `json:"table"`

	// Classification records the automatic verdict, even when a
	// forced type overrode it.
	Classification classify.Result `json:"classification"`

	// Forced is the manually selected document type, if any.
	Forced *classify.Verdict `json:"forced_type,omitempty"`

	// Diagnostics describes how the extraction went: method used,
	// pages processed, tables found, and per-page failures.
	Diagnostics strategy.Diagnostics `json:"diagnostics"`
}

// clone creates a copy of the Pipeline with its own warning slice.
// The parsed document is shared; it is immutable once loaded.
func (p *Pipeline) clone() *Pipeline {
	newPipe := &Pipeline{
		filename: p.filename,
		source:   p.source,
		data:     p.data,
		doc:      p.doc,
		loaded:   p.loaded,
		loadErr:  p.loadErr,
		options:  p.options,
		err:      p.err,
	}
	if p.warnings != nil {
		newPipe.warnings = make([]Warning, len(p.warnings))
		copy(newPipe.warnings, p.warnings)
	}
	return newPipe
}

func (p *Pipeline) warn(stage, message string) {
	p.warnings = append(p.warnings, Warning{Stage: stage, Message: message})
}

func (p *Pipeline) logger() *slog.Logger {
	if p.options.logger != nil {
		return p.options.logger
	}
	return slog.Default()
}

// Backend returns a new Pipeline that extracts tables with the given
// backend. The layout backend clusters positioned text fragments page
// by page; the document backend re-reads the whole file through a
// scoped temporary artifact.
//
// Example:
//
//	out, _, err := pdfextract.Open("ledger.pdf").
//	    Backend(pdfextract.BackendDocument).
//	    Extract()
func (p *Pipeline) Backend(b Backend) *Pipeline {
	newPipe := p.clone()
	newPipe.options.backend = b
	return newPipe
}

// CombineTables returns a new Pipeline configured to merge all
// extracted tables into one (the default) or to keep only the first
// table found.
//
// Example:
//
//	first, _, err := pdfextract.Open("ledger.pdf").
//	    CombineTables(false).
//	    Extract()
func (p *Pipeline) CombineTables(combine bool) *Pipeline {
	newPipe := p.clone()
	newPipe.options.combine = combine
	return newPipe
}

// CombineDirection returns a new Pipeline that merges tables in the
// given direction. Vertical stacks rows and aligns columns by name;
// Horizontal places tables side by side.
func (p *Pipeline) CombineDirection(dir Direction) *Pipeline {
	newPipe := p.clone()
	newPipe.options.direction = dir
	return newPipe
}

// ScannedFormat returns a new Pipeline that shapes OCR output as
// requested. ScannedAuto probes the recognized text for columns;
// ScannedText always emits one line per row.
func (p *Pipeline) ScannedFormat(f ScannedFormat) *Pipeline {
	newPipe := p.clone()
	newPipe.options.scannedFormat = f
	return newPipe
}

// ReportOutput returns a new Pipeline that shapes report extraction as
// requested: combined (tables preferred, text fallback), tables only,
// or text only.
func (p *Pipeline) ReportOutput(o ReportOutput) *Pipeline {
	newPipe := p.clone()
	newPipe.options.reportOutput = o
	return newPipe
}

// ForceType returns a new Pipeline that skips verdict dispatch and
// runs the extraction method for the given document type. The
// automatic classification is still performed and recorded in the
// Output.
//
// Example:
//
//	out, _, err := pdfextract.Open("scan.pdf").
//	    ForceType(pdfextract.TypeScanned).
//	    Extract()
func (p *Pipeline) ForceType(t DocumentType) *Pipeline {
	newPipe := p.clone()
	forced := t
	newPipe.options.forceType = &forced
	return newPipe
}

// DPI returns a new Pipeline with the given OCR resolution hint.
// Values below 1 put the Pipeline in an error state reported by the
// next terminal operation.
func (p *Pipeline) DPI(dpi int) *Pipeline {
	newPipe := p.clone()
	if dpi < 1 {
		newPipe.err = fmt.Errorf("dpi must be positive, got %d", dpi)
		return newPipe
	}
	newPipe.options.dpi = dpi
	return newPipe
}

// OCRLanguage returns a new Pipeline with the given Tesseract language
// code, e.g. "eng" or "deu".
func (p *Pipeline) OCRLanguage(lang string) *Pipeline {
	newPipe := p.clone()
	if lang == "" {
		newPipe.err = errors.New("ocr language must not be empty")
		return newPipe
	}
	newPipe.options.language = lang
	return newPipe
}

// SampleSize returns a new Pipeline that classifies by inspecting the
// first n pages. Values below 1 put the Pipeline in an error state
// reported by the next terminal operation.
func (p *Pipeline) SampleSize(n int) *Pipeline {
	newPipe := p.clone()
	if n < 1 {
		newPipe.err = fmt.Errorf("sample size must be positive, got %d", n)
		return newPipe
	}
	newPipe.options.sampleSize = n
	return newPipe
}

// WithLogger returns a new Pipeline that logs through l instead of the
// default slog logger.
func (p *Pipeline) WithLogger(l *slog.Logger) *Pipeline {
	newPipe := p.clone()
	newPipe.options.logger = l
	return newPipe
}

// WithRecognizer returns a new Pipeline that recognizes page images
// through r instead of the built-in OCR engine. Useful for plugging in
// remote OCR services, or fakes in tests.
func (p *Pipeline) WithRecognizer(r Recognizer) *Pipeline {
	newPipe := p.clone()
	newPipe.options.recognizer = r
	return newPipe
}

// ensureDocument reads and parses the source once. A source that
// cannot be read at all is an error; a source that reads but does not
// parse as a PDF is not, matching the downgrade-and-continue behavior
// of classification. The parse failure is recorded as a warning and
// the terminal operations fall back accordingly.
func (p *Pipeline) ensureDocument() error {
	if p.loaded {
		return nil
	}
	p.loaded = true

	var data []byte
	switch {
	case p.doc != nil:
		return nil
	case p.data != nil:
		data = p.data
	case p.source != nil:
		b, err := io.ReadAll(p.source)
		if err != nil {
			p.err = fmt.Errorf("failed to read source: %w", err)
			return p.err
		}
		data = b
	case p.filename != "":
		b, err := os.ReadFile(p.filename)
		if err != nil {
			p.err = fmt.Errorf("failed to open PDF: %w", err)
			return p.err
		}
		data = b
	default:
		p.err = errors.New("no document source provided")
		return p.err
	}

	doc, err := document.Load(data)
	if err != nil {
		p.loadErr = err
		p.warn("load", err.Error())
		p.logger().Warn("load.failed", "error", err)
		return nil
	}
	p.doc = doc
	return nil
}

// Classify reads the document and returns its verdict. Documents that
// cannot be parsed fall back to the tabular verdict at low confidence,
// with a warning describing the failure; only unreadable sources
// return an error.
//
// Example:
//
//	res, _, err := pdfextract.Open("mystery.pdf").Classify()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (%s confidence)\n", res.Type, res.Confidence)
func (p *Pipeline) Classify() (classify.Result, []Warning, error) {
	if p.err != nil {
		return classify.Result{}, nil, p.err
	}
	if err := p.ensureDocument(); err != nil {
		return classify.Result{}, nil, err
	}

	res, err := classify.Classify(p.doc, p.options.sampleSize)
	if err != nil {
		p.warn("classify", err.Error())
	}
	p.logger().Debug("classify.done",
		"type", res.Type.String(),
		"confidence", res.Confidence.String(),
		"pages", res.TotalPages)
	return res, p.warnings, nil
}

// Extract classifies the document, runs the matching extraction
// method, and returns the shaped output table. Per-page failures and
// parse fallbacks surface as warnings, not errors; the Table is always
// populated, with a placeholder when nothing was recovered.
//
// Example:
//
//	out, warnings, err := pdfextract.Open("invoice.pdf").Extract()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range warnings {
//	    log.Println("warning:", w)
//	}
//	fmt.Println(out.Table.ToMarkdown())
func (p *Pipeline) Extract() (*Output, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureDocument(); err != nil {
		return nil, nil, err
	}

	cls, clsErr := classify.Classify(p.doc, p.options.sampleSize)
	if clsErr != nil {
		p.warn("classify", clsErr.Error())
	}

	verdict := cls.Type
	if p.options.forceType != nil {
		verdict = *p.options.forceType
	}

	method := strategy.For(verdict)
	opts := p.options.strategyOptions()
	res, diags := method.Run(p.doc, opts)
	table := aggregate.Clean(method.Shape(res, opts))
	for _, line := range diags.Errors {
		p.warn(diags.Method, line)
	}

	p.logger().Info("extract.done",
		"type", verdict.String(),
		"method", diags.Method,
		"rows", table.RowCount(),
		"columns", table.ColCount(),
		"warnings", len(p.warnings))

	return &Output{
		Table:          table,
		Classification: cls,
		Forced:         p.options.forceType,
		Diagnostics:    *diags,
	}, p.warnings, nil
}

// PageCount reads the document and returns its page count. Unlike
// Classify and Extract, a document that cannot be parsed is an error
// here; there is no meaningful count to fall back to.
func (p *Pipeline) PageCount() (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if err := p.ensureDocument(); err != nil {
		return 0, err
	}
	if p.loadErr != nil {
		return 0, p.loadErr
	}
	return p.doc.PageCount(), nil
}
