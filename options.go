package pdfextract

import (
	"log/slog"

	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

// pipelineOptions holds configuration for a classification and
// extraction run.
type pipelineOptions struct {
	// Extraction knobs, passed through to the selected method
	backend       strategy.Backend
	combine       bool
	direction     aggregate.Direction
	scannedFormat strategy.ScannedFormat
	reportOutput  strategy.ReportOutput
	dpi           int
	language      string

	// Classification
	sampleSize int
	forceType  *classify.Verdict

	// Ambient
	logger     *slog.Logger
	recognizer strategy.Recognizer
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		backend:       strategy.BackendLayout,
		combine:       true,
		direction:     aggregate.Vertical,
		scannedFormat: strategy.OutputAuto,
		reportOutput:  strategy.OutputCombined,
		dpi:           strategy.DefaultDPI,
		language:      strategy.DefaultLanguage,
		sampleSize:    classify.DefaultSampleSize,
	}
}

// strategyOptions converts the pipeline options to the option set the
// extraction methods consume.
func (o pipelineOptions) strategyOptions() strategy.Options {
	return strategy.Options{
		Backend:       o.backend,
		Combine:       o.combine,
		Direction:     o.direction,
		ScannedFormat: o.scannedFormat,
		ReportOutput:  o.reportOutput,
		DPI:           o.dpi,
		Language:      o.language,
		Recognizer:    o.recognizer,
		Logger:        o.logger,
	}
}
