// Command pdfextract classifies a PDF and extracts its content as a
// structured table, either for a single file or as an HTTP service.
//
// File mode writes the extracted table next to the input:
//
//	pdfextract invoice.pdf
//	pdfextract -format csv -o table.csv invoice.pdf
//	pdfextract -classify invoice.pdf
//
// Service mode exposes the same pipeline over HTTP:
//
//	pdfextract -serve -listen :8080
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	pdfextract "github.com/sameernimse09/pdf-data-extractor"
	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/config"
	"github.com/sameernimse09/pdf-data-extractor/export"
	"github.com/sameernimse09/pdf-data-extractor/server"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

func main() {
	var (
		cfgPath      = flag.String("config", "", "path to YAML config file")
		serve        = flag.Bool("serve", false, "run the HTTP service instead of processing a file")
		listen       = flag.String("listen", "", "listen address (overrides config)")
		classifyOnly = flag.Bool("classify", false, "classify only and print the verdict as JSON")
		forceType    = flag.String("type", "", "force document type: tabular, scanned, or report")
		backend      = flag.String("backend", "", "tabular backend: layout or document")
		combine      = flag.Bool("combine", true, "merge extracted tables into one")
		direction    = flag.String("direction", "", "merge direction: vertical or horizontal")
		scannedFmt   = flag.String("scanned-format", "", "scanned output shape: auto or text")
		reportOut    = flag.String("report-output", "", "report output: combined, tables_only, or text_only")
		dpi          = flag.Int("dpi", 0, "OCR resolution hint (overrides config)")
		lang         = flag.String("lang", "", "OCR language (overrides config)")
		sample       = flag.Int("sample", 0, "classification sample size (overrides config)")
		output       = flag.String("o", "", "output path, or - for stdout (default <input>_extracted.<format>)")
		outFormat    = flag.String("format", "xlsx", "output format: csv, xlsx, or html")
		logLevel     = flag.String("log-level", "", "debug, info, warn, or error (overrides config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *dpi > 0 {
		cfg.OCR.DPI = *dpi
	}
	if *lang != "" {
		cfg.OCR.Language = *lang
	}
	if *sample > 0 {
		cfg.SampleSize = *sample
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if *serve {
		if err := server.New(cfg, logger).ListenAndServe(); err != nil {
			logger.Error("server", "error", err)
			os.Exit(1)
		}
		return
	}

	input := flag.Arg(0)
	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: pdfextract [flags] document.pdf")
		flag.PrintDefaults()
		os.Exit(2)
	}

	p := pdfextract.Open(input).
		SampleSize(cfg.SampleSize).
		DPI(cfg.OCR.DPI).
		OCRLanguage(cfg.OCR.Language).
		WithLogger(logger)

	if *forceType != "" {
		t, ok := classify.ParseVerdict(*forceType)
		if !ok {
			fatalf("unknown type %q (use tabular, scanned, or report)", *forceType)
		}
		p = p.ForceType(t)
	}
	if *backend != "" {
		b, ok := strategy.ParseBackend(*backend)
		if !ok {
			fatalf("unknown backend %q (use layout or document)", *backend)
		}
		p = p.Backend(b)
	}
	p = p.CombineTables(*combine)
	if *direction != "" {
		d, ok := aggregate.ParseDirection(*direction)
		if !ok {
			fatalf("unknown direction %q (use vertical or horizontal)", *direction)
		}
		p = p.CombineDirection(d)
	}
	if *scannedFmt != "" {
		f, ok := strategy.ParseScannedFormat(*scannedFmt)
		if !ok {
			fatalf("unknown scanned-format %q (use auto or text)", *scannedFmt)
		}
		p = p.ScannedFormat(f)
	}
	if *reportOut != "" {
		o, ok := strategy.ParseReportOutput(*reportOut)
		if !ok {
			fatalf("unknown report-output %q (use combined, tables_only, or text_only)", *reportOut)
		}
		p = p.ReportOutput(o)
	}

	if *classifyOnly {
		res, warnings, err := p.Classify()
		if err != nil {
			logger.Error("classify", "error", err)
			os.Exit(1)
		}
		logWarnings(logger, warnings)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res)
		return
	}

	f, ok := export.ParseFormat(*outFormat)
	if !ok {
		fatalf("unsupported format %q (use csv, xlsx, or html)", *outFormat)
	}

	out, warnings, err := p.Extract()
	if err != nil {
		logger.Error("extract", "error", err)
		os.Exit(1)
	}
	logWarnings(logger, warnings)

	payload, err := export.Render(out.Table, f)
	if err != nil {
		logger.Error("render", "error", err)
		os.Exit(1)
	}

	dest := *output
	if dest == "" {
		dest = export.Filename(input, f)
	}
	if dest == "-" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		logger.Error("write output", "error", err)
		os.Exit(1)
	}
	logger.Info("extract.written",
		"path", dest,
		"method", out.Diagnostics.Method,
		"rows", out.Table.RowCount(),
		"columns", out.Table.ColCount())
}

func logWarnings(logger *slog.Logger, warnings []pdfextract.Warning) {
	for _, w := range warnings {
		logger.Warn("pipeline.warning", "stage", w.Stage, "message", w.Message)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
