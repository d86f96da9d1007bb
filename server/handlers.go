package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	pdfextract "github.com/sameernimse09/pdf-data-extractor"
	"github.com/sameernimse09/pdf-data-extractor/aggregate"
	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/export"
	"github.com/sameernimse09/pdf-data-extractor/format"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

type classifyResponse struct {
	Result   classify.Result      `json:"result"`
	Warnings []pdfextract.Warning `json:"warnings"`
}

type extractResponse struct {
	*pdfextract.Output
	Warnings []pdfextract.Warning `json:"warnings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	data, name, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	p, ok := s.pipelineFromForm(w, r, data)
	if !ok {
		return
	}

	res, warnings, err := p.Classify()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("classify.request",
		"file", name,
		"type", res.Type.String(),
		"confidence", res.Confidence.String(),
		"warnings", len(warnings))
	writeJSON(w, http.StatusOK, classifyResponse{Result: res, Warnings: noNilWarnings(warnings)})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	data, name, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	p, ok := s.pipelineFromForm(w, r, data)
	if !ok {
		return
	}

	out, warnings, err := p.Extract()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("extract.request",
		"file", name,
		"method", out.Diagnostics.Method,
		"rows", out.Table.RowCount(),
		"warnings", len(warnings))

	q := r.URL.Query().Get("format")
	if q == "" || strings.EqualFold(q, "json") {
		writeJSON(w, http.StatusOK, extractResponse{Output: out, Warnings: noNilWarnings(warnings)})
		return
	}
	f, known := export.ParseFormat(q)
	if !known {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported format %q (use json, csv, xlsx, or html)", q))
		return
	}
	payload, err := export.Render(out.Table, f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(name, f)))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// readUpload pulls the "file" field out of the multipart form, capped
// at the configured size, and rejects content that is not a PDF. The
// sniff names what the upload looks like so the caller gets a useful
// hint instead of a generic failure.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileBytes())
	if err := r.ParseMultipartForm(s.cfg.MaxFileBytes()); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
		return nil, "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return nil, "", false
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("empty upload"))
		return nil, "", false
	}
	if kind := format.DetectFromMagic(data); kind != format.PDF {
		msg := fmt.Sprintf("unsupported upload format %s; only PDF is accepted", kind)
		if kind.IsImage() {
			msg += " (wrap scan images in a PDF first)"
		}
		writeError(w, http.StatusUnsupportedMediaType, errors.New(msg))
		return nil, "", false
	}
	return data, header.Filename, true
}

// pipelineFromForm builds a Pipeline over the upload, applying the
// optional form fields. Unknown or malformed values are client errors.
func (s *Server) pipelineFromForm(w http.ResponseWriter, r *http.Request, data []byte) (*pdfextract.Pipeline, bool) {
	p := pdfextract.FromBytes(data).
		SampleSize(s.cfg.SampleSize).
		DPI(s.cfg.OCR.DPI).
		OCRLanguage(s.cfg.OCR.Language).
		WithLogger(s.logger)
	if s.recognizer != nil {
		p = p.WithRecognizer(s.recognizer)
	}

	if v := r.FormValue("type"); v != "" {
		t, ok := classify.ParseVerdict(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown type %q (use tabular, scanned, or report)", v))
			return nil, false
		}
		p = p.ForceType(t)
	}
	if v := r.FormValue("backend"); v != "" {
		b, ok := strategy.ParseBackend(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown backend %q (use layout or document)", v))
			return nil, false
		}
		p = p.Backend(b)
	}
	if v := r.FormValue("combine"); v != "" {
		combine, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("combine must be a boolean, got %q", v))
			return nil, false
		}
		p = p.CombineTables(combine)
	}
	if v := r.FormValue("direction"); v != "" {
		d, ok := aggregate.ParseDirection(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown direction %q (use vertical or horizontal)", v))
			return nil, false
		}
		p = p.CombineDirection(d)
	}
	if v := r.FormValue("scanned_format"); v != "" {
		f, ok := strategy.ParseScannedFormat(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown scanned_format %q (use auto or text)", v))
			return nil, false
		}
		p = p.ScannedFormat(f)
	}
	if v := r.FormValue("report_output"); v != "" {
		o, ok := strategy.ParseReportOutput(v)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown report_output %q (use combined, tables_only, or text_only)", v))
			return nil, false
		}
		p = p.ReportOutput(o)
	}
	if v := r.FormValue("dpi"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("dpi must be a positive integer, got %q", v))
			return nil, false
		}
		p = p.DPI(n)
	}
	if v := r.FormValue("lang"); v != "" {
		p = p.OCRLanguage(v)
	}
	if v := r.FormValue("sample"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("sample must be a positive integer, got %q", v))
			return nil, false
		}
		p = p.SampleSize(n)
	}
	return p, true
}

// noNilWarnings keeps the JSON field an array even when there are no
// warnings.
func noNilWarnings(warnings []pdfextract.Warning) []pdfextract.Warning {
	if warnings == nil {
		return []pdfextract.Warning{}
	}
	return warnings
}
