// Package server exposes the extraction pipeline over HTTP: uploads go
// in as multipart form data, shaped tables come back as JSON or as a
// CSV, XLSX, or HTML download.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	pdfextract "github.com/sameernimse09/pdf-data-extractor"
	"github.com/sameernimse09/pdf-data-extractor/config"
)

// Server handles classification and extraction requests.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	recognizer pdfextract.Recognizer
}

// New creates a Server. A nil cfg uses defaults; a nil logger uses the
// default slog logger.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// WithRecognizer routes scanned pages through r instead of the
// built-in OCR engine. Useful for remote OCR services, or fakes in
// tests.
func (s *Server) WithRecognizer(r pdfextract.Recognizer) *Server {
	s.recognizer = r
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/classify", s.handleClassify)
		r.Post("/extract", s.handleExtract)
	})
	return r
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server.listen", "addr", s.cfg.Listen)
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
