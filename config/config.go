// Package config holds the file-based configuration for the extraction
// service and CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sameernimse09/pdf-data-extractor/classify"
	"github.com/sameernimse09/pdf-data-extractor/strategy"
)

// Config holds the full service configuration.
type Config struct {
	Listen     string    `yaml:"listen"`
	MaxFileMB  int       `yaml:"max_file_mb"`
	SampleSize int       `yaml:"sample_size"`
	OCR        OCRConfig `yaml:"ocr"`
	LogLevel   string    `yaml:"log_level"`
}

// OCRConfig configures the recognition pass for scanned documents.
type OCRConfig struct {
	DPI      int    `yaml:"dpi"`
	Language string `yaml:"language"`
}

// Default returns sane defaults.
func Default() *Config {
	return &Config{
		Listen:     ":8080",
		MaxFileMB:  50,
		SampleSize: classify.DefaultSampleSize,
		OCR: OCRConfig{
			DPI:      strategy.DefaultDPI,
			Language: strategy.DefaultLanguage,
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file. Returns Default merged
// with the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	if c.MaxFileMB <= 0 {
		return fmt.Errorf("max_file_mb must be > 0")
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be >= 1")
	}
	if c.OCR.DPI < 1 {
		return fmt.Errorf("ocr.dpi must be >= 1")
	}
	if c.OCR.Language == "" {
		return fmt.Errorf("ocr.language is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q (use debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// MaxFileBytes returns the upload size cap in bytes.
func (c *Config) MaxFileBytes() int64 { return int64(c.MaxFileMB) * 1024 * 1024 }

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
