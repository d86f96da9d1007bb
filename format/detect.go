// Package format sniffs upload content so intake surfaces can tell
// callers what they actually sent when it is not a PDF.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind is a detected file format.
type Kind int

const (
	// Unknown indicates an unrecognized format.
	Unknown Kind = iota
	// PDF indicates a PDF document, the only format the pipeline accepts.
	PDF
	// PNG indicates a raw PNG image, typically a scan uploaded directly.
	PNG
	// JPEG indicates a raw JPEG image.
	JPEG
	// TIFF indicates a raw TIFF image.
	TIFF
	// BMP indicates a raw BMP image.
	BMP
	// ZIP indicates a ZIP archive. Office documents (DOCX, XLSX, ODT,
	// PPTX) are ZIP archives and land here.
	ZIP
	// HTML indicates an HTML or XHTML document.
	HTML
)

// String returns the format name.
func (k Kind) String() string {
	switch k {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case ZIP:
		return "ZIP"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// IsImage reports whether the format is a raw scan image. Image
// uploads are a common mistake; they must be wrapped in a PDF before
// the pipeline can process them.
func (k Kind) IsImage() bool {
	switch k {
	case PNG, JPEG, TIFF, BMP:
		return true
	default:
		return false
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".zip", ".docx", ".xlsx", ".odt", ".pptx":
		return ZIP
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromMagic checks magic bytes to determine the format. This is
// more reliable than extension-based detection. Returns Unknown when
// the content matches no known signature.
func DetectFromMagic(data []byte) Kind {
	if len(data) < 4 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return ZIP
	case looksLikeHTML(data):
		return HTML
	default:
		return Unknown
	}
}

// looksLikeHTML checks for HTML signatures after leading whitespace.
func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}

	upper := strings.ToUpper(string(trimmed[:min(512, len(trimmed))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// An XML declaration followed by an html element is XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	return false
}
