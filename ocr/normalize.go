package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/text/unicode/norm"
)

// NormalizeImage re-encodes TIFF and BMP images as PNG. Scans embedded
// in PDFs are frequently fax-encoded TIFFs, which not every Tesseract
// build reads. Images in any other format pass through unchanged.
func NormalizeImage(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		img, err := tiff.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode tiff: %w", err)
		}
		return encodePNG(img)
	case bytes.HasPrefix(data, []byte("BM")):
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode bmp: %w", err)
		}
		return encodePNG(img)
	default:
		return data, nil
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// NormalizeText canonicalizes recognized text: composed Unicode form
// (NFC) and Unix line endings. Tesseract emits decomposed accents for
// some language models, which breaks naive string comparisons.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}
