package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func grayImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.Gray{Y: uint8(x * 32)})
		}
	}
	return img
}

func TestNormalizeImageConvertsTIFF(t *testing.T) {
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, grayImage(), nil); err != nil {
		t.Fatalf("encode tiff: %v", err)
	}

	out, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("output is not PNG: %v", err)
	}
}

func TestNormalizeImageConvertsBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, grayImage()); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}

	out, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("output is not PNG: %v", err)
	}
}

func TestNormalizeImagePassesPNGThrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, grayImage()); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	out, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Error("PNG input should pass through unchanged")
	}
}

func TestNormalizeImagePassesUnknownThrough(t *testing.T) {
	data := []byte("not an image at all")
	out, err := NormalizeImage(data)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("unknown input should pass through unchanged")
	}
}

func TestNormalizeImageRejectsTruncatedTIFF(t *testing.T) {
	if _, err := NormalizeImage([]byte("II*\x00broken")); err == nil {
		t.Error("expected error for truncated TIFF")
	}
}

func TestNormalizeText(t *testing.T) {
	// Decomposed e + combining acute composes to a single rune.
	got := NormalizeText("résumé\r\nline two\rline three")
	want := "résumé\nline two\nline three"
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}
