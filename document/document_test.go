package document

import (
	"strings"
	"testing"
)

func TestLoadRejectsEmptyInput(t *testing.T) {
	if _, err := Load(nil); err == nil {
		t.Error("expected error for nil input")
	}
	if _, err := Load([]byte{}); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoadRejectsNonPDF(t *testing.T) {
	data := []byte(strings.Repeat("this is not a pdf\n", 64))
	if _, err := Load(data); err == nil {
		t.Error("expected error for non-PDF input")
	}
}

func TestLoadRejectsTruncatedHeader(t *testing.T) {
	// A bare header with no xref table is unreadable.
	if _, err := Load([]byte("%PDF-1.7\n")); err == nil {
		t.Error("expected error for truncated document")
	}
}

func TestNewDocumentAccessors(t *testing.T) {
	doc := New(
		&Page{Number: 1, Text: "first"},
		&Page{Number: 2, Text: "second"},
	)

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}
	if p := doc.Page(2); p == nil || p.Text != "second" {
		t.Errorf("Page(2) = %+v", p)
	}
	if p := doc.Page(3); p != nil {
		t.Errorf("Page(3) = %+v, want nil", p)
	}
	if doc.Bytes() != nil {
		t.Error("assembled document should carry no source bytes")
	}
}

func TestNilDocumentAccessors(t *testing.T) {
	var doc *Document
	if doc.PageCount() != 0 {
		t.Error("nil document should report zero pages")
	}
	if doc.Page(1) != nil {
		t.Error("nil document should have no pages")
	}
	if doc.Bytes() != nil {
		t.Error("nil document should have no bytes")
	}
}

func TestHarvestTablesMissingFile(t *testing.T) {
	if _, err := HarvestTables("testdata/does-not-exist.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
