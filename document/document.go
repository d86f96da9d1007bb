package document

// Page holds the extracted signals of a single PDF page.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Text is the plain text of the page, in content-stream order.
	Text string

	// Tables holds the cell grids detected on the page, in reading
	// order. Grids are row-major; the first row is usually a header.
	Tables [][][]string

	// Image holds the encoded bytes of the dominant embedded page
	// image, if any. Scanned documents embed the page scan as one
	// full-page image.
	Image []byte

	// ImageType is the file type of Image ("png", "jpg", "tiff", ...).
	ImageType string

	// Err records a page-level parse failure. A page with a non-nil
	// Err carries no text and no tables.
	Err error
}

// Document is a fully loaded PDF document. It is immutable once
// loaded and safe to share between pipeline stages within a request.
type Document struct {
	// Pages holds the loaded pages in document order.
	Pages []*Page

	data []byte
}

// New assembles a document from already extracted pages. Documents
// built this way carry no source bytes, so operations that re-read
// the original file, such as the whole-file table harvest, are not
// available on them.
func New(pages ...*Page) *Document {
	return &Document{Pages: pages}
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page returns the page with the given 1-based number, or nil when no
// such page exists.
func (d *Document) Page(number int) *Page {
	if d == nil {
		return nil
	}
	for _, p := range d.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// Bytes returns the raw source bytes the document was loaded from.
// It returns nil for documents assembled with New. Callers must not
// modify the returned slice.
func (d *Document) Bytes() []byte {
	if d == nil {
		return nil
	}
	return d.data
}
