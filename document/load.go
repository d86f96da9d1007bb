package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Load parses a PDF from raw bytes and extracts the signals of every
// page: plain text, table grids and the dominant embedded page image.
// Pages that fail to parse record the failure on Page.Err; Load only
// returns an error when the document itself cannot be opened.
func Load(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, errors.New("empty document")
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	doc := &Document{
		Pages: make([]*Page, 0, r.NumPage()),
		data:  data,
	}
	finder := NewGridFinder()
	fonts := make(map[string]*pdf.Font)
	for n := 1; n <= r.NumPage(); n++ {
		doc.Pages = append(doc.Pages, loadPage(r, n, fonts, finder))
	}
	attachImages(doc, data)
	return doc, nil
}

// loadPage extracts one page. The content-stream parser panics on some
// malformed streams, so failures are converted to a page-level error
// instead of taking down the whole document.
func loadPage(r *pdf.Reader, n int, fonts map[string]*pdf.Font, finder *GridFinder) (page *Page) {
	page = &Page{Number: n}
	defer func() {
		if rec := recover(); rec != nil {
			page.Err = fmt.Errorf("parse page: %v", rec)
			page.Text = ""
			page.Tables = nil
		}
	}()

	p := r.Page(n)
	if p.V.IsNull() {
		page.Err = errors.New("missing page object")
		return page
	}
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}
	text, err := p.GetPlainText(fonts)
	if err != nil {
		page.Err = fmt.Errorf("extract text: %w", err)
		return page
	}
	page.Text = text
	page.Tables = finder.Grids(p.Content().Text)
	return page
}

// attachImages harvests embedded images and keeps the largest one per
// page. Harvest failures leave the pages without images; the OCR path
// reports missing page images itself.
func attachImages(doc *Document, data []byte) {
	conf := model.NewDefaultConfiguration()
	images, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, conf)
	if err != nil {
		return
	}
	for _, pageImages := range images {
		for _, img := range pageImages {
			raw, err := io.ReadAll(img)
			if err != nil || len(raw) == 0 {
				continue
			}
			page := doc.Page(img.PageNr)
			if page == nil || len(page.Image) >= len(raw) {
				continue
			}
			page.Image = raw
			page.ImageType = img.FileType
		}
	}
}
