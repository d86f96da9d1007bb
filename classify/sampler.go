package classify

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sameernimse09/pdf-data-extractor/document"
)

const (
	// DefaultSampleSize is the number of leading pages sampled when no
	// explicit bound is configured.
	DefaultSampleSize = 3

	// MinTextChars is the stripped-text length a page must exceed to
	// count as a text page. Shorter text is treated as noise from
	// stamps or headers.
	MinTextChars = 50
)

// Sampler gathers structural signals from the leading pages of a
// document. Sampling never reads past the first Size pages.
type Sampler struct {
	// Size bounds the number of pages sampled. Values below 1 fall
	// back to DefaultSampleSize.
	Size int
}

// Sample collects per-page signals for the first min(Size, PageCount)
// pages. A document with zero pages yields an empty sample and no
// error. A sampled page that failed to parse aborts sampling with an
// error; signals gathered up to that point are returned alongside it.
func (s Sampler) Sample(doc *document.Document) ([]PageSignals, error) {
	if doc == nil {
		return nil, errors.New("no document loaded")
	}
	size := s.Size
	if size < 1 {
		size = DefaultSampleSize
	}
	if n := doc.PageCount(); size > n {
		size = n
	}

	signals := make([]PageSignals, 0, size)
	for _, page := range doc.Pages[:size] {
		if page.Err != nil {
			return signals, fmt.Errorf("page %d: %w", page.Number, page.Err)
		}
		text := strings.TrimSpace(page.Text)
		chars := utf8.RuneCountInString(text)
		signals = append(signals, PageSignals{
			Page:      page.Number,
			HasText:   chars > MinTextChars,
			HasTables: len(page.Tables) > 0,
			TextChars: chars,
		})
	}
	return signals, nil
}
