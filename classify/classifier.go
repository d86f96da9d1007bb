package classify

import (
	"errors"

	"github.com/sameernimse09/pdf-data-extractor/document"
)

// Thresholds for the text-coverage rules, in percent of sampled pages
// carrying a meaningful text layer.
const (
	scannedBelow = 20.0
	tabularAbove = 70.0
)

// Classify inspects a page sample and returns a verdict. The returned
// Result is always usable: when sampling fails or the document has no
// pages, Classify falls back to a tabular verdict with low confidence
// and reports the cause through the error. The fallback keeps whatever
// was known before the failure, which is at most the page count.
func Classify(doc *document.Document, sampleSize int) (Result, error) {
	res := Result{Type: TabularDocument, Confidence: Low}
	if doc == nil {
		return res, errors.New("no document loaded")
	}
	res.TotalPages = doc.PageCount()

	signals, err := Sampler{Size: sampleSize}.Sample(doc)
	if err != nil {
		return res, err
	}
	if len(signals) == 0 {
		return res, errors.New("document has no pages to sample")
	}

	pagesWithText, pagesWithTables := 0, 0
	for _, s := range signals {
		if s.HasText {
			pagesWithText++
		}
		if s.HasTables {
			pagesWithTables++
		}
	}
	res.HasText = pagesWithText > 0
	res.HasTables = pagesWithTables > 0
	res.TextPercentage = float64(pagesWithText) / float64(len(signals)) * 100

	// Rules are ordered; the first match wins.
	switch {
	case !res.HasText || res.TextPercentage < scannedBelow:
		res.Type = ScannedDocument
		res.Confidence = High
	case res.HasTables && res.TextPercentage > tabularAbove:
		res.Type = TabularDocument
		res.Confidence = High
	case res.HasText && !res.HasTables:
		res.Type = ReportDocument
		res.Confidence = Medium
	default:
		res.Type = ReportDocument
		res.Confidence = Medium
	}
	return res, nil
}
