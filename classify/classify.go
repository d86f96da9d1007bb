// Package classify decides which extraction strategy fits a document.
//
// Classification is a single best-effort pass over a small page sample,
// never the full document. The sampler gathers raw structural signals from
// the first few pages and the classifier turns them into a verdict with a
// confidence tier. Detection failures never abort processing: they produce
// a deterministic low-confidence fallback instead.
package classify

import "encoding/json"

// Verdict is the content archetype a document is classified as.
type Verdict int

const (
	// TabularDocument is a text PDF whose content is dominated by tables.
	TabularDocument Verdict = iota

	// ScannedDocument is an image-based PDF with little or no text layer.
	ScannedDocument

	// ReportDocument is a text PDF with prose and possibly embedded tables.
	ReportDocument
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case TabularDocument:
		return "tabular"
	case ScannedDocument:
		return "scanned"
	case ReportDocument:
		return "report"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the verdict as its name.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// ParseVerdict converts a verdict name back to a Verdict. It accepts the
// names produced by String.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "tabular":
		return TabularDocument, true
	case "scanned":
		return ScannedDocument, true
	case "report":
		return ReportDocument, true
	default:
		return TabularDocument, false
	}
}

// Confidence is the tier attached to a verdict.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

// String returns the confidence name.
func (c Confidence) String() string {
	switch c {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the confidence as its name.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// PageSignals captures the structural signals of one sampled page.
type PageSignals struct {
	Page      int  // 1-based page number
	HasText   bool // stripped text exceeds the minimum character threshold
	HasTables bool
	TextChars int // length of the stripped page text
}

// Result is a classification verdict together with the metrics that
// produced it. A manual override downstream never rewrites a Result; the
// recorded verdict and the applied verdict are surfaced side by side.
type Result struct {
	Type           Verdict    `json:"type"`
	Confidence     Confidence `json:"confidence"`
	TotalPages     int        `json:"total_pages"`
	HasText        bool       `json:"has_text"`
	HasTables      bool       `json:"has_tables"`
	TextPercentage float64    `json:"text_percentage"`
}
