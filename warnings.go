package pdfextract

import "strings"

// Warning reports a non-fatal problem encountered while classifying or
// extracting a document. A run that produced warnings still completed;
// the output may simply be missing the pages or tables the warnings
// describe.
type Warning struct {
	// Stage names the pipeline stage that raised the warning:
	// "load", "classify", or an extraction method such as "layout",
	// "document", "ocr", or "report".
	Stage string `json:"stage"`

	// Message describes what went wrong. Page-scoped messages carry
	// their page number, e.g. "page 3: extract text: ...".
	Message string `json:"message"`
}

// String returns the warning as "stage: message".
func (w Warning) String() string {
	return w.Stage + ": " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated
// string, suitable for logging. Returns "" for an empty slice.
//
// Example:
//
//	out, warnings, err := pdfextract.Open("report.pdf").Extract()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if len(warnings) > 0 {
//	    log.Printf("extraction warnings: %s", pdfextract.FormatWarnings(warnings))
//	}
//	fmt.Println(out.Table.ToMarkdown())
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
