package export

import (
	"bytes"
	"encoding/csv"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

// renderCSV writes the header row followed by the data rows, RFC 4180
// quoting applied by the encoder.
func renderCSV(t *model.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
