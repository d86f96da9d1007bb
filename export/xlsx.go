package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

const sheetName = "Extracted Data"

// renderXLSX produces a single-sheet workbook with the header in row
// one and columns widened to fit their content.
func renderXLSX(t *model.Table) ([]byte, error) {
	f := excelize.NewFile()

	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	for r, row := range t.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range t.Columns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, name, name, columnWidth(t, i))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidth fits the column to its longest cell, within sane bounds.
func columnWidth(t *model.Table, col int) float64 {
	longest := len(t.Columns[col])
	for _, row := range t.Rows {
		if l := len(row[col]); l > longest {
			longest = l
		}
	}
	width := float64(longest) + 2
	if width < 10 {
		width = 10
	}
	if width > 50 {
		width = 50
	}
	return width
}
