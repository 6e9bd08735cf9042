package dataset

import (
	"fmt"

	"github.com/dtnitsch/article-stats/models"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first sheet of a workbook; its first row is the header.
func ParseXLSX(path string) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errNoHeader
	}
	return rowsFromRecords(rows[0], rows[1:])
}
