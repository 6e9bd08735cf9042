package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/dtnitsch/article-stats/models"
)

// ParseCSV decodes comma-separated data whose first record is the header.
func ParseCSV(data []byte) (models.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, errNoHeader
	}
	return rowsFromRecords(records[0], records[1:])
}
