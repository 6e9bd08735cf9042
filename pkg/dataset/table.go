package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dtnitsch/article-stats/models"
)

var errNoHeader = errors.New("table has no header row")

// rowsFromRecords turns a header plus string records into typed rows. A column is
// numeric when every non-empty cell parses as a number; otherwise its cells stay
// strings. Empty cells become nil.
func rowsFromRecords(header []string, records [][]string) (models.Dataset, error) {
	if len(header) == 0 {
		return nil, errNoHeader
	}

	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = isNumericColumn(records, col)
	}

	ds := make(models.Dataset, 0, len(records))
	for _, rec := range records {
		row := make(models.Row, len(header))
		for col, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cell := ""
			if col < len(rec) {
				cell = rec[col]
			}
			row[name] = cellValue(cell, numeric[col])
		}
		ds = append(ds, row)
	}
	return ds, nil
}

func isNumericColumn(records [][]string, col int) bool {
	seen := false
	for _, rec := range records {
		if col >= len(rec) || strings.TrimSpace(rec[col]) == "" {
			continue
		}
		if _, ok := parseNumber(rec[col]); !ok {
			return false
		}
		seen = true
	}
	return seen
}

func cellValue(cell string, numeric bool) any {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	if numeric {
		v, _ := parseNumber(cell)
		return v
	}
	return cell
}

// parseNumber accepts integers, decimals and counters abbreviated with a K
// suffix ("1.2K" is 1200) as shown on article pages.
func parseNumber(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, "K"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil || !finite(f) {
			return nil, false
		}
		return f * 1000, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return nil, false
	}
	return f, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
