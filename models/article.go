package models

import "sort"

// Column names of the article dataset.
const (
	ColumnTitle     = "title"
	ColumnViews     = "views"
	ColumnLikes     = "likes"
	ColumnComments  = "comments"
	ColumnFavorites = "favorites"
	ColumnHits      = "hits"
)

// MetricColumns lists the numeric engagement columns aggregated per group.
var MetricColumns = []string{ColumnViews, ColumnLikes, ColumnComments, ColumnFavorites, ColumnHits}

// Row maps a column name to its value. Values are whatever the loader produced:
// strings, int64/float64 numbers, bools, time.Time or nil.
type Row map[string]any

// Dataset is an ordered collection of rows.
type Dataset []Row

// Len returns the number of rows.
func (d Dataset) Len() int {
	return len(d)
}

// HasColumn reports whether at least one row carries the column.
func (d Dataset) HasColumn(name string) bool {
	for _, row := range d {
		if _, ok := row[name]; ok {
			return true
		}
	}
	return false
}

// Columns returns the sorted union of column names across all rows.
func (d Dataset) Columns() []string {
	seen := make(map[string]struct{})
	for _, row := range d {
		for name := range row {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
