// Package grouping aggregates engagement metrics of an article dataset by the values
// of one column.
package grouping

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/dtnitsch/article-stats/models"
)

var (
	// ErrMissingColumn is returned when a row lacks the grouping column or a metric column.
	ErrMissingColumn = errors.New("missing column")
	// ErrNonNumeric is returned when a metric value is not a number.
	ErrNonNumeric = errors.New("non-numeric metric value")
	// ErrUnhashableKey is returned when a grouping value cannot be used as a key.
	ErrUnhashableKey = errors.New("unhashable group key")
)

// ColumnError reports the column and row index that made GroupBy fail.
// Row is -1 when no row of the dataset has the column.
type ColumnError struct {
	Column string
	Row    int
	Err    error
}

func (e *ColumnError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %q, row %d: %v", e.Column, e.Row, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// Group is one row of a grouped summary.
type Group struct {
	Key          any     `json:"key" yaml:"key"`
	Count        int     `json:"count" yaml:"count"`
	Views        float64 `json:"views" yaml:"views"`
	Likes        float64 `json:"likes" yaml:"likes"`
	Comments     float64 `json:"comments" yaml:"comments"`
	Favorites    float64 `json:"favorites" yaml:"favorites"`
	Hits         float64 `json:"hits" yaml:"hits"`
	AvgHits      float64 `json:"avg_hits" yaml:"avg_hits"`
	AvgViews     float64 `json:"avg_views" yaml:"avg_views"`
	AvgLikes     float64 `json:"avg_likes" yaml:"avg_likes"`
	AvgComments  float64 `json:"avg_comments" yaml:"avg_comments"`
	AvgFavorites float64 `json:"avg_favorites" yaml:"avg_favorites"`
}

// Summary is the grouped view of a dataset: one Group per distinct key, sorted by key.
type Summary struct {
	Column string  `json:"column" yaml:"column"`
	Groups []Group `json:"groups" yaml:"groups"`
}

// Columns returns the header of the summary table.
func (s *Summary) Columns() []string {
	return []string{
		s.Column, "count",
		"views", "likes", "comments", "favorites", "hits",
		"avg_hits", "avg_views", "avg_likes", "avg_comments", "avg_favorites",
	}
}

// Records renders every group as a row of strings matching Columns.
func (s *Summary) Records() [][]string {
	records := make([][]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		records = append(records, []string{
			formatKey(g.Key), strconv.Itoa(g.Count),
			formatFloat(g.Views), formatFloat(g.Likes), formatFloat(g.Comments),
			formatFloat(g.Favorites), formatFloat(g.Hits),
			formatFloat(g.AvgHits), formatFloat(g.AvgViews), formatFloat(g.AvgLikes),
			formatFloat(g.AvgComments), formatFloat(g.AvgFavorites),
		})
	}
	return records
}

// TotalCount returns the number of rows covered by the summary.
func (s *Summary) TotalCount() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Count
	}
	return n
}

type accumulator struct {
	key    any
	count  int
	totals [5]float64
}

// GroupBy partitions ds by the value of column and sums the five metrics per group.
// A column absent from every row, a non-numeric metric or an unhashable key fails
// the whole call. A value absent from a single row is treated as nil: the row
// joins the nil group, and nil and NaN metric values add nothing to the totals.
func GroupBy(ds models.Dataset, column string) (*Summary, error) {
	if len(ds) > 0 {
		for _, col := range append([]string{column}, models.MetricColumns...) {
			if !ds.HasColumn(col) {
				return nil, &ColumnError{Column: col, Row: -1, Err: ErrMissingColumn}
			}
		}
	}

	groups := make(map[any]*accumulator)

	for i, row := range ds {
		key, err := normalizeKey(row[column])
		if err != nil {
			return nil, &ColumnError{Column: column, Row: i, Err: err}
		}

		var values [5]float64
		for m, metric := range models.MetricColumns {
			f, err := toFloat(row[metric])
			if err != nil {
				return nil, &ColumnError{Column: metric, Row: i, Err: err}
			}
			values[m] = f
		}

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{key: key}
			groups[key] = acc
		}
		acc.count++
		for m := range values {
			acc.totals[m] += values[m]
		}
	}

	summary := &Summary{Column: column, Groups: make([]Group, 0, len(groups))}
	for _, acc := range groups {
		summary.Groups = append(summary.Groups, acc.group())
	}
	sort.Slice(summary.Groups, func(i, j int) bool {
		return compareKeys(summary.Groups[i].Key, summary.Groups[j].Key) < 0
	})

	return summary, nil
}

func (acc *accumulator) group() Group {
	n := float64(acc.count)
	g := Group{
		Key:       acc.key,
		Count:     acc.count,
		Views:     acc.totals[0],
		Likes:     acc.totals[1],
		Comments:  acc.totals[2],
		Favorites: acc.totals[3],
		Hits:      acc.totals[4],
	}
	g.AvgHits = g.Hits / n
	g.AvgViews = g.Views / n
	g.AvgLikes = g.Likes / n
	g.AvgComments = g.Comments / n
	g.AvgFavorites = g.Favorites / n
	return g
}

// normalizeKey maps numeric keys of equal value to one representation: integral
// values become int64 whatever their kind, other floats stay float64, and only
// unsigned values above math.MaxInt64 remain uint64. NaN keys join the nil group.
func normalizeKey(v any) (any, error) {
	switch k := v.(type) {
	case nil:
		return nil, nil
	case int:
		return int64(k), nil
	case int8:
		return int64(k), nil
	case int16:
		return int64(k), nil
	case int32:
		return int64(k), nil
	case int64:
		return k, nil
	case uint:
		return normalizeUintKey(uint64(k)), nil
	case uint8:
		return int64(k), nil
	case uint16:
		return int64(k), nil
	case uint32:
		return int64(k), nil
	case uint64:
		return normalizeUintKey(k), nil
	case float32:
		return normalizeFloatKey(float64(k)), nil
	case float64:
		return normalizeFloatKey(k), nil
	case time.Time:
		return k.UTC(), nil
	}
	if !reflect.TypeOf(v).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrUnhashableKey, v)
	}
	return v, nil
}

func normalizeUintKey(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

func normalizeFloatKey(f float64) any {
	if math.IsNaN(f) {
		return nil
	}
	// -2^63 is exact in float64; 2^63 is already out of int64 range.
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return skipNaN(float64(n)), nil
	case float64:
		return skipNaN(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonNumeric, v)
	}
}

func skipNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// keyRank orders key kinds: nil, bool, numbers, time, strings, everything else.
func keyRank(k any) int {
	switch k.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int64, uint64, float64:
		return 2
	case time.Time:
		return 3
	case string:
		return 4
	default:
		return 5
	}
}

func compareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra - rb
	}

	switch x := a.(type) {
	case nil:
		return 0
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case time.Time:
		return x.Compare(b.(time.Time))
	case string:
		return compareOrdered(x, b.(string))
	}

	if ra == 2 {
		if ia, ok := a.(int64); ok {
			if ib, ok := b.(int64); ok {
				return compareOrdered(ia, ib)
			}
		}
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return compareOrdered(fa, fb)
	}
	return compareOrdered(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func formatKey(k any) string {
	switch v := k.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
