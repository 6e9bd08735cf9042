package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/article-stats/models"
)

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("invalid table name")

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// articleColumns are the dataset columns persisted by InsertArticles, in insert order.
var articleColumns = []string{
	"url", models.ColumnTitle, "author", "rubric", "published_at",
	models.ColumnViews, models.ColumnLikes, models.ColumnComments, models.ColumnFavorites, models.ColumnHits,
}

// InsertArticles stores every row of ds in the articles table inside one
// transaction and returns the number of rows written. Rows sharing a url
// replace the earlier row. Non-string titles are stored as NULL.
func (db *DB) InsertArticles(ctx context.Context, ds models.Dataset) (int, error) {
	placeholders := make([]string, len(articleColumns))
	updates := make([]string, 0, len(articleColumns)-1)
	for i, col := range articleColumns {
		placeholders[i] = db.placeholder(i + 1)
		if col != "url" {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
		}
	}
	query := fmt.Sprintf(
		"INSERT INTO articles (%s) VALUES (%s) ON CONFLICT (url) DO UPDATE SET %s",
		strings.Join(articleColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after Commit
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range ds {
		args, err := articleArgs(row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit articles: %w", err)
	}
	return len(ds), nil
}

func articleArgs(row models.Row) ([]any, error) {
	args := make([]any, 0, len(articleColumns))
	args = append(args, stringOrNil(row["url"]))
	args = append(args, stringOrNil(row[models.ColumnTitle]))
	args = append(args, stringOrNil(row["author"]))
	args = append(args, stringOrNil(row["rubric"]))

	switch v := row["published_at"].(type) {
	case time.Time:
		args = append(args, v.UTC())
	case string:
		args = append(args, v)
	default:
		args = append(args, nil)
	}

	for _, metric := range models.MetricColumns {
		v, err := metricArg(row[metric])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", metric, err)
		}
		args = append(args, v)
	}
	return args, nil
}

func stringOrNil(v any) any {
	if s, ok := v.(string); ok {
		return s
	}
	return nil
}

func metricArg(v any) (any, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return nil, fmt.Errorf("non-numeric value of type %T", v)
	}
}

// LoadTable reads every row of table into a dataset. Column values keep the
// driver's types except that byte slices become strings and NUMERIC/DECIMAL
// values become float64.
func (db *DB) LoadTable(ctx context.Context, table string) (models.Dataset, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	var ds models.Dataset
	for rows.Next() {
		values := make([]any, len(columnTypes))
		ptrs := make([]any, len(columnTypes))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}

		row := make(models.Row, len(columnTypes))
		for i, ct := range columnTypes {
			row[ct.Name()] = columnValue(values[i], ct.DatabaseTypeName())
		}
		ds = append(ds, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}

	return ds, nil
}

func columnValue(v any, dbType string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	switch strings.ToUpper(dbType) {
	case "NUMERIC", "DECIMAL":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
