package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dtnitsch/article-stats/models"
)

// ParseJSON decodes a JSON array of objects.
func ParseJSON(data []byte) (models.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON dataset: %w", err)
	}
	return rowsFromJSON(raw), nil
}

// ParseJSONLines decodes one JSON object per line, the layout written by
// mongoexport. Extended JSON wrappers such as {"$oid": ...} are unwrapped.
func ParseJSONLines(data []byte) (models.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	for {
		var obj map[string]any
		err := dec.Decode(&obj)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid JSON line %d: %w", len(raw)+1, err)
		}
		raw = append(raw, obj)
	}
	return rowsFromJSON(raw), nil
}

func rowsFromJSON(raw []map[string]any) models.Dataset {
	ds := make(models.Dataset, 0, len(raw))
	for _, obj := range raw {
		row := make(models.Row, len(obj))
		for k, v := range obj {
			row[k] = jsonValue(v)
		}
		ds = append(ds, row)
	}
	return ds
}

func jsonValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		if len(x) == 1 {
			if out, ok := extendedJSON(x); ok {
				return out
			}
		}
		return x
	default:
		return v
	}
}

// extendedJSON unwraps the single-key MongoDB Extended JSON forms.
func extendedJSON(m map[string]any) (any, bool) {
	for key, inner := range m {
		switch key {
		case "$oid":
			s, ok := inner.(string)
			return s, ok
		case "$numberInt", "$numberLong":
			s, ok := inner.(string)
			if !ok {
				return nil, false
			}
			i, err := strconv.ParseInt(s, 10, 64)
			return i, err == nil
		case "$numberDouble":
			s, ok := inner.(string)
			if !ok {
				return nil, false
			}
			f, err := strconv.ParseFloat(s, 64)
			return f, err == nil
		case "$date":
			return extendedDate(inner)
		}
	}
	return nil, false
}

func extendedDate(v any) (any, bool) {
	switch d := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, d)
		if err != nil {
			return nil, false
		}
		return t.UTC(), true
	case json.Number:
		ms, err := d.Int64()
		if err != nil {
			return nil, false
		}
		return time.UnixMilli(ms).UTC(), true
	case map[string]any:
		if s, ok := d["$numberLong"].(string); ok {
			ms, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, false
			}
			return time.UnixMilli(ms).UTC(), true
		}
	}
	return nil, false
}

// EncodeJSONLines writes ds as one JSON object per line. Times and floats use
// their Extended JSON forms so ParseJSONLines restores the same value kinds.
func EncodeJSONLines(ds models.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i, row := range ds {
		obj := make(map[string]any, len(row))
		for k, v := range row {
			obj[k] = extendedValue(v)
		}
		if err := enc.Encode(obj); err != nil {
			return nil, fmt.Errorf("failed to encode row %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func extendedValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return map[string]any{"$date": x.UTC().Format(time.RFC3339Nano)}
	case float32:
		return extendedValue(float64(x))
	case float64:
		return map[string]any{"$numberDouble": strconv.FormatFloat(x, 'g', -1, 64)}
	default:
		return v
	}
}
