// Package dataset reads article datasets from files and MongoDB into models.Dataset.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/storage"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Format identifies a file encoding.
type Format string

const (
	FormatJSON      Format = "json"
	FormatJSONLines Format = "jsonl"
	FormatYAML      Format = "yaml"
	FormatCSV       Format = "csv"
	FormatXLSX      Format = "xlsx"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONLines, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Loader reads dataset files through a Storage.
type Loader struct {
	Storage *storage.Storage
}

// NewLoader returns a Loader backed by s.
func NewLoader(s *storage.Storage) *Loader {
	return &Loader{Storage: s}
}

// Load reads the dataset at path, choosing the decoder from its extension.
func (l *Loader) Load(path string) (models.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	// excelize reads the workbook itself.
	if format == FormatXLSX {
		ds, err := ParseXLSX(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return ds, nil
	}

	data, err := l.Storage.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ds models.Dataset
	switch format {
	case FormatJSON:
		ds, err = ParseJSON(data)
	case FormatJSONLines:
		ds, err = ParseJSONLines(data)
	case FormatYAML:
		ds, err = ParseYAML(data)
	case FormatCSV:
		ds, err = ParseCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ds, nil
}
