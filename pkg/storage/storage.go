// Package storage reads dataset files and writes command output and reports.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage is the file layer used by the dataset loader, --output and report writing.
type Storage struct{}

// FileStats holds metadata about an input file. Reports use SizeBytes to describe
// each file source without reading it again.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes rendered output or a report to filePath, creating parent
// directories such as results/ as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadFile returns the raw bytes of a dataset file for the format parsers.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// HasFile reports whether an input source names a file on disk. Table and
// collection sources do not.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns the size and modification time of a dataset file.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
