// Package caching stores dataset snapshots of remote sources on disk with a TTL.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache keeps one JSON-lines snapshot per remote source (a MongoDB collection)
// so repeated runs skip the round trip until the snapshot is older than the TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache returns a cache rooted at path (the --cache-dir flag), creating the
// directory if needed. ttl comes from --cache-ttl.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// key hashes the source identifier (uri/database/collection) into a filename.
func (c *Cache) key(source string) string {
	hash := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x.jsonl", hash)
}

// Get returns the snapshot stored for source and true when it exists and
// is younger than the TTL. A zero TTL never expires.
func (c *Cache) Get(source string) ([]byte, bool) {
	filePath := filepath.Join(c.path, c.key(source))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	return data, true // Cache hit
}

// Set stores the EncodeJSONLines output for source, replacing any older snapshot.
func (c *Cache) Set(source string, data []byte) error {
	filePath := filepath.Join(c.path, c.key(source))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
