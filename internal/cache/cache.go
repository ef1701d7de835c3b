// Package cache persists scan results between runs so unchanged files are
// not re-validated. One msgpack payload per scan root, keyed by the root's
// hash, under the standard user cache directory.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"conform/internal/diag"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 2

// Entry records what was known about one file at validation time. The
// diagnostics are stored in full: a warm scan must report exactly what the
// cold scan reported, warnings included.
type Entry struct {
	Size        int64
	MTime       int64 // unix nanoseconds
	Diagnostics []diag.Diagnostic
}

// Payload is the serialized cache for one scan root.
type Payload struct {
	Schema  uint16
	Entries map[string]Entry // keyed by slash-separated relative path
}

// Cache хранит результаты сканирования по корню проекта на диске.
// Thread-safe for concurrent access.
type Cache struct {
	mu      sync.RWMutex
	dir     string
	entries map[string]Entry
	dirty   bool
}

// Open initializes a cache at the standard location for the given app name.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "scans")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, entries: make(map[string]Entry)}, nil
}

func (c *Cache) pathFor(root string) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".mp")
}

// Load reads the payload for a scan root. A missing or incompatible payload
// is not an error: the cache simply starts empty.
func (c *Cache) Load(root string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)

	data, err := os.ReadFile(c.pathFor(root))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cache read: %w", err)
	}
	var p Payload
	if err := msgpack.Unmarshal(data, &p); err != nil || p.Schema != schemaVersion {
		// Повреждённый или устаревший кеш молча отбрасываем.
		return nil
	}
	if p.Entries != nil {
		c.entries = p.Entries
	}
	return nil
}

// Lookup returns the cached diagnostics for a file if its size and mtime
// still match. A hit with zero diagnostics means the file was clean.
func (c *Cache) Lookup(rel string, size, mtime int64) (ds []diag.Diagnostic, hit bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, found := c.entries[rel]
	if !found || e.Size != size || e.MTime != mtime {
		return nil, false
	}
	return e.Diagnostics, true
}

// Store records the diagnostics for a file.
func (c *Cache) Store(rel string, size, mtime int64, ds []diag.Diagnostic) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[rel] = Entry{Size: size, MTime: mtime, Diagnostics: ds}
	c.dirty = true
}

// Flush writes the payload back to disk if anything changed.
func (c *Cache) Flush(root string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	data, err := msgpack.Marshal(&Payload{Schema: schemaVersion, Entries: c.entries})
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	path := c.pathFor(root)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("cache rename: %w", err)
	}
	c.dirty = false
	return nil
}
