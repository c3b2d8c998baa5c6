package cache

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry records the outcome of one completed search.
type Entry struct {
	Path     string    `json:"path,omitempty"` // empty when Found is false
	Found    bool      `json:"found"`
	CachedAt time.Time `json:"cached_at"`
}

// Cache maps normalized start directories to resolution outcomes.
// The zero value is not usable; call New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get returns the recorded outcome for dir.
// ok is false when dir was never searched.
func (c *Cache) Get(dir string) (e Entry, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok = c.entries[dir]
	return e, ok
}

// Put records the outcome of a completed search for dir.
func (c *Cache) Put(dir string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dir] = e
}

// Clear drops every entry. There is no partial invalidation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// Len returns the number of recorded outcomes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Entries returns a copy of all recorded outcomes.
func (c *Cache) Entries() map[string]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.entries)
}

// snapshot is the on-disk representation.
type snapshot struct {
	Entries map[string]Entry `json:"entries"`
}

// Dir returns the snapshot directory (~/.venvfind), creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".venvfind")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

// CachePath returns the snapshot file path for a directory.
func CachePath(dir string) string {
	return filepath.Join(dir, "cache.json")
}

// LockPath returns the lock file path for a directory.
func LockPath(dir string) string {
	return filepath.Join(dir, "cache.lock")
}

// Load reads a snapshot from disk. A missing or corrupted file yields an
// empty cache, not an error: the snapshot is an optimization, never a
// reason to fail a resolution.
func Load(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupted - start fresh
		return New(), nil
	}
	if snap.Entries == nil {
		snap.Entries = make(map[string]Entry)
	}

	return &Cache{entries: snap.Entries}, nil
}

// Save writes the snapshot atomically via a temp file and rename.
func Save(path string, c *Cache) error {
	tempPath := path + ".tmp"

	data, err := json.MarshalIndent(snapshot{Entries: c.Entries()}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// LoadWithLock acquires the snapshot lock for dir and loads the cache.
// Returns the cache, an unlock function, and an error.
// Caller must defer unlock() if err == nil.
func LoadWithLock(dir string) (*Cache, func(), error) {
	lock := NewFileLock(LockPath(dir))
	if err := lock.Lock(); err != nil {
		return nil, nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	c, err := Load(CachePath(dir))
	if err != nil {
		lock.Unlock()
		return nil, nil, fmt.Errorf("failed to load cache: %w", err)
	}

	unlock := func() { _ = lock.Unlock() }

	return c, unlock, nil
}
