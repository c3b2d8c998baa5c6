package venv

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// countingFS wraps an FS and counts every probe.
type countingFS struct {
	inner FS

	mu    sync.Mutex
	stats int
	reads int
}

func (c *countingFS) Stat(path string) (fs.FileInfo, error) {
	c.mu.Lock()
	c.stats++
	c.mu.Unlock()
	return c.inner.Stat(path)
}

func (c *countingFS) ReadDir(path string) ([]fs.DirEntry, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.inner.ReadDir(path)
}

func (c *countingFS) probes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats + c.reads
}

// faultyFS fails every probe under the configured path prefixes,
// simulating permission or I/O errors.
type faultyFS struct {
	inner FS
	deny  []string
}

var errProbe = errors.New("probe failed")

func (f *faultyFS) denied(path string) bool {
	for _, p := range f.deny {
		if path == p || len(path) > len(p) && path[:len(p)] == p && path[len(p)] == filepath.Separator {
			return true
		}
	}
	return false
}

func (f *faultyFS) Stat(path string) (fs.FileInfo, error) {
	if f.denied(path) {
		return nil, errProbe
	}
	return f.inner.Stat(path)
}

func (f *faultyFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if f.denied(path) {
		return nil, errProbe
	}
	return f.inner.ReadDir(path)
}

// writeEnv creates a valid default-layout environment at dir.
func writeEnv(t *testing.T, dir string) {
	t.Helper()

	for _, sub := range []string{"bin", "lib"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}
