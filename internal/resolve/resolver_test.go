package resolve

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/venv"
)

// countingFS wraps an FS and counts every filesystem probe.
type countingFS struct {
	inner venv.FS

	mu     sync.Mutex
	probes int
}

func (c *countingFS) Stat(path string) (fs.FileInfo, error) {
	c.mu.Lock()
	c.probes++
	c.mu.Unlock()
	return c.inner.Stat(path)
}

func (c *countingFS) ReadDir(path string) ([]fs.DirEntry, error) {
	c.mu.Lock()
	c.probes++
	c.mu.Unlock()
	return c.inner.ReadDir(path)
}

func (c *countingFS) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.probes
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

func TestResolver_FindsEnvInStartDir(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, ".venv"))

	r := New(config.Default())
	got, ok := r.Resolve(context.Background(), project)
	if !ok {
		t.Fatal("Resolve() found nothing")
	}
	if want := filepath.Join(project, ".venv"); got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolver_IncompleteEnvNotFound(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, ".venv"))
	if err := os.Remove(filepath.Join(project, ".venv", "pyvenv.cfg")); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.SearchParents = false
	r := New(cfg)
	if got, ok := r.Resolve(context.Background(), project); ok {
		t.Errorf("Resolve() = %q, want not found without pyvenv.cfg", got)
	}
}

func TestResolver_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, "venv"))

	fsys := &countingFS{inner: venv.OS()}
	r := New(config.Default(), WithFS(fsys))

	first, ok := r.Resolve(context.Background(), project)
	if !ok {
		t.Fatal("Resolve() found nothing")
	}
	probesAfterFirst := fsys.count()
	if probesAfterFirst == 0 {
		t.Fatal("first Resolve() performed no probes")
	}

	second, ok := r.Resolve(context.Background(), project)
	if !ok || second != first {
		t.Errorf("second Resolve() = %q, %v, want %q, true", second, ok, first)
	}
	if got := fsys.count(); got != probesAfterFirst {
		t.Errorf("second Resolve() performed %d extra probes, want 0", got-probesAfterFirst)
	}
}

func TestResolver_NegativeOutcomeCached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fsys := &countingFS{inner: venv.OS()}
	cfg := config.Default()
	cfg.SearchParents = false
	r := New(cfg, WithFS(fsys))

	if _, ok := r.Resolve(context.Background(), dir); ok {
		t.Fatal("Resolve() = found in empty dir")
	}
	probes := fsys.count()

	if _, ok := r.Resolve(context.Background(), dir); ok {
		t.Fatal("second Resolve() = found in empty dir")
	}
	if got := fsys.count(); got != probes {
		t.Errorf("cached negative still probed %d times", got-probes)
	}
}

func TestResolver_ClearCacheReprobes(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, "env"))

	fsys := &countingFS{inner: venv.OS()}
	r := New(config.Default(), WithFS(fsys))

	r.Resolve(context.Background(), project)
	probes := fsys.count()

	r.ClearCache()

	got, ok := r.Resolve(context.Background(), project)
	if !ok || got != filepath.Join(project, "env") {
		t.Errorf("Resolve() after clear = %q, %v", got, ok)
	}
	if fsys.count() == probes {
		t.Error("Resolve() after ClearCache() performed no probes")
	}
}

func TestResolver_ParentWalk(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeEnv(t, filepath.Join(root, ".venv"))
	start := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		depth   int
		parents bool
		wantHit bool
	}{
		{name: "within depth", depth: 5, parents: true, wantHit: true},
		{name: "exactly at bound", depth: 2, parents: true, wantHit: true},
		{name: "beyond depth", depth: 1, parents: true, wantHit: false},
		{name: "parents disabled", depth: 5, parents: false, wantHit: false},
		{name: "zero depth", depth: 0, parents: true, wantHit: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.SearchParents = tt.parents
			cfg.MaxParentDepth = tt.depth

			r := New(cfg)
			got, ok := r.Resolve(context.Background(), start)
			if ok != tt.wantHit {
				t.Fatalf("Resolve() hit = %v, want %v (got %q)", ok, tt.wantHit, got)
			}
			if tt.wantHit {
				if want := filepath.Join(root, ".venv"); got != want {
					t.Errorf("Resolve() = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestResolver_EnvThreeLevelsUpNeverFoundWithDepthTwo(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeEnv(t, filepath.Join(root, "venv"))
	start := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.MaxParentDepth = 2
	r := New(cfg)
	if got, ok := r.Resolve(context.Background(), start); ok {
		t.Errorf("Resolve() = %q, want not found three levels down", got)
	}
}

func TestResolver_RootTermination(t *testing.T) {
	t.Parallel()

	// Markers nothing on this machine can satisfy, so the walk must run
	// all the way to the filesystem root and stop there.
	cfg := config.Default()
	cfg.RequiredFiles = []string{"venvfind-test-marker-that-never-exists"}
	cfg.MaxParentDepth = 1 << 20

	start := filepath.Join(t.TempDir(), "deep", "deeper")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatal(err)
	}

	r := New(cfg)
	if got, ok := r.Resolve(context.Background(), start); ok {
		t.Errorf("Resolve() = %q, want not found", got)
	}
}

func TestResolver_StartDirIsNotADirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "afile")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	writeEnv(t, filepath.Join(dir, ".venv"))

	// The bad level short-circuits, but the walk continues upward.
	cfg := config.Default()
	r := New(cfg)
	got, ok := r.Resolve(context.Background(), file)
	if !ok {
		t.Fatal("Resolve() found nothing via parent of non-directory start")
	}
	if want := filepath.Join(dir, ".venv"); got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolver_SetConfigKeepsCache(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, "venv"))

	r := New(config.Default())
	first, ok := r.Resolve(context.Background(), project)
	if !ok {
		t.Fatal("Resolve() found nothing")
	}

	// New markers that match nothing. The cached result survives the
	// config change until the cache is cleared.
	cfg := config.Default()
	cfg.CommonNames = []string{"never"}
	cfg.RequiredFiles = []string{"never.cfg"}
	cfg.SearchParents = false
	if err := r.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}

	got, ok := r.Resolve(context.Background(), project)
	if !ok || got != first {
		t.Errorf("Resolve() after SetConfig = %q, %v, want cached %q", got, ok, first)
	}

	r.ClearCache()
	if got, ok := r.Resolve(context.Background(), project); ok {
		t.Errorf("Resolve() after clear = %q, want not found under new markers", got)
	}
}

func TestResolver_SetConfigValidates(t *testing.T) {
	t.Parallel()

	r := New(config.Default())
	bad := config.Default()
	bad.MaxParentDepth = -2
	if err := r.SetConfig(bad); err == nil {
		t.Error("SetConfig() error = nil, want validation error")
	}
}

func TestResolver_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	project := filepath.Join(t.TempDir(), "project")
	writeEnv(t, filepath.Join(project, ".venv"))

	r := New(config.Default())
	want := filepath.Join(project, ".venv")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := r.Resolve(context.Background(), project)
			if !ok || got != want {
				t.Errorf("Resolve() = %q, %v, want %q, true", got, ok, want)
			}
		}()
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	messy := filepath.Join(dir, "a", "..", "b", ".")
	if got, want := Normalize(messy), filepath.Join(dir, "b"); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", messy, got, want)
	}

	// Identical directories map to identical keys.
	if Normalize(dir) != Normalize(dir+string(filepath.Separator)) {
		t.Error("trailing separator changes the cache key")
	}
}
