package resolve

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/venvfind/venvfind/internal/cache"
	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/log"
	"github.com/venvfind/venvfind/internal/venv"
)

// Resolver finds the virtual environment that applies to a directory,
// memoizing one outcome per queried start directory.
type Resolver struct {
	mu             sync.Mutex
	fsys           venv.FS
	markers        venv.Markers
	searchParents  bool
	maxParentDepth int
	cache          *cache.Cache
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFS substitutes the filesystem implementation, mainly for tests.
func WithFS(fsys venv.FS) Option {
	return func(r *Resolver) { r.fsys = fsys }
}

// WithCache makes the Resolver use an existing cache, e.g. one
// rehydrated from a snapshot.
func WithCache(c *cache.Cache) Option {
	return func(r *Resolver) { r.cache = c }
}

// New creates a Resolver for the given configuration.
func New(cfg config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:           venv.OS(),
		markers:        cfg.Markers(),
		searchParents:  cfg.SearchParents,
		maxParentDepth: cfg.MaxParentDepth,
		cache:          cache.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the virtual environment path for startDir, or "" and
// false when none is found. Both outcomes are cached under the
// normalized start directory; a cache hit performs no filesystem access.
func (r *Resolver) Resolve(ctx context.Context, startDir string) (string, bool) {
	l := log.FromContext(ctx)
	key := Normalize(startDir)

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.cache.Get(key); ok {
		l.Verbosef("cache hit for %s", key)
		return e.Path, e.Found
	}

	path, found := r.search(l, key)
	r.cache.Put(key, cache.Entry{Path: path, Found: found, CachedAt: time.Now()})
	return path, found
}

// search runs the two-pass locator at dir and walks ancestors while
// configured to do so. Caller holds r.mu.
func (r *Resolver) search(l *log.Logger, dir string) (string, bool) {
	l.Verbosef("searching %s", dir)
	if path, ok := venv.LocateInDirectory(r.fsys, r.markers, dir); ok {
		l.Infof("found %s", path)
		return path, true
	}

	if !r.searchParents {
		return "", false
	}

	for depth := 0; depth < r.maxParentDepth; depth++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root, no further ancestor.
			break
		}
		dir = parent

		l.Verbosef("searching %s", dir)
		if path, ok := venv.LocateInDirectory(r.fsys, r.markers, dir); ok {
			l.Infof("found %s", path)
			return path, true
		}
	}

	return "", false
}

// ClearCache drops all memoized outcomes. The next Resolve for any
// directory re-executes the full search.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Clear()
}

// SetConfig replaces the recognized names, markers, and walk settings.
// Existing cache entries are NOT invalidated: results computed under the
// previous configuration are returned until ClearCache is called.
func (r *Resolver) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = cfg.Markers()
	r.searchParents = cfg.SearchParents
	r.maxParentDepth = cfg.MaxParentDepth
	return nil
}

// Normalize turns a start directory into the canonical cache key.
func Normalize(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return abs
}
