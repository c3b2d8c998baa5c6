package doctor

import (
	"sort"

	"github.com/venvfind/venvfind/internal/cache"
	"github.com/venvfind/venvfind/internal/venv"
)

// Issue describes one bad cache entry.
type Issue struct {
	Key    string      // cached start directory
	Entry  cache.Entry // the recorded outcome
	Reason string
}

// Check compares every cache entry against the current filesystem state.
// Issues are returned sorted by key for stable output.
func Check(fsys venv.FS, m venv.Markers, c *cache.Cache) []Issue {
	var issues []Issue

	for key, e := range c.Entries() {
		if info, err := fsys.Stat(key); err != nil || !info.IsDir() {
			issues = append(issues, Issue{Key: key, Entry: e, Reason: "start directory no longer exists"})
			continue
		}
		if e.Found && !venv.IsValidEnv(fsys, m, e.Path) {
			issues = append(issues, Issue{Key: key, Entry: e, Reason: "cached environment missing or invalid"})
		}
	}

	sort.Slice(issues, func(i, j int) bool { return issues[i].Key < issues[j].Key })
	return issues
}

// Fix returns a new cache with the offending entries pruned.
// The input cache is not mutated; whole-cache replacement keeps the
// "no partial invalidation" contract of the in-process cache intact.
func Fix(c *cache.Cache, issues []Issue) *cache.Cache {
	bad := make(map[string]bool, len(issues))
	for _, issue := range issues {
		bad[issue.Key] = true
	}

	fixed := cache.New()
	for key, e := range c.Entries() {
		if !bad[key] {
			fixed.Put(key, e)
		}
	}
	return fixed
}
