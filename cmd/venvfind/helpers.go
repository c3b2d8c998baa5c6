package main

import (
	"context"
	"fmt"

	"github.com/venvfind/venvfind/internal/cache"
	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/log"
	"github.com/venvfind/venvfind/internal/resolve"
)

// startDir returns the directory to operate on: the positional argument
// if given, otherwise the working directory.
func startDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return workDir
}

// effectiveConfig merges a per-project .venvfind.toml found at dir over
// the global config. A broken local config is a warning, not a failure.
func effectiveConfig(ctx context.Context, dir string) config.Config {
	global := config.FromContext(ctx)

	local, err := config.LoadLocal(dir)
	if err != nil {
		log.FromContext(ctx).Warnf("failed to load local config: %v (using global config)", err)
	}

	return config.MergeLocal(global, local)
}

// withSnapshot loads the snapshot cache under its lock, hands it to fn,
// and saves it back when fn reports a change.
func withSnapshot(fn func(c *cache.Cache) (changed bool, err error)) error {
	dir, err := cache.Dir()
	if err != nil {
		return fmt.Errorf("resolve cache dir: %w", err)
	}

	c, unlock, err := cache.LoadWithLock(dir)
	if err != nil {
		return err
	}
	defer unlock()

	changed, err := fn(c)
	if err != nil {
		return err
	}

	if changed {
		if err := cache.Save(cache.CachePath(dir), c); err != nil {
			return fmt.Errorf("save cache: %w", err)
		}
	}

	return nil
}

// resolveDir runs a cached resolution for dir with the effective config.
// With noCache, the snapshot is bypassed and nothing is persisted.
func resolveDir(ctx context.Context, dir string, noCache bool) (string, bool) {
	eff := effectiveConfig(ctx, dir)

	var path string
	var found bool
	run := func(c *cache.Cache) (bool, error) {
		_, hadEntry := c.Get(resolve.Normalize(dir))
		r := resolve.New(eff, resolve.WithCache(c))
		path, found = r.Resolve(ctx, dir)
		return !hadEntry, nil
	}

	if noCache {
		_, _ = run(cache.New())
		return path, found
	}

	if err := withSnapshot(run); err != nil {
		// A broken snapshot never blocks resolution.
		log.FromContext(ctx).Warnf("cache unavailable: %v", err)
		_, _ = run(cache.New())
	}

	return path, found
}
