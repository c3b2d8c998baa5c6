// Package cache memoizes virtual environment resolution outcomes.
//
// The cache maps a normalized start directory to the outcome of a
// completed search: either the environment path that was found, or a
// recorded "searched and found nothing". An absent key means the
// directory was never searched, which is a different state from a
// recorded negative.
//
// Entries never expire on their own; the only invalidation is clearing
// the whole cache. The in-memory Cache is safe for concurrent use.
//
// # Snapshot
//
// A CLI process is short-lived, so the cache can be snapshotted to
// ~/.venvfind/cache.json and rehydrated on the next invocation:
//
//	{
//	  "entries": {
//	    "/home/user/project": {
//	      "path": "/home/user/project/.venv",
//	      "found": true,
//	      "cached_at": "..."
//	    }
//	  }
//	}
//
// Use [LoadWithLock] for read-modify-write cycles so concurrent
// invocations don't clobber each other; the lock is a flock on a
// .lock file next to the snapshot. A corrupted snapshot is discarded
// and replaced by an empty cache rather than reported as an error.
//
// The "venvfind doctor" command diagnoses snapshot entries whose paths
// have disappeared or no longer validate.
package cache
