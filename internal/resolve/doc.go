// Package resolve drives the virtual environment search.
//
// A [Resolver] owns the memoization cache and applies the two-pass
// locator (see the venv package) to a start directory and, when parent
// search is enabled, to its ancestors up to a configured depth.
//
// # Caching
//
// Outcomes are keyed by the normalized start directory only. A repeated
// Resolve for the same directory is served from the cache without any
// filesystem access, including recorded "nothing found" outcomes.
// Ancestors visited during a walk are not individually cached.
//
// ClearCache drops everything; there is no per-entry invalidation.
// Swapping configuration with SetConfig deliberately leaves existing
// entries in place, so results cached under the old marker set survive
// until the caller clears the cache.
//
// # Failure Semantics
//
// Resolve never returns an error. Filesystem problems during probing
// count as a negative result for the affected candidate and the search
// moves on; a directory that cannot be read simply resolves to "not
// found", which is cached like any other outcome.
package resolve
