// Package venv recognizes Python virtual environment directories.
//
// A directory counts as a virtual environment when a set of marker files
// (default: pyvenv.cfg) and marker subdirectories (default: bin, lib)
// exist directly under it. Only existence is checked; file contents are
// never parsed.
//
// # Two-Pass Lookup
//
// [LocateInDirectory] searches a single directory in two passes:
//
//  1. Conventional names (env, venv, .env, .venv, virtualenv) are probed
//     in priority order. The first valid candidate wins, so the order of
//     [Markers.CommonNames] matters.
//  2. If no conventional name matches, the remaining immediate
//     subdirectories are scanned structurally. Dot directories are
//     skipped in this pass to avoid false positives on hidden tooling
//     directories; dotted conventional names like .venv are still
//     reachable through pass 1.
//
// Pass 2 checks candidates in lexicographic order, so results are
// deterministic even when several siblings validate.
//
// # Filesystem Access
//
// All probing goes through the [FS] interface. [OS] returns the real
// filesystem; tests substitute fakes to count probes or inject errors.
// Probe errors (permission denied, transient I/O) are treated as "does
// not exist" for that candidate and never abort a search.
package venv
