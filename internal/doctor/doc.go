// Package doctor diagnoses problems in the resolution cache snapshot.
//
// The snapshot memoizes outcomes against filesystem state that can
// change behind venvfind's back: environments get deleted or rebuilt,
// project directories move. Doctor compares every entry against the
// current disk state and reports entries whose start directory is gone
// or whose recorded environment no longer validates.
//
// Checks are read-only; fixing prunes the offending entries and leaves
// the rest of the snapshot intact.
package doctor
