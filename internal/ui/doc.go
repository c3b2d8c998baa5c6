// Package ui provides interactive and styled terminal output for venvfind.
//
// The selector is a bubbletea fuzzy-search picker used when several
// environments are candidates and the user has to choose one. The table
// renderer formats "venvfind list" output on a TTY; non-TTY callers get
// plain paths from the command layer instead.
package ui
