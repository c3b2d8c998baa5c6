package venv

import (
	"path/filepath"
	"sort"
	"strings"
)

// LocateInDirectory finds a virtual environment directly under baseDir
// using the two-pass strategy: conventional names first, then a
// structural scan of the remaining subdirectories.
// Returns the environment path and true, or "" and false.
func LocateInDirectory(fsys FS, m Markers, baseDir string) (string, bool) {
	info, err := fsys.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return "", false
	}

	// Pass 1: conventional names, in priority order.
	for _, name := range m.CommonNames {
		candidate := filepath.Join(baseDir, name)
		if IsValidEnv(fsys, m, candidate) {
			return candidate, true
		}
	}

	// Pass 2: structural scan in lexicographic order.
	// Dot directories are skipped here; dotted conventional names are
	// still reachable through pass 1.
	for _, name := range sortedSubdirs(fsys, baseDir) {
		candidate := filepath.Join(baseDir, name)
		if IsValidEnv(fsys, m, candidate) {
			return candidate, true
		}
	}

	return "", false
}

// Candidate is a validated virtual environment found by LocateAll.
type Candidate struct {
	Path  string
	Name  string // folder name of the environment
	Named bool   // matched a conventional name (pass 1)
}

// LocateAll returns every validating environment directly under baseDir,
// conventional-name matches first (in priority order), then structural
// matches in lexicographic order. Paths are deduplicated.
func LocateAll(fsys FS, m Markers, baseDir string) []Candidate {
	info, err := fsys.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	var found []Candidate
	seen := make(map[string]bool)

	for _, name := range m.CommonNames {
		candidate := filepath.Join(baseDir, name)
		if seen[candidate] || !IsValidEnv(fsys, m, candidate) {
			continue
		}
		seen[candidate] = true
		found = append(found, Candidate{Path: candidate, Name: name, Named: true})
	}

	for _, name := range sortedSubdirs(fsys, baseDir) {
		candidate := filepath.Join(baseDir, name)
		if seen[candidate] || !IsValidEnv(fsys, m, candidate) {
			continue
		}
		seen[candidate] = true
		found = append(found, Candidate{Path: candidate, Name: name})
	}

	return found
}

// sortedSubdirs lists the non-dot immediate subdirectories of dir in
// lexicographic order. Listing errors yield an empty result.
func sortedSubdirs(fsys FS, dir string) []string {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
