package venv

import "path/filepath"

// Markers describes what the finder recognizes as a virtual environment.
type Markers struct {
	CommonNames   []string // conventional env directory names, in priority order
	RequiredFiles []string // files that must exist directly under the env root
	RequiredDirs  []string // directories that must exist directly under the env root
}

// DefaultMarkers returns markers for the conventional venv layout.
func DefaultMarkers() Markers {
	return Markers{
		CommonNames:   []string{"env", "venv", ".env", ".venv", "virtualenv"},
		RequiredFiles: []string{"pyvenv.cfg"},
		RequiredDirs:  []string{"bin", "lib"},
	}
}

// IsValidEnv reports whether path is a virtual environment root: every
// required file exists as a regular file directly under it, and every
// required directory exists as a directory directly under it.
// Probe errors count as "does not exist".
func IsValidEnv(fsys FS, m Markers, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}

	for _, name := range m.RequiredFiles {
		fi, err := fsys.Stat(filepath.Join(path, name))
		if err != nil || !fi.Mode().IsRegular() {
			return false
		}
	}

	for _, name := range m.RequiredDirs {
		fi, err := fsys.Stat(filepath.Join(path, name))
		if err != nil || !fi.IsDir() {
			return false
		}
	}

	return true
}
