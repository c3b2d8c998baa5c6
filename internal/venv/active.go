package venv

import (
	"os"
	"path/filepath"
)

// ActiveEnv returns the currently activated virtual environment, if any.
// Activation is host state (the VIRTUAL_ENV variable exported by the
// activate script); the finder only reads it, never sets it.
func ActiveEnv() (string, bool) {
	v := os.Getenv("VIRTUAL_ENV")
	if v == "" {
		return "", false
	}
	return filepath.Clean(v), true
}

// IsActive reports whether path is the currently activated environment.
func IsActive(path string) bool {
	active, ok := ActiveEnv()
	if !ok {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return active == abs
}
