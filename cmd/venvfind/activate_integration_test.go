//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestActivate verifies the shell-substitution contract.
//
// Scenario: User runs `source "$(venvfind activate <project>)"`
// Expected: The bin/activate path of the resolved environment is printed
func TestActivate(t *testing.T) {
	setupTest(t)

	project := filepath.Join(t.TempDir(), "project")
	env := filepath.Join(project, ".venv")
	setupEnv(t, env)

	out, err := runCmd(t, newActivateCmd, project)
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if want := filepath.Join(env, "bin", "activate"); strings.TrimSpace(out) != want {
		t.Errorf("activate output = %q, want %q", out, want)
	}
}

// TestActivate_NoScript verifies the error path for an environment that
// validates but carries no activate script.
func TestActivate_NoScript(t *testing.T) {
	setupTest(t)
	cfg.SearchParents = false

	project := filepath.Join(t.TempDir(), "project")
	env := filepath.Join(project, ".venv")
	setupEnv(t, env)
	if err := os.Remove(filepath.Join(env, "bin", "activate")); err != nil {
		t.Fatalf("failed to remove activate script: %v", err)
	}

	if _, err := runCmd(t, newActivateCmd, project); err == nil {
		t.Error("activate succeeded, want missing-script error")
	}
}
