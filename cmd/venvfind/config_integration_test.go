//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/venvfind/venvfind/internal/config"
)

// TestConfigShow verifies the effective-config output.
func TestConfigShow(t *testing.T) {
	setupTest(t)

	out, err := runCmd(t, newConfigCmd, "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"common_names", "pyvenv.cfg", "search_parents: true", "Local config:  (none)"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

// TestConfigShow_LocalOverride verifies source annotations.
//
// Scenario: The working directory holds a .venvfind.toml override
// Expected: The overridden field is marked (local)
func TestConfigShow_LocalOverride(t *testing.T) {
	setupTest(t)

	content := "max_parent_depth = 1\n"
	if err := os.WriteFile(filepath.Join(workDir, config.LocalConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	out, err := runCmd(t, newConfigCmd, "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "max_parent_depth: 1 (local)") {
		t.Errorf("config show output missing local annotation:\n%s", out)
	}
}

// TestConfigInit_Stdout verifies template output without touching disk.
func TestConfigInit_Stdout(t *testing.T) {
	setupTest(t)

	out, err := runCmd(t, newConfigCmd, "init", "--stdout")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "venvfind configuration") {
		t.Errorf("config init --stdout output = %q", out)
	}
}

// TestConfigInit_Local verifies per-project config creation.
func TestConfigInit_Local(t *testing.T) {
	setupTest(t)

	if _, err := runCmd(t, newConfigCmd, "init", "--local"); err != nil {
		t.Fatalf("config init --local failed: %v", err)
	}

	path := filepath.Join(workDir, config.LocalConfigFileName)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("local config not created: %v", err)
	}

	// A second init without --force refuses to overwrite.
	if _, err := runCmd(t, newConfigCmd, "init", "--local"); err == nil {
		t.Error("config init --local succeeded twice, want already-exists error")
	}
}
