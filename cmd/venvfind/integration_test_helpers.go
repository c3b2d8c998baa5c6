//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/log"
	"github.com/venvfind/venvfind/internal/output"
)

// setupTest isolates the cache dir and the shared cfg/workDir state for
// one test. Tests using it must not run in parallel.
func setupTest(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIRTUAL_ENV", "")

	def := config.Default()
	cfg = &def
	workDir = t.TempDir()
}

// runCmd executes a freshly constructed command with a captured printer.
func runCmd(t *testing.T, newCmd func() *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	ctx := context.Background()
	ctx = config.WithConfig(ctx, cfg)
	ctx = output.WithPrinter(ctx, &buf)
	ctx = log.WithLogger(ctx, log.New(io.Discard, log.Silent))

	cmd := newCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

// setupEnv creates a valid virtual environment with an activate script.
func setupEnv(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatalf("failed to create env layout: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0o755); err != nil {
		t.Fatalf("failed to create env layout: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0o644); err != nil {
		t.Fatalf("failed to write pyvenv.cfg: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "activate"), []byte("# activate\n"), 0o644); err != nil {
		t.Fatalf("failed to write activate script: %v", err)
	}
}
