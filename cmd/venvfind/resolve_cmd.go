package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/log"
	"github.com/venvfind/venvfind/internal/output"
	"github.com/venvfind/venvfind/internal/venv"
)

type resolveResult struct {
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

func newResolveCmd() *cobra.Command {
	var (
		noCache         bool
		jsonOutput      bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "resolve [dir]",
		Short:   "Find the virtual environment for a directory",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Find the virtual environment that applies to a directory.

Without an argument, the current working directory is used. The outcome
(found or not) is cached per directory; use --no-cache to force a fresh
search without touching the cache.`,
		Example: `  venvfind resolve               # resolve for the current directory
  venvfind resolve ~/code/app    # resolve for another project
  venvfind resolve --json        # machine-readable output
  venvfind resolve --copy        # also copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			dir := startDir(args)
			path, found := resolveDir(ctx, dir, noCache)
			if !found {
				return fmt.Errorf("no virtual environment found for %s", dir)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					l.Warnf("failed to copy to clipboard: %v", err)
				}
			}

			active := venv.IsActive(path)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(resolveResult{Path: path, Active: active})
			}

			out.Println(path)
			if active {
				l.Infof("%s is the active environment", path)
			}
			if effectiveConfig(ctx, dir).AutoActivate && !active {
				l.Infof("activate with: source %s", filepath.Join(path, "bin", "activate"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the cache entirely")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}
