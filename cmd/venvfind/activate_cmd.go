package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/log"
	"github.com/venvfind/venvfind/internal/output"
)

func newActivateCmd() *cobra.Command {
	var (
		noCache         bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "activate [dir]",
		Short:   "Print the activate script path for shell scripting",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the activate script of the resolved environment.

Use with shell command substitution: source "$(venvfind activate)"

venvfind never modifies the shell itself; activation stays in the
caller's hands.`,
		Example: `  source "$(venvfind activate)"            # activate for the current directory
  source "$(venvfind activate ~/code/app)" # activate for another project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir := startDir(args)
			path, found := resolveDir(ctx, dir, noCache)
			if !found {
				return fmt.Errorf("no virtual environment found for %s", dir)
			}

			script := filepath.Join(path, "bin", "activate")
			if _, err := os.Stat(script); err != nil {
				return fmt.Errorf("environment %s has no activate script", path)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(script); err != nil {
					log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
				}
			}

			out.Println(script)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the cache entirely")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}
