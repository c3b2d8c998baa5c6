package main

import (
	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/cache"
	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/doctor"
	"github.com/venvfind/venvfind/internal/output"
	"github.com/venvfind/venvfind/internal/venv"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the cache against the filesystem",
		GroupID: GroupMaintenance,
		Args:    cobra.NoArgs,
		Long: `Check every cached outcome against the current filesystem state.

Environments get deleted or rebuilt behind venvfind's back; doctor
reports entries whose start directory is gone or whose recorded
environment no longer validates. With --fix, the offending entries are
pruned from the cache.`,
		Example: `  venvfind doctor        # report stale cache entries
  venvfind doctor --fix  # prune them`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			dir, err := cache.Dir()
			if err != nil {
				return err
			}

			c, unlock, err := cache.LoadWithLock(dir)
			if err != nil {
				return err
			}
			defer unlock()

			out.Printf("Checking %d cached outcomes...\n", c.Len())

			issues := doctor.Check(venv.OS(), cfg.Markers(), c)
			if len(issues) == 0 {
				out.Println("✓ No issues found")
				return nil
			}

			out.Printf("\nFound %d stale entries:\n", len(issues))
			for _, issue := range issues {
				out.Printf("  %s: %s\n", issue.Key, issue.Reason)
			}

			if !fix {
				out.Println("\nRun 'venvfind doctor --fix' to prune.")
				return nil
			}

			fixed := doctor.Fix(c, issues)
			if err := cache.Save(cache.CachePath(dir), fixed); err != nil {
				return err
			}

			out.Printf("\nPruned %d entries\n", len(issues))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Prune stale entries")

	return cmd
}
