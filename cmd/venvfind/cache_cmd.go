package main

import (
	"encoding/json"
	"sort"

	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/cache"
	"github.com/venvfind/venvfind/internal/output"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   "Inspect or clear the resolution cache",
		GroupID: GroupMaintenance,
		Long: `Inspect or clear the resolution cache.

The cache memoizes one outcome per queried directory, including
"nothing found" outcomes. Entries never expire on their own; clearing
drops everything at once.

Cache location: ~/.venvfind/cache.json`,
		Example: `  venvfind cache show     # list cached outcomes
  venvfind cache clear    # drop all cached outcomes`,
	}

	cmd.AddCommand(newCacheShowCmd())
	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show cached resolution outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			return withSnapshot(func(c *cache.Cache) (bool, error) {
				entries := c.Entries()

				if jsonOutput {
					enc := json.NewEncoder(out.Writer())
					enc.SetIndent("", "  ")
					return false, enc.Encode(entries)
				}

				if len(entries) == 0 {
					out.Println("Cache is empty")
					return false, nil
				}

				keys := make([]string, 0, len(entries))
				for key := range entries {
					keys = append(keys, key)
				}
				sort.Strings(keys)

				for _, key := range keys {
					e := entries[key]
					if e.Found {
						out.Printf("%s -> %s\n", key, e.Path)
					} else {
						out.Printf("%s -> (none)\n", key)
					}
				}
				return false, nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached resolution outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			err := withSnapshot(func(c *cache.Cache) (bool, error) {
				c.Clear()
				return true, nil
			})
			if err != nil {
				return err
			}

			out.Println("Cache cleared")
			return nil
		},
	}
}
