package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/output"
	"github.com/venvfind/venvfind/internal/ui"
	"github.com/venvfind/venvfind/internal/venv"
)

func newListCmd() *cobra.Command {
	var (
		interactive bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:     "list [dir]",
		Short:   "List all virtual environments in a directory",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List every virtual environment found directly under a directory.

Unlike resolve, list does not stop at the first match and does not walk
parent directories; it shows everything the two-pass scan can see in
one directory. Hidden directories only appear when they match a
configured conventional name.`,
		Example: `  venvfind list                 # list environments under the current directory
  venvfind list -i              # pick one interactively, print its path
  cd "$(venvfind list -i)"      # jump into the picked environment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir := startDir(args)
			eff := effectiveConfig(ctx, dir)

			candidates := venv.LocateAll(venv.OS(), eff.Markers(), dir)
			choices := make([]ui.EnvChoice, 0, len(candidates))
			for _, c := range candidates {
				choices = append(choices, ui.EnvChoice{
					Path:   c.Path,
					Name:   c.Name,
					Named:  c.Named,
					Active: venv.IsActive(c.Path),
				})
			}

			if interactive {
				result, err := ui.RunSelector(choices)
				if err != nil {
					return err
				}
				if result.Cancelled {
					os.Exit(1)
				}
				out.Println(result.Choice.Path)
				return nil
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(candidates)
			}

			if f, ok := out.Writer().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				out.Printf("%s", ui.RenderTable(choices))
				return nil
			}

			// Plain paths for pipes and scripts.
			for _, c := range choices {
				out.Println(c.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Interactive mode with fuzzy search")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
