package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/venvfind/venvfind/internal/config"
	"github.com/venvfind/venvfind/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage venvfind configuration.

Global config: ~/.config/venvfind/config.toml
Local config:  .venvfind.toml (in the directory being searched)`,
		Example: `  venvfind config init          # Create default global config
  venvfind config init --local  # Create local project config
  venvfind config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config at ~/.config/venvfind/config.toml.
With --local, creates a per-project .venvfind.toml in the current directory.`,
		Example: `  venvfind config init           # Create global config
  venvfind config init --local   # Create local project config
  venvfind config init -f        # Overwrite existing config
  venvfind config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if local {
				return initLocalConfig(out, force, stdout)
			}
			return initGlobalConfig(out, force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-project .venvfind.toml instead of global config")

	return cmd
}

func initGlobalConfig(out *output.Printer, force, stdout bool) error {
	if stdout {
		out.Printf("%s", config.DefaultConfig())
		return nil
	}

	path, err := config.Init(force)
	if err != nil {
		return err
	}

	out.Printf("Created config file: %s\n", path)
	return nil
}

func initLocalConfig(out *output.Printer, force, stdout bool) error {
	content := config.DefaultLocalConfig()

	if stdout {
		out.Printf("%s", content)
		return nil
	}

	path := filepath.Join(workDir, config.LocalConfigFileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("local config already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	out.Printf("Created local config: %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

When the current directory holds a .venvfind.toml, the merged config is
shown with source annotations (global vs local).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			global := config.FromContext(ctx)
			local, err := config.LoadLocal(workDir)
			if err != nil {
				return err
			}
			eff := config.MergeLocal(global, local)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(eff)
			}

			out.Printf("Global config: ~/.config/venvfind/config.toml\n")
			if local != nil {
				out.Printf("Local config:  %s\n", filepath.Join(workDir, config.LocalConfigFileName))
			} else {
				out.Printf("Local config:  (none)\n")
			}
			out.Println()

			source := func(isLocal bool) string {
				if isLocal {
					return " (local)"
				}
				return ""
			}

			out.Printf("common_names: %v%s\n", eff.CommonNames, source(local != nil && local.CommonNames != nil))
			out.Printf("required_files: %v%s\n", eff.RequiredFiles, source(local != nil && local.RequiredFiles != nil))
			out.Printf("required_dirs: %v%s\n", eff.RequiredDirs, source(local != nil && local.RequiredDirs != nil))
			out.Printf("search_parents: %v%s\n", eff.SearchParents, source(local != nil && local.SearchParents != nil))
			out.Printf("max_parent_depth: %d%s\n", eff.MaxParentDepth, source(local != nil && local.MaxParentDepth != nil))
			out.Printf("auto_activate: %v%s\n", eff.AutoActivate, source(local != nil && local.AutoActivate != nil))
			out.Printf("log_level: %s\n", eff.LogLevel)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
