package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-project override file, placed in the
// directory being searched.
const LocalConfigFileName = ".venvfind.toml"

// LocalConfig holds per-project configuration overrides.
// Nil slices and pointer fields mean "not set" (inherit from global).
type LocalConfig struct {
	CommonNames    []string `toml:"common_names"`
	RequiredFiles  []string `toml:"required_files"`
	RequiredDirs   []string `toml:"required_dirs"`
	SearchParents  *bool    `toml:"search_parents"`
	MaxParentDepth *int     `toml:"max_parent_depth"`
	AutoActivate   *bool    `toml:"auto_activate"`
}

// LoadLocal reads a per-project .venvfind.toml from the given directory.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if local.MaxParentDepth != nil && *local.MaxParentDepth < 0 {
		return nil, fmt.Errorf("invalid max_parent_depth %d in %s: must not be negative", *local.MaxParentDepth, configFile)
	}
	for field, names := range map[string][]string{
		"common_names":   local.CommonNames,
		"required_files": local.RequiredFiles,
		"required_dirs":  local.RequiredDirs,
	} {
		for i, name := range names {
			if err := validateMarkerName(name); err != nil {
				return nil, fmt.Errorf("invalid %s[%d] %q in %s: %w", field, i, name, configFile, err)
			}
		}
	}

	return &local, nil
}

// MergeLocal merges a per-project config into the global config,
// returning a new Config without mutating the global.
// Returns a copy of global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) Config {
	merged := *global
	if local == nil {
		return merged
	}

	if local.CommonNames != nil {
		merged.CommonNames = local.CommonNames
	}
	if local.RequiredFiles != nil {
		merged.RequiredFiles = local.RequiredFiles
	}
	if local.RequiredDirs != nil {
		merged.RequiredDirs = local.RequiredDirs
	}
	if local.SearchParents != nil {
		merged.SearchParents = *local.SearchParents
	}
	if local.MaxParentDepth != nil {
		merged.MaxParentDepth = *local.MaxParentDepth
	}
	if local.AutoActivate != nil {
		merged.AutoActivate = *local.AutoActivate
	}

	return merged
}

// defaultLocalConfig is the template for venvfind config init --local
const defaultLocalConfig = `# venvfind local config (per-project overrides)
# Place this file in the project directory you run venvfind from.
# Settings here override ~/.config/venvfind/config.toml for this project.

# common_names = ["env", "venv", ".env", ".venv", "virtualenv"]
# required_files = ["pyvenv.cfg"]
# required_dirs = ["bin", "lib"]
# search_parents = true
# max_parent_depth = 5
# auto_activate = false
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
