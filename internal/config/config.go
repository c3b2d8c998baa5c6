package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/venvfind/venvfind/internal/venv"
)

// Log levels for the log_level setting.
const (
	LogSilent  = "silent"
	LogInfo    = "info"
	LogVerbose = "verbose"
)

// Config holds the venvfind configuration.
type Config struct {
	CommonNames    []string `toml:"common_names"`
	RequiredFiles  []string `toml:"required_files"`
	RequiredDirs   []string `toml:"required_dirs"`
	SearchParents  bool     `toml:"search_parents"`
	MaxParentDepth int      `toml:"max_parent_depth"`
	AutoActivate   bool     `toml:"auto_activate"`
	LogLevel       string   `toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	m := venv.DefaultMarkers()
	return Config{
		CommonNames:    m.CommonNames,
		RequiredFiles:  m.RequiredFiles,
		RequiredDirs:   m.RequiredDirs,
		SearchParents:  true,
		MaxParentDepth: 5,
		AutoActivate:   false,
		LogLevel:       LogInfo,
	}
}

// Markers converts the configured names into venv markers.
func (c *Config) Markers() venv.Markers {
	return venv.Markers{
		CommonNames:   c.CommonNames,
		RequiredFiles: c.RequiredFiles,
		RequiredDirs:  c.RequiredDirs,
	}
}

// Validate checks the configuration.
// Errors here surface at load/set time, never during resolution.
func (c *Config) Validate() error {
	if c.MaxParentDepth < 0 {
		return fmt.Errorf("max_parent_depth must not be negative, got %d", c.MaxParentDepth)
	}

	for field, names := range map[string][]string{
		"common_names":   c.CommonNames,
		"required_files": c.RequiredFiles,
		"required_dirs":  c.RequiredDirs,
	} {
		for i, name := range names {
			if err := validateMarkerName(name); err != nil {
				return fmt.Errorf("invalid %s[%d] %q: %w", field, i, name, err)
			}
		}
	}

	switch c.LogLevel {
	case LogSilent, LogInfo, LogVerbose:
	default:
		return fmt.Errorf("invalid log_level %q: must be %q, %q, or %q", c.LogLevel, LogSilent, LogInfo, LogVerbose)
	}

	return nil
}

// validateMarkerName checks that a configured name is a bare file name.
func validateMarkerName(name string) error {
	if name == "" {
		return errors.New("must not be empty")
	}
	if name == "." || name == ".." {
		return errors.New("must not be \".\" or \"..\"")
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return errors.New("must not contain a path separator")
	}
	return nil
}

// configPath returns the path to the global config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "venvfind", "config.toml"), nil
}

// rawConfig distinguishes "not set" from zero values so that a partial
// config file inherits defaults for the fields it omits.
type rawConfig struct {
	CommonNames    []string `toml:"common_names"`
	RequiredFiles  []string `toml:"required_files"`
	RequiredDirs   []string `toml:"required_dirs"`
	SearchParents  *bool    `toml:"search_parents"`
	MaxParentDepth *int     `toml:"max_parent_depth"`
	AutoActivate   *bool    `toml:"auto_activate"`
	LogLevel       string   `toml:"log_level"`
}

// overlay applies the set fields of raw onto cfg.
func (raw *rawConfig) overlay(cfg *Config) {
	if raw.CommonNames != nil {
		cfg.CommonNames = raw.CommonNames
	}
	if raw.RequiredFiles != nil {
		cfg.RequiredFiles = raw.RequiredFiles
	}
	if raw.RequiredDirs != nil {
		cfg.RequiredDirs = raw.RequiredDirs
	}
	if raw.SearchParents != nil {
		cfg.SearchParents = *raw.SearchParents
	}
	if raw.MaxParentDepth != nil {
		cfg.MaxParentDepth = *raw.MaxParentDepth
	}
	if raw.AutoActivate != nil {
		cfg.AutoActivate = *raw.AutoActivate
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
}

// Load reads config from ~/.config/venvfind/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() plus an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from an explicit path with Load's semantics.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	raw.overlay(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}

const defaultConfig = `# venvfind configuration
# Config location: ~/.config/venvfind/config.toml

# Conventional environment directory names, probed in order.
# The first valid match wins, so order defines priority.
# common_names = ["env", "venv", ".env", ".venv", "virtualenv"]

# Marker files that must exist directly under an environment root.
# required_files = ["pyvenv.cfg"]

# Marker directories that must exist directly under an environment root.
# required_dirs = ["bin", "lib"]

# Walk up ancestor directories when nothing is found at the start directory.
# search_parents = true

# How many ancestor levels to try before giving up.
# max_parent_depth = 5

# Print the activate script path alongside resolve results.
# auto_activate = false

# Log verbosity on stderr: "silent", "info", or "verbose".
# log_level = "info"
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/venvfind/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
