// Package config handles loading and validation of venvfind configuration.
//
// Configuration is read from ~/.config/venvfind/config.toml, with
// per-project overrides from a .venvfind.toml placed in the directory
// being searched.
//
// # Key Settings
//
//   - common_names: conventional env directory names, in priority order
//     (default: env, venv, .env, .venv, virtualenv)
//   - required_files: marker files an env root must contain (default: pyvenv.cfg)
//   - required_dirs: marker directories an env root must contain (default: bin, lib)
//   - search_parents: walk up ancestor directories when nothing is found
//     at the start directory (default: true)
//   - max_parent_depth: how many ancestor levels to try (default: 5)
//   - auto_activate: whether "venvfind resolve" should print the activate
//     script path alongside the result (default: false)
//   - log_level: silent, info, or verbose (default: info)
//
// # Validation
//
// Marker names must be bare file names: no path separators, not empty,
// not "." or "..". max_parent_depth must not be negative. Invalid
// configuration is reported when the file is loaded or a Config is set,
// never during resolution.
//
// Missing config files are not an error; defaults apply. A file that
// exists but fails to parse or validate yields the defaults plus an
// error the caller can warn about.
package config
