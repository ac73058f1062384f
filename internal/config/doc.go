// Package config loads segue's startup configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/segue/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// Files ending in .yaml or .yml are read as YAML; everything else is TOML.
//
// # Default Values
//
//   - fade_duration_ms: 250
//   - size_duration_ms: 750
//   - timing_function: ease
//   - frame_interval_ms: 16
//   - log_file: ~/.local/share/segue/segue.log
//   - log_level: none
//
// # TOML Format
//
//	fade_duration_ms = 250
//	size_duration_ms = 750
//	timing_function = "ease-in-out"
//	frame_interval_ms = 16
//	log_file = "~/.local/share/segue/segue.log"
//	log_level = "debug"
//
// A duration of zero is a valid value and differs from an absent key.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files and
// parse errors. Missing files are not an error. Load does not validate;
// callers run Validate after applying command line overrides, and it
// reports every bad field in one combined error.
package config
