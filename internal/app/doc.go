// Package app provides the orchestration layer for segue.
//
// Run is the composition root:
//
//  1. Load ~/.config/segue/config.toml (or the given path) and apply
//     command line overrides
//  2. Validate the result, reporting every bad field at once
//  3. Open the zap file logger at the configured level
//  4. Load preferences from ~/.config/segue/prefs.toml
//  5. Start the TUI and block until the user quits or the context cancels
//
// Configuration and logging failures are returned before the terminal is
// taken over. Preference read failures degrade to defaults.
package app
