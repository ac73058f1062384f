// Package prefs handles segue user preferences persistence.
// Preferences are stored in ~/.config/segue/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds what the demo remembers between runs. Zero durations mean
// "use the configured value".
type Prefs struct {
	Theme     string `toml:"theme"`
	ShortText string `toml:"short_text"`
	LongText  string `toml:"long_text"`
	FadeMS    int64  `toml:"fade_ms,omitempty"`
	SizeMS    int64  `toml:"size_ms,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/segue/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultShortText = "Short"
	defaultLongText  = "Very, very long text"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used on first launch.
func Default() Prefs {
	return Prefs{
		Theme:     defaultTheme,
		ShortText: defaultShortText,
		LongText:  defaultLongText,
	}
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default(), nil // Graceful degradation
	}

	var raw struct {
		Theme     string  `toml:"theme"`
		ShortText *string `toml:"short_text"`
		LongText  *string `toml:"long_text"`
		FadeMS    int64   `toml:"fade_ms"`
		SizeMS    int64   `toml:"size_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Default(), nil // Graceful degradation
	}

	p := Default()
	if strings.TrimSpace(raw.Theme) != "" {
		p.Theme = raw.Theme
	}
	// Saved text is kept verbatim, including an empty string.
	if raw.ShortText != nil {
		p.ShortText = *raw.ShortText
	}
	if raw.LongText != nil {
		p.LongText = *raw.LongText
	}
	if raw.FadeMS > 0 {
		p.FadeMS = raw.FadeMS
	}
	if raw.SizeMS > 0 {
		p.SizeMS = raw.SizeMS
	}

	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
