package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/five82/segue/internal/css"
	"github.com/five82/segue/internal/transition"
)

// Config captures the settings segue reads at startup.
type Config struct {
	Fade           time.Duration
	Size           time.Duration
	TimingFunction string
	FrameInterval  time.Duration
	LogFile        string
	LogLevel       string
}

// Log levels understood by the logging package.
const (
	LogLevelNone   = "none"
	LogLevelNormal = "normal"
	LogLevelDebug  = "debug"
)

const (
	defaultConfigPath    = "~/.config/segue/config.toml"
	defaultLogFile       = "~/.local/share/segue/segue.log"
	defaultFrameInterval = 16 * time.Millisecond
)

type rawConfig struct {
	FadeDurationMS  *int64 `toml:"fade_duration_ms" yaml:"fade_duration_ms"`
	SizeDurationMS  *int64 `toml:"size_duration_ms" yaml:"size_duration_ms"`
	TimingFunction  string `toml:"timing_function" yaml:"timing_function"`
	FrameIntervalMS *int64 `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	LogFile         string `toml:"log_file" yaml:"log_file"`
	LogLevel        string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Fade:           transition.DefaultFade,
		Size:           transition.DefaultSize,
		TimingFunction: transition.DefaultTimingFunction,
		FrameInterval:  defaultFrameInterval,
		LogFile:        ExpandPath(defaultLogFile),
		LogLevel:       LogLevelNone,
	}
}

// Load locates and parses the segue config, falling back to defaults when missing.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.FadeDurationMS != nil {
		cfg.Fade = time.Duration(*raw.FadeDurationMS) * time.Millisecond
	}
	if raw.SizeDurationMS != nil {
		cfg.Size = time.Duration(*raw.SizeDurationMS) * time.Millisecond
	}
	if raw.FrameIntervalMS != nil {
		cfg.FrameInterval = time.Duration(*raw.FrameIntervalMS) * time.Millisecond
	}
	if tf := strings.TrimSpace(raw.TimingFunction); tf != "" {
		cfg.TimingFunction = tf
	}
	if lf := strings.TrimSpace(raw.LogFile); lf != "" {
		cfg.LogFile = ExpandPath(lf)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Fade < 0 {
		err = multierr.Append(err, fmt.Errorf("fade_duration_ms must not be negative, got %d", c.Fade.Milliseconds()))
	}
	if c.Size < 0 {
		err = multierr.Append(err, fmt.Errorf("size_duration_ms must not be negative, got %d", c.Size.Milliseconds()))
	}
	if c.FrameInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("frame_interval_ms must be positive, got %d", c.FrameInterval.Milliseconds()))
	}
	if _, perr := css.ParseTimingFunction(c.TimingFunction); perr != nil {
		err = multierr.Append(err, fmt.Errorf("timing_function: %w", perr))
	}
	switch c.LogLevel {
	case LogLevelNone, LogLevelNormal, LogLevelDebug:
	default:
		err = multierr.Append(err, fmt.Errorf("log_level must be one of none, normal, debug, got %q", c.LogLevel))
	}
	if c.LogLevel != LogLevelNone && strings.TrimSpace(c.LogFile) == "" {
		err = multierr.Append(err, errors.New("log_file is required when logging is enabled"))
	}
	return err
}

// Transition returns the pacing handed to the transition controller.
func (c Config) Transition() transition.Config {
	return transition.Config{
		Fade:           c.Fade,
		Size:           c.Size,
		TimingFunction: c.TimingFunction,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// ExpandPath expands a leading ~ and makes path absolute. On failure the
// input is returned unchanged.
func ExpandPath(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
