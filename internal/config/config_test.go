package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Fade != 250*time.Millisecond || cfg.Size != 750*time.Millisecond {
		t.Fatalf("durations = %v/%v, want 250ms/750ms", cfg.Fade, cfg.Size)
	}
	if cfg.TimingFunction != "ease" {
		t.Fatalf("TimingFunction = %q, want ease", cfg.TimingFunction)
	}
	if cfg.FrameInterval != defaultFrameInterval {
		t.Fatalf("FrameInterval = %v, want %v", cfg.FrameInterval, defaultFrameInterval)
	}
	if cfg.LogLevel != LogLevelNone {
		t.Fatalf("LogLevel = %q, want none", cfg.LogLevel)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_ParsesAndTrimsTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
fade_duration_ms = 100
size_duration_ms = 0
timing_function = "  ease-in-out  "
frame_interval_ms = 33
log_file = "  ~/logs/segue.log  "
log_level = " DEBUG "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Fade != 100*time.Millisecond {
		t.Fatalf("Fade = %v, want 100ms", cfg.Fade)
	}
	if cfg.Size != 0 {
		t.Fatalf("Size = %v, want 0 (explicit zero)", cfg.Size)
	}
	if cfg.TimingFunction != "ease-in-out" {
		t.Fatalf("TimingFunction = %q, want ease-in-out", cfg.TimingFunction)
	}
	if cfg.FrameInterval != 33*time.Millisecond {
		t.Fatalf("FrameInterval = %v, want 33ms", cfg.FrameInterval)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "segue.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != LogLevelDebug {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`
fade_duration_ms: 400
timing_function: cubic-bezier(0.4, 0, 0.2, 1)
log_level: normal
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Fade != 400*time.Millisecond {
		t.Fatalf("Fade = %v, want 400ms", cfg.Fade)
	}
	if cfg.Size != 750*time.Millisecond {
		t.Fatalf("Size = %v, want default 750ms", cfg.Size)
	}
	if cfg.TimingFunction != "cubic-bezier(0.4, 0, 0.2, 1)" {
		t.Fatalf("TimingFunction = %q", cfg.TimingFunction)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
timing_function = "   "
log_level = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TimingFunction != "ease" {
		t.Fatalf("TimingFunction = %q, want ease", cfg.TimingFunction)
	}
	if cfg.LogLevel != LogLevelNone {
		t.Fatalf("LogLevel = %q, want none", cfg.LogLevel)
	}
}

func TestLoad_InvalidFilesFail(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "toml", file: "config.toml", content: `fade_duration_ms = [`},
		{name: "yaml", file: "config.yml", content: "fade_duration_ms: [1\n"},
		{name: "wrong type", file: "config.toml", content: `fade_duration_ms = "fast"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestValidate_CombinesErrors(t *testing.T) {
	cfg := Config{
		Fade:           -time.Millisecond,
		Size:           -time.Millisecond,
		TimingFunction: "wobble",
		FrameInterval:  0,
		LogLevel:       "loud",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("Validate returned nil, want errors")
	}
	if got := len(multierr.Errors(err)); got != 6 {
		t.Fatalf("Validate returned %d errors, want 6: %v", got, err)
	}
	for _, key := range []string{"fade_duration_ms", "size_duration_ms", "frame_interval_ms", "timing_function", "log_level", "log_file"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("Validate error %q does not mention %s", err.Error(), key)
		}
	}
}

func TestValidate_RejectsNonFiniteBezier(t *testing.T) {
	for _, tf := range []string{
		"cubic-bezier(0.2, nan, 0.4, 1)",
		"cubic-bezier(0.2, 0, 0.4, inf)",
	} {
		cfg := Default()
		cfg.TimingFunction = tf
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("Validate(%q) returned nil, want error", tf)
		}
		if !strings.Contains(err.Error(), "timing_function") {
			t.Fatalf("Validate(%q) error = %q, want timing_function", tf, err)
		}
	}
}

func TestTransition(t *testing.T) {
	cfg := Config{Fade: time.Second, Size: 2 * time.Second, TimingFunction: "linear"}
	tc := cfg.Transition()
	if tc.Fade != time.Second || tc.Size != 2*time.Second || tc.TimingFunction != "linear" {
		t.Fatalf("Transition() = %+v", tc)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExportedExpandPath_KeepsInputOnFailure(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := ExpandPath("~/segue.log"), filepath.Join(home, "segue.log"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
	if got := ExpandPath(""); got != "" {
		t.Fatalf("ExpandPath(\"\") = %q, want empty", got)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
