package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/segue/internal/config"
	"github.com/five82/segue/internal/logging"
	"github.com/five82/segue/internal/prefs"
	"github.com/five82/segue/internal/ui"
)

// Options configure the segue application. Nil or empty overrides leave the
// config file value in place.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/segue/prefs.toml

	Fade     *time.Duration
	Size     *time.Duration
	Timing   string
	LogFile  string
	LogLevel string
}

// Run boots the segue TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	log.Info("starting",
		zap.Duration("fade", cfg.Fade),
		zap.Duration("size", cfg.Size),
		zap.String("timing", cfg.TimingFunction),
		zap.Duration("frame", cfg.FrameInterval),
		zap.String("theme", userPrefs.Theme),
	)

	err = ui.Run(uiOptions(ctx, &cfg, userPrefs, opts, log))
	if err != nil {
		log.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("stopped")
	return nil
}

// LoadConfig reads the config file, applies the overrides in opts and
// validates the result.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if opts.Fade != nil {
		cfg.Fade = *opts.Fade
	}
	if opts.Size != nil {
		cfg.Size = *opts.Size
	}
	if opts.Timing != "" {
		cfg.TimingFunction = opts.Timing
	}
	if opts.LogFile != "" {
		cfg.LogFile = config.ExpandPath(opts.LogFile)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// uiOptions builds the UI options. Durations given as flags win over the
// ones saved from a previous session.
func uiOptions(ctx context.Context, cfg *config.Config, p prefs.Prefs, opts Options, log *zap.Logger) ui.Options {
	return ui.Options{
		Context:   ctx,
		Config:    cfg,
		Prefs:     p,
		PrefsPath: opts.PrefsPath,
		Logger:    log,
		FixedFade: opts.Fade != nil,
		FixedSize: opts.Size != nil,
	}
}
