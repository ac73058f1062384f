package transition

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/five82/segue/internal/css"
)

// Defaults for a transition.
const (
	DefaultFade           = 250 * time.Millisecond
	DefaultSize           = 750 * time.Millisecond
	DefaultTimingFunction = "ease"
)

// Config controls the pacing of a transition. A running transition keeps the
// config it started with.
type Config struct {
	Fade           time.Duration
	Size           time.Duration
	TimingFunction string
}

// DefaultConfig returns {250ms, 750ms, "ease"}.
func DefaultConfig() Config {
	return Config{
		Fade:           DefaultFade,
		Size:           DefaultSize,
		TimingFunction: DefaultTimingFunction,
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error
	if c.Fade < 0 {
		err = multierr.Append(err, fmt.Errorf("fade duration must not be negative, got %v", c.Fade))
	}
	if c.Size < 0 {
		err = multierr.Append(err, fmt.Errorf("size duration must not be negative, got %v", c.Size))
	}
	if c.TimingFunction == "" {
		err = multierr.Append(err, errors.New("timing function is empty"))
	} else if _, perr := css.ParseTimingFunction(c.TimingFunction); perr != nil {
		err = multierr.Append(err, fmt.Errorf("timing function: %w", perr))
	}
	return err
}

// normalized clamps negative durations and fills an empty timing function.
func (c Config) normalized() Config {
	if c.Fade < 0 {
		c.Fade = 0
	}
	if c.Size < 0 {
		c.Size = 0
	}
	if c.TimingFunction == "" {
		c.TimingFunction = DefaultTimingFunction
	}
	return c
}

// fade returns a shorthand entry animating prop over the fade duration.
func (c Config) fade(prop string) string {
	return css.FormatTransition(prop, c.Fade, c.TimingFunction)
}

// size returns a shorthand entry animating prop over the size duration.
func (c Config) size(prop string) string {
	return css.FormatTransition(prop, c.Size, c.TimingFunction)
}

// baseline is the transition left on elements after an interrupted run.
func (c Config) baseline() string {
	return fmt.Sprintf("%s %s %dms", css.All, c.TimingFunction, c.Size.Milliseconds())
}
