package transition

import (
	"time"

	"go.uber.org/zap"

	"github.com/five82/segue/internal/css"
	"github.com/five82/segue/internal/timeline"
)

type waitKind int

const (
	waitNone  waitKind = iota // run synchronously
	waitFrame                 // run before the next paint
	waitDelay                 // wait the delay, then the next paint
)

// stage is one staged style mutation.
type stage struct {
	phase Phase
	wait  waitKind
	delay time.Duration
	apply func()
}

type pendingTimer struct {
	id     int
	handle timeline.Handle
}

// run is one in-flight transition and the timers it owns.
type run struct {
	cfg     Config
	nextID  int
	pending []pendingTimer
	done    bool
}

func (r *run) track(h timeline.Handle) int {
	r.nextID++
	r.pending = append(r.pending, pendingTimer{id: r.nextID, handle: h})
	return r.nextID
}

func (r *run) forget(id int) {
	for i, p := range r.pending {
		if p.id == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return
		}
	}
}

// stop cancels every outstanding timer and returns how many it stopped.
func (r *run) stop() int {
	n := 0
	for _, p := range r.pending {
		if p.handle.Stop() {
			n++
		}
	}
	r.pending = nil
	return n
}

func (c *Controller) start(stages []stage, cfg Config) {
	r := &run{cfg: cfg}
	c.active = r
	c.step(r, stages)
}

// step runs stages[0] according to its wait kind and chains the rest.
func (c *Controller) step(r *run, stages []stage) {
	if len(stages) == 0 {
		r.done = true
		c.log.Debug("transition settled", zap.Int("shown_len", len(c.shown)))
		c.setPhase(c.restingPhase())
		return
	}
	s, rest := stages[0], stages[1:]
	fire := func() {
		c.setPhase(s.phase)
		s.apply()
		c.step(r, rest)
	}
	switch s.wait {
	case waitNone:
		fire()
	case waitFrame:
		c.raf(r, fire)
	case waitDelay:
		c.wait(r, s.delay, fire)
	}
}

// raf runs fn before the next paint.
func (c *Controller) raf(r *run, fn func()) {
	var id int
	id = r.track(c.sched.NextFrame(func() {
		r.forget(id)
		fn()
	}))
}

// wait runs fn before the first paint after d has elapsed.
func (c *Controller) wait(r *run, d time.Duration, fn func()) {
	var id int
	id = r.track(c.sched.After(d, func() {
		r.forget(id)
		c.raf(r, fn)
	}))
}

func (c *Controller) exitStages(cfg Config) []stage {
	container, display := c.els.Container, c.els.Display
	return []stage{
		{phase: PhaseExitFadeOut, wait: waitNone, apply: func() {
			// Pin the current box so the shrink starts from known values.
			container.SetProperty(css.Transition, css.FormatTransition(css.All, 0, cfg.TimingFunction))
			c.geom.Computed(container).pin(container)

			// Width is armed now and changes during the shrink.
			display.SetProperty(css.Transition, css.JoinTransitions(
				cfg.fade(css.Opacity),
				cfg.size(css.Width),
			))
			display.SetProperty(css.Opacity, "0")
		}},
		{phase: PhaseExitShrink, wait: waitDelay, delay: cfg.Fade, apply: func() {
			container.SetProperty(css.Transition, css.JoinTransitions(
				cfg.size(css.BorderWidth),
				cfg.size(css.MarginLeft),
				cfg.size(css.MarginRight),
				cfg.size(css.PaddingLeft),
				cfg.size(css.PaddingRight),
				cfg.size(css.Width),
			))
			for _, prop := range []string{css.BorderWidth, css.MarginLeft, css.MarginRight, css.PaddingLeft, css.PaddingRight, css.Width} {
				container.SetProperty(prop, css.Px(0))
			}
		}},
		{phase: PhaseSettle, wait: waitDelay, delay: cfg.Size, apply: func() {
			c.hide(container)
			c.commit(c.content)
			removeProperties(container,
				css.Transition, css.Height, css.BorderWidth, css.MarginLeft, css.MarginRight,
				css.Opacity, css.PaddingLeft, css.PaddingRight, css.Width)
			removeProperties(display, css.Transition, css.Opacity, css.Width)
		}},
	}
}

func (c *Controller) enterStages(cfg Config) []stage {
	container, display, probe := c.els.Container, c.els.Display, c.els.Probe
	return []stage{
		{phase: PhaseEnterOpen, wait: waitNone, apply: func() {
			if container.Property(css.Visibility) == "hidden" {
				c.reveal(container)
			}

			zero := css.FormatTransition(css.All, 0, cfg.TimingFunction)
			container.SetProperty(css.Transition, zero)
			for _, prop := range []string{css.BorderWidth, css.MarginLeft, css.MarginRight, css.PaddingLeft, css.PaddingRight} {
				container.SetProperty(prop, css.Px(0))
			}
			container.SetProperty(css.Opacity, "0")

			display.SetProperty(css.Transition, zero)
			display.SetProperty(css.Opacity, "0")
			display.SetProperty(css.Width, css.Px(0))

			// The text must be present before it can be sized into.
			c.commit(c.content)
		}},
		{phase: PhaseEnterGrow, wait: waitFrame, apply: func() {
			natural := c.geom.Natural(container)
			container.SetProperty(css.Transition, css.JoinTransitions(
				cfg.size(css.BorderWidth),
				cfg.size(css.MarginLeft),
				cfg.size(css.MarginRight),
				cfg.fade(css.Opacity),
				cfg.size(css.PaddingLeft),
				cfg.size(css.PaddingRight),
			))
			container.SetProperty(css.BorderWidth, css.Px(natural.BorderWidth))
			container.SetProperty(css.Opacity, css.FormatNumber(natural.Opacity))
			container.SetProperty(css.MarginLeft, css.Px(natural.MarginLeft))
			container.SetProperty(css.MarginRight, css.Px(natural.MarginRight))
			container.SetProperty(css.PaddingLeft, css.Px(natural.PaddingLeft))
			container.SetProperty(css.PaddingRight, css.Px(natural.PaddingRight))

			size := c.geom.Computed(probe)
			display.SetProperty(css.Transition, css.JoinTransitions(
				cfg.fade(css.Opacity),
				cfg.size(css.Height),
				cfg.size(css.Width),
			))
			display.SetProperty(css.Width, css.Px(size.Width))
			display.SetProperty(css.Height, css.Px(size.Height))
		}},
		{phase: PhaseEnterFadeIn, wait: waitDelay, delay: cfg.Size, apply: func() {
			display.SetProperty(css.Opacity, "1")
		}},
		{phase: PhaseSettle, wait: waitDelay, delay: cfg.Fade, apply: func() {
			removeProperties(container,
				css.Transition, css.BorderWidth, css.Opacity, css.MarginLeft, css.MarginRight,
				css.PaddingLeft, css.PaddingRight)
			removeProperties(display, css.Transition, css.Opacity, css.Height, css.Width)
		}},
	}
}

func (c *Controller) swapStages(cfg Config) []stage {
	display, probe := c.els.Display, c.els.Probe
	return []stage{
		{phase: PhaseSwapPin, wait: waitNone, apply: func() {
			current := c.geom.Computed(display)
			display.SetProperty(css.Opacity, css.FormatNumber(current.Opacity))
			display.SetProperty(css.Width, css.Px(current.Width))
		}},
		{phase: PhaseSwapFadeOut, wait: waitFrame, apply: func() {
			display.SetProperty(css.Transition, css.JoinTransitions(
				cfg.fade(css.Opacity),
				cfg.size(css.Width),
			))
			display.SetProperty(css.Opacity, "0")
		}},
		{phase: PhaseSwapResize, wait: waitDelay, delay: cfg.Fade, apply: func() {
			display.SetProperty(css.Width, css.Px(c.geom.Computed(probe).Width))
			c.commit(c.content)
		}},
		{phase: PhaseSwapFadeIn, wait: waitDelay, delay: cfg.Size, apply: func() {
			display.SetProperty(css.Opacity, "1")
		}},
		{phase: PhaseSettle, wait: waitDelay, delay: cfg.Fade, apply: func() {
			removeProperties(display, css.Transition, css.Opacity, css.Width)
		}},
	}
}
