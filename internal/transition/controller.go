package transition

import (
	"go.uber.org/zap"

	"github.com/five82/segue/internal/css"
)

// Options configure a Controller.
type Options struct {
	// Content is the content present when the component is created. It is
	// shown without animation once the elements mount.
	Content   string
	// Config is the pacing for transitions; the zero value means
	// DefaultConfig.
	Config    Config
	Elements  Elements
	Geometry  Geometry
	Scheduler Scheduler
	Logger    *zap.Logger
	// OnPhase, when set, is called on every phase change.
	OnPhase   func(Phase)
}

// Controller drives content transitions for one set of elements.
type Controller struct {
	cfg     Config
	els     Elements
	geom    Geometry
	sched   Scheduler
	log     *zap.Logger
	onPhase func(Phase)

	content     string // latest content from the owner
	shown       string // content committed to the display
	initialized bool   // first effect with mounted elements has run
	phase       Phase
	active      *run
}

// New creates a controller. When opts.Elements is complete the mount effect
// runs immediately.
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	c := &Controller{
		cfg:     cfg.normalized(),
		geom:    opts.Geometry,
		sched:   opts.Scheduler,
		log:     log,
		onPhase: opts.OnPhase,
		content: opts.Content,
		shown:   opts.Content,
	}
	if opts.Elements.complete() {
		c.Mount(opts.Elements)
	} else {
		c.els = opts.Elements
	}
	return c
}

// Mount binds the elements and runs the effect for the current content.
func (c *Controller) Mount(els Elements) {
	c.els = els
	if els.Display != nil {
		els.Display.SetText(c.shown)
	}
	if els.Probe != nil {
		els.Probe.SetText(c.content)
	}
	c.effect()
}

// SetContent hands the controller new content. Setting the value it already
// holds does nothing.
func (c *Controller) SetContent(content string) {
	if content == c.content {
		return
	}
	c.content = content
	if c.els.Probe != nil {
		c.els.Probe.SetText(content)
	}
	c.effect()
}

// SetConfig replaces the config used by transitions started from now on.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg.normalized()
}

// Config returns the config for the next transition.
func (c *Controller) Config() Config {
	return c.cfg
}

// Content returns the latest content handed to the controller.
func (c *Controller) Content() string {
	return c.content
}

// Shown returns the content committed to the display.
func (c *Controller) Shown() string {
	return c.shown
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Pending returns the number of outstanding scheduled callbacks.
func (c *Controller) Pending() int {
	if c.active == nil {
		return 0
	}
	return len(c.active.pending)
}

// Busy reports whether a transition is in flight.
func (c *Controller) Busy() bool {
	return c.active != nil && !c.active.done
}

// Close stops any in-flight transition and resets inline styles. The
// controller stays usable; a later Mount starts over.
func (c *Controller) Close() {
	c.cleanup()
	c.els = Elements{}
	c.initialized = false
}

// effect reacts to a content change or a mount.
func (c *Controller) effect() {
	c.cleanup()

	if !c.els.complete() {
		c.log.Debug("elements not mounted; skipping transition")
		return
	}

	if !c.initialized {
		c.initialized = true
		if c.content == "" {
			c.hide(c.els.Container)
			c.els.Container.SetProperty(css.MaxWidth, css.Px(0))
			c.setPhase(PhaseHidden)
			return
		}
	}

	kind := Classify(c.shown, c.content)
	if kind == KindNone {
		return
	}

	if c.geom == nil || c.sched == nil {
		c.swapStatic(kind)
		return
	}

	cfg := c.cfg
	c.log.Debug("transition start",
		zap.Stringer("kind", kind),
		zap.Int("from_len", len(c.shown)),
		zap.Int("to_len", len(c.content)),
		zap.Duration("fade", cfg.Fade),
		zap.Duration("size", cfg.Size),
		zap.String("timing", cfg.TimingFunction),
	)

	switch kind {
	case KindExit:
		c.start(c.exitStages(cfg), cfg)
	case KindEnter:
		c.start(c.enterStages(cfg), cfg)
	case KindSwap:
		c.start(c.swapStages(cfg), cfg)
	}
}

// cleanup cancels the in-flight run and resets inline styles to a baseline.
func (c *Controller) cleanup() {
	r := c.active
	if r == nil {
		return
	}
	c.active = nil
	if r.done {
		return
	}
	stopped := r.stop()
	c.log.Debug("transition interrupted", zap.Int("cancelled", stopped), zap.Stringer("phase", c.phase))
	for _, el := range []Element{c.els.Container, c.els.Display} {
		if el == nil {
			continue
		}
		el.ClearStyle()
		el.SetProperty(css.Transition, r.cfg.baseline())
	}
	c.setPhase(c.restingPhase())
}

// swapStatic commits the content without animating. It is used when the
// host cannot measure or schedule.
func (c *Controller) swapStatic(kind Kind) {
	c.log.Debug("host lacks geometry or scheduler; swapping without animation",
		zap.Stringer("kind", kind),
	)
	c.commit(c.content)
	if c.content == "" {
		c.hide(c.els.Container)
		c.els.Container.SetProperty(css.MaxWidth, css.Px(0))
	} else {
		c.reveal(c.els.Container)
	}
	c.setPhase(c.restingPhase())
}

// commit shows content in the display.
func (c *Controller) commit(content string) {
	c.shown = content
	c.els.Display.SetText(content)
}

// hide takes the container out of flow.
func (c *Controller) hide(el Element) {
	el.SetProperty(css.Position, "absolute")
	el.SetProperty(css.PointerEvents, "none")
	el.SetProperty(css.Visibility, "hidden")
	el.SetProperty(css.ZIndex, "-1")
}

// reveal puts a hidden container back into flow.
func (c *Controller) reveal(el Element) {
	removeProperties(el, css.Position, css.PointerEvents, css.Visibility, css.MaxWidth, css.ZIndex)
}

func (c *Controller) restingPhase() Phase {
	if c.shown == "" {
		return PhaseHidden
	}
	return PhaseIdle
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.phase = p
	c.log.Debug("transition phase", zap.Stringer("phase", p))
	if c.onPhase != nil {
		c.onPhase(p)
	}
}
