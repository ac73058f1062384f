package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/segue/internal/css"
	"github.com/five82/segue/internal/transition"
)

// Clock supplies the time property transitions are evaluated at.
type Clock interface {
	Now() time.Time
}

// Stylesheet holds the declared rules of each element.
type Stylesheet struct {
	Container Rules
	Display   Rules
	Probe     Rules
}

// DefaultStylesheet is a bordered, padded container around pre-formatted,
// clipped text, with the probe taken out of flow.
func DefaultStylesheet() Stylesheet {
	return Stylesheet{
		Container: Rules{
			css.BorderWidth:  css.Px(1),
			css.MarginLeft:   css.Px(1),
			css.MarginRight:  css.Px(1),
			css.PaddingLeft:  css.Px(1),
			css.PaddingRight: css.Px(1),
		},
		Display: Rules{},
		Probe: Rules{
			css.Position:   "fixed",
			css.Visibility: "hidden",
		},
	}
}

// Options configure a Document.
type Options struct {
	Clock      Clock
	Stylesheet Stylesheet
	// TextStyle is forwarded to both the display and the probe.
	TextStyle lipgloss.Style
	Palette   Palette
	Logger    *zap.Logger
}

// Document is the element tree a transition controller mutates. It is not
// safe for concurrent use.
type Document struct {
	clock     Clock
	textStyle lipgloss.Style
	palette   Palette
	log       *zap.Logger

	container *Element
	display   *Element
	probe     *Element
}

// New builds a document with empty text.
func New(opts Options) *Document {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sheet := opts.Stylesheet
	if sheet.Container == nil && sheet.Display == nil && sheet.Probe == nil {
		sheet = DefaultStylesheet()
	}
	d := &Document{
		clock:     opts.Clock,
		textStyle: lipgloss.NewStyle().Inherit(opts.TextStyle),
		palette:   opts.Palette.withDefaults(),
		log:       log,
	}
	d.container = newElement(d, "container", sheet.Container)
	d.display = newElement(d, "display", sheet.Display)
	d.probe = newElement(d, "probe", sheet.Probe)
	return d
}

// Container returns the element around the display.
func (d *Document) Container() *Element { return d.container }

// Display returns the visible text element.
func (d *Document) Display() *Element { return d.display }

// Probe returns the measuring element.
func (d *Document) Probe() *Element { return d.probe }

// Elements returns the three elements for a transition.Controller.
func (d *Document) Elements() transition.Elements {
	return transition.Elements{
		Container: d.container,
		Display:   d.display,
		Probe:     d.probe,
	}
}

// SetPalette replaces the colours used by Render.
func (d *Document) SetPalette(p Palette) {
	d.palette = p.withDefaults()
}

// Animating reports whether any property transition is still running.
func (d *Document) Animating() bool {
	now := d.clock.Now()
	return d.container.animating(now) || d.display.animating(now)
}

// Computed returns el's box as rendered now.
func (d *Document) Computed(el transition.Element) transition.Box {
	e, ok := el.(*Element)
	if !ok || e.doc != d {
		return transition.Box{}
	}
	now := d.clock.Now()
	b := transition.Box{
		BorderWidth:  e.value(css.BorderWidth, now),
		Height:       e.value(css.Height, now),
		MarginLeft:   e.value(css.MarginLeft, now),
		MarginRight:  e.value(css.MarginRight, now),
		Opacity:      e.value(css.Opacity, now),
		PaddingLeft:  e.value(css.PaddingLeft, now),
		PaddingRight: e.value(css.PaddingRight, now),
		Width:        e.value(css.Width, now),
	}
	b.Width = math.Min(b.Width, e.value(css.MaxWidth, now))
	return b
}

// Natural returns the box el's stylesheet alone would produce.
func (d *Document) Natural(el transition.Element) transition.Box {
	e, ok := el.(*Element)
	if !ok || e.doc != d {
		return transition.Box{}
	}
	b := transition.Box{
		BorderWidth:  e.resolve(css.BorderWidth, false),
		Height:       e.resolve(css.Height, false),
		MarginLeft:   e.resolve(css.MarginLeft, false),
		MarginRight:  e.resolve(css.MarginRight, false),
		Opacity:      e.resolve(css.Opacity, false),
		PaddingLeft:  e.resolve(css.PaddingLeft, false),
		PaddingRight: e.resolve(css.PaddingRight, false),
		Width:        e.resolve(css.Width, false),
	}
	b.Width = math.Min(b.Width, e.resolve(css.MaxWidth, false))
	return b
}

// autoSize resolves an "auto" width or height.
func (d *Document) autoSize(e *Element, prop string, withInline bool) float64 {
	switch e {
	case d.container:
		// The container wraps the display as it is currently rendered.
		now := d.clock.Now()
		if withInline {
			return d.display.value(prop, now)
		}
		return d.display.resolve(prop, false)
	default:
		w, h := measure(e.text, d.textStyle)
		if prop == css.Width {
			return w
		}
		return h
	}
}
