package transition

import (
	"time"

	"github.com/five82/segue/internal/css"
	"github.com/five82/segue/internal/timeline"
)

// Element is a styled node the controller writes inline styles to.
type Element interface {
	// SetProperty sets an inline style property.
	SetProperty(name, value string)
	// RemoveProperty drops an inline style property, reverting to the
	// stylesheet value.
	RemoveProperty(name string)
	// Property returns the inline value of name, or "" when unset.
	Property(name string) string
	// ClearStyle drops every inline property at once.
	ClearStyle()
	// SetText replaces the element's text content.
	SetText(text string)
}

// Geometry resolves rendered boxes.
type Geometry interface {
	// Computed returns the box as currently rendered, including inline
	// overrides and in-flight property transitions.
	Computed(el Element) Box
	// Natural returns the box the stylesheet alone would produce.
	Natural(el Element) Box
}

// Scheduler runs callbacks later. Callbacks must never run synchronously
// from After or NextFrame.
type Scheduler interface {
	After(d time.Duration, fn func()) timeline.Handle
	NextFrame(fn func()) timeline.Handle
}

// Elements groups the three nodes a controller drives. A nil field means the
// element is not mounted yet.
type Elements struct {
	Container Element
	Display   Element
	Probe     Element
}

func (e Elements) complete() bool {
	return e.Container != nil && e.Display != nil && e.Probe != nil
}

// Box is the subset of a computed style the controller reads. Lengths are in
// px, opacity in [0, 1].
type Box struct {
	BorderWidth  float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	Opacity      float64
	PaddingLeft  float64
	PaddingRight float64
	Width        float64
}

// pin writes every field of b as an inline value on el.
func (b Box) pin(el Element) {
	el.SetProperty(css.BorderWidth, css.Px(b.BorderWidth))
	el.SetProperty(css.Height, css.Px(b.Height))
	el.SetProperty(css.MarginLeft, css.Px(b.MarginLeft))
	el.SetProperty(css.MarginRight, css.Px(b.MarginRight))
	el.SetProperty(css.Opacity, css.FormatNumber(b.Opacity))
	el.SetProperty(css.PaddingLeft, css.Px(b.PaddingLeft))
	el.SetProperty(css.PaddingRight, css.Px(b.PaddingRight))
	el.SetProperty(css.Width, css.Px(b.Width))
}

func removeProperties(el Element, names ...string) {
	for _, name := range names {
		el.RemoveProperty(name)
	}
}
