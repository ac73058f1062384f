package layout

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/segue/internal/css"
)

// Rules is a declared stylesheet: property name to value.
type Rules map[string]string

// Clone returns a copy of r.
func (r Rules) Clone() Rules {
	out := make(Rules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// propertyAnimation interpolates one numeric property.
type propertyAnimation struct {
	from, to float64
	start    time.Time
	duration time.Duration
	ease     css.Easing
}

func (a propertyAnimation) at(now time.Time) (float64, bool) {
	if now.Before(a.start) {
		return a.from, true
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		return a.to, false
	}
	p := a.ease(float64(elapsed) / float64(a.duration))
	return a.from + (a.to-a.from)*p, true
}

// Element is a styled node of a Document.
type Element struct {
	doc         *Document
	name        string
	rules       Rules
	inline      map[string]string
	transitions css.TransitionList
	anims       map[string]propertyAnimation
	text        string
}

func newElement(doc *Document, name string, rules Rules) *Element {
	return &Element{
		doc:    doc,
		name:   name,
		rules:  rules.Clone(),
		inline: map[string]string{},
		anims:  map[string]propertyAnimation{},
	}
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// Property returns the inline value of name, or "" when unset.
func (e *Element) Property(name string) string {
	return e.inline[name]
}

// Inline returns a copy of the inline style.
func (e *Element) Inline() map[string]string {
	out := make(map[string]string, len(e.inline))
	for k, v := range e.inline {
		out[k] = v
	}
	return out
}

// SetProperty writes an inline property, starting a transition when one
// applies.
func (e *Element) SetProperty(name, value string) {
	if name == css.Transition {
		e.inline[name] = value
		e.parseTransitions()
		return
	}
	e.change(name, func() { e.inline[name] = value })
}

// RemoveProperty drops an inline property, reverting to the stylesheet.
func (e *Element) RemoveProperty(name string) {
	if _, ok := e.inline[name]; !ok {
		return
	}
	if name == css.Transition {
		delete(e.inline, name)
		e.parseTransitions()
		return
	}
	e.change(name, func() { delete(e.inline, name) })
}

// ClearStyle drops every inline property and running animation.
func (e *Element) ClearStyle() {
	e.inline = map[string]string{}
	e.anims = map[string]propertyAnimation{}
	e.parseTransitions()
}

func (e *Element) parseTransitions() {
	value := e.specified(css.Transition)
	list, err := css.ParseTransition(value)
	if err != nil {
		e.doc.log.Warn("ignoring transition", zap.String("element", e.name), zap.Error(err))
		list = nil
	}
	e.transitions = list
}

func (e *Element) change(prop string, mutate func()) {
	if !css.IsAnimatable(prop) {
		mutate()
		return
	}
	now := e.doc.clock.Now()
	from := e.value(prop, now)
	mutate()
	to := e.resolve(prop, true)

	spec, ok := e.transitions.For(prop)
	if !ok || spec.Duration <= 0 || from == to {
		delete(e.anims, prop)
		return
	}
	e.anims[prop] = propertyAnimation{
		from:     from,
		to:       to,
		start:    now.Add(spec.Delay),
		duration: spec.Duration,
		ease:     spec.Timing,
	}
}

// specified returns the inline value, else the declared one.
func (e *Element) specified(prop string) string {
	if v, ok := e.inline[prop]; ok {
		return v
	}
	return e.rules[prop]
}

func (e *Element) declared(prop string, withInline bool) string {
	if withInline {
		return e.specified(prop)
	}
	return e.rules[prop]
}

// value is the rendered value of prop at now.
func (e *Element) value(prop string, now time.Time) float64 {
	if a, ok := e.anims[prop]; ok {
		v, running := a.at(now)
		if running {
			return v
		}
		delete(e.anims, prop)
	}
	return e.resolve(prop, true)
}

// resolve computes prop ignoring running animations.
func (e *Element) resolve(prop string, withInline bool) float64 {
	raw := e.declared(prop, withInline)
	switch prop {
	case css.Width, css.Height:
		if v, ok := css.ParseLength(raw); ok {
			return math.Max(v, 0)
		}
		return e.doc.autoSize(e, prop, withInline)
	case css.MaxWidth:
		if v, ok := css.ParseLength(raw); ok {
			return math.Max(v, 0)
		}
		return math.Inf(1)
	case css.Opacity:
		if v, ok := css.ParseValue(prop, raw); ok {
			return v
		}
		return 1
	default:
		if v, ok := css.ParseLength(raw); ok {
			return math.Max(v, 0)
		}
		return 0
	}
}

func (e *Element) animating(now time.Time) bool {
	for _, a := range e.anims {
		if _, running := a.at(now); running {
			return true
		}
	}
	return false
}

func (e *Element) hidden() bool {
	return strings.EqualFold(e.specified(css.Visibility), "hidden")
}

func (e *Element) outOfFlow() bool {
	switch strings.ToLower(e.specified(css.Position)) {
	case "absolute", "fixed":
		return true
	}
	return false
}

// measure returns the natural text size after applying style.
func measure(text string, style lipgloss.Style) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w := lipgloss.Width(style.Render(line))
		if float64(w) > width {
			width = float64(w)
		}
	}
	return width, float64(len(lines))
}
