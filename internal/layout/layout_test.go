package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/segue/internal/css"
	"github.com/five82/segue/internal/timeline"
	"github.com/five82/segue/internal/transition"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newDoc(t *testing.T) (*Document, *timeline.Timeline) {
	t.Helper()
	tl := timeline.New(epoch, 0)
	return New(Options{Clock: tl}), tl
}

func TestAutoSizeFromText(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hello\nworld!")

	b := doc.Computed(doc.Display())
	assert.Equal(t, 6.0, b.Width)
	assert.Equal(t, 2.0, b.Height)
	assert.Equal(t, 1.0, b.Opacity)

	c := doc.Computed(doc.Container())
	assert.Equal(t, 6.0, c.Width, "container wraps the display")
	assert.Equal(t, 2.0, c.Height)
	assert.Equal(t, 1.0, c.BorderWidth)
	assert.Equal(t, 1.0, c.PaddingLeft)
}

func TestPropertyTransitionInterpolates(t *testing.T) {
	doc, tl := newDoc(t)
	d := doc.Display()
	d.SetText("Hello")

	d.SetProperty(css.Transition, "width 100ms linear")
	d.SetProperty(css.Width, "15px")
	assert.Equal(t, 5.0, doc.Computed(d).Width, "starts from the rendered value")
	assert.True(t, doc.Animating())

	tl.Advance(50 * time.Millisecond)
	assert.InDelta(t, 10.0, doc.Computed(d).Width, 1e-9)

	tl.Advance(50 * time.Millisecond)
	assert.Equal(t, 15.0, doc.Computed(d).Width)
	assert.False(t, doc.Animating())
}

func TestPropertyWithoutTransitionJumps(t *testing.T) {
	doc, _ := newDoc(t)
	c := doc.Container()
	c.SetProperty(css.MarginLeft, "4px")
	assert.Equal(t, 4.0, doc.Computed(c).MarginLeft)
	assert.False(t, doc.Animating())

	c.SetProperty(css.Transition, "all 0ms")
	c.SetProperty(css.MarginLeft, "0px")
	assert.Equal(t, 0.0, doc.Computed(c).MarginLeft)
}

func TestRemovePropertyAnimatesBackToStylesheet(t *testing.T) {
	doc, tl := newDoc(t)
	c := doc.Container()
	c.SetProperty(css.PaddingLeft, "9px")
	c.SetProperty(css.Transition, "padding-left 80ms linear")
	c.RemoveProperty(css.PaddingLeft)

	assert.Equal(t, 9.0, doc.Computed(c).PaddingLeft)
	tl.Advance(40 * time.Millisecond)
	assert.InDelta(t, 5.0, doc.Computed(c).PaddingLeft, 1e-9)
	tl.Advance(40 * time.Millisecond)
	assert.Equal(t, 1.0, doc.Computed(c).PaddingLeft)
}

func TestTransitionDelay(t *testing.T) {
	doc, tl := newDoc(t)
	d := doc.Display()
	d.SetProperty(css.Transition, "opacity 100ms linear 50ms")
	d.SetProperty(css.Opacity, "0")

	tl.Advance(50 * time.Millisecond)
	assert.Equal(t, 1.0, doc.Computed(d).Opacity)
	tl.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.5, doc.Computed(d).Opacity, 1e-9)
}

func TestClearStyleDropsAnimations(t *testing.T) {
	doc, _ := newDoc(t)
	d := doc.Display()
	d.SetText("abc")
	d.SetProperty(css.Transition, "width 1s")
	d.SetProperty(css.Width, "40px")
	require.True(t, doc.Animating())

	d.ClearStyle()
	assert.False(t, doc.Animating())
	assert.Empty(t, d.Inline())
	assert.Equal(t, 3.0, doc.Computed(d).Width)
}

func TestInvalidTransitionIsIgnored(t *testing.T) {
	doc, _ := newDoc(t)
	d := doc.Display()
	d.SetProperty(css.Transition, "width banana")
	d.SetProperty(css.Width, "4px")
	assert.Equal(t, 4.0, doc.Computed(d).Width)
	assert.False(t, doc.Animating())
}

func TestNaturalIgnoresInline(t *testing.T) {
	doc, _ := newDoc(t)
	c := doc.Container()
	c.SetProperty(css.BorderWidth, "0px")
	c.SetProperty(css.Opacity, "0")

	n := doc.Natural(c)
	assert.Equal(t, 1.0, n.BorderWidth)
	assert.Equal(t, 1.0, n.Opacity)
	assert.Equal(t, 1.0, n.MarginRight)
}

func TestMaxWidthClamps(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hello")
	doc.Container().SetProperty(css.MaxWidth, "2px")
	assert.Equal(t, 2.0, doc.Computed(doc.Container()).Width)
}

func TestForeignElementHasZeroBox(t *testing.T) {
	doc, _ := newDoc(t)
	other, _ := newDoc(t)
	assert.Equal(t, transition.Box{}, doc.Computed(other.Display()))
	assert.Equal(t, transition.Box{}, doc.Natural(other.Display()))
}

func TestRenderAndWidth(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hello")

	assert.Equal(t, 11, doc.Width())
	out := doc.Render()
	assert.Contains(t, out, "Hello")
	assert.Equal(t, 11, lipgloss.Width(out))
	assert.Equal(t, 3, lipgloss.Height(out), "one row plus top and bottom border")

	doc.Container().SetProperty(css.Position, "absolute")
	doc.Container().SetProperty(css.Visibility, "hidden")
	assert.Equal(t, "", doc.Render())
	assert.Equal(t, 0, doc.Width())
}

func TestRenderClipsToDisplayWidth(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hello")
	doc.Display().SetProperty(css.Width, "2px")

	out := doc.Render()
	assert.Contains(t, out, "He")
	assert.NotContains(t, out, "Hel")
}

func TestRenderWithoutBorder(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hi")
	doc.Container().SetProperty(css.BorderWidth, "0px")
	assert.Equal(t, 1, lipgloss.Height(doc.Render()))
	assert.Equal(t, 6, doc.Width())
}

func TestPaletteFade(t *testing.T) {
	p := Palette{Text: "#ffffff", Surface: "#000000"}.withDefaults()
	assert.Equal(t, lipgloss.Color("#ffffff"), p.fade("#ffffff", 1))
	assert.Equal(t, lipgloss.Color("#000000"), p.fade("#ffffff", 0))
	assert.Equal(t, lipgloss.Color("not-hex"), p.fade("not-hex", 0.5))
}

func TestDescribe(t *testing.T) {
	doc, _ := newDoc(t)
	doc.Display().SetText("Hey")
	desc := doc.Describe()
	assert.True(t, strings.HasPrefix(desc, "box 3×1"), desc)
	assert.Contains(t, desc, "opacity 1")
}

// The controller and the document together: layout contracts and expands
// without jumps.
func TestControllerDrivesDocument(t *testing.T) {
	tl := timeline.New(epoch, timeline.DefaultFrameInterval)
	doc := New(Options{Clock: tl})
	ctrl := transition.New(transition.Options{
		Content:   "",
		Elements:  doc.Elements(),
		Geometry:  doc,
		Scheduler: tl,
	})
	require.Equal(t, 0, doc.Width(), "mounting empty hides the container")

	ctrl.SetContent("Short")
	assert.Equal(t, "Short", doc.Display().Text())
	assert.Equal(t, "Short", doc.Probe().Text())
	assert.Equal(t, 0, doc.Width(), "container starts fully zeroed")

	prev := doc.Width()
	for i := 0; i < 60; i++ {
		tl.Advance(25 * time.Millisecond)
		w := doc.Width()
		assert.GreaterOrEqual(t, w, prev, "width never jumps back while growing")
		prev = w
	}
	assert.False(t, ctrl.Busy())
	assert.Equal(t, 11, doc.Width())
	assert.Empty(t, doc.Container().Inline())
	assert.Empty(t, doc.Display().Inline())

	ctrl.SetContent("")
	prev = doc.Width()
	for i := 0; i < 50; i++ {
		tl.Advance(25 * time.Millisecond)
		w := doc.Width()
		assert.LessOrEqual(t, w, prev, "width never grows while shrinking")
		prev = w
	}
	assert.False(t, ctrl.Busy())
	assert.Equal(t, 0, doc.Width())
	assert.Equal(t, "", doc.Render())
}

func TestTextStyleReachesDisplayAndProbe(t *testing.T) {
	tl := timeline.New(epoch, 0)
	bracket := func(s string) string { return "[" + s + "]" }
	doc := New(Options{Clock: tl, TextStyle: lipgloss.NewStyle().Transform(bracket)})

	doc.Display().SetText("Hello")
	doc.Probe().SetText("Hello")
	assert.Equal(t, 7.0, doc.Computed(doc.Display()).Width)
	assert.Equal(t, 7.0, doc.Computed(doc.Probe()).Width)
	assert.Contains(t, doc.Render(), "[Hello]")
}

func newControlledDoc(t *testing.T, content string) (*timeline.Timeline, *Document, *transition.Controller) {
	t.Helper()
	tl := timeline.New(epoch, timeline.DefaultFrameInterval)
	doc := New(Options{Clock: tl})
	ctrl := transition.New(transition.Options{
		Content:   content,
		Elements:  doc.Elements(),
		Geometry:  doc,
		Scheduler: tl,
	})
	return tl, doc, ctrl
}

func TestControllerSwapResizesWithoutJumps(t *testing.T) {
	tl, doc, ctrl := newControlledDoc(t, "Short")
	require.Equal(t, 11, doc.Width())

	ctrl.SetContent("Very, very long text")
	assert.Equal(t, 11, doc.Width(), "width is pinned when the swap starts")

	prev := doc.Width()
	for i := 0; i < 80; i++ {
		tl.Advance(25 * time.Millisecond)
		w := doc.Width()
		assert.GreaterOrEqual(t, w, prev, "width never shrinks while growing")
		assert.LessOrEqual(t, w-prev, 2, "width moves in small steps")
		prev = w
	}
	assert.False(t, ctrl.Busy())
	assert.Equal(t, 26, doc.Width())
	assert.Equal(t, "Very, very long text", doc.Display().Text())
	assert.Empty(t, doc.Display().Inline())
	assert.Empty(t, doc.Container().Inline())
}

func TestControllerSwapInterruptedMidResize(t *testing.T) {
	tl, doc, ctrl := newControlledDoc(t, "Short")

	ctrl.SetContent("Very, very long text")
	tl.Advance(600 * time.Millisecond)
	require.Equal(t, transition.PhaseSwapResize, ctrl.Phase())
	mid := doc.Width()
	require.Greater(t, mid, 11)
	require.Less(t, mid, 26)

	ctrl.SetContent("Short")
	assert.Equal(t, map[string]string{css.Transition: "all ease 750ms"}, doc.Container().Inline(),
		"interrupting resets the container to the baseline")
	disp := doc.Display().Inline()
	assert.NotEqual(t, "0", disp[css.Opacity], "no faded-out opacity survives the interruption")

	for i := 0; i < 80; i++ {
		tl.Advance(25 * time.Millisecond)
	}
	assert.False(t, ctrl.Busy())
	assert.Zero(t, ctrl.Pending())
	assert.Equal(t, "Short", doc.Display().Text())
	assert.Equal(t, 11, doc.Width())
	assert.Empty(t, doc.Display().Inline())
	assert.Equal(t, map[string]string{css.Transition: "all ease 750ms"}, doc.Container().Inline())
}
