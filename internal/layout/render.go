package layout

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/segue/internal/css"
)

// Palette holds the colours Render blends between.
type Palette struct {
	Text    string
	Border  string
	Surface string
}

func (p Palette) withDefaults() Palette {
	if p.Text == "" {
		p.Text = "#f8f8f2"
	}
	if p.Border == "" {
		p.Border = "#bd93f9"
	}
	if p.Surface == "" {
		p.Surface = "#282a36"
	}
	return p
}

// fade blends fg toward the surface colour; opacity 1 keeps fg.
func (p Palette) fade(fg string, opacity float64) lipgloss.Color {
	front, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	back, err := colorful.Hex(p.Surface)
	if err != nil {
		return lipgloss.Color(fg)
	}
	opacity = math.Max(0, math.Min(1, opacity))
	return lipgloss.Color(back.BlendLab(front, opacity).Clamped().Hex())
}

func cells(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

// Width returns the number of columns the container occupies in flow,
// margins included.
func (d *Document) Width() int {
	c := d.container
	if c.outOfFlow() {
		return 0
	}
	b := d.Computed(c)
	outer := cells(b.MarginLeft) + cells(b.PaddingLeft) + cells(b.Width) + cells(b.PaddingRight) + cells(b.MarginRight)
	if cells(b.BorderWidth) > 0 {
		outer += 2
	}
	return outer
}

// Render draws the container and its display at the current time. A hidden
// or out-of-flow container renders as an empty string.
func (d *Document) Render() string {
	c := d.container
	if c.outOfFlow() || c.hidden() {
		return ""
	}

	box := d.Computed(c)
	disp := d.Computed(d.display)

	width := cells(box.Width)
	rows := cells(box.Height)
	textWidth := min(cells(disp.Width), width)
	textRows := min(cells(disp.Height), rows)

	opacity := box.Opacity * disp.Opacity
	fg := d.palette.fade(d.palette.Text, opacity)
	textStyle := d.textStyle.Foreground(fg).Inline(true)

	var lines []string
	if !d.display.hidden() {
		lines = strings.Split(d.display.text, "\n")
	}
	body := make([]string, rows)
	for i := 0; i < rows; i++ {
		line := ""
		if i < textRows && i < len(lines) && textWidth > 0 {
			line = ansi.Truncate(textStyle.Render(lines[i]), textWidth, "")
		}
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		body[i] = line
	}

	style := lipgloss.NewStyle().
		PaddingLeft(cells(box.PaddingLeft)).
		PaddingRight(cells(box.PaddingRight)).
		MarginLeft(cells(box.MarginLeft)).
		MarginRight(cells(box.MarginRight))
	if cells(box.BorderWidth) > 0 {
		style = style.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(d.palette.fade(d.palette.Border, box.Opacity))
	}
	return style.Render(strings.Join(body, "\n"))
}

// Describe summarises the inline state of the container and display, for
// status lines and logs.
func (d *Document) Describe() string {
	b := d.Computed(d.container)
	disp := d.Computed(d.display)
	return strings.Join([]string{
		"box " + css.FormatNumber(b.Width) + "×" + css.FormatNumber(b.Height),
		"pad " + css.Px(b.PaddingLeft),
		"border " + css.Px(b.BorderWidth),
		"text " + css.Px(disp.Width),
		"opacity " + css.FormatNumber(b.Opacity*disp.Opacity),
	}, "  ")
}
