package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field identifies a focusable row of the form.
type field int

const (
	fieldFade field = iota
	fieldSize
	fieldShort
	fieldLong
	fieldToggle
	fieldCount
)

// form holds the demo inputs. Durations are typed in milliseconds.
type form struct {
	fade  textinput.Model
	size  textinput.Model
	short textinput.Model
	long  textarea.Model
	focus field
}

func newForm(fade, size time.Duration, short, long string) form {
	f := form{
		fade:  newInput(strconv.FormatInt(fade.Milliseconds(), 10), 6),
		size:  newInput(strconv.FormatInt(size.Milliseconds(), 10), 6),
		short: newInput(short, 0),
		long:  textarea.New(),
	}
	f.long.ShowLineNumbers = false
	f.long.Prompt = ""
	f.long.CharLimit = 0
	f.long.SetHeight(longTextHeight)
	f.long.SetWidth(inputWidth)
	f.long.SetValue(long)
	f.long.Blur()
	f.setFocus(fieldFade)
	return f
}

func newInput(value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = inputWidth
	ti.SetValue(value)
	return ti
}

// setFocus moves focus to fl and returns the cursor blink command.
func (f *form) setFocus(fl field) tea.Cmd {
	f.fade.Blur()
	f.size.Blur()
	f.short.Blur()
	f.long.Blur()
	f.focus = fl
	switch fl {
	case fieldFade:
		return f.fade.Focus()
	case fieldSize:
		return f.size.Focus()
	case fieldShort:
		return f.short.Focus()
	case fieldLong:
		return f.long.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// update routes msg to the focused input and reports which field changed
// value, or fieldCount when none did.
func (f *form) update(msg tea.Msg) (tea.Cmd, field) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldFade:
		before := f.fade.Value()
		f.fade, cmd = f.fade.Update(msg)
		if f.fade.Value() != before {
			return cmd, fieldFade
		}
	case fieldSize:
		before := f.size.Value()
		f.size, cmd = f.size.Update(msg)
		if f.size.Value() != before {
			return cmd, fieldSize
		}
	case fieldShort:
		before := f.short.Value()
		f.short, cmd = f.short.Update(msg)
		if f.short.Value() != before {
			return cmd, fieldShort
		}
	case fieldLong:
		before := f.long.Value()
		f.long, cmd = f.long.Update(msg)
		if f.long.Value() != before {
			return cmd, fieldLong
		}
	}
	return cmd, fieldCount
}

// setWidth fits the inputs to the terminal.
func (f *form) setWidth(total int) {
	w := total - labelWidth - 4
	if w > inputWidth*2 {
		w = inputWidth * 2
	}
	if w < 8 {
		w = 8
	}
	f.short.Width = w
	f.long.SetWidth(w)
}

// parseMillis reads a non-negative whole number of milliseconds.
func parseMillis(value string) (time.Duration, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number of milliseconds", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return time.Duration(n) * time.Millisecond, nil
}

// renderForm renders the input rows and the toggle button.
func (m Model) renderForm(styles Styles) string {
	rows := []string{
		m.formRow(styles, fieldFade, "Fade Duration", m.form.fade.View()),
		m.formRow(styles, fieldSize, "Size Duration", m.form.size.View()),
		m.formRow(styles, fieldShort, "Short Text", m.form.short.View()),
		m.formRow(styles, fieldLong, "Long Text", m.form.long.View()),
	}

	button := styles.Button
	if m.form.focus == fieldToggle {
		button = styles.FocusedButton
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Label.Render(""), button.Render("Toggle")))

	if m.formErr != "" {
		rows = append(rows, styles.DangerText.Render(m.formErr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) formRow(styles Styles, fl field, label, input string) string {
	ls := styles.Label
	if m.form.focus == fl {
		ls = styles.FocusedLabel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, ls.Render(label), input)
}
