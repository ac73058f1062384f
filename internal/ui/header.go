package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	tc := m.stage.ctrl.Config()
	parts := []string{
		bg.Render("segue", styles.Logo),
		styles.StatusStyle(strings.ToLower(m.status.String())).Render(m.status.String()),
		bg.Render(fmt.Sprintf("fade %dms", tc.Fade.Milliseconds()), styles.MutedText),
		bg.Render(fmt.Sprintf("size %dms", tc.Size.Milliseconds()), styles.MutedText),
		bg.Render(tc.TimingFunction, styles.MutedText),
	}
	if shown := m.stage.ctrl.Shown(); shown != "" {
		parts = append(parts, bg.Render("“"+truncateMiddle(shown, 24)+"”", styles.Text))
	}
	if m.stage.ctrl.Busy() {
		parts = append(parts, bg.Render(m.stage.ctrl.Phase().String(), styles.WarningText.Bold(true)))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.
		Width(max(m.width, 1)).
		Render(bg.Join(parts, "  "))
}
