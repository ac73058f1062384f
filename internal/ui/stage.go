package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/segue/internal/layout"
	"github.com/five82/segue/internal/timeline"
	"github.com/five82/segue/internal/transition"
)

// Status selects which text the stage shows.
type Status int

const (
	StatusEmpty Status = iota
	StatusShort
	StatusLong
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "Empty"
	case StatusShort:
		return "Short"
	case StatusLong:
		return "Long"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// next picks one of the two other statuses with equal odds.
func (s Status) next(rng *rand.Rand) Status {
	return Status((int(s) + 1 + rng.Intn(2)) % 3)
}

// phaseEvent is one entry of the phase history.
type phaseEvent struct {
	at    time.Duration
	phase transition.Phase
}

// stage owns the virtual timeline, the document and the controller that
// animates it. It is shared by every copy of the Model.
type stage struct {
	start   time.Time
	tl      *timeline.Timeline
	doc     *layout.Document
	ctrl    *transition.Controller
	history []phaseEvent
}

func newStage(start time.Time, frame time.Duration, cfg transition.Config, content string, palette layout.Palette, log *zap.Logger) *stage {
	s := &stage{start: start}
	s.tl = timeline.New(start, frame)
	s.doc = layout.New(layout.Options{
		Clock:     s.tl,
		TextStyle: lipgloss.NewStyle().Bold(true),
		Palette:   palette,
		Logger:    log,
	})
	s.ctrl = transition.New(transition.Options{
		Content:   content,
		Config:    cfg,
		Elements:  s.doc.Elements(),
		Geometry:  s.doc,
		Scheduler: s.tl,
		Logger:    log,
		OnPhase:   s.record,
	})
	return s
}

func (s *stage) record(p transition.Phase) {
	s.history = append(s.history, phaseEvent{at: s.tl.Now().Sub(s.start), phase: p})
	if over := len(s.history) - PhaseHistoryLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

// advance runs every callback due by now.
func (s *stage) advance(now time.Time) int {
	return s.tl.AdvanceTo(now)
}

// active reports whether frames are still needed.
func (s *stage) active() bool {
	return s.ctrl.Busy() || s.tl.Pending() > 0 || s.doc.Animating()
}

// renderStage renders the status line and the document between two runs of
// filler text so the reflow around it is visible.
func (m Model) renderStage(styles Styles) string {
	s := m.stage
	status := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Text.Render("Status: "),
		styles.StatusStyle(strings.ToLower(m.status.String())).Render(m.status.String()),
		styles.MutedText.Render(fmt.Sprintf("  phase %s  pending %d", s.ctrl.Phase(), s.ctrl.Pending())),
	)

	article := lipgloss.NewStyle().Height(3).Render(lipgloss.JoinHorizontal(lipgloss.Center,
		styles.MutedText.Render("before "),
		s.doc.Render(),
		styles.MutedText.Render(" after"),
	))

	rows := []string{status, article, styles.FaintText.Render(s.doc.Describe())}
	if m.width >= LayoutCompactWidth && len(s.history) > 0 {
		parts := make([]string, 0, len(s.history))
		for _, ev := range s.history {
			parts = append(parts, fmt.Sprintf("%s@%dms", ev.phase, ev.at.Milliseconds()))
		}
		rows = append(rows, styles.FaintText.Render(strings.Join(parts, " › ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
