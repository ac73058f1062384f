package ui

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/segue/internal/config"
	"github.com/five82/segue/internal/prefs"
	"github.com/five82/segue/internal/timeline"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *zap.Logger

	// FixedFade and FixedSize keep the Config durations over saved
	// preferences, e.g. when they came from command-line flags.
	FixedFade bool
	FixedSize bool

	// Rand picks the next status; nil uses a time-seeded source.
	Rand *rand.Rand
	// Now is the wall clock; nil uses time.Now.
	Now  func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg       config.Config
	prefsPath string
	prefs     prefs.Prefs
	log       *zap.Logger
	now       func() time.Time
	rng       *rand.Rand

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	ticking  bool

	// Demo state
	form    form
	formErr string
	status  Status
	stage   *stage
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = timeline.DefaultFrameInterval
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	p := opts.Prefs
	if p == (prefs.Prefs{}) {
		p = prefs.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	tc := cfg.Transition()
	if p.FadeMS > 0 && !opts.FixedFade {
		tc.Fade = time.Duration(p.FadeMS) * time.Millisecond
	}
	if p.SizeMS > 0 && !opts.FixedSize {
		tc.Size = time.Duration(p.SizeMS) * time.Millisecond
	}

	theme := GetTheme(p.Theme)
	m := Model{
		cfg:       cfg,
		prefsPath: prefsPath,
		prefs:     p,
		log:       log,
		now:       now,
		rng:       rng,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		form:      newForm(tc.Fade, tc.Size, p.ShortText, p.LongText),
		status:    StatusShort,
	}
	m.stage = newStage(now(), cfg.FrameInterval, tc, m.content(), theme.Palette(), log)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form.setWidth(msg.Width)
		m.ready = true
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))
	}

	// Cursor blink and other input-internal messages.
	cmd, _ := m.form.update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.stage.doc.SetPalette(m.theme.Palette())
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.toggle()

	case key.Matches(msg, m.keys.Next):
		return m, m.form.next()

	case key.Matches(msg, m.keys.Prev):
		return m, m.form.prev()
	}

	if m.form.focus == fieldToggle {
		if key.Matches(msg, m.keys.Confirm) {
			return m.toggle()
		}
		return m, nil
	}

	cmd, changed := m.form.update(msg)
	if changed == fieldCount {
		return m, cmd
	}
	return m.applyField(changed, cmd)
}

// applyField pushes an edited input into the controller and prefs.
func (m Model) applyField(changed field, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.formErr = ""
	switch changed {
	case fieldFade, fieldSize:
		input, name := m.form.fade, "fade duration"
		if changed == fieldSize {
			input, name = m.form.size, "size duration"
		}
		d, err := parseMillis(input.Value())
		if err != nil {
			// Keep the last valid value until the input parses again.
			m.formErr = name + ": " + err.Error()
			return m, cmd
		}
		tc := m.stage.ctrl.Config()
		if changed == fieldFade {
			tc.Fade = d
			m.prefs.FadeMS = d.Milliseconds()
		} else {
			tc.Size = d
			m.prefs.SizeMS = d.Milliseconds()
		}
		m.stage.ctrl.SetConfig(tc)
		m.log.Debug("transition config changed",
			zap.Duration("fade", tc.Fade),
			zap.Duration("size", tc.Size),
		)

	case fieldShort:
		m.prefs.ShortText = m.form.short.Value()
		m, cmd = m.refreshContent(cmd)

	case fieldLong:
		m.prefs.LongText = m.form.long.Value()
		m, cmd = m.refreshContent(cmd)
	}
	m.savePrefs()
	return m, cmd
}

// toggle moves to a random other status.
func (m Model) toggle() (tea.Model, tea.Cmd) {
	from := m.status
	m.status = m.status.next(m.rng)
	m.log.Info("status toggled",
		zap.Stringer("from", from),
		zap.Stringer("to", m.status),
	)
	return m.refreshContent(nil)
}

// refreshContent hands the text for the current status to the controller
// and starts the frame loop when something needs animating.
func (m Model) refreshContent(cmd tea.Cmd) (Model, tea.Cmd) {
	// Bring the virtual clock up to date so new timers start from now.
	m.stage.advance(m.now())
	m.stage.ctrl.SetContent(m.content())
	if m.ticking || !m.stage.active() {
		return m, cmd
	}
	m.ticking = true
	return m, tea.Batch(cmd, frameCmd(m.stage.tl.FrameInterval()))
}

// content is the text selected by the current status.
func (m Model) content() string {
	switch m.status {
	case StatusShort:
		return m.form.short.Value()
	case StatusLong:
		return m.form.long.Value()
	default:
		return ""
	}
}

// handleFrame advances the timeline and keeps ticking while anything moves.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	m.stage.advance(t)
	if !m.stage.active() {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, frameCmd(m.stage.tl.FrameInterval())
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderForm(styles))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.renderStage(styles))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stage.ctrl.Close()
	}
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
