package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-aimlab/internal/config"
	"github.com/vovakirdan/tui-aimlab/internal/core"
	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
)

// Rows below the screen buffer, taken by the help footer.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Runtime    core.RuntimeConfig
	Aim        config.AimConfig
	Difficulty aim.DifficultyID // Overrides the configured mode when set
	Store      aim.BestScoreStore
	Renderer   *lipgloss.Renderer // nil renders for the local terminal
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one aim trainer player.
type Model struct {
	ctrl      *aim.Controller
	presenter *ScreenPresenter
	screen    *core.Screen
	palette   Palette
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	logger    *log.Logger

	lastTick   time.Time
	lastPhase  aim.Phase
	cursorCol  int
	cursorRow  int
	confirming bool
	quitting   bool
}

// NewModel creates a model in the menu, sized to the runtime config.
func NewModel(o Options) Model {
	cfg := o.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	presenter := NewScreenPresenter(o.Aim.Display.CellWidthPx, o.Aim.Display.CellHeightPx, o.Aim.Display.MissFlash())
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0))
	presenter.SetPlayArea(screen.Width(), screen.Height()-hudRows)

	opts := aim.OptionsFromConfig(o.Aim.Session, cfg.Seed)
	if o.Difficulty != "" {
		opts.Difficulty = o.Difficulty
	}

	m := Model{
		ctrl:      aim.NewController(opts, presenter, o.Store),
		presenter: presenter,
		screen:    screen,
		palette:   NewPalette(o.Renderer),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		config:    cfg,
		logger:    logger,
		lastPhase: aim.PhaseMenu,
	}
	m.centerCursor()
	m.keys.update(m.ctrl.Phase(), m.confirming)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.handleResize(msg)
	case TickMsg:
		m.handleTick(time.Time(msg))
		cmd = tickCmd(m.config.TickRate)
	}

	m.logTransition()
	m.keys.update(m.ctrl.Phase(), m.confirming)
	return m, cmd
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirming = false
		m.ctrl.OnExitRequested()
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = false

	case key.Matches(msg, m.keys.Play):
		m.ctrl.OnPlayRequested()
	case key.Matches(msg, m.keys.ToMenu):
		m.ctrl.OnRestartRequested()
	case key.Matches(msg, m.keys.Finish):
		m.confirming = true
	case key.Matches(msg, m.keys.Abort):
		m.ctrl.OnAbortRequested()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Fire):
		m.fire(m.cursorCol, m.cursorRow)
	}
	return nil
}

// handleMouse moves the crosshair with the pointer and fires on left click.
// A click on the menu starts a session.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.confirming {
		return
	}
	col, row := msg.X, msg.Y-hudRows

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.presenter.InPlayArea(col, row) {
			m.cursorCol, m.cursorRow = col, row
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch m.ctrl.Phase() {
		case aim.PhaseMenu:
			m.ctrl.OnPlayRequested()
		case aim.PhaseActive:
			if m.presenter.InPlayArea(col, row) {
				m.cursorCol, m.cursorRow = col, row
				m.fire(col, row)
			}
		}
	}
}

// fire resolves a shot at a play-area cell into a hit or a miss.
func (m *Model) fire(col, row int) {
	if m.ctrl.Phase() != aim.PhaseActive {
		return
	}
	x, y := m.presenter.CellCenter(col, row)
	if id, ok := m.ctrl.TargetAt(x, y); ok {
		m.ctrl.OnTargetClicked(id)
		return
	}
	m.ctrl.OnEmptyAreaClicked()
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.presenter.SetPlayArea(m.screen.Width(), m.screen.Height()-hudRows)
	m.help.Width = msg.Width

	m.moveCursor(0, 0)
	m.ctrl.OnViewportResized()
}

// handleTick feeds the time since the previous frame into the session.
// The session clock stands still while the exit confirmation is open.
func (m *Model) handleTick(now time.Time) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return
	}
	dt := max(now.Sub(m.lastTick), 0)
	m.lastTick = now

	m.presenter.Advance(dt)
	if !m.confirming {
		m.ctrl.Advance(dt)
	}
}

func (m *Model) moveCursor(dx, dy int) {
	cols, rows := m.presenter.PlayAreaCells()
	m.cursorCol = core.Clamp(m.cursorCol+dx, 0, max(cols-1, 0))
	m.cursorRow = core.Clamp(m.cursorRow+dy, 0, max(rows-1, 0))
}

func (m *Model) centerCursor() {
	cols, rows := m.presenter.PlayAreaCells()
	m.cursorCol, m.cursorRow = cols/2, rows/2
}

// logTransition logs session starts and ends once each.
func (m *Model) logTransition() {
	phase := m.ctrl.Phase()
	if phase == m.lastPhase {
		return
	}
	m.lastPhase = phase

	switch phase {
	case aim.PhaseActive:
		m.confirming = false
		m.centerCursor()
		m.logger.Info("session started", "difficulty", m.ctrl.State().Difficulty)
	case aim.PhaseEnded:
		m.confirming = false
		stats := m.ctrl.Stats()
		m.logger.Info("session ended",
			"reason", m.ctrl.LastEndReason(),
			"score", m.ctrl.State().Score,
			"best", m.ctrl.BestScore(),
			"hits", stats.Hits,
			"misses", stats.Misses,
		)
	case aim.PhaseMenu:
		m.confirming = false
		m.logger.Debug("back to menu")
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.ctrl.State()
	m.presenter.Render(m.screen, frameInfo{
		profile:    aim.Profile(state.Difficulty),
		duration:   m.ctrl.Options().SessionDuration,
		stats:      m.ctrl.Stats(),
		reason:     m.ctrl.LastEndReason(),
		cursorCol:  m.cursorCol,
		cursorRow:  m.cursorRow,
		confirming: m.confirming,
	})

	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Controller exposes the session controller driven by this model.
func (m Model) Controller() *aim.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program with the given options.
func Run(o Options) error {
	p := tea.NewProgram(
		NewModel(o),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
