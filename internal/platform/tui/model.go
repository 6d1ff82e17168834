package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
	"github.com/vovakirdan/mazewalk/internal/view"
	"github.com/vovakirdan/mazewalk/internal/world"
)

// Mode selects what the app shows.
type Mode int

const (
	ModeMaze Mode = iota // Walking the maze; the default
	ModeMenu             // Menu scene and layout picker
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMaze:
		return "maze"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// hudHeight is the number of rows below the view.
const hudHeight = 1

// Options configures a Model.
type Options struct {
	Layout   world.Layout
	Config   config.MazeConfig
	Settings core.Settings
	Runtime  core.RuntimeConfig
	Store    *storage.Store // Optional; runs and settings are not saved without it
	Profile  string         // Settings and runs are stored under this name
	Logger   *log.Logger
}

// Model is the Bubble Tea model for the maze walker.
type Model struct {
	cfg     config.MazeConfig
	store   *storage.Store
	profile string
	logger  *log.Logger
	runtime core.RuntimeConfig

	layout    world.Layout
	grid      *world.Grid
	session   *maze.Session
	presenter *TerminalPresenter

	settings core.Settings
	dirty    bool // Settings changed since start
	mode     Mode
	pointer  core.Pointer

	screen *core.Screen
	menu   view.MenuScene
	picker LayoutPicker
	debug  DebugPanel
	keys   KeyMap
	help   help.Model

	ringBell bool
	quitting bool
}

// NewModel creates the app and enters the maze.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	profile := opts.Profile
	if profile == "" {
		profile = "local"
	}
	settings := opts.Settings.Clamp()

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		cfg:       opts.Config,
		store:     opts.Store,
		profile:   profile,
		logger:    logger,
		runtime:   opts.Runtime,
		presenter: NewTerminalPresenter(settings.FieldOfView, opts.Config.Feedback.Bell, logger),
		settings:  settings,
		mode:      ModeMaze,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-hudHeight),
		debug:     NewDebugPanel(),
		keys:      DefaultKeyMap(),
		help:      h,
	}
	m.loadLayout(opts.Layout)
	m.session.Enter()
	return m
}

// loadLayout builds the grid and a fresh session for a layout.
func (m *Model) loadLayout(l world.Layout) {
	m.layout = l
	m.grid = world.NewGrid(l)
	m.session = maze.NewSession(
		m.cfg.SessionConfig(),
		m.grid,
		m.grid.Start(m.cfg.Maze.EyeHeight),
		m.presenter,
		m.logger.With("layout", l.ID),
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Sample the middle of the cell so the three regions split evenly.
		m.pointer = core.PointerAt(float64(msg.X)+0.5, float64(msg.Y)+0.5)
		return m, nil

	case tea.BlurMsg:
		m.pointer = core.NoPointer
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit

	case core.ActionToggleMode:
		m.toggleMode()

	case core.ActionDebug:
		m.debug.Toggle()

	case core.ActionUp:
		if m.debug.Visible {
			m.debug.Move(-1)
		} else if m.mode == ModeMenu {
			m.picker.Up()
		}

	case core.ActionDown:
		if m.debug.Visible {
			m.debug.Move(1)
		} else if m.mode == ModeMenu {
			m.picker.Down()
		}

	case core.ActionDecrease, core.ActionIncrease:
		if !m.debug.Visible {
			break
		}
		dir := 1
		if action == core.ActionDecrease {
			dir = -1
		}
		s, toggle := m.debug.Adjust(m.settings, dir)
		if toggle {
			m.toggleMode()
		} else {
			m.applySettings(s)
		}

	case core.ActionReset:
		m.applySettings(core.DefaultSettings())

	default:
		if m.mode == ModeMenu && key.Matches(msg, m.keys.Select) {
			m.selectLayout()
		}
	}

	return m, nil
}

// handleTick advances whichever mode is showing by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.runtime.TickDelta()

	switch m.mode {
	case ModeMaze:
		err := m.session.Tick(dt, m.pointer, float64(m.runtime.ScreenW), m.settings)
		if err != nil {
			m.logger.Error("tick failed", "err", err)
		}
	case ModeMenu:
		m.menu.Advance(dt)
	}

	m.presenter.Advance(dt)
	m.ringBell = m.presenter.TakeBell()

	return m, tickCmd(m.runtime.TickRate)
}

// applySettings stores clamped settings and logs the change.
func (m *Model) applySettings(s core.Settings) {
	s = s.Clamp()
	if s == m.settings {
		return
	}
	m.logger.Info("settings changed",
		"turn_speed", s.TurnSpeed,
		"walk_speed", s.WalkSpeed,
		"field_of_view", s.FieldOfView,
	)
	m.settings = s
	m.dirty = true
}

// toggleMode switches between the maze and the menu.
func (m *Model) toggleMode() {
	if m.mode == ModeMaze {
		m.leaveMaze()
		m.mode = ModeMenu
		m.menu.Reset()
		m.picker = NewLayoutPicker(m.layout.ID)
		return
	}
	m.mode = ModeMaze
	m.session.Enter()
}

// selectLayout walks the layout under the picker cursor.
func (m *Model) selectLayout() {
	item, ok := m.picker.Selected()
	if !ok {
		return
	}
	if item.LayoutID != m.layout.ID {
		l, err := registry.Create(item.LayoutID)
		if err != nil {
			m.logger.Error("cannot load layout", "layout", item.LayoutID, "err", err)
			return
		}
		m.loadLayout(l)
	}
	m.mode = ModeMaze
	m.session.Enter()
}

// leaveMaze exits the session and records the run.
func (m *Model) leaveMaze() {
	if !m.session.Active() {
		return
	}
	stats := m.session.Exit()
	if m.store == nil || stats.Ticks == 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		LayoutID:    m.layout.ID,
		Profile:     m.profile,
		Ticks:       stats.Ticks,
		Seconds:     stats.Elapsed,
		Turns:       stats.Turns,
		CellsWalked: stats.CellsWalked,
		Blocked:     stats.Blocked,
		Footsteps:   int(stats.Footsteps),
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// shutdown records the run in progress and persists changed settings.
func (m *Model) shutdown() {
	m.leaveMaze()
	if m.store == nil || !m.dirty {
		return
	}
	if err := m.store.SaveSettings(m.profile, m.settings); err != nil {
		m.logger.Warn("could not save settings", "err", err)
		return
	}
	m.dirty = false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var side []string
	if m.debug.Visible {
		side = append(side, m.debug.View(m.mode, m.settings))
	}
	if m.mode == ModeMenu {
		side = append(side, m.picker.View())
	}
	sidePanel := lipgloss.JoinVertical(lipgloss.Left, side...)

	viewW := m.runtime.ScreenW
	if len(side) > 0 {
		viewW -= lipgloss.Width(sidePanel)
	}
	m.screen.Resize(viewW, m.runtime.ScreenH-hudHeight)

	switch m.mode {
	case ModeMaze:
		if pose, ok := m.session.Pose(); ok {
			view.FirstPerson{Grid: m.grid}.Render(m.screen, pose, m.presenter.FieldOfView())
		} else {
			m.screen.Clear()
		}
	case ModeMenu:
		m.menu.Render(m.screen)
	}

	body := RenderScreen(m.screen)
	if len(side) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, sidePanel)
	}

	out := body + "\n" + m.hudLine()
	if m.ringBell {
		out = "\a" + out
	}
	return out
}

// hudLine renders the status line under the view.
func (m Model) hudLine() string {
	hud := colorStyles[core.ColorHUD]
	caption := colorStyles[core.ColorCaption]

	var parts []string
	if m.presenter.LoopPlaying(maze.LoopMusic) {
		parts = append(parts, "♫")
	}
	parts = append(parts, m.layout.Name)

	if m.mode == ModeMaze {
		if pose, ok := m.session.Pose(); ok {
			cell := m.grid.CellAt(pose.Position)
			parts = append(parts,
				view.Heading(pose.Yaw),
				fmt.Sprintf("(%d,%d)", cell.Col, cell.Row),
			)
		}
		parts = append(parts, fmt.Sprintf("steps %d", m.session.Snapshot().Steps))
	} else {
		parts = append(parts, "enter: walk layout")
	}

	line := hud.Render(strings.Join(parts, "  "))
	if m.presenter.LoopPlaying(maze.LoopTurn) {
		line += "  " + caption.Render("~whoosh~")
	}
	if captions := m.presenter.Captions(); len(captions) > 0 {
		line += "  " + caption.Render(strings.Join(captions, " "))
	}

	return line + "  " + m.help.View(m.keys)
}

// Mode returns the mode being shown.
func (m Model) Mode() Mode {
	return m.mode
}

// Layout returns the layout being walked.
func (m Model) Layout() world.Layout {
	return m.layout
}

// Settings returns the current settings.
func (m Model) Settings() core.Settings {
	return m.settings
}

// Session returns the maze session.
func (m Model) Session() *maze.Session {
	return m.session
}

// Pointer returns the pointer sampled on the next tick.
func (m Model) Pointer() core.Pointer {
	return m.pointer
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer position without buttons held
		tea.WithReportFocus(),    // Focus loss hides the pointer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	}
	return err
}
