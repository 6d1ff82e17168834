package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazewalk/internal/config"
	"github.com/vovakirdan/mazewalk/internal/core"
	"github.com/vovakirdan/mazewalk/internal/maze"
	"github.com/vovakirdan/mazewalk/internal/storage"
	"github.com/vovakirdan/mazewalk/internal/world"
	"github.com/vovakirdan/mazewalk/internal/world/levels"
)

func corridorLayout(t *testing.T) world.Layout {
	t.Helper()
	l, err := world.ParseRows([]string{
		"###",
		"#.#",
		"#.#",
		"#^#",
		"###",
	})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	l.ID = "corridor"
	l.Name = "Corridor"
	return l
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Layout:   corridorLayout(t),
		Config:   config.DefaultMazeConfig(),
		Settings: core.DefaultSettings(),
		Runtime:  core.DefaultConfig(),
		Store:    store,
		Profile:  "tester",
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestNewModelEntersMaze(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Mode() != ModeMaze {
		t.Errorf("Mode() = %v, expected maze", m.Mode())
	}
	if !m.Session().Active() {
		t.Error("Session should be active after NewModel")
	}
	if m.Pointer().Present {
		t.Error("Pointer should start absent")
	}
}

func TestModelMouseCommitsTurn(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionMotion})
	if !m.Pointer().Present {
		t.Fatal("Pointer should be present after a mouse event")
	}

	m = tick(t, m, 1)
	if got := m.Session().State().PendingTurn; got != 90 {
		t.Errorf("PendingTurn = %v, expected 90", got)
	}
}

func TestModelBlurHidesPointer(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionMotion})
	m = update(t, m, tea.BlurMsg{})

	if m.Pointer().Present {
		t.Error("Pointer should be absent after focus loss")
	}
}

func TestModelCenterPointerWalks(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionMotion})
	m = tick(t, m, 90)

	pose, ok := m.Session().Pose()
	if !ok {
		t.Fatal("Pose() not available")
	}
	// Two open cells ahead of the start, then a wall.
	want := core.V3(3, 1, 3)
	if !pose.Position.ApproxEqual(want, 1e-6) {
		t.Errorf("Position = %+v, expected %+v", pose.Position, want)
	}
}

func TestModelToggleMode(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != ModeMenu {
		t.Fatalf("Mode() = %v, expected menu", m.Mode())
	}
	if m.Session().Active() {
		t.Error("Session should be inactive in the menu")
	}

	// The menu scene keeps animating while the maze is gone.
	m = tick(t, m, 3)

	m = update(t, m, runeKey('m'))
	if m.Mode() != ModeMaze {
		t.Fatalf("Mode() = %v, expected maze", m.Mode())
	}
	if !m.Session().Active() {
		t.Error("Session should be active again")
	}
}

func TestModelDebugAdjustsSettings(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, runeKey('d'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown}) // walk
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Settings().WalkSpeed; got != 1.1 {
		t.Errorf("WalkSpeed = %v, expected 1.1", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown}) // turn
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Settings().TurnSpeed; got != 0 {
		t.Errorf("TurnSpeed = %v, expected 0", got)
	}

	m = update(t, m, runeKey('r'))
	if m.Settings() != core.DefaultSettings() {
		t.Errorf("Settings() = %+v, expected defaults after reset", m.Settings())
	}
}

func TestModelDebugModeRowToggles(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, runeKey('d'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected the mode row to switch to menu", m.Mode())
	}
}

func TestModelArrowsIgnoredWithoutDebug(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.Settings() != core.DefaultSettings() {
		t.Errorf("Settings() = %+v, expected no change with the panel hidden", m.Settings())
	}
}

func TestModelSelectLayout(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	item, ok := m.picker.Selected()
	if !ok {
		t.Fatal("Picker has no layouts")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != ModeMaze {
		t.Fatalf("Mode() = %v, expected maze after select", m.Mode())
	}
	if m.Layout().ID != item.LayoutID {
		t.Errorf("Layout().ID = %q, expected %q", m.Layout().ID, item.LayoutID)
	}
	if !m.Session().Active() {
		t.Error("Session should be active after select")
	}
}

func TestModelSelectDefaultLayout(t *testing.T) {
	l, err := levels.LoadFile(filepath.Join("..", "..", "world", "levels", "mazes", levels.DefaultID+".yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	m := NewModel(Options{
		Layout:   l,
		Config:   config.DefaultMazeConfig(),
		Settings: core.DefaultSettings(),
		Runtime:  core.DefaultConfig(),
	})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	item, ok := m.picker.Selected()
	if !ok || item.LayoutID != levels.DefaultID {
		t.Errorf("Picker cursor on %q, expected the current layout %q", item.LayoutID, levels.DefaultID)
	}
}

func TestModelQuitSavesRunAndSettings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, store)
	m = update(t, m, runeKey('d'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp}) // fov
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 10)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	m = next.(Model)
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}

	runs, err := store.RecentRuns("corridor", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns() = %d runs, expected 1", len(runs))
	}
	if runs[0].Ticks != 10 || runs[0].Profile != "tester" {
		t.Errorf("Run = %+v, expected 10 ticks by tester", runs[0])
	}

	settings, ok, err := store.LoadSettings("tester")
	if err != nil || !ok {
		t.Fatalf("LoadSettings() = %v, %v", ok, err)
	}
	if settings.FieldOfView != 85 {
		t.Errorf("FieldOfView = %v, expected 85", settings.FieldOfView)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m, 1)

	out := m.View()
	if !strings.Contains(out, "Corridor") {
		t.Error("View() should show the layout name")
	}
	if !strings.Contains(out, "♫") {
		t.Error("View() should show the music indicator while it plays")
	}

	m = update(t, m, runeKey('d'))
	if !strings.Contains(m.View(), "debug") {
		t.Error("View() should show the debug panel")
	}
}

func TestModelTurnLoopIndicator(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.MouseMsg{X: 79, Y: 5, Action: tea.MouseActionMotion})
	m = tick(t, m, 2)

	if !m.presenter.LoopPlaying(maze.LoopTurn) {
		t.Fatal("Turn loop should play while turning")
	}
	if !strings.Contains(m.View(), "~whoosh~") {
		t.Error("View() should show the turn loop while it plays")
	}
}
