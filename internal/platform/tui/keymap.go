package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// KeyMap defines the key bindings of the maze app.
// Pointer input comes from the mouse; keys only drive modes and settings.
type KeyMap struct {
	Toggle   key.Binding
	Debug    key.Binding
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Reset    key.Binding
	Select   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Debug, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.Toggle, k.Debug, k.Reset, k.Select, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab/m", "menu/maze"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d", "f1"),
			key.WithHelp("d", "debug"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("left/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("right/l", "increase"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset settings"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "walk layout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a platform action.
// Select has no core action and is matched separately by the menu.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Toggle):
		return core.ActionToggleMode
	case key.Matches(msg, k.Debug):
		return core.ActionDebug
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Decrease):
		return core.ActionDecrease
	case key.Matches(msg, k.Increase):
		return core.ActionIncrease
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	}
	return core.ActionNone
}
