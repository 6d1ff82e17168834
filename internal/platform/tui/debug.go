package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazewalk/internal/core"
)

const (
	debugPanelWidth = 34
	sliderBarWidth  = 16
)

// debugRow is one line of the debug panel.
type debugRow int

const (
	rowMode debugRow = iota
	rowWalk
	rowTurn
	rowFOV
	debugRows
)

// slider describes how one settings field is shown and stepped.
type slider struct {
	label    string
	min, max float64
	step     float64
	format   string
	get      func(core.Settings) float64
	set      func(*core.Settings, float64)
}

var sliders = map[debugRow]slider{
	rowWalk: {
		label: "walk", min: core.MinWalkSpeed, max: core.MaxWalkSpeed, step: 0.1, format: "%.1f",
		get: func(s core.Settings) float64 { return s.WalkSpeed },
		set: func(s *core.Settings, v float64) { s.WalkSpeed = v },
	},
	rowTurn: {
		label: "turn", min: core.MinTurnSpeed, max: core.MaxTurnSpeed, step: 1, format: "%.0f",
		get: func(s core.Settings) float64 { return float64(s.TurnSpeed) },
		set: func(s *core.Settings, v float64) { s.TurnSpeed = int(v) },
	},
	rowFOV: {
		label: "fov", min: core.MinFieldOfView, max: core.MaxFieldOfView, step: 5, format: "%.0f",
		get: func(s core.Settings) float64 { return s.FieldOfView },
		set: func(s *core.Settings, v float64) { s.FieldOfView = v },
	},
}

// DebugPanel is the keyboard-driven settings overlay: a menu/maze switch
// and one slider per setting.
type DebugPanel struct {
	Visible bool
	cursor  debugRow
	bar     progress.Model
}

// NewDebugPanel creates a hidden panel.
func NewDebugPanel() DebugPanel {
	return DebugPanel{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(sliderBarWidth),
			progress.WithoutPercentage(),
		),
	}
}

// Toggle shows or hides the panel.
func (d *DebugPanel) Toggle() {
	d.Visible = !d.Visible
}

// Move shifts the cursor by delta rows, wrapping around.
func (d *DebugPanel) Move(delta int) {
	n := int(debugRows)
	d.cursor = debugRow(((int(d.cursor)+delta)%n + n) % n)
}

// Adjust steps the selected row by dir (+1 or -1). It returns the new
// settings and whether the mode switch was pressed instead.
func (d *DebugPanel) Adjust(s core.Settings, dir int) (core.Settings, bool) {
	if d.cursor == rowMode {
		return s, true
	}

	sl := sliders[d.cursor]
	v := sl.get(s) + float64(dir)*sl.step
	// Every step is a multiple of a tenth; rounding keeps repeated steps from drifting.
	v = math.Round(v*10) / 10
	sl.set(&s, core.ClampF(v, sl.min, sl.max))
	return s.Clamp(), false
}

// View renders the panel for the current mode and settings.
func (d DebugPanel) View(mode Mode, s core.Settings) string {
	label := lipgloss.NewStyle().Width(5)
	selected := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(selected.Render("debug"))
	b.WriteString("\n")

	for row := rowMode; row < debugRows; row++ {
		cursor := "  "
		if row == d.cursor {
			cursor = "> "
		}

		var line string
		if row == rowMode {
			menu, mz := dim.Render("menu"), dim.Render("maze")
			if mode == ModeMenu {
				menu = selected.Render("(menu)")
			} else {
				mz = selected.Render("(maze)")
			}
			line = label.Render("mode") + " " + menu + " " + mz
		} else {
			sl := sliders[row]
			v := sl.get(s)
			pct := 0.0
			if sl.max > sl.min {
				pct = (v - sl.min) / (sl.max - sl.min)
			}
			line = fmt.Sprintf("%s %s %s",
				label.Render(sl.label),
				d.bar.ViewAs(pct),
				fmt.Sprintf(sl.format, v),
			)
		}

		if row == d.cursor {
			line = selected.Render(cursor) + line
		} else {
			line = cursor + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(debugPanelWidth).
		Render(strings.TrimRight(b.String(), "\n"))
}
