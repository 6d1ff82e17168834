package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWallNear: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorWallMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorWallFar:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorWallEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorFloor:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorCeiling:  lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	core.ColorSprite:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorCaption:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Italic(true),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
