package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazewalk/internal/registry"
)

// MenuItem represents a selectable layout in the menu.
type MenuItem struct {
	LayoutID string
	Title    string
	Size     string
}

// LayoutPicker is the layout list shown over the menu scene.
type LayoutPicker struct {
	items  []MenuItem
	cursor int
}

// NewLayoutPicker lists every registered layout with the cursor on current.
func NewLayoutPicker(current string) LayoutPicker {
	layouts := registry.List()
	items := make([]MenuItem, 0, len(layouts))

	p := LayoutPicker{}
	for i, l := range layouts {
		items = append(items, MenuItem{
			LayoutID: l.ID,
			Title:    l.Title,
			Size:     fmt.Sprintf("%dx%d", l.Width, l.Height),
		})
		if l.ID == current {
			p.cursor = i
		}
	}
	p.items = items
	return p
}

// Up moves the cursor to the previous layout.
func (p *LayoutPicker) Up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// Down moves the cursor to the next layout.
func (p *LayoutPicker) Down() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// Selected returns the layout under the cursor.
func (p LayoutPicker) Selected() (MenuItem, bool) {
	if len(p.items) == 0 {
		return MenuItem{}, false
	}
	return p.items[p.cursor], true
}

// View renders the list.
func (p LayoutPicker) View() string {
	if len(p.items) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).
			Render("No layouts registered.")
	}

	var b strings.Builder
	for i, item := range p.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == p.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-12s %s", cursor, item.Title, item.Size)))
		if i < len(p.items)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(b.String())
}
