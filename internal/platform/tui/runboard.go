package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazewalk/internal/registry"
	"github.com/vovakirdan/mazewalk/internal/storage"
)

// Run board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show layout list sidebar
	sidebarWidth       = 20  // Width of layout list sidebar
	maxRuns            = 100 // Max runs to load
)

// RunBoardKeyMap defines the key bindings for the run history board.
type RunBoardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextLayout key.Binding
	PrevLayout key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLayout, k.PrevLayout, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLayout, k.PrevLayout},
		{k.Quit},
	}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLayout: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next layout"),
		),
		PrevLayout: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev layout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunBoardModel is the Bubble Tea model for the run history screen.
type RunBoardModel struct {
	layouts      []registry.LayoutInfo
	layoutCursor int
	store        *storage.Store
	runs         []storage.Run
	totals       *storage.Totals
	table        table.Model
	help         help.Model
	keys         RunBoardKeyMap
	width        int
	height       int
	quitting     bool
	showSidebar  bool // Whether to show layout list sidebar
}

// NewRunBoardModel creates a run board with the cursor on startLayout.
func NewRunBoardModel(store *storage.Store, width, height int, startLayout string) RunBoardModel {
	h := help.New()
	h.ShowAll = false

	m := RunBoardModel{
		layouts:     registry.List(),
		store:       store,
		keys:        DefaultRunBoardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, l := range m.layouts {
		if l.ID == startLayout {
			m.layoutCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.layouts) > 0 {
		m.loadRuns(m.layouts[m.layoutCursor].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Who", Width: 10},
		{Title: "Cells", Width: 6},
		{Title: "Turns", Width: 6},
		{Title: "Steps", Width: 6},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, totals, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs and totals for the given layout ID.
func (m *RunBoardModel) loadRuns(layoutID string) {
	m.runs = nil
	m.totals = nil
	if m.store != nil {
		if runs, err := m.store.RecentRuns(layoutID, maxRuns); err == nil {
			m.runs = runs
		}
		if totals, err := m.store.Totals(layoutID); err == nil {
			m.totals = totals
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Profile,
			fmt.Sprintf("%d", r.CellsWalked),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Footsteps),
			fmt.Sprintf("%.1fs", r.Seconds),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run board model.
func (m RunBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLayout):
			if len(m.layouts) > 0 {
				m.layoutCursor = (m.layoutCursor + 1) % len(m.layouts)
				m.loadRuns(m.layouts[m.layoutCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLayout):
			if len(m.layouts) > 0 {
				m.layoutCursor--
				if m.layoutCursor < 0 {
					m.layoutCursor = len(m.layouts) - 1
				}
				m.loadRuns(m.layouts[m.layoutCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunBoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUNS"
	if len(m.layouts) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.layouts[m.layoutCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.totalsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// totalsLine summarizes every run on the selected layout.
func (m RunBoardModel) totalsLine() string {
	if m.totals == nil || m.totals.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  %d cells  %d turns  %.0fs walked",
		m.totals.Runs, m.totals.CellsWalked, m.totals.Turns, m.totals.Seconds)
}

// renderSidebar renders the layout list.
func (m RunBoardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Layouts\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.layouts {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.layoutCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := l.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m RunBoardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nWalk this maze to record one!")
	}

	return m.table.View()
}

// RunRunBoard runs the run history screen.
func RunRunBoard(store *storage.Store, width, height int, startLayout string) error {
	p := tea.NewProgram(
		NewRunBoardModel(store, width, height, startLayout),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
