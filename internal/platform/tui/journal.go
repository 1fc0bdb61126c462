package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"winterhouse/internal/storage"
)

// Journal layout constants
const (
	maxJournalRows = 200 // Max entries to load per view
)

// journalView selects which slice of the journal the table shows.
type journalView int

const (
	viewRecent journalView = iota
	viewTotals
	viewSessions
	viewCount
)

func (v journalView) title() string {
	switch v {
	case viewRecent:
		return "RECENT TOGGLES"
	case viewTotals:
		return "TOGGLE TOTALS"
	case viewSessions:
		return "VISITS"
	default:
		return "JOURNAL"
	}
}

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.PrevView, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing the interaction journal.
type JournalModel struct {
	sceneID  string
	store    *storage.Store
	view     journalView
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	empty    bool
	quitting bool
}

// NewJournalModel creates a new journal viewer for the given scene.
func NewJournalModel(store *storage.Store, sceneID string, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		sceneID: sceneID,
		store:   store,
		keys:    DefaultJournalKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRows()

	return m
}

// createTable creates a table with columns for the current view.
func (m *JournalModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case viewTotals:
		columns = []table.Column{
			{Title: "Prop", Width: 16},
			{Title: "State", Width: 8},
			{Title: "Count", Width: 8},
		}
	case viewSessions:
		columns = []table.Column{
			{Title: "When", Width: 18},
			{Title: "Duration", Width: 10},
			{Title: "Toggles", Width: 8},
		}
	default:
		columns = []table.Column{
			{Title: "When", Width: 18},
			{Title: "Prop", Width: 16},
			{Title: "State", Width: 8},
		}
	}

	height := m.height - 8 // Leave room for title, tabs, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadRows fills the table from storage for the current view.
func (m *JournalModel) loadRows() {
	if m.store == nil {
		m.empty = true
		m.table.SetRows(nil)
		return
	}

	var rows []table.Row
	switch m.view {
	case viewTotals:
		counts, err := m.store.ToggleCounts(m.sceneID)
		if err == nil {
			for _, c := range counts {
				rows = append(rows, table.Row{c.PropID, c.State, fmt.Sprintf("%d", c.Count)})
			}
		}
	case viewSessions:
		sessions, err := m.store.RecentSessions(m.sceneID, maxJournalRows)
		if err == nil {
			for _, s := range sessions {
				rows = append(rows, table.Row{
					s.CreatedAt.Format("Jan 02 15:04"),
					fmt.Sprintf("%ds", s.DurationSecs),
					fmt.Sprintf("%d", s.Interactions),
				})
			}
		}
	default:
		entries, err := m.store.RecentInteractions(m.sceneID, maxJournalRows)
		if err == nil {
			for _, e := range entries {
				rows = append(rows, table.Row{
					e.CreatedAt.Format("Jan 02 15:04:05"),
					e.PropID,
					e.State,
				})
			}
		}
	}

	m.empty = len(rows) == 0
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchView rebuilds the table for the new view.
func (m *JournalModel) switchView(v journalView) {
	m.view = v
	m.table = m.createTable()
	m.loadRows()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView((m.view + 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView((m.view + viewCount - 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal viewer.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.view.title(), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws the view selector line.
func (m JournalModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, viewCount)
	for v := journalView(0); v < viewCount; v++ {
		name := v.title()
		if v == m.view {
			tabs[v] = activeTabStyle.Render(name)
		} else {
			tabs[v] = tabStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m JournalModel) renderTableContent() string {
	if m.empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing in the journal yet.\nVisit the house and flip something on!")
	}

	return m.table.View()
}

// centerText pads the string so it is horizontally centered in width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunJournal runs the interactive journal viewer.
func RunJournal(store *storage.Store, sceneID string, width, height int) error {
	model := NewJournalModel(store, sceneID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
