// Package tui implements the interactive history browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hurufapp/huruf/internal/engine"
	"github.com/hurufapp/huruf/internal/narrative"
)

// Display defaults before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
	chromeRows    = 4
	idColumnLen   = 8
)

// viewState selects between the list and the detail pane.
type viewState int

const (
	stateList viewState = iota
	stateDetail
)

//nolint:gochecknoglobals // Shared styles for the browser.
var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	browserHelpStyle  = lipgloss.NewStyle().Faint(true)
	detailBoxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the Bubble Tea model for the history browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx      context.Context
	entries  []engine.Result
	narrator narrative.Provider

	state  viewState
	table  table.Model
	width  int
	height int
}

// NewModel creates the browser model over the given history entries,
// newest first.
func NewModel(ctx context.Context, entries []engine.Result, narrator narrative.Provider) Model {
	m := Model{
		ctx:      ctx,
		entries:  entries,
		narrator: narrator,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.table = m.buildTable()
	return m
}

// buildTable constructs the list table from the entries.
func (m Model) buildTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "ID", Width: idColumnLen},
		{Title: "Type", Width: 8},
		{Title: "Kabir", Width: 6},
		{Title: "Text", Width: m.textColumnWidth()},
	}

	rows := make([]table.Row, len(m.entries))
	for i, entry := range m.entries {
		rows[i] = table.Row{
			entry.Timestamp.Format("2006-01-02 15:04"),
			truncate(entry.ID, idColumnLen),
			string(entry.Type),
			fmt.Sprintf("%d", entry.Core.Kabir),
			truncate(entry.Input.Normalized, m.textColumnWidth()),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-chromeRows),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

func (m Model) textColumnWidth() int {
	const fixedColumns = 16 + idColumnLen + 8 + 6 + 8
	width := m.width - fixedColumns
	if width < 10 {
		width = 10
	}
	return width
}

// Init initializes the model (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state == stateDetail {
			m.state = stateList
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		if m.state == stateList && len(m.entries) > 0 {
			m.state = stateDetail
		}
		return m, nil
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current pane (Bubble Tea interface).
func (m Model) View() string {
	if len(m.entries) == 0 {
		return browserTitleStyle.Render("History") + "\n\nNo calculations recorded yet.\n\n" +
			browserHelpStyle.Render("q quit")
	}

	if m.state == stateDetail {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(browserTitleStyle.Render(fmt.Sprintf("History — %d calculations", len(m.entries))))
	b.WriteByte('\n')
	b.WriteString(m.table.View())
	b.WriteByte('\n')
	b.WriteString(browserHelpStyle.Render("↑/↓ move · enter open · q quit"))
	return b.String()
}

// detailView renders the selected entry in full.
func (m Model) detailView() string {
	entry := m.entries[m.table.Cursor()]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", browserTitleStyle.Render(fmt.Sprintf("%s — %s", entry.Input.Normalized, entry.Type)))
	fmt.Fprintf(&b, "id %s · system %s · %s\n\n",
		entry.ID, entry.System, entry.Timestamp.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "Kabir %d · Saghir %d · Sirr %d · Wusta %d · Kamal %d · Bast %d\n",
		entry.Core.Kabir, entry.Core.Saghir, entry.Core.Sirr,
		entry.Core.Wusta, entry.Core.Kamal, entry.Core.Bast)
	fmt.Fprintf(&b, "Dominant %s · Balance %d/100 · %s (%s)\n",
		entry.Analytics.Dominant, entry.Analytics.BalanceScore,
		entry.Zodiac.Name, entry.Zodiac.ArabicName)
	if entry.Sacred.Exact {
		fmt.Fprintf(&b, "Sacred %d — %s\n", entry.Sacred.Nearest.Value, entry.Sacred.Nearest.Description)
	} else {
		fmt.Fprintf(&b, "Sacred %d (distance %d)\n", entry.Sacred.Nearest.Value, entry.Sacred.Distance)
	}

	if m.narrator != nil {
		if prose, err := m.narrator.Compose(m.ctx, &entry); err == nil {
			fmt.Fprintf(&b, "\n%s\n", prose)
		}
	}

	boxed := detailBoxStyle.Width(m.width - 4).Render(b.String())
	return boxed + "\n" + browserHelpStyle.Render("esc back · q quit")
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// BrowseHistory runs the interactive browser over the given entries.
func BrowseHistory(ctx context.Context, entries []engine.Result, narrator narrative.Provider) error {
	program := tea.NewProgram(NewModel(ctx, entries, narrator), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
