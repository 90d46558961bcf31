package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// History layout constants
const (
	historyChrome   = 8 // title, borders, help
	historyMinTable = 3
)

// HistoryModel is the Bubble Tea model for the rounds played this session.
// Nothing is kept after the program exits.
type HistoryModel struct {
	rounds   []session.Round
	summary  session.Summary
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	palette  view.Palette
	config   core.RuntimeConfig
	quitting bool
	done     bool
}

// NewHistoryModel creates a new history model, most recent round first.
func NewHistoryModel(rounds []session.Round, summary session.Summary, p view.Palette, cfg core.RuntimeConfig) HistoryModel {
	m := HistoryModel{
		rounds:  rounds,
		summary: summary,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		palette: p,
		config:  cfg,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Category", Width: 14},
		{Title: "Word", Width: 14},
		{Title: "Result", Width: 10},
		{Title: "Guesses", Width: 8},
		{Title: "Misses", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.config.ScreenH-historyChrome, historyMinTable)),
	)

	if m.palette.Colored() {
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
	} else {
		t.SetStyles(table.Styles{
			Header:   lipgloss.NewStyle().Padding(0, 1),
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Selected: lipgloss.NewStyle(),
		})
	}

	return t
}

// updateTableRows fills the table from the finished rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.rounds))
	for i := len(m.rounds) - 1; i >= 0; i-- {
		r := m.rounds[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Category,
			r.State.Secret(),
			r.Status.String(),
			fmt.Sprintf("%d", r.Guesses),
			fmt.Sprintf("%d/%d", r.State.AttemptsUsed(), r.State.MaxAttempts()),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.palette.Title.Render("HISTORY"))
	b.WriteString("\n")
	b.WriteString(m.palette.Label.Render(view.SummaryLine(m.summary)))
	b.WriteString("\n\n")

	if len(m.rounds) == 0 {
		b.WriteString(m.palette.Panel.Render("No rounds played yet."))
	} else {
		b.WriteString(m.palette.Panel.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.palette.Help.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, b.String())
}

// Quitting reports whether the player asked to leave the game.
func (m HistoryModel) Quitting() bool {
	return m.quitting
}

// RunHistory shows the history screen. It returns true when the player
// went back to the menu, false when they quit.
func RunHistory(ctx context.Context, rounds []session.Round, summary session.Summary, p view.Palette, cfg core.RuntimeConfig) (bool, error) {
	model := NewHistoryModel(rounds, summary, p, cfg)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := prog.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return !m.Quitting(), nil
}
