package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// MenuResult is what the player did in the menu.
type MenuResult struct {
	Config     core.RuntimeConfig // may have been updated by resize
	Choice     session.MenuChoice
	Difficulty config.DifficultyPreset
	History    bool // Tab was pressed
	Quit       bool
}

// MenuModel is the Bubble Tea model for the category picker.
type MenuModel struct {
	menu    session.Menu
	items   []view.MenuItem
	cursor  int
	palette view.Palette
	keys    MenuKeyMap
	help    help.Model
	config  core.RuntimeConfig
	result  MenuResult
	done    bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(menu session.Menu, p view.Palette, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		menu:    menu,
		items:   view.MenuItems(menu),
		palette: p,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		config:  cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.result.Quit = true
		return m.finish()

	case key.Matches(msg, m.keys.History):
		m.result.History = true
		return m.finish()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Easier):
		m.menu.Difficulty = m.menu.Difficulty.Prev()

	case key.Matches(msg, m.keys.Harder):
		m.menu.Difficulty = m.menu.Difficulty.Next()

	case key.Matches(msg, m.keys.Select):
		choice := m.items[m.cursor].Choice
		if choice.Action == session.ActionQuit {
			m.result.Quit = true
		} else {
			m.result.Choice = choice
		}
		return m.finish()
	}

	return m, nil
}

func (m MenuModel) finish() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	body := view.Menu(m.palette, m.menu, m.cursor) + "\n\n" + m.palette.Help.Render(m.help.View(m.keys))
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Result returns the outcome of the menu. A menu closed without a
// decision counts as quit.
func (m MenuModel) Result() MenuResult {
	r := m.result
	r.Config = m.config
	r.Difficulty = m.menu.Difficulty
	if !m.done {
		r.Quit = true
	}
	return r
}

// RunMenu shows the menu and returns the player's decision.
func RunMenu(ctx context.Context, menu session.Menu, p view.Palette, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(menu, p, cfg)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := prog.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: menu.Difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: menu.Difficulty, Quit: true}, nil
	}
	return m.Result(), nil
}
