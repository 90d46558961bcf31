package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// guessCharLimit bounds the text input; no word in the lists comes close.
const guessCharLimit = 32

// RoundResult is how a round ended.
type RoundResult struct {
	Config  core.RuntimeConfig
	Round   session.Round
	Summary session.Summary // includes this round when it ended
	Quit    bool            // leave the game, not just the round
}

// Model is the Bubble Tea model for one round and its result screen.
type Model struct {
	round      session.Round
	summary    session.Summary
	input      textinput.Model
	palette    view.Palette
	keys       PlayKeyMap
	resultKeys ResultKeyMap
	help       help.Model
	config     core.RuntimeConfig
	flash      int // id of the feedback currently shown
	quitting   bool
	done       bool
}

// NewModel creates a model for a freshly dealt round.
func NewModel(r session.Round, summary session.Summary, p view.Palette, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "letter or word"
	ti.CharLimit = guessCharLimit
	ti.Focus()

	return Model{
		round:      r,
		summary:    summary,
		input:      ti,
		palette:    p,
		keys:       DefaultPlayKeyMap(),
		resultKeys: DefaultResultKeyMap(),
		help:       help.New(),
		config:     cfg,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clearFlashMsg:
		if msg.id == m.flash && !m.round.Over() {
			m.round.Message = session.Message{}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.round.Over() {
		switch {
		case key.Matches(msg, m.resultKeys.Quit):
			m.quitting = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.resultKeys.Continue):
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.submit(session.CommandQuit)
	case key.Matches(msg, m.keys.Menu):
		return m.submit(session.CommandMenu)
	case key.Matches(msg, m.keys.Submit):
		in := m.input.Value()
		m.input.Reset()
		return m.submit(in)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands a line of input to the round.
func (m Model) submit(in string) (tea.Model, tea.Cmd) {
	m.round = m.round.Submit(in)

	if !m.round.Over() {
		m.flash++
		return m, flashCmd(m.flash)
	}

	m.summary.Record(m.round.Status)
	m.input.Blur()

	switch m.round.Status {
	case session.StatusQuit:
		m.quitting = true
		m.done = true
		return m, tea.Quit
	case session.StatusAbandoned:
		m.done = true
		return m, tea.Quit
	}
	// won or lost: stay on the result screen until a key is pressed
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var body string
	if m.round.Over() {
		body = view.Result(m.palette, m.round, m.summary) +
			"\n\n" + m.palette.Help.Render(m.help.View(m.resultKeys))
	} else {
		body = view.Round(m.palette, m.round) +
			"\n\n" + m.input.View() +
			"\n\n" + m.palette.Help.Render(m.help.View(m.keys))
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Result returns how the round ended. A program closed mid-round counts
// as quitting.
func (m Model) Result() RoundResult {
	res := RoundResult{
		Config:  m.config,
		Round:   m.round,
		Summary: m.summary,
		Quit:    m.quitting,
	}
	if !m.round.Over() {
		res.Round = m.round.Submit(session.CommandQuit)
		res.Summary.Record(res.Round.Status)
		res.Quit = true
	}
	return res
}

// RunRound starts the Bubble Tea program for one round.
func RunRound(ctx context.Context, r session.Round, summary session.Summary, p view.Palette, cfg core.RuntimeConfig) (RoundResult, error) {
	model := NewModel(r, summary, p, cfg)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	finalModel, err := prog.Run()
	return roundResult(model, finalModel, err)
}

// roundResult prefers the model the program ended with, even when it ended
// with an error, so guesses made before the failure still count.
func roundResult(initial Model, final tea.Model, err error) (RoundResult, error) {
	if m, ok := final.(Model); ok {
		return m.Result(), err
	}
	return initial.Result(), err
}
