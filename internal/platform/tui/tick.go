// Package tui provides the Bubble Tea front-end for the hangman game.
// Each screen (menu, round, history) is its own program; Run chains them
// in a loop the same way the console front-end chains prompts.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long feedback about a guess stays on screen.
const flashDuration = 3 * time.Second

// clearFlashMsg clears the feedback line once its timer fires. Messages
// from older timers are ignored by comparing id.
type clearFlashMsg struct {
	id int
}

// flashCmd returns a Bubble Tea command that clears feedback id after
// flashDuration.
func flashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}
