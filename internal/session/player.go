package session

import (
	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// MenuAction is what the player picked in the main menu.
type MenuAction int

const (
	ActionPlay MenuAction = iota
	ActionQuit
)

// Menu is what the player sees before a round.
type Menu struct {
	Categories []string
	Difficulty config.DifficultyPreset
	Summary    Summary
}

// MenuChoice is the player's answer to a Menu.
type MenuChoice struct {
	Action     MenuAction
	Category   string                  // empty means random
	Difficulty config.DifficultyPreset // empty keeps the current preset
}

// Player supplies every decision the session needs.
type Player interface {
	// Choose answers the main menu.
	Choose(m Menu) MenuChoice
	// Guess returns the next line of input for a running round:
	// a letter, a word or one of the commands.
	Guess(r Round) string
	// Acknowledge is called once after a round is won or lost, before
	// going back to the menu.
	Acknowledge(r Round)
}

// AutoPlayer answers every prompt on its own: it plays Rounds rounds in
// Category (random when empty) and guesses with hangman.NextLetter.
type AutoPlayer struct {
	Rounds   int
	Category string

	played int
}

// NewAutoPlayer returns an auto player for the given number of rounds.
func NewAutoPlayer(rounds int, category string) *AutoPlayer {
	return &AutoPlayer{Rounds: max(rounds, 1), Category: category}
}

// Choose implements Player.
func (p *AutoPlayer) Choose(Menu) MenuChoice {
	if p.played >= p.Rounds {
		return MenuChoice{Action: ActionQuit}
	}
	p.played++
	return MenuChoice{Action: ActionPlay, Category: p.Category}
}

// Guess implements Player.
func (p *AutoPlayer) Guess(r Round) string {
	return string(hangman.NextLetter(r.State))
}

// Acknowledge implements Player.
func (p *AutoPlayer) Acknowledge(Round) {}
