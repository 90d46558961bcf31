package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// Prompts shown before each read.
const (
	menuPrompt     = "Choose an option (number or category, d: difficulty, q: quit): "
	guessPrompt    = "Letter or word (:menu back, :quit exit): "
	continuePrompt = "Press Enter to continue..."
)

// Player asks a person at the console for every decision.
// When input runs out the menu quits and guesses come from the
// auto-strategy, so a piped session always ends.
type Player struct {
	c *Console
}

// NewPlayer returns a player reading from c.
func NewPlayer(c *Console) *Player {
	return &Player{c: c}
}

// Choose implements session.Player. Changing the difficulty redraws the
// menu and asks again.
func (p *Player) Choose(m session.Menu) session.MenuChoice {
	var picked config.DifficultyPreset
	for {
		in := strings.ToLower(strings.TrimSpace(p.c.ReadLine(menuPrompt, session.CommandQuit)))
		choice, next, ok := parseMenuInput(in, m)
		switch {
		case next != "":
			picked = next
			m.Difficulty = next
			p.c.Menu(m)
		case ok:
			if choice.Difficulty == "" {
				choice.Difficulty = picked
			}
			return choice
		default:
			p.c.Println(view.MessageLine(p.c.palette, session.Message{
				Kind: session.MessageWarning,
				Text: fmt.Sprintf("Unknown option %q.", in),
			}))
		}
	}
}

// parseMenuInput interprets one line of menu input. It returns either a
// choice (ok), a new difficulty to show, or neither for unknown input.
func parseMenuInput(in string, m session.Menu) (choice session.MenuChoice, difficulty config.DifficultyPreset, ok bool) {
	items := view.MenuItems(m)

	switch in {
	case "q", "quit", session.CommandQuit:
		return session.MenuChoice{Action: session.ActionQuit}, "", true
	case "d":
		return session.MenuChoice{}, m.Difficulty.Next(), false
	case "", "r", "random":
		return items[0].Choice, "", true
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1].Choice, "", true
		}
		return session.MenuChoice{}, "", false
	}
	for _, item := range items {
		if item.Choice.Action == session.ActionPlay && item.Choice.Category == in {
			return item.Choice, "", true
		}
	}
	if preset, err := config.ParseDifficulty(in); err == nil {
		return session.MenuChoice{}, preset, false
	}
	return session.MenuChoice{}, "", false
}

// Guess implements session.Player.
func (p *Player) Guess(r session.Round) string {
	return p.c.ReadLine(guessPrompt, string(hangman.NextLetter(r.State)))
}

// Acknowledge implements session.Player.
func (p *Player) Acknowledge(session.Round) {
	p.c.ReadLine(continuePrompt, "")
}

// echoPlayer prints the prompts and answers of a player that does not
// read from the console.
type echoPlayer struct {
	session.Player
	c *Console
}

// Echo wraps an unattended player so its moves show up in the output.
func Echo(c *Console, p session.Player) session.Player {
	return echoPlayer{Player: p, c: c}
}

func (e echoPlayer) Choose(m session.Menu) session.MenuChoice {
	choice := e.Player.Choose(m)
	answer := "q"
	if choice.Action == session.ActionPlay {
		answer = choice.Category
		if answer == "" {
			answer = "random"
		}
	}
	e.c.Println(menuPrompt + answer)
	return choice
}

func (e echoPlayer) Guess(r session.Round) string {
	g := e.Player.Guess(r)
	e.c.Println(guessPrompt + g)
	return g
}
