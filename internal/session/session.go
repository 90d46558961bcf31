package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Summary counts the rounds of a session.
type Summary struct {
	Played    int
	Won       int
	Lost      int
	Abandoned int
}

// Record counts a finished round. Rounds still in play are ignored.
func (s *Summary) Record(st Status) {
	switch st {
	case StatusWon:
		s.Played++
		s.Won++
	case StatusLost:
		s.Played++
		s.Lost++
	case StatusAbandoned, StatusQuit:
		s.Played++
		s.Abandoned++
	}
}

// Dealer starts rounds: it picks the word and the attempt budget.
// Both front-ends use it.
type Dealer struct {
	Catalog *words.Catalog
	Config  config.Config
	Rand    *rand.Rand
}

// NewDealer returns a dealer seeded with seed.
func NewDealer(catalog *words.Catalog, cfg config.Config, seed int64) *Dealer {
	return &Dealer{Catalog: catalog, Config: cfg, Rand: rand.New(rand.NewSource(seed))}
}

// Deal starts a round. An empty or unknown category means a random one.
func (d *Dealer) Deal(category string, difficulty config.DifficultyPreset) (Round, error) {
	name, word := d.Catalog.Pick(d.Rand, category)
	r, err := NewRound(name, difficulty, word, d.Config.MaxAttempts(difficulty))
	if err != nil {
		return Round{}, fmt.Errorf("session: cannot start round in %q: %w", name, err)
	}
	return r, nil
}

// Renderer shows the session to the player.
type Renderer interface {
	Menu(m Menu)
	Round(r Round)
	RoundOver(r Round, s Summary)
}

// Phase is a state of the Runner loop.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseRoundOver
	PhaseQuit
)

// Runner drives a whole session for line-oriented front-ends.
type Runner struct {
	Dealer     *Dealer
	Player     Player
	Renderer   Renderer
	Logger     *log.Logger
	Difficulty config.DifficultyPreset

	// First, when set, is used instead of asking the player at the first
	// menu. It lets a session start directly in a category.
	First *MenuChoice
}

// Run loops Menu -> Playing -> RoundOver -> Menu until the player quits
// or ctx is cancelled. The summary is valid even when an error is returned.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var (
		summary Summary
		round   Round
		phase   = PhaseMenu
	)
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	first := r.First
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}

	for phase != PhaseQuit {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		switch phase {
		case PhaseMenu:
			var choice MenuChoice
			if first != nil {
				choice, first = *first, nil
			} else {
				menu := Menu{
					Categories: r.Dealer.Catalog.Categories(),
					Difficulty: difficulty,
					Summary:    summary,
				}
				r.Renderer.Menu(menu)
				choice = r.Player.Choose(menu)
			}

			if choice.Difficulty != "" {
				difficulty = choice.Difficulty
			}
			if choice.Action == ActionQuit {
				phase = PhaseQuit
				continue
			}

			var err error
			round, err = r.Dealer.Deal(choice.Category, difficulty)
			if err != nil {
				return summary, err
			}
			r.Logger.Info("round started",
				"category", round.Category,
				"difficulty", round.Difficulty,
				"letters", len(round.State.Secret()),
				"attempts", round.State.MaxAttempts(),
			)
			phase = PhasePlaying

		case PhasePlaying:
			r.Renderer.Round(round)
			input := r.Player.Guess(round)
			round = round.Submit(input)
			r.Logger.Debug("guess", "input", input, "status", round.Status, "used", round.State.AttemptsUsed())
			if round.Over() {
				phase = PhaseRoundOver
			}

		case PhaseRoundOver:
			summary.Record(round.Status)
			r.Logger.Info("round finished",
				"category", round.Category,
				"status", round.Status,
				"guesses", round.Guesses,
				"used", round.State.AttemptsUsed(),
			)

			switch round.Status {
			case StatusQuit:
				phase = PhaseQuit
			case StatusAbandoned:
				phase = PhaseMenu
			default:
				r.Renderer.RoundOver(round, summary)
				r.Player.Acknowledge(round)
				phase = PhaseMenu
			}
		}
	}

	r.Logger.Info("session ended",
		"played", summary.Played,
		"won", summary.Won,
		"lost", summary.Lost,
		"abandoned", summary.Abandoned,
	)
	return summary, nil
}
