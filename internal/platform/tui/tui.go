package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/platform/view"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// Options configures the full-screen front-end.
type Options struct {
	Dealer     *session.Dealer
	Palette    view.Palette
	Config     core.RuntimeConfig
	Difficulty config.DifficultyPreset
	Logger     *log.Logger

	// First skips the first menu, like session.Runner.First.
	First *session.MenuChoice
}

// Run chains menu, round and history screens until the player quits.
func Run(ctx context.Context, opts Options) (session.Summary, error) {
	var (
		summary session.Summary
		history []session.Round
	)
	cfg := opts.Config
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	first := opts.First
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var choice session.MenuChoice
		if first != nil {
			choice, first = *first, nil
			if choice.Difficulty != "" {
				difficulty = choice.Difficulty
			}
		} else {
			menu := session.Menu{
				Categories: opts.Dealer.Catalog.Categories(),
				Difficulty: difficulty,
				Summary:    summary,
			}
			res, err := RunMenu(ctx, menu, opts.Palette, cfg)
			if err != nil {
				return summary, err
			}
			cfg = res.Config
			difficulty = res.Difficulty

			if res.History {
				back, err := RunHistory(ctx, history, summary, opts.Palette, cfg)
				if err != nil {
					return summary, err
				}
				if back {
					continue
				}
				break
			}
			if res.Quit {
				break
			}
			choice = res.Choice
		}

		round, err := opts.Dealer.Deal(choice.Category, difficulty)
		if err != nil {
			return summary, err
		}
		logger.Info("round started", "category", round.Category, "difficulty", round.Difficulty)

		res, err := RunRound(ctx, round, summary, opts.Palette, cfg)
		if err != nil {
			return summary, err
		}
		cfg = res.Config
		summary = res.Summary
		history = append(history, res.Round)
		logger.Info("round finished", "category", res.Round.Category, "status", res.Round.Status, "guesses", res.Round.Guesses)

		if res.Quit {
			break
		}
	}

	logger.Info("session ended", "played", summary.Played, "won", summary.Won, "lost", summary.Lost)
	return summary, nil
}
