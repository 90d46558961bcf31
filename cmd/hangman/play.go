package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [category]",
	Short: "Start a round right away",
	Long: `Skip the menu and start a round in the given category, or in a
random one when no category is given. After the round you return to the
menu as usual.

Controls (full-screen mode):
  Type a letter or a word, then Enter
  Esc        - Abandon the round and go back to the menu
  Ctrl+C     - Quit

In line mode type :menu or :quit instead.

Examples:
  hangman play
  hangman play frutas
  HANGMAN_DIFFICULTY=hard hangman play paises`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	first := &session.MenuChoice{Action: session.ActionPlay}
	if len(args) == 1 {
		if !a.catalog.Has(args[0]) {
			return fmt.Errorf("unknown category %q (run 'hangman categories' to see them)", args[0])
		}
		first.Category = args[0]
	}

	return a.play(cmd.Context(), first)
}
