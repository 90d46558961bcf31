// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman                    - Start with the category menu
//	hangman play [category]    - Start a round right away
//	hangman categories         - List categories and word counts
//	hangman defaults           - Print the built-in configuration
//
// There are no flags; behaviour is controlled through the environment
// (a .env file in the working directory is read too):
//
//	HANGMAN_AUTO=1             - Unattended play with the auto-strategy
//	HANGMAN_DIFFICULTY=hard    - easy, normal or hard
//	HANGMAN_CONFIG=path        - Config file instead of the search path
//	NO_COLOR / HANGMAN_COLOR   - Disable or force colors
//	HANGMAN_LOG_LEVEL=debug    - Log level (default: warn)
//	HANGMAN_LOG_FILE=path      - Write logs to a file instead of stderr
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess the word before the gallows is complete",
	Long: `Hangman is a terminal word-guessing game. Guess the secret word one
letter at a time, or the whole word at once, before running out of
attempts.

Available commands:
  play        - Start a round right away
  categories  - Show all word categories
  defaults    - Print the built-in configuration

Examples:
  hangman
  hangman play animales
  HANGMAN_AUTO=1 hangman play`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(defaultsCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return a.play(cmd.Context(), nil)
}
