package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in configuration",
	Long: `Prints the built-in configuration as YAML. Save it as
~/.hangman/config.yaml or ./configs/hangman.yaml and edit it to change the
attempt budgets or the word lists.

Examples:
  hangman defaults > ~/.hangman/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
