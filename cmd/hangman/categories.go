package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/platform/view"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"list"},
	Short:   "List all word categories",
	Long:    `Shows every category from the configuration with its number of words.`,
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

func runCategories(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println(view.Categories(a.palette, a.catalog.List()))
	return nil
}
