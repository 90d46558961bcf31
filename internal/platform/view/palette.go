// Package view renders hangman sessions as styled text. Both front-ends
// use it: the console prints the strings, the Bubble Tea models return
// them from View.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/session"
)

// Palette contains all the styles used by the views.
type Palette struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Word     lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	cells map[core.Color]lipgloss.Style
	color bool
}

// NewPalette returns the palette. With color off every style is plain, so
// the output contains no escape sequences; borders are kept.
func NewPalette(color bool) Palette {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if !color {
		plain := lipgloss.NewStyle()
		return Palette{
			Title:    plain,
			Label:    plain,
			Value:    plain,
			Word:     plain,
			Selected: plain,
			Help:     plain,
			Panel:    panel,
			Info:     plain,
			Success:  plain,
			Warning:  plain,
			Danger:   plain,
		}
	}

	return Palette{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Word:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel:    panel.BorderForeground(lipgloss.Color("240")),

		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		cells: colorStyles,
		color: true,
	}
}

// Colored reports whether the palette emits colors.
func (p Palette) Colored() bool {
	return p.color
}

// Message returns the style for a message kind.
func (p Palette) Message(kind session.MessageKind) lipgloss.Style {
	switch kind {
	case session.MessageSuccess:
		return p.Success
	case session.MessageWarning:
		return p.Warning
	case session.MessageError:
		return p.Danger
	default:
		return p.Info
	}
}

// cell returns the style for a screen color.
func (p Palette) cell(c core.Color) lipgloss.Style {
	if style, ok := p.cells[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// colorStyles maps board colors to lipgloss styles. Gray matches the Label
// style so the scaffold sits back behind the figure.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightRed: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}
