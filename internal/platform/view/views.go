package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/session"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

const title = "H A N G M A N"

// MenuItem is one selectable line of the main menu.
type MenuItem struct {
	Label  string
	Choice session.MenuChoice
}

// MenuItems lists the menu entries: a random category, every category in
// order, then quit.
func MenuItems(m session.Menu) []MenuItem {
	items := make([]MenuItem, 0, len(m.Categories)+2)
	items = append(items, MenuItem{
		Label:  "Random category",
		Choice: session.MenuChoice{Action: session.ActionPlay},
	})
	for _, c := range m.Categories {
		items = append(items, MenuItem{
			Label:  c,
			Choice: session.MenuChoice{Action: session.ActionPlay, Category: c},
		})
	}
	items = append(items, MenuItem{
		Label:  "Quit",
		Choice: session.MenuChoice{Action: session.ActionQuit},
	})
	return items
}

// Menu renders the main menu. With cursor < 0 the entries are numbered
// for line input; otherwise the entry under the cursor is highlighted.
func Menu(p Palette, m session.Menu, cursor int) string {
	var b strings.Builder

	b.WriteString(p.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(p.Label.Render("Difficulty: "))
	b.WriteString(p.Value.Render(difficultyLine(m.Difficulty)))
	b.WriteString("\n")
	if m.Summary.Played > 0 {
		b.WriteString(p.Label.Render(SummaryLine(m.Summary)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var list strings.Builder
	for i, item := range MenuItems(m) {
		if i > 0 {
			list.WriteString("\n")
		}
		switch {
		case cursor < 0:
			fmt.Fprintf(&list, "%2d. %s", i+1, item.Label)
		case i == cursor:
			list.WriteString(p.Selected.Render("> " + item.Label))
		default:
			list.WriteString("  " + item.Label)
		}
	}
	b.WriteString(p.Panel.Render(list.String()))
	return b.String()
}

func difficultyLine(current config.DifficultyPreset) string {
	parts := make([]string, 0, len(config.Presets()))
	for _, preset := range config.Presets() {
		if preset == current {
			parts = append(parts, "["+preset.Title()+"]")
		} else {
			parts = append(parts, preset.Title())
		}
	}
	return strings.Join(parts, " ")
}

// Round renders a running round: the gallows next to the word, the
// attempts left and the wrong guesses, then the last message.
func Round(p Palette, r session.Round) string {
	st := r.State

	var info strings.Builder
	info.WriteString(p.Label.Render("Category:   "))
	info.WriteString(p.Value.Render(r.Category))
	info.WriteString("\n")
	info.WriteString(p.Label.Render("Difficulty: "))
	info.WriteString(p.Value.Render(r.Difficulty.Title()))
	info.WriteString("\n\n")
	info.WriteString(p.Word.Render(st.Progress()))
	info.WriteString("\n\n")
	info.WriteString(p.Label.Render("Attempts left: "))
	info.WriteString(attemptsStyle(p, st.AttemptsRemaining(), st.MaxAttempts()).
		Render(fmt.Sprintf("%d of %d", st.AttemptsRemaining(), st.MaxAttempts())))
	info.WriteString("\n")
	info.WriteString(p.Label.Render("Wrong letters: "))
	info.WriteString(p.Value.Render(joinRunes(st.IncorrectLetters())))
	if wrong := st.IncorrectWords(); len(wrong) > 0 {
		info.WriteString("\n")
		info.WriteString(p.Label.Render("Wrong words:   "))
		info.WriteString(p.Value.Render(strings.Join(wrong, ", ")))
	}

	var b strings.Builder
	b.WriteString(p.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		RenderScreen(Board(st), p),
		"   ",
		info.String(),
	))
	if r.Message.Text != "" {
		b.WriteString("\n\n")
		b.WriteString(MessageLine(p, r.Message))
	}
	return b.String()
}

func attemptsStyle(p Palette, remaining, maxAttempts int) lipgloss.Style {
	switch {
	case remaining <= 1:
		return p.Danger
	case remaining*2 <= maxAttempts:
		return p.Warning
	default:
		return p.Value
	}
}

// MessageLine renders a message in the style of its kind.
func MessageLine(p Palette, m session.Message) string {
	return p.Message(m.Kind).Render(m.Text)
}

// Result renders the end of a round with the revealed word.
func Result(p Palette, r session.Round, s session.Summary) string {
	banner, style := "ROUND OVER", p.Info
	switch r.Status {
	case session.StatusWon:
		banner, style = "YOU WIN!", p.Success
	case session.StatusLost:
		banner, style = "GAME OVER", p.Danger
	}

	var info strings.Builder
	info.WriteString(style.Render(banner))
	info.WriteString("\n\n")
	info.WriteString(p.Label.Render("The word was "))
	info.WriteString(p.Word.Render(r.State.Secret()))
	info.WriteString("\n")
	info.WriteString(p.Label.Render(fmt.Sprintf("Guesses: %d  Misses: %d of %d",
		r.Guesses, r.State.AttemptsUsed(), r.State.MaxAttempts())))
	info.WriteString("\n\n")
	info.WriteString(p.Label.Render(SummaryLine(s)))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderScreen(Board(r.State), p),
		"   ",
		p.Panel.Render(info.String()),
	)
}

// SummaryLine renders the session counters on one line.
func SummaryLine(s session.Summary) string {
	line := fmt.Sprintf("Played %d  Won %d  Lost %d", s.Played, s.Won, s.Lost)
	if s.Abandoned > 0 {
		line += fmt.Sprintf("  Abandoned %d", s.Abandoned)
	}
	return line
}

// Categories renders the category listing with word counts.
func Categories(p Palette, infos []words.CategoryInfo) string {
	if len(infos) == 0 {
		return "No categories available."
	}

	nameWidth := len("Category")
	for _, c := range infos {
		nameWidth = max(nameWidth, len(c.Name))
	}

	var b strings.Builder
	b.WriteString(p.Title.Render("Available categories:"))
	b.WriteString("\n\n")
	b.WriteString(p.Label.Render(fmt.Sprintf("  %-*s  %s", nameWidth, "Category", "Words")))
	b.WriteString("\n")
	b.WriteString(p.Label.Render(fmt.Sprintf("  %-*s  %s", nameWidth, "--------", "-----")))
	b.WriteString("\n")
	for _, c := range infos {
		fmt.Fprintf(&b, "  %-*s  %5d\n", nameWidth, c.Name, c.Count)
	}
	b.WriteString("\n")
	b.WriteString(p.Help.Render("Run 'hangman play <category>' to start a round."))
	return b.String()
}

func joinRunes(rs []rune) string {
	if len(rs) == 0 {
		return "-"
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
