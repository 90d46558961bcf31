package view

import (
	"fmt"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Board dimensions: the 9x7 gallows drawing plus a rounded frame and one
// column of padding on each side.
const (
	BoardWidth  = 13
	BoardHeight = 9
)

// Board draws the gallows for the current state into a screen buffer.
// The scaffold is gray; the figure turns red once the round is lost, and the
// frame shows the outcome. The bottom edge carries the attempts counter.
func Board(st hangman.State) *core.Screen {
	s := core.NewScreen(BoardWidth, BoardHeight)

	frame := core.ColorGray
	figure := core.ColorYellow
	switch st.Outcome() {
	case hangman.Won:
		frame = core.ColorGreen
	case hangman.Lost:
		frame = core.ColorRed
		figure = core.ColorBrightRed
	}
	s.DrawBox(core.NewRect(0, 0, BoardWidth, BoardHeight), frame)

	empty := hangman.Gallows(0)
	for y, line := range hangman.Gallows(hangman.Stage(st)) {
		s.DrawText(2, 1+y, empty[y], core.ColorGray)
		scaffold := []rune(empty[y])
		for x, r := range []rune(line) {
			if x >= len(scaffold) || scaffold[x] != r {
				s.SetColored(2+x, 1+y, r, figure)
			}
		}
	}

	counter := fmt.Sprintf(" %d/%d ", min(st.AttemptsUsed(), st.MaxAttempts()), st.MaxAttempts())
	s.DrawTextCentered(BoardHeight-1, counter, frame)
	return s
}
