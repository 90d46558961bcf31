package hangman

// StageCount is the number of gallows drawings, from empty to complete.
const StageCount = 7

// gallows holds one drawing per stage; every line of every stage has the
// same width so the figure does not jump around between frames.
var gallows = [StageCount][]string{
	{
		"  +---+",
		"  |   |",
		"      |",
		"      |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		"      |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		"  |   |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|   |",
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		` /|\  |`,
		"      |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		` /|\  |`,
		" /    |",
		"      |",
		"=========",
	},
	{
		"  +---+",
		"  |   |",
		"  O   |",
		` /|\  |`,
		` / \  |`,
		"      |",
		"=========",
	},
}

// Gallows returns the drawing for a stage. Out-of-range stages are clamped.
func Gallows(stage int) []string {
	stage = min(max(stage, 0), StageCount-1)
	lines := make([]string, len(gallows[stage]))
	copy(lines, gallows[stage])
	return lines
}

// Stage maps the attempts used onto the gallows drawings, so that the figure
// is complete exactly when the budget runs out, whatever the budget is.
func Stage(s State) int {
	if s.maxAttempts <= 0 {
		return 0
	}
	last := StageCount - 1
	used := s.AttemptsUsed()
	if used >= s.maxAttempts {
		return last
	}
	stage := used * last / s.maxAttempts
	if used > 0 && stage == 0 {
		stage = 1 // the first miss always shows
	}
	return stage
}
