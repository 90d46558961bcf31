package hangman

// FrequencyOrder ranks letters by how often they appear in Spanish text,
// most common first. It matches the bundled word lists.
const FrequencyOrder = "eaosrnidlctumpbgvyqhfzjxkw"

// DefaultLetter is returned by NextLetter once every letter has been tried.
const DefaultLetter = 'e'

// NextLetter picks the next letter to try for unattended play. It walks
// FrequencyOrder, then the alphabet, and returns the first untried letter.
// DefaultLetter is only returned when all 26 letters were already tried.
func NextLetter(s State) rune {
	for _, r := range FrequencyOrder {
		if !s.Tried(r) {
			return r
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		if !s.Tried(r) {
			return r
		}
	}
	return DefaultLetter
}
