// Package hangman implements the rules of the word-guessing game.
// It contains no terminal or I/O code so the rules stay pure and testable;
// every guess returns a new State value and leaves the receiver untouched.
package hangman

import (
	"fmt"
	"slices"
	"strings"
)

// Placeholder is shown in Progress for letters not yet guessed.
const Placeholder = '_'

// letterSet is a set of lowercase ASCII letters, one bit per letter.
// Being a plain integer it copies by value, which keeps State immutable.
type letterSet uint32

func (s letterSet) has(r rune) bool {
	return isLetter(r) && s&(1<<(r-'a')) != 0
}

func (s letterSet) with(r rune) letterSet {
	return s | 1<<(r-'a')
}

func (s letterSet) len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func (s letterSet) runes() []rune {
	var out []rune
	for r := 'a'; r <= 'z'; r++ {
		if s.has(r) {
			out = append(out, r)
		}
	}
	return out
}

// State is the state of a single round. The zero value is not usable;
// create one with New.
type State struct {
	secret      string
	maxAttempts int
	correct     letterSet
	incorrect   letterSet
	wrongWords  []string // never appended in place, see ApplyWordGuess
}

// New starts a round for the given secret word. Upper-case ASCII letters are
// folded to lower case; anything outside a-z is rejected.
func New(secret string, maxAttempts int) (State, error) {
	word := strings.ToLower(strings.TrimSpace(secret))
	if word == "" || !isWord(word) {
		return State{}, fmt.Errorf("hangman: secret word %q must contain only letters a-z", secret)
	}
	if maxAttempts <= 0 {
		return State{}, fmt.Errorf("hangman: max attempts must be positive, got %d", maxAttempts)
	}
	return State{secret: word, maxAttempts: maxAttempts}, nil
}

// Secret returns the word being guessed.
func (s State) Secret() string { return s.secret }

// MaxAttempts returns the attempt budget for the round.
func (s State) MaxAttempts() int { return s.maxAttempts }

// CorrectLetters returns the correctly guessed letters in alphabetical order.
func (s State) CorrectLetters() []rune { return s.correct.runes() }

// IncorrectLetters returns the wrongly guessed letters in alphabetical order.
func (s State) IncorrectLetters() []rune { return s.incorrect.runes() }

// IncorrectWords returns the failed full-word guesses in the order they were made.
func (s State) IncorrectWords() []string { return slices.Clone(s.wrongWords) }

// Tried reports whether the letter was already guessed, right or wrong.
func (s State) Tried(r rune) bool {
	return s.correct.has(r) || s.incorrect.has(r)
}

// ApplyLetter guesses a single letter. It returns the new state and whether
// the letter occurs in the secret word.
func (s State) ApplyLetter(letter string) (State, bool, error) {
	l := strings.ToLower(letter)
	if len(l) != 1 || !isLetter(rune(l[0])) {
		return s, false, invalid(letter)
	}
	r := rune(l[0])
	if s.Tried(r) {
		return s, false, alreadyTried(l)
	}

	next := s
	if strings.ContainsRune(s.secret, r) {
		next.correct = s.correct.with(r)
		return next, true, nil
	}
	next.incorrect = s.incorrect.with(r)
	return next, false, nil
}

// ApplyWordGuess guesses the whole word. A match reveals every letter and
// costs nothing; a miss is remembered and costs one attempt.
func (s State) ApplyWordGuess(candidate string) (State, bool, error) {
	w := strings.ToLower(candidate)
	if w == "" || !isWord(w) {
		return s, false, invalid(candidate)
	}
	if slices.Contains(s.wrongWords, w) {
		return s, false, alreadyTried(w)
	}

	next := s
	if w == s.secret {
		for _, r := range s.secret {
			next.correct = next.correct.with(r)
		}
		return next, true, nil
	}
	// Fresh backing array so earlier states never observe the new guess.
	next.wrongWords = append(slices.Clip(s.wrongWords), w)
	return next, false, nil
}

// Guess interprets raw input: a single character is a letter guess,
// anything longer is a full-word guess.
func (s State) Guess(input string) (State, bool, error) {
	in := strings.TrimSpace(input)
	switch n := len([]rune(in)); {
	case n == 0:
		return s, false, invalid(input)
	case n == 1:
		return s.ApplyLetter(in)
	default:
		return s.ApplyWordGuess(in)
	}
}

// Progress renders the secret word with unguessed letters replaced by
// Placeholder, one space between positions.
func (s State) Progress() string {
	var sb strings.Builder
	sb.Grow(len(s.secret) * 2)
	for i, r := range s.secret {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.correct.has(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(Placeholder)
		}
	}
	return sb.String()
}

// AttemptsUsed counts wrong letters plus wrong word guesses.
func (s State) AttemptsUsed() int {
	return s.incorrect.len() + len(s.wrongWords)
}

// AttemptsRemaining returns how many wrong guesses are left, never below zero.
func (s State) AttemptsRemaining() int {
	return max(s.maxAttempts-s.AttemptsUsed(), 0)
}

// HasWon reports whether every letter of the secret word has been guessed.
func (s State) HasWon() bool {
	if s.secret == "" {
		return false
	}
	for _, r := range s.secret {
		if !s.correct.has(r) {
			return false
		}
	}
	return true
}

// HasLost reports whether the attempt budget is exhausted.
func (s State) HasLost() bool {
	return s.secret != "" && s.AttemptsUsed() >= s.maxAttempts
}

// Outcome classifies the state. Winning is checked first, so a guess that
// completes the word on the last attempt still wins.
func (s State) Outcome() Outcome {
	switch {
	case s.HasWon():
		return Won
	case s.HasLost():
		return Lost
	default:
		return Playing
	}
}

// Outcome is the status of a round.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Done reports whether the outcome is terminal.
func (o Outcome) Done() bool {
	return o == Won || o == Lost
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isWord(w string) bool {
	for _, r := range w {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
