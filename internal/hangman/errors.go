package hangman

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected guesses. Both are recoverable: the state is
// left unchanged and the caller may ask again.
var (
	ErrInvalidInput = errors.New("hangman: invalid input")
	ErrAlreadyTried = errors.New("hangman: already tried")
)

// GuessError describes a rejected guess together with the offending input.
type GuessError struct {
	Kind  error // ErrInvalidInput or ErrAlreadyTried
	Input string
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Input)
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *GuessError) Unwrap() error {
	return e.Kind
}

func invalid(input string) error {
	return &GuessError{Kind: ErrInvalidInput, Input: input}
}

func alreadyTried(input string) error {
	return &GuessError{Kind: ErrAlreadyTried, Input: input}
}
