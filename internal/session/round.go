// Package session runs hangman rounds: it turns raw player input into
// engine calls, keeps the per-round status and drives the menu/round loop
// as an explicit state machine. It knows nothing about terminals; input
// comes from a Player and output goes to a Renderer.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Commands accepted in place of a guess.
const (
	CommandMenu = ":menu" // abandon the round and go back to the menu
	CommandQuit = ":quit" // leave the game
)

// Status is the status of a round from the session's point of view.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
	StatusAbandoned
	StatusQuit
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusAbandoned:
		return "abandoned"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MessageKind tells the renderer how to present a message.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageInfo
	MessageSuccess
	MessageWarning
	MessageError
)

// Message is feedback about the last input.
type Message struct {
	Kind MessageKind
	Text string
}

// Round is one game from word selection to win, loss or abandonment.
// Like hangman.State it is a value: Submit returns an updated copy.
type Round struct {
	Category   string
	Difficulty config.DifficultyPreset
	State      hangman.State
	Status     Status
	Message    Message
	Guesses    int // accepted guesses, right or wrong
}

// NewRound starts a round for a word.
func NewRound(category string, difficulty config.DifficultyPreset, word string, maxAttempts int) (Round, error) {
	st, err := hangman.New(word, maxAttempts)
	if err != nil {
		return Round{}, err
	}
	return Round{
		Category:   category,
		Difficulty: difficulty,
		State:      st,
		Status:     StatusPlaying,
		Message: Message{
			Kind: MessageInfo,
			Text: fmt.Sprintf("Guess the word: %d letters, %d wrong guesses allowed.", len(st.Secret()), maxAttempts),
		},
	}, nil
}

// Submit applies one line of player input. Rejected guesses leave the game
// state untouched and only set an error message. Rounds that are already
// over ignore further input.
func (r Round) Submit(input string) Round {
	if r.Status != StatusPlaying {
		return r
	}

	in := strings.ToLower(strings.TrimSpace(input))
	switch in {
	case CommandMenu:
		r.Status = StatusAbandoned
		r.Message = Message{Kind: MessageInfo, Text: fmt.Sprintf("Round abandoned. The word was %q.", r.State.Secret())}
		return r
	case CommandQuit:
		r.Status = StatusQuit
		r.Message = Message{Kind: MessageInfo, Text: "Goodbye!"}
		return r
	}

	next, correct, err := r.State.Guess(in)
	if err != nil {
		r.Message = rejection(err)
		return r
	}

	r.State = next
	r.Guesses++
	r.Message = feedback(in, correct)

	switch next.Outcome() {
	case hangman.Won:
		r.Status = StatusWon
		r.Message = Message{Kind: MessageSuccess, Text: fmt.Sprintf("Congratulations, you won! The word was %q.", next.Secret())}
	case hangman.Lost:
		r.Status = StatusLost
		r.Message = Message{Kind: MessageError, Text: fmt.Sprintf("You lost, the gallows is complete. The word was %q.", next.Secret())}
	}
	return r
}

// Over reports whether the round has ended for any reason.
func (r Round) Over() bool {
	return r.Status != StatusPlaying
}

func rejection(err error) Message {
	var gerr *hangman.GuessError
	switch {
	case errors.Is(err, hangman.ErrAlreadyTried) && errors.As(err, &gerr):
		return Message{Kind: MessageWarning, Text: fmt.Sprintf("You already tried %q. Try another one.", gerr.Input)}
	case errors.Is(err, hangman.ErrInvalidInput):
		return Message{Kind: MessageWarning, Text: "Enter a single letter a-z or a whole word."}
	default:
		return Message{Kind: MessageError, Text: err.Error()}
	}
}

func feedback(guess string, correct bool) Message {
	word := len(guess) > 1
	switch {
	case correct && word:
		return Message{Kind: MessageSuccess, Text: fmt.Sprintf("%q is the word!", guess)}
	case correct:
		return Message{Kind: MessageSuccess, Text: fmt.Sprintf("%q is in the word.", guess)}
	case word:
		return Message{Kind: MessageWarning, Text: fmt.Sprintf("%q is not the word.", guess)}
	default:
		return Message{Kind: MessageWarning, Text: fmt.Sprintf("The letter %q is not in the word.", guess)}
	}
}
