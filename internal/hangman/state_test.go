package hangman

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, word string, maxAttempts int) State {
	t.Helper()
	s, err := New(word, maxAttempts)
	if err != nil {
		t.Fatalf("New(%q, %d) failed: %v", word, maxAttempts, err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		maxAttempts int
		wantErr     bool
	}{
		{"simple word", "sol", 6, false},
		{"upper case folded", "SOL", 6, false},
		{"surrounding spaces", "  luna ", 6, false},
		{"empty word", "", 6, true},
		{"digits", "r2d2", 6, true},
		{"accented", "canción", 6, true},
		{"zero attempts", "sol", 0, true},
		{"negative attempts", "sol", -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.word, tc.maxAttempts)
			if (err != nil) != tc.wantErr {
				t.Errorf("New(%q, %d) error = %v, wantErr %v", tc.word, tc.maxAttempts, err, tc.wantErr)
			}
		})
	}

	s := mustNew(t, " SoL ", 6)
	if s.Secret() != "sol" {
		t.Errorf("Secret() = %q, expected %q", s.Secret(), "sol")
	}
}

func TestApplyLetter(t *testing.T) {
	s := mustNew(t, "python", 6)

	s, ok, err := s.ApplyLetter("p")
	if err != nil || !ok {
		t.Fatalf("ApplyLetter(p) = %v, %v; expected correct guess", ok, err)
	}
	if s.Progress() != "p _ _ _ _ _" {
		t.Errorf("Progress() = %q", s.Progress())
	}

	s, ok, err = s.ApplyLetter("z")
	if err != nil || ok {
		t.Fatalf("ApplyLetter(z) = %v, %v; expected incorrect guess", ok, err)
	}
	if s.AttemptsUsed() != 1 || s.AttemptsRemaining() != 5 {
		t.Errorf("attempts used/remaining = %d/%d, expected 1/5", s.AttemptsUsed(), s.AttemptsRemaining())
	}

	// Upper case is folded and counts as the same letter
	s, ok, err = s.ApplyLetter("Y")
	if err != nil || !ok {
		t.Fatalf("ApplyLetter(Y) = %v, %v; expected correct guess", ok, err)
	}
	if got := string(s.CorrectLetters()); got != "py" {
		t.Errorf("CorrectLetters() = %q, expected %q", got, "py")
	}
}

func TestApplyLetterInvalid(t *testing.T) {
	s := mustNew(t, "sol", 6)

	for _, in := range []string{"", "ab", "1", "ñ", "é", " ", "-"} {
		t.Run(in, func(t *testing.T) {
			next, _, err := s.ApplyLetter(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ApplyLetter(%q) error = %v, expected ErrInvalidInput", in, err)
			}
			if next.AttemptsUsed() != 0 || len(next.CorrectLetters()) != 0 {
				t.Errorf("state changed after invalid input %q", in)
			}
		})
	}
}

func TestRepeatedLetterAlreadyTried(t *testing.T) {
	s := mustNew(t, "sol", 6)

	for _, letter := range []string{"s", "x"} {
		var err error
		s, _, err = s.ApplyLetter(letter)
		if err != nil {
			t.Fatalf("ApplyLetter(%q) failed: %v", letter, err)
		}
	}

	for _, letter := range []string{"s", "x", "S", "X"} {
		next, _, err := s.ApplyLetter(letter)
		if !errors.Is(err, ErrAlreadyTried) {
			t.Errorf("ApplyLetter(%q) error = %v, expected ErrAlreadyTried", letter, err)
		}
		if next.AttemptsUsed() != s.AttemptsUsed() {
			t.Errorf("repeated letter %q changed attempts used", letter)
		}
	}

	var gerr *GuessError
	_, _, err := s.ApplyLetter("x")
	if !errors.As(err, &gerr) || gerr.Input != "x" {
		t.Errorf("expected GuessError with input %q, got %v", "x", err)
	}
}

func TestCorrectWordGuessWinsForFree(t *testing.T) {
	s := mustNew(t, "sol", 6)

	s, ok, err := s.ApplyWordGuess("sol")
	if err != nil || !ok {
		t.Fatalf("ApplyWordGuess(sol) = %v, %v", ok, err)
	}
	if !s.HasWon() {
		t.Error("HasWon() = false after correct word guess")
	}
	if s.AttemptsUsed() != 0 {
		t.Errorf("AttemptsUsed() = %d, expected 0", s.AttemptsUsed())
	}
	if s.Progress() != "s o l" {
		t.Errorf("Progress() = %q, expected %q", s.Progress(), "s o l")
	}
}

func TestIncorrectWordGuess(t *testing.T) {
	s := mustNew(t, "sol", 2)

	s, ok, err := s.ApplyWordGuess("sal")
	if err != nil || ok {
		t.Fatalf("ApplyWordGuess(sal) = %v, %v; expected a miss", ok, err)
	}
	if s.AttemptsUsed() != 1 {
		t.Errorf("AttemptsUsed() = %d, expected 1", s.AttemptsUsed())
	}
	if s.HasWon() || s.HasLost() {
		t.Errorf("HasWon/HasLost = %v/%v, expected false/false", s.HasWon(), s.HasLost())
	}

	_, _, err = s.ApplyWordGuess("sal")
	if !errors.Is(err, ErrAlreadyTried) {
		t.Errorf("repeat ApplyWordGuess(sal) error = %v, expected ErrAlreadyTried", err)
	}

	// A word of another length is still a miss, not invalid input
	s, _, err = s.ApplyWordGuess("luna")
	if err != nil {
		t.Fatalf("ApplyWordGuess(luna) failed: %v", err)
	}
	if !s.HasLost() {
		t.Error("HasLost() = false after exhausting 2 attempts")
	}
	if got := strings.Join(s.IncorrectWords(), ","); got != "sal,luna" {
		t.Errorf("IncorrectWords() = %q", got)
	}
}

func TestWordGuessInvalid(t *testing.T) {
	s := mustNew(t, "sol", 6)

	for _, in := range []string{"", "so l", "s0l", "sól", "so-l"} {
		if _, _, err := s.ApplyWordGuess(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ApplyWordGuess(%q) error = %v, expected ErrInvalidInput", in, err)
		}
	}
}

func TestStateImmutability(t *testing.T) {
	base := mustNew(t, "gato", 6)
	base, _, _ = base.ApplyWordGuess("pato")

	a, _, _ := base.ApplyWordGuess("dato")
	b, _, _ := base.ApplyWordGuess("rato")

	if got := base.IncorrectWords(); len(got) != 1 {
		t.Errorf("base state mutated: %v", got)
	}
	if a.IncorrectWords()[1] != "dato" || b.IncorrectWords()[1] != "rato" {
		t.Errorf("branches share storage: a=%v b=%v", a.IncorrectWords(), b.IncorrectWords())
	}

	c, _, _ := base.ApplyLetter("g")
	if base.Tried('g') {
		t.Error("ApplyLetter mutated its receiver")
	}
	if !c.Tried('g') {
		t.Error("new state does not record the letter")
	}
}

func TestGuessDispatch(t *testing.T) {
	s := mustNew(t, "sol", 6)

	tests := []struct {
		input   string
		correct bool
		wantErr error
	}{
		{" o ", true, nil},
		{"sal", false, nil},
		{"", false, ErrInvalidInput},
		{"   ", false, ErrInvalidInput},
		{"O", false, ErrAlreadyTried},
		{"SOL", true, nil},
	}

	for _, tc := range tests {
		next, ok, err := s.Guess(tc.input)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("Guess(%q) error = %v, expected %v", tc.input, err, tc.wantErr)
		}
		if err == nil && ok != tc.correct {
			t.Errorf("Guess(%q) correct = %v, expected %v", tc.input, ok, tc.correct)
		}
		s = next
	}

	if s.Outcome() != Won {
		t.Errorf("Outcome() = %v, expected Won", s.Outcome())
	}
}

func TestProgressLength(t *testing.T) {
	for _, word := range []string{"a", "sol", "programacion", "computadora"} {
		s := mustNew(t, word, 6)
		for _, letter := range FrequencyOrder {
			checkProgress(t, s)
			next, _, err := s.ApplyLetter(string(letter))
			if err != nil {
				t.Fatalf("ApplyLetter(%q) failed: %v", letter, err)
			}
			s = next
		}
		checkProgress(t, s)
	}
}

func checkProgress(t *testing.T, s State) {
	t.Helper()
	p := s.Progress()
	symbols := 0
	for _, r := range p {
		if r < ' ' || r == 0x7f {
			t.Fatalf("Progress() = %q contains a control character", p)
		}
		if r != ' ' {
			symbols++
		}
	}
	if symbols != len(s.Secret()) {
		t.Errorf("Progress() = %q has %d symbols, expected %d", p, symbols, len(s.Secret()))
	}
}

func TestWinTakesPrecedence(t *testing.T) {
	// One attempt left; the last miss and the winning letter in sequence
	s := mustNew(t, "aa", 1)
	s, _, _ = s.ApplyLetter("b")
	if s.Outcome() != Lost {
		t.Fatalf("Outcome() = %v, expected Lost", s.Outcome())
	}

	// Same budget, but the word is completed on the exhausting guess sequence
	s = mustNew(t, "ab", 1)
	s, _, _ = s.ApplyLetter("a")
	s, _, _ = s.ApplyLetter("z")
	s, _, _ = s.ApplyLetter("b")
	if !s.HasWon() || !s.HasLost() {
		t.Fatalf("expected both HasWon and HasLost, got %v/%v", s.HasWon(), s.HasLost())
	}
	if s.Outcome() != Won {
		t.Errorf("Outcome() = %v, expected Won when both hold", s.Outcome())
	}
}

func TestAttemptsRemainingNeverNegative(t *testing.T) {
	s := mustNew(t, "sol", 1)
	for _, l := range []string{"x", "y", "z"} {
		s, _, _ = s.ApplyLetter(l)
	}
	if s.AttemptsUsed() != 3 {
		t.Errorf("AttemptsUsed() = %d, expected 3", s.AttemptsUsed())
	}
	if s.AttemptsRemaining() != 0 {
		t.Errorf("AttemptsRemaining() = %d, expected 0", s.AttemptsRemaining())
	}
}
