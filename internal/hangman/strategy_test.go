package hangman

import (
	"testing"
)

func TestFrequencyOrderCoversAlphabet(t *testing.T) {
	if len(FrequencyOrder) != 26 {
		t.Fatalf("FrequencyOrder has %d letters, expected 26", len(FrequencyOrder))
	}
	seen := make(map[rune]bool)
	for _, r := range FrequencyOrder {
		if r < 'a' || r > 'z' {
			t.Errorf("FrequencyOrder contains non a-z letter %q", r)
		}
		if seen[r] {
			t.Errorf("FrequencyOrder repeats %q", r)
		}
		seen[r] = true
	}
}

func TestNextLetterFollowsFrequency(t *testing.T) {
	s := mustNew(t, "sol", 30)

	if got := NextLetter(s); got != 'e' {
		t.Errorf("NextLetter(empty) = %q, expected 'e'", got)
	}

	s, _, _ = s.ApplyLetter("e")
	s, _, _ = s.ApplyLetter("o")
	if got := NextLetter(s); got != 'a' {
		t.Errorf("NextLetter after e,o = %q, expected 'a'", got)
	}
}

func TestNextLetterNeverRepeats(t *testing.T) {
	s := mustNew(t, "murcielago", 30)
	seen := make(map[rune]bool)

	for i := 0; i < 26; i++ {
		r := NextLetter(s)
		if s.Tried(r) {
			t.Fatalf("step %d: NextLetter returned tried letter %q", i, r)
		}
		if seen[r] {
			t.Fatalf("step %d: NextLetter returned %q twice", i, r)
		}
		seen[r] = true

		var err error
		s, _, err = s.ApplyLetter(string(r))
		if err != nil {
			t.Fatalf("step %d: ApplyLetter(%q) failed: %v", i, r, err)
		}
	}

	if len(seen) != 26 {
		t.Errorf("expected all 26 letters, got %d", len(seen))
	}
	if got := NextLetter(s); got != DefaultLetter {
		t.Errorf("NextLetter(exhausted) = %q, expected DefaultLetter", got)
	}
}

func TestNextLetterSkipsLettersFromWordGuess(t *testing.T) {
	// A correct word guess marks every letter as tried
	s := mustNew(t, "eao", 6)
	s, _, _ = s.ApplyWordGuess("eao")
	if got := NextLetter(s); got != 's' {
		t.Errorf("NextLetter = %q, expected 's'", got)
	}
}

func TestAutoPlayTerminates(t *testing.T) {
	words := []string{"sol", "python", "programacion", "computadora", "xilofono", "kiwi", "jazz", "q"}
	budgets := []int{1, 4, 6, 8, 26}

	for _, word := range words {
		for _, budget := range budgets {
			s := mustNew(t, word, budget)
			letters := 0
			for !s.Outcome().Done() {
				if letters >= 26 {
					t.Fatalf("%s/%d: no terminal state after 26 letters", word, budget)
				}
				var err error
				s, _, err = s.ApplyLetter(string(NextLetter(s)))
				if err != nil {
					t.Fatalf("%s/%d: auto guess rejected: %v", word, budget, err)
				}
				letters++
			}
			if budget == 26 && s.Outcome() != Won {
				t.Errorf("%s/%d: expected a win with a full alphabet budget, got %v", word, budget, s.Outcome())
			}
		}
	}
}
