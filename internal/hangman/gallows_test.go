package hangman

import "testing"

func TestGallowsStagesShareWidth(t *testing.T) {
	height := len(Gallows(0))
	for stage := 0; stage < StageCount; stage++ {
		lines := Gallows(stage)
		if len(lines) != height {
			t.Errorf("stage %d has %d lines, expected %d", stage, len(lines), height)
		}
		for _, line := range lines {
			if len(line) > 9 {
				t.Errorf("stage %d line %q is wider than the base", stage, line)
			}
		}
	}

	// Clamped
	if Gallows(-3)[2] != Gallows(0)[2] || Gallows(99)[4] != Gallows(StageCount-1)[4] {
		t.Error("Gallows does not clamp out-of-range stages")
	}
}

func TestStageScaling(t *testing.T) {
	tests := []struct {
		name   string
		budget int
		misses string
		want   int
	}{
		{"fresh round", 6, "", 0},
		{"classic one miss", 6, "x", 1},
		{"classic five misses", 6, "vwxyz", 5},
		{"classic lost", 6, "uvwxyz", 6},
		{"easy first miss shows", 8, "x", 1},
		{"easy one left", 8, "tuvwxyz", 5},
		{"easy lost", 8, "qtuvwxyz", 6},
		{"hard two misses", 4, "xy", 3},
		{"hard lost", 4, "wxyz", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, "sol", tc.budget)
			for _, r := range tc.misses {
				s, _, _ = s.ApplyLetter(string(r))
			}
			if got := Stage(s); got != tc.want {
				t.Errorf("Stage() = %d, expected %d", got, tc.want)
			}
		})
	}
}
