package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// DefaultMaxAttempts returns the built-in attempt budget for a preset.
// Normal matches the classic six-part gallows.
func DefaultMaxAttempts(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return 6
	}
}

// ParseDifficulty converts a name into a preset, case-insensitively.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// Next cycles to the following preset, wrapping around after hard.
func (p DifficultyPreset) Next() DifficultyPreset {
	presets := Presets()
	for i, q := range presets {
		if q == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return DifficultyNormal
}

// Prev cycles to the preceding preset, wrapping around before easy.
func (p DifficultyPreset) Prev() DifficultyPreset {
	presets := Presets()
	for i, q := range presets {
		if q == p {
			return presets[(i+len(presets)-1)%len(presets)]
		}
	}
	return DifficultyNormal
}

// Title returns a capitalised name for display.
func (p DifficultyPreset) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}
