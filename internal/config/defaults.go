package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed. It carries a single small category.
func DefaultConfig() Config {
	return Config{
		Difficulty: DifficultyNormal,
		Difficulties: map[DifficultyPreset]int{
			DifficultyEasy:   DefaultMaxAttempts(DifficultyEasy),
			DifficultyNormal: DefaultMaxAttempts(DifficultyNormal),
			DifficultyHard:   DefaultMaxAttempts(DifficultyHard),
		},
		Auto: AutoConfig{
			Rounds: 1,
		},
		Categories: map[string][]string{
			"tecnologia": {
				"python", "programacion", "computadora", "teclado",
				"mouse", "monitor", "algoritmo", "variable",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
