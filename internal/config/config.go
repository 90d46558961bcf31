// Package config provides YAML-based game configuration loading,
// difficulty presets and environment toggles for the hangman game.
package config

// Config contains everything loaded from the YAML configuration file.
type Config struct {
	Difficulty   DifficultyPreset         `yaml:"difficulty"`
	Difficulties map[DifficultyPreset]int `yaml:"difficulties"`
	Auto         AutoConfig               `yaml:"auto"`
	Categories   map[string][]string      `yaml:"categories"`
}

// AutoConfig controls unattended play.
type AutoConfig struct {
	Rounds int `yaml:"rounds"` // Rounds to play before quitting
}

// MaxAttempts returns the attempt budget for a preset.
// Presets missing from the file fall back to the built-in values.
func (c Config) MaxAttempts(preset DifficultyPreset) int {
	if n, ok := c.Difficulties[preset]; ok && n > 0 {
		return n
	}
	return DefaultMaxAttempts(preset)
}

// withDefaults fills fields a user file left out from the built-in config.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Difficulty == "" {
		c.Difficulty = def.Difficulty
	}
	if c.Difficulties == nil {
		c.Difficulties = make(map[DifficultyPreset]int, len(def.Difficulties))
	}
	for preset, n := range def.Difficulties {
		if _, ok := c.Difficulties[preset]; !ok {
			c.Difficulties[preset] = n
		}
	}
	if c.Auto.Rounds <= 0 {
		c.Auto.Rounds = def.Auto.Rounds
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	return c
}
