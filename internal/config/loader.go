package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the hangman configuration.
// Search order: customPath -> ~/.hangman/config.yaml -> ./configs/hangman.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var candidates []string
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "hangman.yaml"))
	return loadFrom(customPath, candidates)
}

// loadFrom tries customPath strictly, then each candidate leniently, then the
// embedded default.
func loadFrom(customPath string, candidates []string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML, fills omitted fields and validates the result.
func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg, err := cfg.normalized()
	if err != nil {
		return Config{}, err
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalized folds preset names to their canonical lower-case form, so that
// "Hard" in a file means hard everywhere. Two keys folding to the same
// preset are an error.
func (c Config) normalized() (Config, error) {
	if c.Difficulty != "" {
		p, err := ParseDifficulty(string(c.Difficulty))
		if err != nil {
			return Config{}, err
		}
		c.Difficulty = p
	}

	if c.Difficulties != nil {
		folded := make(map[DifficultyPreset]int, len(c.Difficulties))
		for name, n := range c.Difficulties {
			p, err := ParseDifficulty(string(name))
			if err != nil {
				return Config{}, err
			}
			if _, dup := folded[p]; dup {
				return Config{}, fmt.Errorf("config: difficulty %q is set more than once", p)
			}
			folded[p] = n
		}
		c.Difficulties = folded
	}
	return c, nil
}

// Validate checks presets and attempt budgets. Word lists are validated when
// the catalog is built from them.
func (c Config) Validate() error {
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	for preset, n := range c.Difficulties {
		if _, err := ParseDifficulty(string(preset)); err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("config: difficulty %q needs a positive number of attempts, got %d", preset, n)
		}
	}
	if c.Auto.Rounds <= 0 {
		return fmt.Errorf("config: auto.rounds must be positive, got %d", c.Auto.Rounds)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", filename)
}
