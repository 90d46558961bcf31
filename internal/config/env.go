package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables understood by the game.
const (
	EnvAuto       = "HANGMAN_AUTO"
	EnvDifficulty = "HANGMAN_DIFFICULTY"
	EnvConfig     = "HANGMAN_CONFIG"
	EnvColor      = "HANGMAN_COLOR"
	EnvNoColor    = "NO_COLOR"
	EnvLogLevel   = "HANGMAN_LOG_LEVEL"
	EnvLogFile    = "HANGMAN_LOG_FILE"
)

// Env holds the toggles read from the environment.
type Env struct {
	Auto       bool   // every prompt answered by the auto-strategy
	Color      bool   // ANSI colors in output
	Difficulty string // overrides the config file preset when set
	ConfigPath string // explicit config file
	LogLevel   string
	LogFile    string
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load %s: %w", path, err)
	}
	return nil
}

// ReadEnv reads the toggles from the process environment.
func ReadEnv() Env {
	return EnvFrom(os.LookupEnv)
}

// EnvFrom reads the toggles through the given lookup function.
func EnvFrom(lookup func(string) (string, bool)) Env {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	env := Env{
		Auto:       parseBool(get(EnvAuto), false),
		Color:      true,
		Difficulty: get(EnvDifficulty),
		ConfigPath: get(EnvConfig),
		LogLevel:   get(EnvLogLevel),
		LogFile:    get(EnvLogFile),
	}

	// https://no-color.org: any non-empty value disables color
	if get(EnvNoColor) != "" {
		env.Color = false
	}
	if v := get(EnvColor); v != "" {
		env.Color = parseBool(v, env.Color)
	}
	return env
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "":
		return def
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Settings is the resolved configuration handed to the game components.
// Nothing reads the environment after this point.
type Settings struct {
	Difficulty DifficultyPreset
	Auto       bool
	AutoRounds int
	Color      bool
}

// Resolve combines the file configuration with the environment toggles.
func Resolve(cfg Config, env Env) (Settings, error) {
	s := Settings{
		Difficulty: cfg.Difficulty,
		Auto:       env.Auto,
		AutoRounds: cfg.Auto.Rounds,
		Color:      env.Color,
	}
	if env.Difficulty != "" {
		preset, err := ParseDifficulty(env.Difficulty)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		s.Difficulty = preset
	}
	if s.Difficulty == "" {
		s.Difficulty = DifficultyNormal
	}
	if s.AutoRounds <= 0 {
		s.AutoRounds = 1
	}
	return s, nil
}
