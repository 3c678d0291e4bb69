package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"isogramm/internal/puzzle"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	DataPath    string `env:"ISOGRAMM_DATA"         env-default:"data.json"`
	HistoryFile string `env:"ISOGRAMM_HISTORY_FILE"`
	LogLevel    string `env:"LOG_LEVEL"             env-default:"info"`
	Rules       RulesConfig
}

// RulesConfig holds the game constants.
type RulesConfig struct {
	Target          int `env:"ISOGRAMM_TARGET"            env-default:"80"`
	IsogramPoints   int `env:"ISOGRAMM_ISOGRAM_POINTS"    env-default:"10"`
	ShortWordPoints int `env:"ISOGRAMM_SHORT_WORD_POINTS" env-default:"1"`
	MinWordLength   int `env:"ISOGRAMM_MIN_WORD_LENGTH"   env-default:"4"`
}

// loadConfig loads .env if present, then reads the environment over
// the defaults.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logDebug("No .env file loaded: %v", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate rejects rule values that make the game meaningless.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"ISOGRAMM_TARGET", c.Rules.Target},
		{"ISOGRAMM_ISOGRAM_POINTS", c.Rules.IsogramPoints},
		{"ISOGRAMM_SHORT_WORD_POINTS", c.Rules.ShortWordPoints},
		{"ISOGRAMM_MIN_WORD_LENGTH", c.Rules.MinWordLength},
	}
	for _, chk := range checks {
		if chk.value < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", chk.name, chk.value)
		}
	}
	if c.DataPath == "" {
		return fmt.Errorf("ISOGRAMM_DATA must not be empty")
	}
	return nil
}

// PuzzleRules converts the configured values for the pipeline.
func (c Config) PuzzleRules() puzzle.Rules {
	return puzzle.Rules{
		Target:          c.Rules.Target,
		IsogramPoints:   c.Rules.IsogramPoints,
		ShortWordPoints: c.Rules.ShortWordPoints,
		MinWordLength:   c.Rules.MinWordLength,
	}
}
