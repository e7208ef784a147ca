// Package config loads runtime settings: defaults, then an optional YAML
// file, then environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/talgya/chalkboard/internal/events"
)

// Config holds every runtime knob for the simulator.
type Config struct {
	// Seed drives the whole run; 0 asks for a crypto-random seed.
	Seed int64 `env:"CLASSSIM_SEED" yaml:"seed"`

	ClassSize  int    `env:"CLASSSIM_CLASS_SIZE" yaml:"class_size"`
	Difficulty string `env:"CLASSSIM_DIFFICULTY" yaml:"difficulty"`

	DBPath           string        `env:"CLASSSIM_DB_PATH" yaml:"db_path"`
	AutosaveInterval time.Duration `env:"CLASSSIM_AUTOSAVE_INTERVAL" yaml:"autosave_interval"`

	APIPort int `env:"CLASSSIM_API_PORT" yaml:"api_port"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		ClassSize:        15,
		Difficulty:       "normal",
		DBPath:           "data/classroom.db",
		AutosaveInterval: time.Minute,
		APIPort:          8080,
	}
}

// Load builds the config: defaults, then the optional YAML file at path,
// then environment variables on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.ParsedDifficulty(); err != nil {
		return Config{}, err
	}
	if cfg.ClassSize <= 0 {
		return Config{}, fmt.Errorf("class size must be positive, got %d", cfg.ClassSize)
	}

	return cfg, nil
}

// ParsedDifficulty maps the difficulty string to the engine enum.
func (c *Config) ParsedDifficulty() (events.Difficulty, error) {
	switch c.Difficulty {
	case "easy":
		return events.DifficultyEasy, nil
	case "", "normal":
		return events.DifficultyNormal, nil
	case "hard":
		return events.DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
}
