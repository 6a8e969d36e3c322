// Package config handles loading, validating and saving puzzle definitions.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/nosines/internal/puzzle"
	"gopkg.in/yaml.v3"
)

// PuzzleFile is the file name looked up in the config directory.
const PuzzleFile = "puzzle.yaml"

//go:embed puzzles/nosines.yaml
var builtin []byte

// ErrInvalidPuzzle wraps every validation failure.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// Parse decodes and validates a YAML puzzle definition.
func Parse(data []byte) (*puzzle.Config, error) {
	var cfg puzzle.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing puzzle: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a puzzle definition from a YAML file.
func Load(path string) (*puzzle.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in nasal vowel puzzle.
func Default() *puzzle.Config {
	cfg, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in puzzle: %v", err))
	}
	return cfg
}

// Resolve picks the puzzle to play: an explicit path wins, then
// puzzle.yaml in the config directory, then the built-in puzzle.
func Resolve(path, configDir string) (*puzzle.Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	if configDir != "" {
		candidate := filepath.Join(configDir, PuzzleFile)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		}
	}

	return Default(), "", nil
}

// Save writes a puzzle definition to a YAML file.
func Save(path string, cfg *puzzle.Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling puzzle: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing puzzle file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nosines"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return nil
}
