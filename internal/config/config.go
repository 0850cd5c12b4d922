// Package config loads the trainroute TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no -config flag is given; a missing file there
// is not an error.
const DefaultPath = "trainroute.toml"

// ErrInvalid indicates a configuration value that parses but makes no sense.
var ErrInvalid = errors.New("config: invalid value")

// MapEntry names a board file.
type MapEntry struct {
	Name string
	Path string
}

// Config is the resolved shell configuration.
type Config struct {
	// LogLevel is a zerolog level name.
	LogLevel string

	// TrainBudget is the number of trains a player owns; routes costing more
	// get a warning.
	TrainBudget int

	// Prompt is printed before every command.
	Prompt string

	// Maps is the board catalogue offered at startup, in menu order.
	Maps []MapEntry
}

type fileMap struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type fileConfig struct {
	LogLevel    string    `toml:"log_level"`
	TrainBudget int       `toml:"train_budget"`
	Prompt      string    `toml:"prompt"`
	Maps        []fileMap `toml:"maps"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		TrainBudget: 45,
		Prompt:      "> ",
		Maps: []MapEntry{
			{Name: "USA", Path: "maps/usa.txt"},
		},
	}
}

// Load reads path over DefaultConfig; only keys present in the file override.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	if meta.IsDefined("train_budget") {
		if raw.TrainBudget <= 0 {
			return Config{}, fmt.Errorf("train_budget %d: %w", raw.TrainBudget, ErrInvalid)
		}
		cfg.TrainBudget = raw.TrainBudget
	}

	if meta.IsDefined("prompt") {
		cfg.Prompt = raw.Prompt
	}

	if meta.IsDefined("maps") {
		maps, err := normalizeMaps(raw.Maps)
		if err != nil {
			return Config{}, err
		}
		cfg.Maps = maps
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to DefaultConfig when path is the
// default location and does not exist.
func LoadOrDefault(path string) (Config, error) {
	if path == DefaultPath {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
	}

	return Load(path)
}

func normalizeMaps(in []fileMap) ([]MapEntry, error) {
	out := make([]MapEntry, 0, len(in))
	for i, m := range in {
		name := strings.TrimSpace(m.Name)
		path := strings.TrimSpace(m.Path)
		if path == "" {
			return nil, fmt.Errorf("maps[%d]: empty path: %w", i, ErrInvalid)
		}
		if name == "" {
			name = path
		}
		out = append(out, MapEntry{Name: name, Path: path})
	}

	return out, nil
}

// Lookup finds a catalogue entry by case-insensitive name.
func (c Config) Lookup(name string) (MapEntry, bool) {
	for _, m := range c.Maps {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}

	return MapEntry{}, false
}
