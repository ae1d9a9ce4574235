// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: User configuration loaded from a TOML file over built-in defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full user configuration. Every field has a usable
// default, so a missing or partial config file is fine.
type Config struct {
	Keys    Keys    `toml:"keys"`
	Theme   Theme   `toml:"theme"`
	Preview Preview `toml:"preview"`
}

// Keys maps actions to key names as the input dispatcher reports them.
// Rune keys are case-insensitive in the file and normalized to upper
// case on load.
type Keys struct {
	Quit     []string `toml:"quit"`
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Activate []string `toml:"activate"`
	Extract  []string `toml:"extract"`
}

// Theme holds list colors by entry type, as tcell color names.
type Theme struct {
	Directory string `toml:"directory"`
	File      string `toml:"file"`
}

// Preview controls the preview pane.
type Preview struct {
	MaxBytes int    `toml:"max_bytes"`
	Style    string `toml:"style"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: Keys{
			Quit:     []string{"Q", "ESCAPE"},
			Up:       []string{"UP"},
			Down:     []string{"DOWN"},
			Activate: []string{"ENTER", " ", "+"},
			Extract:  []string{"X"},
		},
		Theme: Theme{
			Directory: "blue",
			File:      "",
		},
		Preview: Preview{
			MaxBytes: 4096,
			Style:    "catppuccin-mocha",
		},
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Keys.normalize()
	if cfg.Preview.MaxBytes <= 0 {
		cfg.Preview.MaxBytes = Default().Preview.MaxBytes
	}
	return cfg, nil
}

func (k *Keys) normalize() {
	for _, keys := range [][]string{k.Quit, k.Up, k.Down, k.Activate, k.Extract} {
		for i, key := range keys {
			keys[i] = strings.ToUpper(key)
		}
	}
}
