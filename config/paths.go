// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Locations of the browser's per-user files.

package config

import (
	"os"
	"path/filepath"
)

// Paths collects every per-user file the browser touches.
type Paths struct {
	ConfigDir   string
	ConfigPath  string
	HistoryPath string
	LogPath     string
}

// DefaultPaths resolves the per-user directory, ~/.asset-index-browser.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	dir := filepath.Join(home, ".asset-index-browser")
	return Paths{
		ConfigDir:   dir,
		ConfigPath:  filepath.Join(dir, "config.toml"),
		HistoryPath: filepath.Join(dir, "history.db"),
		LogPath:     filepath.Join(dir, "browser.log"),
	}, nil
}

// EnsureConfigDir creates the per-user directory if it is missing.
func (p Paths) EnsureConfigDir() error {
	return os.MkdirAll(p.ConfigDir, 0o755)
}
