package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Preview.MaxBytes != 4096 || cfg.Preview.Style != "catppuccin-mocha" {
		t.Errorf("preview defaults: %+v", cfg.Preview)
	}
	if len(cfg.Keys.Quit) != 2 || cfg.Keys.Quit[0] != "Q" {
		t.Errorf("quit keys: %v", cfg.Keys.Quit)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[keys]
quit = ["escape"]

[theme]
directory = "green"

[preview]
max_bytes = 1024
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Keys.Quit) != 1 || cfg.Keys.Quit[0] != "ESCAPE" {
		t.Errorf("quit keys not normalized: %v", cfg.Keys.Quit)
	}
	// Unset sections keep their defaults.
	if len(cfg.Keys.Activate) != 3 {
		t.Errorf("activate keys: %v", cfg.Keys.Activate)
	}
	if cfg.Theme.Directory != "green" {
		t.Errorf("directory color: %q", cfg.Theme.Directory)
	}
	if cfg.Preview.MaxBytes != 1024 || cfg.Preview.Style != "catppuccin-mocha" {
		t.Errorf("preview: %+v", cfg.Preview)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("keys = {"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("malformed config accepted")
	}
	// Caller still gets a usable config.
	if cfg.Preview.MaxBytes != 4096 {
		t.Errorf("fallback config: %+v", cfg.Preview)
	}
}

func TestDefaultPaths(t *testing.T) {
	p, err := DefaultPaths()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if filepath.Base(p.ConfigDir) != ".asset-index-browser" {
		t.Errorf("config dir: %q", p.ConfigDir)
	}
	if filepath.Dir(p.HistoryPath) != p.ConfigDir {
		t.Errorf("history path: %q", p.HistoryPath)
	}
}
