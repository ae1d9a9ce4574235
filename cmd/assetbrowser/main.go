// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/assetbrowser/main.go
// Summary: Entry point for the asset index browser.
// Usage: Run `assetbrowser <index.json>` inside a terminal.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/Kriper1111/asset-index-browser/browser"
	"github.com/Kriper1111/asset-index-browser/config"
	"github.com/Kriper1111/asset-index-browser/internal/assetindex"
	"github.com/Kriper1111/asset-index-browser/internal/history"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("assetbrowser", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file (default: ~/.asset-index-browser/config.toml)")
	logPath := fs.String("log", "", "Log file (default: ~/.asset-index-browser/browser.log)")
	noHistory := fs.Bool("no-history", false, "Do not record opened indexes and extractions")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: assetbrowser [flags] <index.json>")
	}
	indexPath := fs.Arg(0)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolve user paths: %w", err)
	}
	if err := paths.EnsureConfigDir(); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if *configPath == "" {
		*configPath = paths.ConfigPath
	}
	if *logPath == "" {
		*logPath = paths.LogPath
	}

	// The terminal is taken over by the UI, so logs go to a file.
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		// A broken config file should not lock the user out.
		log.Printf("config: %v, using defaults", err)
	}

	ix, err := assetindex.Load(indexPath)
	if err != nil {
		return err
	}

	var journal *history.Store
	if !*noHistory {
		journal, err = history.Open(paths.HistoryPath)
		if err != nil {
			log.Printf("history: %v, continuing without", err)
		} else {
			defer journal.Close()
			if err := journal.RecordIndex(indexPath); err != nil {
				log.Printf("history: record index: %v", err)
			}
		}
	}

	log.Printf("browsing %s (%d objects)", indexPath, len(ix.Objects))
	if err := browser.New(ix, cfg, journal).Run(); err != nil {
		return err
	}
	log.Printf("session over for %s", indexPath)
	return nil
}
