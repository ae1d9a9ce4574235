// Copyright © 2025 Asset Index Browser contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/history/history.go
// Summary: SQLite journal of opened indexes and extraction runs.

package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_indexes (
	path      TEXT PRIMARY KEY,
	opened_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS extractions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	virtual_path TEXT NOT NULL,
	destination  TEXT NOT NULL,
	files        INTEGER NOT NULL,
	extracted_at TIMESTAMP NOT NULL
);
`

// Store is the on-disk journal. A nil *Store is a valid no-op journal,
// so callers can run with history disabled without guarding every call.
type Store struct {
	db *sql.DB
}

// Open creates or opens the journal database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// RecordIndex notes that an index file was opened, refreshing the
// timestamp if it was seen before.
func (s *Store) RecordIndex(path string) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO recent_indexes (path, opened_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at`,
		path, time.Now().UTC(),
	)
	return err
}

// RecordExtraction journals one extraction run.
func (s *Store) RecordExtraction(virtualPath, destination string, files int) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO extractions (virtual_path, destination, files, extracted_at) VALUES (?, ?, ?, ?)`,
		virtualPath, destination, files, time.Now().UTC(),
	)
	return err
}

// Recent returns up to n index paths, most recently opened first.
func (s *Store) Recent(n int) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT path FROM recent_indexes ORDER BY opened_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
