// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records built volumes in a small SQLite database so
// chairs can see what has been produced across venues and years. The
// build pipeline itself never reads the catalog; recording is opt-in
// and rebuilding the same volume replaces its row.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the volume catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path and bootstraps
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS volumes (
		code TEXT PRIMARY KEY,
		abbrev TEXT NOT NULL,
		year TEXT NOT NULL,
		title TEXT,
		papers INTEGER NOT NULL,
		built_at TEXT NOT NULL
	)`)
	return err
}

// Volume is one catalog row: a volume that was built, identified by
// its anthology code prefix (e.g. "W19-02").
type Volume struct {
	Code    string    `json:"code"`
	Abbrev  string    `json:"abbrev"`
	Year    string    `json:"year"`
	Title   string    `json:"title"`
	Papers  int       `json:"papers"`
	BuiltAt time.Time `json:"built_at"`
}

// Record upserts a built volume keyed by its code.
func (s *Store) Record(ctx context.Context, v Volume) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO volumes (code, abbrev, year, title, papers, built_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET
			abbrev=excluded.abbrev, year=excluded.year, title=excluded.title,
			papers=excluded.papers, built_at=excluded.built_at`,
		v.Code, v.Abbrev, v.Year, v.Title, v.Papers,
		v.BuiltAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording volume %s: %w", v.Code, err)
	}
	return nil
}

// List returns all recorded volumes ordered by code.
func (s *Store) List(ctx context.Context) ([]Volume, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, abbrev, year, title, papers, built_at FROM volumes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying volumes: %w", err)
	}
	defer rows.Close()

	var volumes []Volume
	for rows.Next() {
		var v Volume
		var builtAt string
		if err := rows.Scan(&v.Code, &v.Abbrev, &v.Year, &v.Title, &v.Papers, &builtAt); err != nil {
			return nil, fmt.Errorf("scanning volume row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, builtAt); parseErr == nil {
			v.BuiltAt = t
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading volume rows: %w", err)
	}
	return volumes, nil
}
