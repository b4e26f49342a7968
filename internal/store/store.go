// Package store is the SQLite persistence layer: assessment records
// and the LLM call audit log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	id                  TEXT PRIMARY KEY,
	owner_id            TEXT NOT NULL,
	quiz_score          REAL NOT NULL,
	technical_score     REAL,
	communication_score REAL,
	category            TEXT NOT NULL,
	questions           TEXT NOT NULL,
	strengths           TEXT NOT NULL DEFAULT '[]',
	improvement_areas   TEXT NOT NULL DEFAULT '[]',
	improvement_tip     TEXT,
	created_at          TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_owner ON assessments(owner_id, created_at);

CREATE TABLE IF NOT EXISTS llm_calls (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	latency_ms    INTEGER NOT NULL DEFAULT 0,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PREPDECK_DB environment variable
// 2. $XDG_DATA_HOME/prepdeck/prepdeck.db
// 3. ~/.local/share/prepdeck/prepdeck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREPDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "prepdeck", "prepdeck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
