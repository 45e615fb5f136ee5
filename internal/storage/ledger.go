// Package storage persists the rename ledger in a SQLite database so
// applied renames can be listed and undone.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one applied rename.
type Record struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Dir       string    `json:"dir"`
	Original  string    `json:"original"`
	NewName   string    `json:"new_name"`
	DOI       string    `json:"doi,omitempty"`
	Source    string    `json:"source"`
	RenamedAt time.Time `json:"renamed_at"`
}

// Ledger wraps a SQLite database holding rename history.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path, creating
// parent directories as needed.
func Open(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS renames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			dir TEXT NOT NULL,
			original TEXT NOT NULL,
			new_name TEXT NOT NULL,
			doi TEXT,
			source TEXT NOT NULL,
			renamed_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_renames_run ON renames(run_id);
	`
	_, err := db.Exec(schema)
	return err
}

// Append records the renames of one run in a single transaction.
func (l *Ledger) Append(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO renames (run_id, dir, original, new_name, doi, source, renamed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.RunID, r.Dir, r.Original, r.NewName, r.DOI, r.Source,
			r.RenamedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("inserting record: %w", err)
		}
	}

	return tx.Commit()
}

// History returns the most recent records, newest first. limit <= 0
// returns everything.
func (l *Ledger) History(limit int) ([]Record, error) {
	query := `
		SELECT id, run_id, dir, original, new_name, COALESCE(doi, ''), source, renamed_at
		FROM renames ORDER BY id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = l.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = l.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// LastRun returns the id and records of the most recent run, oldest
// record first. An empty ledger yields an empty id and no error.
func (l *Ledger) LastRun() (string, []Record, error) {
	var runID string
	err := l.db.QueryRow(`SELECT run_id FROM renames ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("querying last run: %w", err)
	}

	rows, err := l.db.Query(`
		SELECT id, run_id, dir, original, new_name, COALESCE(doi, ''), source, renamed_at
		FROM renames WHERE run_id = ? ORDER BY id ASC
	`, runID)
	if err != nil {
		return "", nil, fmt.Errorf("querying run: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	return runID, records, err
}

// DeleteRun removes all records of a run (after a successful undo).
func (l *Ledger) DeleteRun(runID string) error {
	_, err := l.db.Exec(`DELETE FROM renames WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		var renamedAt string
		if err := rows.Scan(&r.ID, &r.RunID, &r.Dir, &r.Original, &r.NewName, &r.DOI, &r.Source, &renamedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, renamedAt); err == nil {
			r.RenamedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
