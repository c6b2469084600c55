// Package history persists decisions in SQLite for later tallying.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id               TEXT PRIMARY KEY,
	decision         INTEGER NOT NULL,
	answer           TEXT NOT NULL,
	raw_value        REAL NOT NULL,
	entropy_sources  INTEGER NOT NULL,
	chaos_iterations INTEGER NOT NULL,
	created_at       TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store manages the decision log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region record
// Record appends a decision to the log and returns the stored entry.
func (s *Store) Record(res oracle.Result) (Entry, error) {
	e := Entry{
		ID:              uuid.New().String(),
		Decision:        res.Decision,
		Answer:          res.Answer,
		RawValue:        res.RawValue,
		EntropySources:  res.EntropySources,
		ChaosIterations: res.ChaosIterations,
		CreatedAt:       time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO decisions (id, decision, answer, raw_value, entropy_sources, chaos_iterations, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Decision, e.Answer, e.RawValue, e.EntropySources, e.ChaosIterations,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record decision: %w", err)
	}
	return e, nil
}

// #endregion record

// #region recent
// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, decision, answer, raw_value, entropy_sources, chaos_iterations, created_at
		 FROM decisions ORDER BY created_at DESC, rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Decision, &e.Answer, &e.RawValue, &e.EntropySources, &e.ChaosIterations, &created); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region tally
// Tally aggregates yes/no counts across the whole log.
func (s *Store) Tally() (Tally, error) {
	row := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(decision), 0) FROM decisions`)
	var t Tally
	if err := row.Scan(&t.Total, &t.Yes); err != nil {
		return Tally{}, fmt.Errorf("tally: %w", err)
	}
	t.No = t.Total - t.Yes
	return t, nil
}

// #endregion tally
