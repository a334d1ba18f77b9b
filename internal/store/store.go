// Package store provides SQLite-backed persistence for analysis run
// history, so repeated analyses of a portfolio can be listed and compared
// without re-scanning every project.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one persisted analysis of a project root.
type Run struct {
	ID              string
	Project         string
	Root            string
	FilesAnalyzed   int
	TotalLines      int
	ComplexityScore int
	Technologies    []string
	CreatedAt       time.Time
}

// Store wraps a SQLite database holding analysis history.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite database at dbPath and ensures the
// runs table exists. Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id             TEXT PRIMARY KEY,
		project        TEXT NOT NULL,
		root           TEXT NOT NULL,
		files_analyzed INTEGER NOT NULL,
		total_lines    INTEGER NOT NULL,
		complexity     INTEGER NOT NULL,
		technologies   TEXT NOT NULL,
		created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
	)`)
	if err != nil {
		return fmt.Errorf("exec create runs: %w", err)
	}
	return nil
}

// SaveRun persists one analysis run and returns its generated ID.
func (s *Store) SaveRun(run Run) (string, error) {
	id := uuid.New().String()

	techs, err := json.Marshal(run.Technologies)
	if err != nil {
		return "", fmt.Errorf("encoding technologies: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (id, project, root, files_analyzed, total_lines, complexity, technologies)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, run.Project, run.Root, run.FilesAnalyzed, run.TotalLines, run.ComplexityScore, string(techs),
	)
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit
// returns everything.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, project, root, files_analyzed, total_lines, complexity, technologies, created_at
	          FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recent run for the named project, or nil if
// the project has never been analyzed.
func (s *Store) LatestRun(project string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, project, root, files_analyzed, total_lines, complexity, technologies, created_at
		 FROM runs WHERE project = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, project,
	)
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	run, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var techs string
	if err := rows.Scan(&run.ID, &run.Project, &run.Root, &run.FilesAnalyzed,
		&run.TotalLines, &run.ComplexityScore, &techs, &run.CreatedAt); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	if err := json.Unmarshal([]byte(techs), &run.Technologies); err != nil {
		return Run{}, fmt.Errorf("decoding technologies: %w", err)
	}
	return run, nil
}
