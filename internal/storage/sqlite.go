// Package storage provides SQLite-based persistence for solved searches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/katalvlaran/crucible/gridgraph"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded solve.
type Run struct {
	ID           int64
	Digest       string // sha256 of the grid text, see Digest
	Rows, Cols   int
	Mode         string
	MinRun       int
	MaxRun       int
	Model        string
	GoalRunCheck bool
	Cost         int64
	Settled      int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Key identifies the inputs of a solve; two runs with the same Key must
// have the same cost.
type Key struct {
	Digest       string
	MinRun       int
	MaxRun       int
	Model        string
	GoalRunCheck bool
}

// Digest returns a stable hex identifier for the grid contents.
func Digest(gg *gridgraph.GridGraph) string {
	sum := sha256.Sum256([]byte(gg.String()))
	return hex.EncodeToString(sum[:])
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A leading "~" is expanded to the home directory.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			digest TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			mode TEXT NOT NULL,
			min_run INTEGER NOT NULL,
			max_run INTEGER NOT NULL,
			model TEXT NOT NULL,
			goal_run_check INTEGER NOT NULL,
			cost INTEGER NOT NULL,
			settled INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_key ON runs(digest, min_run, max_run, model, goal_run_check);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a solve and returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (digest, grid_rows, grid_cols, mode, min_run, max_run, model, goal_run_check, cost, settled, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Digest, r.Rows, r.Cols, r.Mode, r.MinRun, r.MaxRun, r.Model, r.GoalRunCheck, r.Cost, r.Settled, int64(r.Duration),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Lookup returns the cost recorded for k, if any run matches.
func (s *Store) Lookup(k Key) (cost int64, found bool, err error) {
	err = s.db.QueryRow(
		`SELECT cost FROM runs
		 WHERE digest = ? AND min_run = ? AND max_run = ? AND model = ? AND goal_run_check = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		k.Digest, k.MinRun, k.MaxRun, k.Model, k.GoalRunCheck,
	).Scan(&cost)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot look up run: %w", err)
	}

	return cost, true, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, digest, grid_rows, grid_cols, mode, min_run, max_run, model, goal_run_check, cost, settled, duration_ns, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationNS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Digest, &r.Rows, &r.Cols, &r.Mode, &r.MinRun, &r.MaxRun,
			&r.Model, &r.GoalRunCheck, &r.Cost, &r.Settled, &durationNS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationNS)

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
