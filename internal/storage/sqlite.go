// Package storage provides SQLite-based persistence for finished game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a recorded game ended.
type Outcome string

const (
	OutcomeDead Outcome = "dead"
	OutcomeWin  Outcome = "win"
)

// Result represents a single finished game.
type Result struct {
	ID        int64
	RunID     string // Unique per game, assigned on save
	Variant   string // Board rules key, e.g. "wrap-25x15"
	Score     int
	Outcome   Outcome
	Seed      uint64
	Length    int // Final snake length
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a variant.
type Stats struct {
	Variant    string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			seed INTEGER NOT NULL,
			length INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(variant, score DESC);
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

// SaveResult records a finished game and returns it with ID and RunID set.
// A RunID already present on r is kept.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	// Seeds use the full uint64 range; SQLite integers are signed.
	res, err := s.db.Exec(
		`INSERT INTO results (run_id, variant, score, outcome, seed, length)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Variant, r.Score, string(r.Outcome), int64(r.Seed), r.Length,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id

	return r, nil
}

const resultColumns = `id, run_id, variant, score, outcome, seed, length, created_at`

// TopScores retrieves the top N results for the given variant.
// Results are ordered by score descending, earlier games first on ties.
func (s *Store) TopScores(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	return scanResults(rows)
}

// AllResults retrieves all results for the given variant (no limit).
func (s *Store) AllResults(variant string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	return scanResults(rows)
}

// ResultByRunID retrieves a single result. Returns nil if it does not exist.
func (s *Store) ResultByRunID(runID string) (*Result, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+` FROM results WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	results, err := scanResults(rows)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var seed int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Variant, &r.Score, &outcome, &seed, &r.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Seed = uint64(seed)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no results exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Variants returns every variant with at least one result, sorted.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM results ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan variant: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return variants, nil
}

// ClearScores deletes all results for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// ClearAll deletes every stored result.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetStats(variant string) (*Stats, error) {
	stats := &Stats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(outcome = 'win'), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE variant = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), SUM(outcome = 'win'), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM results
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.GamesCount, &st.Wins, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
