// Package storage provides SQLite-based persistence for player progression and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "local"

// busyTimeoutMS is how long a connection waits on a locked database before
// failing with SQLITE_BUSY. SSH sessions share one file.
const busyTimeoutMS = 5000

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID        string
	Profile   string
	Score     int
	Elapsed   float64 // seconds alive
	XPEarned  float64
	Bonuses   int
	CreatedAt time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// The pragma is part of the DSN so every pooled connection gets it.
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_pragma=busy_timeout(%d)", dbPath, busyTimeoutMS))
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
		CREATE TABLE IF NOT EXISTS kv (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			elapsed REAL NOT NULL DEFAULT 0,
			xp_earned REAL NOT NULL DEFAULT 0,
			bonuses INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(profile, score DESC);
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

// GetValue reads a progression value. found is false when the key was never written.
func (s *Store) GetValue(profile, key string) (value string, found bool, err error) {
	err = s.db.QueryRow(
		"SELECT value FROM kv WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s/%s: %w", profile, key, err)
	}
	return value, true, nil
}

// SetValue writes a progression value, replacing any previous one.
func (s *Store) SetValue(profile, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (profile, key, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", profile, key, err)
	}
	return nil
}

// Values returns every stored key of a profile.
func (s *Store) Values(profile string) (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM kv WHERE profile = ?", profile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return values, nil
}

// Profiles lists every profile that has progression or run data.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT profile FROM kv UNION SELECT profile FROM runs ORDER BY profile`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// ResetProfile deletes a profile's progression values and run history.
func (s *Store) ResetProfile(profile string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear profile: %w", err)
	}
	return s.ClearRuns(profile)
}

// SaveRun records a finished session and returns its generated run id.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Profile == "" {
		run.Profile = DefaultProfile
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, profile, score, elapsed, xp_earned, bonuses)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Profile, run.Score, run.Elapsed, run.XPEarned, run.Bonuses,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best runs ordered by score descending.
// An empty profile returns runs from every profile.
func (s *Store) TopRuns(profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT run_id, profile, score, elapsed, xp_earned, bonuses, created_at
		 FROM runs`
	args := []any{}
	if profile != "" {
		query += " WHERE profile = ?"
		args = append(args, profile)
	}
	query += " ORDER BY score DESC, id ASC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Score, &r.Elapsed, &r.XPEarned, &r.Bonuses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score of a profile, or 0 if it has no runs.
func (s *Store) BestScore(profile string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE profile = ?",
		profile,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes the run history of a profile.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ProfileStats contains aggregated statistics for one profile.
type ProfileStats struct {
	Profile      string
	Runs         int
	BestScore    int
	AvgScore     float64
	LongestAlive float64
	TotalXP      float64
	TotalBonuses int
	LastPlayed   time.Time
}

// Stats retrieves aggregated run statistics for a profile.
func (s *Store) Stats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(elapsed), 0), COALESCE(SUM(xp_earned), 0),
		        COALESCE(SUM(bonuses), 0), MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.LongestAlive,
		&stats.TotalXP, &stats.TotalBonuses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns for DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
