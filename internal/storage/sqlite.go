// Package storage provides SQLite-based persistence for simulation session
// statistics. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Grid state itself is never persisted; only per-session
// summary numbers are.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry summarizes one simulation session.
type SessionEntry struct {
	ID              int64
	PatternID       string
	Generations     uint64
	PeakPopulation  int
	FinalPopulation int
	Duration        int // seconds
	CreatedAt       time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pattern_id TEXT NOT NULL,
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_pattern ON sessions(pattern_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// SaveSession records a finished session. Returns the inserted row ID.
func (s *Store) SaveSession(e SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (pattern_id, generations, peak_population, final_population, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		e.PatternID, e.Generations, e.PeakPopulation, e.FinalPopulation, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent N sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pattern_id, generations, peak_population, final_population, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SessionsForPattern retrieves sessions for one pattern, highest peak
// population first.
func (s *Store) SessionsForPattern(patternID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pattern_id, generations, peak_population, final_population, duration_secs, created_at
		 FROM sessions
		 WHERE pattern_id = ?
		 ORDER BY peak_population DESC
		 LIMIT ?`,
		patternID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PeakPopulation returns the highest population ever recorded for the
// given pattern. Returns 0 if no sessions exist.
func (s *Store) PeakPopulation(patternID string) (int, error) {
	var peak sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(peak_population) FROM sessions WHERE pattern_id = ?",
		patternID,
	).Scan(&peak)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query peak population: %w", err)
	}

	if !peak.Valid {
		return 0, nil
	}

	return int(peak.Int64), nil
}

// ClearSessions deletes all sessions for the given pattern.
func (s *Store) ClearSessions(patternID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE pattern_id = ?", patternID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// scanSession reads one row into a SessionEntry.
func scanSession(rows *sql.Rows) (SessionEntry, error) {
	var e SessionEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.PatternID, &e.Generations, &e.PeakPopulation,
		&e.FinalPopulation, &e.Duration, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
