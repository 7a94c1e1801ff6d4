// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single finished game: a win, or a deal the
// player abandoned.
type ResultEntry struct {
	ID           int64
	Won          bool
	Moves        int
	DurationSecs int
	Seed         int64
	CreatedAt    time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			won INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_won ON results(won);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(won, moves ASC);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (won, moves, duration_secs, seed) VALUES (?, ?, ?, ?)",
		e.Won, e.Moves, e.DurationSecs, e.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestWins retrieves the top N wins, fewest moves first, ties broken by
// the shorter duration.
func (s *Store) BestWins(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, won, moves, duration_secs, seed, created_at
		 FROM results
		 WHERE won = 1
		 ORDER BY moves ASC, duration_secs ASC
		 LIMIT ?`,
		limit,
	)
}

// FastestWins retrieves the top N wins by elapsed time.
func (s *Store) FastestWins(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, won, moves, duration_secs, seed, created_at
		 FROM results
		 WHERE won = 1
		 ORDER BY duration_secs ASC, moves ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentResults retrieves the most recent finished games, wins and
// abandons alike.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryResults(
		`SELECT id, won, moves, duration_secs, seed, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// queryResults runs a SELECT over the results table and scans the rows.
func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Won, &e.Moves, &e.DurationSecs, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetime values
// returned by the driver.
func parseTimestamp(v any) time.Time {
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

// ClearResults deletes all recorded games.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesPlayed  int
	GamesWon     int
	BestMoves    int // Fewest moves among wins, 0 when no wins
	BestTimeSecs int // Shortest duration among wins, 0 when no wins
	AvgMoves     float64
	LastPlayed   time.Time
}

// WinRate returns the fraction of recorded games that were won.
func (st Stats) WinRate() float64 {
	if st.GamesPlayed == 0 {
		return 0
	}
	return float64(st.GamesWon) / float64(st.GamesPlayed)
}

// GetStats retrieves aggregated statistics over all recorded games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(AVG(moves), 0)
		 FROM results`,
	).Scan(&stats.GamesPlayed, &stats.GamesWon, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(MIN(moves), 0), COALESCE(MIN(duration_secs), 0)
		 FROM results WHERE won = 1`,
	).Scan(&stats.BestMoves, &stats.BestTimeSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get best results: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
