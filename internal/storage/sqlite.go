package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps the highscore and every finished run in SQLite.
type SQLiteStore struct {
	db     *sql.DB
	gameID string
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	Score     int
	CreatedAt time.Time
}

// RunStats aggregates the run history.
type RunStats struct {
	Runs       int
	Best       int
	AvgScore   float64
	LastPlayed time.Time
}

// OpenSQLite creates or opens a database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db, gameID: GameID}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS highscore (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadHighscore returns the stored best score, 0 when none was saved.
func (s *SQLiteStore) LoadHighscore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM highscore WHERE game_id = ?", s.gameID).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query highscore: %w", err)
	}
	return score, nil
}

// SaveHighscore upserts the best score. A lower value never replaces a
// higher one already stored.
func (s *SQLiteStore) SaveHighscore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO highscore (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CURRENT_TIMESTAMP`,
		s.gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save highscore: %w", err)
	}
	return nil
}

// RecordRun appends a finished run to the history.
func (s *SQLiteStore) RecordRun(score int) error {
	_, err := s.db.Exec("INSERT INTO runs (game_id, score) VALUES (?, ?)", s.gameID, score)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// TopRuns returns the best runs, highest first.
func (s *SQLiteStore) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		s.gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &createdAt); err != nil {
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

// Stats aggregates the run history.
func (s *SQLiteStore) Stats() (RunStats, error) {
	var stats RunStats
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		s.gameID,
	).Scan(&stats.Runs, &stats.Best, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// parseTimestamp handles both driver-decoded and text datetimes.
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
