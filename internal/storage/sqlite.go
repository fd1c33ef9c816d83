// Package storage provides SQLite-based persistence for the top-10 ranking
// and the history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for ranking and history.
// It is safe for concurrent use by multiple SSH sessions.
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
	// One writer at a time; concurrent SSH sessions queue instead of
	// failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rankings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rankings_top ON rankings(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			merges INTEGER NOT NULL DEFAULT 0,
			max_tier INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// RecordScore inserts a ranking entry and prunes the table to the top
// RankingSize entries in one transaction. The name is normalized first.
func (s *Store) RecordScore(name string, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO rankings (name, score) VALUES (?, ?)",
		NormalizeName(name), score,
	); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM rankings WHERE id NOT IN (
			SELECT id FROM rankings ORDER BY score DESC, id ASC LIMIT ?
		)`,
		RankingSize,
	); err != nil {
		return fmt.Errorf("storage: cannot prune ranking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return nil
}

// ListTopScores returns the full ranking, best first.
func (s *Store) ListTopScores() ([]RankEntry, error) {
	return s.TopScores(RankingSize)
}

// TopScores retrieves the top N ranking entries.
// Results are ordered by score descending, ties by insertion order.
func (s *Store) TopScores(limit int) ([]RankEntry, error) {
	if limit <= 0 {
		limit = RankingSize
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, created_at
		 FROM rankings
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []RankEntry
	for rows.Next() {
		var e RankEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best ranked score, or 0 if the ranking is empty.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rankings").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the ranking. Game history is kept.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM rankings"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameResult describes one finished session.
type GameResult struct {
	ID       int64
	Name     string
	Score    int
	Merges   int
	MaxTier  int
	Duration time.Duration
	PlayedAt time.Time
}

// SaveGame records a finished session in the history.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(result GameResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO games (name, score, merges, max_tier, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		NormalizeName(result.Name),
		result.Score,
		result.Merges,
		result.MaxTier,
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentGames retrieves the most recent finished sessions.
func (s *Store) RecentGames(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, merges, max_tier, duration_ms, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.Merges, &r.MaxTier, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.PlayedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameStats contains aggregated statistics over the game history.
type GameStats struct {
	GamesCount  int
	HighScore   int
	AvgScore    float64
	TotalMerges int64
	BestTier    int
	PlayTime    time.Duration
	LastPlayed  time.Time
}

// Stats aggregates the game history.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}
	var playMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(merges), 0), COALESCE(MAX(max_tier), 0), COALESCE(SUM(duration_ms), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalMerges, &stats.BestTier, &playMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.PlayTime = time.Duration(playMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM games ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
