// Package storage provides a SQLite-backed ledger of finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The game keeps no state between runs, so the ledger lives in memory and
// starts empty with every process.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// End reasons recorded for a session.
const (
	EndCollision = "collision"
	EndQuit      = "quit"
	EndAborted   = "aborted"
)

// Store manages the SQLite database connection for session records.
type Store struct {
	db *sql.DB
}

// SessionRecord is the outcome of one play-through.
type SessionRecord struct {
	GameID    string
	Score     int
	Ticks     int
	EndReason string
}

// OpenMemory opens a fresh in-memory ledger and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
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

// RecordSession stores a finished session.
// Returns the ID of the inserted record.
func (s *Store) RecordSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (game_id, score, ticks, end_reason) VALUES (?, ?, ?, ?)",
		rec.GameID, rec.Score, rec.Ticks, rec.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Stats contains aggregated statistics across sessions.
type Stats struct {
	GamesCount int
	HighScore  int
}

// TotalStats retrieves aggregated statistics across every game mode.
func (s *Store) TotalStats() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(MAX(score), 0) FROM sessions",
	).Scan(&stats.GamesCount, &stats.HighScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}
