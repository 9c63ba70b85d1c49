// Package store keeps the score history in a SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"snake-arcade/stats"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore records finished rounds. It satisfies manager.Recorder.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs the migrations.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the schema if it is missing.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_started ON rounds(started_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveRound stores rec. A record without an id gets a fresh one; saving the
// same id twice replaces the earlier row.
func (s *SQLiteStore) SaveRound(ctx context.Context, rec stats.GameRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `INSERT OR REPLACE INTO rounds (
		id, score, length, outcome, started_at, ended_at
	) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Score, rec.Length, rec.Outcome,
		rec.StartTime.UnixNano(), rec.EndTime.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save round %s: %w", rec.ID, err)
	}
	return nil
}

// Rounds returns up to limit rounds, most recent first.
func (s *SQLiteStore) Rounds(ctx context.Context, limit int) ([]stats.GameRecord, error) {
	query := `SELECT id, score, length, outcome, started_at, ended_at
		FROM rounds ORDER BY started_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []stats.GameRecord
	for rows.Next() {
		var rec stats.GameRecord
		var started, ended int64
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Length, &rec.Outcome, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.StartTime = time.Unix(0, started)
		rec.EndTime = time.Unix(0, ended)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// HighScore is the best score ever recorded, 0 for an empty table.
func (s *SQLiteStore) HighScore(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM rounds`).Scan(&best); err != nil {
		return 0, fmt.Errorf("query high score: %w", err)
	}
	return int(best.Int64), nil
}
