package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// Run is a finished run as stored in the ledger.
type Run struct {
	ID        string
	Player    string
	Score     int
	Level     int
	Ticks     uint64
	Seed      int64
	CreatedAt time.Time
}

// Summary contains aggregated ledger statistics.
type Summary struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// SaveRun records a finished run and returns its generated id.
func (s *Store) SaveRun(result catch.RunResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, score, level, ticks, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		result.Player,
		result.Score,
		result.Level,
		int64(result.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		result.Seed,
		s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs ordered by score, then level, then age.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, level, ticks, seed, created_at
		 FROM runs
		 ORDER BY score DESC, level DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the most recent N runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, player, score, level, ticks, seed, created_at
		 FROM runs
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Level, &ticks, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest recorded score, or 0 for an empty ledger.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Summary retrieves aggregated statistics over all runs.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(MAX(created_at), '')
		 FROM runs`,
	).Scan(&sum.Runs, &sum.HighScore, &sum.AvgScore, &sum.BestLevel, &lastPlayed)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
