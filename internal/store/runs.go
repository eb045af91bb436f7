// Package store contains the SQLite-backed repositories for locally
// recorded data.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded benchmark execution.
type Run struct {
	ID         int64
	Day        string
	Mode       string
	Iterations int
	Total      time.Duration
	Average    time.Duration
	CreatedAt  time.Time
}

// RunStore persists benchmark runs.
type RunStore struct {
	db *sql.DB
}

// NewRunStore creates a run store on an open database.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// Record inserts a run and fills in its generated ID.
func (s *RunStore) Record(ctx context.Context, run *Run) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO benchmark_runs (day, mode, iterations, total_ns, avg_ns) VALUES (?, ?, ?, ?, ?)",
		run.Day, run.Mode, run.Iterations, run.Total.Nanoseconds(), run.Average.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record benchmark run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}
	run.ID = id
	return nil
}

// List returns the most recent runs, newest first. limit <= 0 returns
// everything.
func (s *RunStore) List(ctx context.Context, limit int) ([]*Run, error) {
	query := "SELECT id, day, mode, iterations, total_ns, avg_ns, created_at FROM benchmark_runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var totalNS, avgNS int64
		if err := rows.Scan(&run.ID, &run.Day, &run.Mode, &run.Iterations, &totalNS, &avgNS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark run: %w", err)
		}
		run.Total = time.Duration(totalNS)
		run.Average = time.Duration(avgNS)
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benchmark runs: %w", err)
	}
	return runs, nil
}
