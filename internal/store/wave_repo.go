package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// WaveCompletion is one persisted wave result.
type WaveCompletion struct {
	ID         int64
	Wave       int
	Completion time.Duration
	Score      float64
	CreatedAt  int64
}

// WaveRepo handles persistence for wave completions.
type WaveRepo struct{}

// Append inserts one completion record.
func (r *WaveRepo) Append(ctx context.Context, db *sql.DB, c WaveCompletion) error {
	const q = `INSERT INTO wave_completions (wave, completion_ms, score, created_at) VALUES (?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q, c.Wave, c.Completion.Milliseconds(), c.Score, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("append wave completion: %w", err)
	}
	return nil
}

// ListRecent returns up to limit most recent completions, oldest first.
func (r *WaveRepo) ListRecent(ctx context.Context, db *sql.DB, limit int) ([]WaveCompletion, error) {
	const q = `SELECT id, wave, completion_ms, score, created_at
FROM (SELECT * FROM wave_completions ORDER BY id DESC LIMIT ?)
ORDER BY id ASC`

	rows, err := db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list wave completions: %w", err)
	}
	defer rows.Close()

	var out []WaveCompletion
	for rows.Next() {
		var c WaveCompletion
		var ms int64
		if err := rows.Scan(&c.ID, &c.Wave, &ms, &c.Score, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wave completion: %w", err)
		}
		c.Completion = time.Duration(ms) * time.Millisecond
		out = append(out, c)
	}
	return out, rows.Err()
}

// BestWave returns the highest completed wave, or zero.
func (r *WaveRepo) BestWave(ctx context.Context, db *sql.DB) (int, error) {
	var best sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(wave) FROM wave_completions`).Scan(&best); err != nil {
		return 0, fmt.Errorf("best wave: %w", err)
	}
	return int(best.Int64), nil
}
