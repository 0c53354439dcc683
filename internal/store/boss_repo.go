package store

import (
	"context"
	"database/sql"
	"fmt"
)

// BossRepo handles persistence for boss defeats.
type BossRepo struct{}

// RecordDefeat inserts one defeat record.
func (r *BossRepo) RecordDefeat(ctx context.Context, db *sql.DB, bossType string, wave int, createdAt int64) error {
	const q = `INSERT INTO boss_defeats (boss_type, wave, created_at) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, q, bossType, wave, createdAt); err != nil {
		return fmt.Errorf("record boss defeat: %w", err)
	}
	return nil
}

// DefeatedIDs returns every boss type defeated at least once.
func (r *BossRepo) DefeatedIDs(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT DISTINCT boss_type FROM boss_defeats ORDER BY boss_type`)
	if err != nil {
		return nil, fmt.Errorf("list boss defeats: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan boss defeat: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
