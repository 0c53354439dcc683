// Package store provides SQLite-backed persistence for run history.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the initial database schema.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS wave_completions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	wave            INTEGER NOT NULL,
	completion_ms   INTEGER NOT NULL,
	score           REAL NOT NULL DEFAULT 0.5,
	created_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_wave_completions_created ON wave_completions(created_at);

CREATE TABLE IF NOT EXISTS boss_defeats (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	boss_type    TEXT NOT NULL,
	wave         INTEGER NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_boss_defeats_type ON boss_defeats(boss_type);
`

// NewDB opens a SQLite database at the given path with recommended pragmas
// and runs the V1 schema migration.
func NewDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Один писатель на SQLite
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}
