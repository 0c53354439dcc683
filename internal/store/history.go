package store

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// History adapts the repos to the simulation: it remembers defeated bosses
// in memory and writes every change through to the database.
type History struct {
	db       *sql.DB
	waves    WaveRepo
	bosses   BossRepo
	defeated map[string]bool
	now      func() time.Time
}

// OpenHistory loads the defeated boss set from db.
func OpenHistory(ctx context.Context, db *sql.DB) (*History, error) {
	h := &History{db: db, defeated: make(map[string]bool), now: time.Now}
	ids, err := h.bosses.DefeatedIDs(ctx, db)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		h.defeated[id] = true
	}
	return h, nil
}

func (h *History) HasDefeated(bossType string) bool {
	return h.defeated[bossType]
}

// RecordDefeat is fire-and-forget from the simulation's point of view; a
// write failure is logged and the in-memory set still updates.
func (h *History) RecordDefeat(bossType string, wave int) {
	h.defeated[bossType] = true
	if err := h.bosses.RecordDefeat(context.Background(), h.db, bossType, wave, h.now().Unix()); err != nil {
		log.Printf("History: %v", err)
	}
}

// RecordWave persists one wave completion.
func (h *History) RecordWave(ctx context.Context, wave int, completion time.Duration, score float64) error {
	return h.waves.Append(ctx, h.db, WaveCompletion{
		Wave: wave, Completion: completion, Score: score, CreatedAt: h.now().Unix(),
	})
}

// RecentCompletions returns up to limit completion times, oldest first.
func (h *History) RecentCompletions(ctx context.Context, limit int) ([]time.Duration, error) {
	rows, err := h.waves.ListRecent(ctx, h.db, limit)
	if err != nil {
		return nil, err
	}
	out := make([]time.Duration, len(rows))
	for i, r := range rows {
		out[i] = r.Completion
	}
	return out, nil
}

// BestWave returns the highest wave ever completed.
func (h *History) BestWave(ctx context.Context) (int, error) {
	return h.waves.BestWave(ctx, h.db)
}
