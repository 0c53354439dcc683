package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *History {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	h, err := OpenHistory(context.Background(), db)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	return h
}

func TestWaveRepo_ListRecentKeepsNewestInOrder(t *testing.T) {
	h := openTestDB(t)
	ctx := context.Background()
	for wave := 1; wave <= 7; wave++ {
		if err := h.RecordWave(ctx, wave, time.Duration(wave)*time.Second, 0.5); err != nil {
			t.Fatalf("RecordWave %d: %v", wave, err)
		}
	}
	got, err := h.RecentCompletions(ctx, 5)
	if err != nil {
		t.Fatalf("RecentCompletions: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 completions, got %d", len(got))
	}
	if got[0] != 3*time.Second || got[4] != 7*time.Second {
		t.Errorf("completions = %v, want 3s..7s", got)
	}
	best, err := h.BestWave(ctx)
	if err != nil {
		t.Fatalf("BestWave: %v", err)
	}
	if best != 7 {
		t.Errorf("BestWave = %d, want 7", best)
	}
}

func TestBestWaveEmpty(t *testing.T) {
	h := openTestDB(t)
	best, err := h.BestWave(context.Background())
	if err != nil {
		t.Fatalf("BestWave: %v", err)
	}
	if best != 0 {
		t.Errorf("BestWave = %d, want 0", best)
	}
}

func TestHistory_BossDefeatsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bosses.db")
	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	h, err := OpenHistory(context.Background(), db)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	if h.HasDefeated("golem_king") {
		t.Fatal("fresh history reports a defeat")
	}
	h.RecordDefeat("golem_king", 10)
	h.RecordDefeat("golem_king", 20)
	if !h.HasDefeated("golem_king") {
		t.Fatal("defeat not remembered in memory")
	}
	db.Close()

	db, err = NewDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	reopened, err := OpenHistory(context.Background(), db)
	if err != nil {
		t.Fatalf("OpenHistory after reopen: %v", err)
	}
	if !reopened.HasDefeated("golem_king") {
		t.Error("defeat lost after reopen")
	}
	ids, err := (&BossRepo{}).DefeatedIDs(context.Background(), db)
	if err != nil {
		t.Fatalf("DefeatedIDs: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("DefeatedIDs = %v, want one distinct id", ids)
	}
}
