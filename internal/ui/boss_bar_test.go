package ui

import (
	"testing"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func TestBossBar_DefeatBannerLastsForCinematic(t *testing.T) {
	catalog, err := defs.LoadDefaultCatalog()
	if err != nil {
		t.Fatalf("LoadDefaultCatalog: %v", err)
	}
	now := 10.0
	d := event.NewDispatcher()
	bar := NewBossBar(catalog, HUDFace, d, func() float64 { return now })

	if _, ok := bar.Banner(); ok {
		t.Fatal("banner shown before any defeat")
	}
	d.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossData{ID: 7, BossType: "golem_king"}})
	banner, ok := bar.Banner()
	if !ok || banner != "Golem King DEFEATED" {
		t.Fatalf("banner = %q, %v", banner, ok)
	}
	now = 12.4
	if _, ok := bar.Banner(); !ok {
		t.Error("banner gone before the 2.5s cinematic ended")
	}
	now = 12.5
	if _, ok := bar.Banner(); ok {
		t.Error("banner still shown after the cinematic")
	}
}
