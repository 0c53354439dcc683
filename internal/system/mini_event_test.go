package system

import (
	"testing"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func goldRush() *component.MiniEventConfig {
	return &component.MiniEventConfig{
		Type:        defs.MiniEventGoldRush,
		Duration:    20 * time.Second,
		WarningTime: 3 * time.Second,
		Effects:     defs.MiniEventEffects{EnemyHealthMultiplier: 0.9},
		Rewards:     defs.MiniEventRewards{Gold: 100, Message: "Gold rush!"},
	}
}

func TestMiniEvent_Lifecycle(t *testing.T) {
	w := newTestWorld(t)
	gold := w.ecs.Gold()
	w.miniEvents.Start(6, goldRush())

	if w.miniEvents.Phase() != MiniEventWarningPhase {
		t.Fatalf("phase = %v, want warning", w.miniEvents.Phase())
	}
	if _, ok := w.miniEvents.ActiveEffects(); ok {
		t.Error("effects active during warning")
	}
	if w.events.count(event.MiniEventWarning) != 1 || w.sound.count(CueMiniEventWarning) != 1 {
		t.Error("warning not announced")
	}

	w.sched.Advance(3 * time.Second)
	fx, ok := w.miniEvents.ActiveEffects()
	if !ok || fx.Health() != 0.9 {
		t.Fatalf("active effects = %+v, %v", fx, ok)
	}

	w.sched.Advance(20 * time.Second)
	if w.miniEvents.Phase() != MiniEventIdle || w.miniEvents.Current() != nil {
		t.Errorf("event still running after its duration")
	}
	if w.ecs.Gold() != gold+100 {
		t.Errorf("gold = %d, want %d", w.ecs.Gold(), gold+100)
	}
	if w.events.count(event.MiniEventEnded) != 1 {
		t.Error("MiniEventEnded not dispatched")
	}
}

func TestMiniEvent_NilConfigIsIdle(t *testing.T) {
	w := newTestWorld(t)
	w.miniEvents.Start(6, nil)
	if w.miniEvents.Phase() != MiniEventIdle || w.sched.Len() != 0 {
		t.Error("nil config started something")
	}
}

func TestMiniEvent_StopForfeitsReward(t *testing.T) {
	w := newTestWorld(t)
	gold := w.ecs.Gold()
	w.miniEvents.Start(6, goldRush())
	w.sched.Advance(5 * time.Second)
	w.miniEvents.Stop()
	w.sched.Advance(time.Minute)
	if w.ecs.Gold() != gold {
		t.Errorf("stopped event paid out")
	}
	if got := w.sched.Pending("minievent:6"); got != 0 {
		t.Errorf("pending = %d", got)
	}
}

func TestMiniEvent_GameOverDuringWarning(t *testing.T) {
	w := newTestWorld(t)
	w.miniEvents.Start(6, goldRush())
	w.ecs.SetGameOver()
	w.sched.Advance(time.Minute)
	if w.events.count(event.MiniEventStarted) != 0 || w.miniEvents.Phase() != MiniEventIdle {
		t.Error("event activated after game over")
	}
}
