package system

import (
	"testing"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/timer"
	"go-wave-defense/internal/utils"
)

type recordingSound struct {
	cues []string
}

func (r *recordingSound) Play(cue string) { r.cues = append(r.cues, cue) }

func (r *recordingSound) count(cue string) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// testWorld wires the real store and scheduler the way the game does.
type testWorld struct {
	ecs        *entity.ECS
	sched      *timer.Scheduler
	catalog    *defs.Catalog
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	events     *recordingListener
	sound      *recordingSound
	factory    *EnemyFactory
	bosses     *BossSystem
	miniEvents *MiniEventSystem
	perf       *PerformanceSystem
	spawn      *SpawnSystem
}

var allEventTypes = []event.EventType{
	event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.EnemyKilled, event.EnemyLeaked,
	event.BossSpawned, event.BossEntranceDone, event.BossPhaseChanged, event.BossAbilityUsed,
	event.BossRage, event.BossFled, event.BossDefeated, event.LootDropped,
	event.MiniEventWarning, event.MiniEventStarted, event.MiniEventEnded,
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	catalog, err := defs.LoadDefaultCatalog()
	if err != nil {
		t.Fatalf("LoadDefaultCatalog: %v", err)
	}
	w := &testWorld{
		ecs:        entity.NewECS(),
		sched:      timer.NewScheduler(),
		catalog:    catalog,
		rng:        utils.NewPRNGService(42),
		dispatcher: event.NewDispatcher(),
		events:     &recordingListener{},
		sound:      &recordingSound{},
		perf:       NewPerformanceSystem(),
	}
	for _, typ := range allEventTypes {
		w.dispatcher.Subscribe(typ, w.events)
	}
	w.factory = NewEnemyFactory(catalog, w.ecs, w.sched)
	w.bosses = NewBossSystem(BossSystemDeps{
		Catalog:    catalog,
		Factory:    w.factory,
		Scheduler:  w.sched,
		Rng:        w.rng,
		Dispatcher: w.dispatcher,
		Store:      w.ecs,
		Stats:      w.ecs,
		Towers:     w.ecs,
		Wall:       w.ecs,
		Viewport:   w.ecs,
		Economy:    w.ecs,
		Notifier:   w.ecs,
		Rewards:    w.ecs,
		Sound:      w.sound,
		History:    w.ecs,
		GameOver:   w.ecs,
	})
	w.miniEvents = NewMiniEventSystem(w.sched, w.dispatcher, w.sound, w.ecs, w.ecs, w.ecs)
	w.spawn = NewSpawnSystem(SpawnSystemDeps{
		Catalog:     catalog,
		Generator:   NewWaveGenerator(catalog, w.rng),
		Factory:     w.factory,
		Bosses:      w.bosses,
		MiniEvents:  w.miniEvents,
		Performance: w.perf,
		Scheduler:   w.sched,
		Rng:         w.rng,
		Dispatcher:  w.dispatcher,
		Store:       w.ecs,
		Stats:       w.ecs,
		Viewport:    w.ecs,
		Sound:       w.sound,
		GameOver:    w.ecs,
	})
	return w
}

// spawnBoss creates a boss of the given type directly, bypassing eligibility.
func (w *testWorld) spawnBoss(t *testing.T, bossType string, wave int) *component.Enemy {
	t.Helper()
	boss := w.bosses.SpawnDefinition(bossType, wave, component.Position{X: 600, Y: 100})
	if boss == nil {
		t.Fatalf("SpawnDefinition(%s) returned nil", bossType)
	}
	return boss
}

// finishEntrance advances past the boss's entrance cinematic.
func (w *testWorld) finishEntrance(t *testing.T, boss *component.Enemy) {
	t.Helper()
	def, _ := w.catalog.Boss(boss.Boss.BossType)
	w.sched.Advance(def.Cinematics.Entrance())
	if boss.Boss.CinematicState != component.CinematicNormal {
		t.Fatalf("state after entrance = %v, want normal", boss.Boss.CinematicState)
	}
}
