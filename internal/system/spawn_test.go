package system

import (
	"testing"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func TestAdaptiveDelay(t *testing.T) {
	if got := AdaptiveDelay(2000*time.Millisecond, 1.0, 0, false); got != 2000*time.Millisecond {
		t.Errorf("base 2000ms, progress 0 = %v, want 2000ms", got)
	}
	if got := AdaptiveDelay(100*time.Millisecond, 1, 0, false); got != config.MinSpawnDelay {
		t.Errorf("short base = %v, want %v", got, config.MinSpawnDelay)
	}
	if got := AdaptiveDelay(20*time.Second, 1, 0, false); got != config.MaxSpawnDelay {
		t.Errorf("long base = %v, want %v", got, config.MaxSpawnDelay)
	}
	if got := AdaptiveDelay(2000*time.Millisecond, 1, 0, true); got != config.ExhaustedDelayFloor {
		t.Errorf("exhausted = %v, want floor %v", got, config.ExhaustedDelayFloor)
	}
	if got := AdaptiveDelay(4000*time.Millisecond, 1, 0, true); got != 6000*time.Millisecond {
		t.Errorf("exhausted 4000ms = %v, want 6000ms", got)
	}
	fast := AdaptiveDelay(2000*time.Millisecond, 0.9, 1, false)
	if fast >= 2000*time.Millisecond || fast < config.MinSpawnDelay {
		t.Errorf("accelerated delay = %v", fast)
	}
}

func TestSpawnProgress(t *testing.T) {
	cases := []struct {
		spawned int
		elapsed time.Duration
		want    float64
	}{
		{0, 0, 0},
		{5, 0, 0.5},
		{0, 30 * time.Second, 0.5},
		{2, 45 * time.Second, 0.75},
		{40, 0, 1},
		{0, 10 * time.Minute, 1},
	}
	for _, c := range cases {
		if got := SpawnProgress(c.spawned, c.elapsed); got != c.want {
			t.Errorf("SpawnProgress(%d, %v) = %v, want %v", c.spawned, c.elapsed, got, c.want)
		}
	}
}

func TestBuildQueue(t *testing.T) {
	cfg := &component.WaveConfig{
		EnemyComposition: []component.CompositionEntry{{Type: defs.EnemyTank, Count: 1}, {Type: defs.EnemyScout, Count: 2}},
		Modifier:         &component.Modifier{BonusEnemies: 2},
	}
	got := BuildQueue(cfg)
	want := []string{defs.EnemyTank, defs.EnemyScout, defs.EnemyScout, defs.BaseEnemyType, defs.BaseEnemyType}
	if len(got) != len(want) {
		t.Fatalf("queue = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("queue[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSpawnSystem_InitialDelay(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.spawn.StartWave(1)
	if !w.spawn.Running() || w.spawn.Wave() != cfg {
		t.Fatal("wave not running after StartWave")
	}
	if w.spawn.EnemiesRequired() != len(BuildQueue(cfg)) {
		t.Errorf("EnemiesRequired = %d, want %d", w.spawn.EnemiesRequired(), len(BuildQueue(cfg)))
	}
	if w.events.count(event.WaveStarted) != 1 || w.sound.count(CueWaveStart) != 1 {
		t.Error("wave start not announced")
	}

	w.sched.Advance(config.InitialSpawnDelay - time.Millisecond)
	if w.spawn.Spawned() != 0 {
		t.Fatalf("spawned before the initial delay")
	}
	w.sched.Advance(time.Millisecond)
	if w.spawn.Spawned() != 1 || w.ecs.TotalSpawned() != 1 || w.ecs.EnemyCount() != 1 {
		t.Fatalf("first spawn: scheduler=%d stats=%d store=%d", w.spawn.Spawned(), w.ecs.TotalSpawned(), w.ecs.EnemyCount())
	}
	if w.events.count(event.EnemySpawned) != 1 {
		t.Error("EnemySpawned not dispatched")
	}
}

func TestSpawnSystem_KillGateAndFallback(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(1)
	required := w.spawn.EnemiesRequired()

	w.sched.Advance(10 * time.Minute)
	if w.spawn.Spawned() != required {
		t.Fatalf("spawned %d without kills, want exactly %d", w.spawn.Spawned(), required)
	}
	if w.spawn.QueueRemaining() != 0 {
		t.Fatalf("QueueRemaining = %d", w.spawn.QueueRemaining())
	}
	if !w.spawn.Running() {
		t.Fatal("gated wave should keep polling")
	}

	w.ecs.RecordKill()
	w.ecs.RecordKill()
	w.sched.Advance(30 * time.Second)
	if w.spawn.Spawned() != required+2 {
		t.Fatalf("spawned %d after two kills, want %d", w.spawn.Spawned(), required+2)
	}
	enemies := w.ecs.Enemies()
	extra := enemies[len(enemies)-2:]
	if extra[0].Type != defs.FallbackPattern[0] || extra[1].Type != defs.FallbackPattern[1] {
		t.Errorf("fallback spawned %s, %s", extra[0].Type, extra[1].Type)
	}
}

func TestSpawnSystem_StopCancelsTicks(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(1)
	w.spawn.StopWave()
	w.sched.Advance(time.Minute)
	if w.spawn.Spawned() != 0 || w.spawn.Running() {
		t.Errorf("stopped wave spawned %d, running=%v", w.spawn.Spawned(), w.spawn.Running())
	}
	if got := w.sched.Pending(waveOwner(1)); got != 0 {
		t.Errorf("pending wave ticks = %d", got)
	}
}

func TestSpawnSystem_RestartCancelsPreviousWave(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(1)
	w.spawn.StartWave(2)
	if got := w.sched.Pending(waveOwner(1)); got != 0 {
		t.Errorf("wave 1 still has %d ticks", got)
	}
	if got := w.sched.Pending(waveOwner(2)); got != 1 {
		t.Errorf("wave 2 has %d ticks, want 1", got)
	}
}

func TestSpawnSystem_GameOverStops(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(1)
	w.ecs.SetGameOver()
	w.sched.Advance(5 * time.Second)
	if w.spawn.Spawned() != 0 || w.spawn.Running() {
		t.Errorf("spawned %d after game over, running=%v", w.spawn.Spawned(), w.spawn.Running())
	}
	if w.sched.Len() != 0 {
		t.Errorf("%d timers left after game over", w.sched.Len())
	}
}

func TestSpawnSystem_BossWave(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(10)
	w.sched.Advance(10 * time.Minute)
	if w.spawn.Spawned() != w.spawn.EnemiesRequired() {
		t.Fatalf("spawned %d, want %d", w.spawn.Spawned(), w.spawn.EnemiesRequired())
	}
	bosses := 0
	for _, e := range w.ecs.Enemies() {
		if e.IsBoss() {
			bosses++
			if e.Type != "golem_king" || e.Boss.SpawnWave != 10 {
				t.Errorf("boss %s on wave %d", e.Type, e.Boss.SpawnWave)
			}
		}
	}
	if bosses != 1 {
		t.Errorf("bosses = %d, want 1", bosses)
	}
}

func TestSpawnSystem_IneligibleBossBecomesElite(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.spawn.StartWave(30)
	if !cfg.IsBossWave {
		t.Fatal("wave 30 should be a boss wave")
	}
	w.sched.Advance(15 * time.Minute)
	if w.spawn.Spawned() != w.spawn.EnemiesRequired() {
		t.Fatalf("spawned %d, want %d", w.spawn.Spawned(), w.spawn.EnemiesRequired())
	}
	elites := 0
	for _, e := range w.ecs.Enemies() {
		if e.IsBoss() {
			t.Fatalf("boss %s spawned without its prerequisite", e.Type)
		}
		if e.Type == defs.EnemyElite {
			elites++
		}
	}
	if elites == 0 {
		t.Error("boss slot was not filled by an elite")
	}
}

func TestSpawnSystem_ActiveMiniEventBoostsSpawns(t *testing.T) {
	w := newTestWorld(t)
	w.spawn.StartWave(1)
	w.miniEvents.Start(1, &component.MiniEventConfig{
		Type:     defs.MiniEventSpeedSurge,
		Duration: time.Minute,
		Effects:  defs.MiniEventEffects{SpeedMultiplier: 2, EnemyHealthMultiplier: 1.5},
	})
	w.sched.Advance(config.InitialSpawnDelay)
	enemies := w.ecs.Enemies()
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(enemies))
	}
	def, _ := w.catalog.Enemy(enemies[0].Type)
	_, _, _, ss := WaveStatScale(1)
	if enemies[0].Speed < def.Speed*ss*2 {
		t.Errorf("speed %v not boosted (base %v)", enemies[0].Speed, def.Speed*ss)
	}
	if enemies[0].Health != enemies[0].MaxHealth {
		t.Errorf("spawned damaged: %v/%v", enemies[0].Health, enemies[0].MaxHealth)
	}
}
