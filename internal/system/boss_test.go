package system

import (
	"testing"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func TestBoss_EntranceIsInvulnerableAndTimed(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	if w.events.count(event.BossSpawned) != 1 || w.sound.count(CueBossEntrance) != 1 {
		t.Fatalf("spawn should dispatch BossSpawned and play the entrance cue")
	}
	if _, ok := w.ecs.Enemy(boss.ID); !ok {
		t.Fatal("boss not registered in the store")
	}

	ApplyDamage(boss, 500)
	if boss.Health != boss.MaxHealth {
		t.Errorf("boss took damage during entrance: %v/%v", boss.Health, boss.MaxHealth)
	}

	w.sched.Advance(2999 * time.Millisecond)
	if boss.Boss.CinematicState != component.CinematicEntrance {
		t.Fatalf("entrance ended early at %v", w.sched.Now())
	}
	w.sched.Advance(time.Millisecond)
	bs := boss.Boss
	if bs.CinematicState != component.CinematicNormal || bs.IsInvulnerable || !bs.EntranceComplete {
		t.Fatalf("after entrance: state=%v invulnerable=%v complete=%v", bs.CinematicState, bs.IsInvulnerable, bs.EntranceComplete)
	}
	if !bs.AbilityLoopActive || w.bosses.PendingTimers(boss.ID) == 0 {
		t.Errorf("ability loop should be scheduled after the entrance")
	}
	if w.events.count(event.BossEntranceDone) != 1 {
		t.Errorf("BossEntranceDone dispatched %d times", w.events.count(event.BossEntranceDone))
	}

	ApplyDamage(boss, 100)
	if boss.Health != boss.MaxHealth-100 {
		t.Errorf("boss should take damage in normal state, health %v", boss.Health)
	}
}

func TestBoss_PhaseTransition(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.finishEntrance(t, boss)
	speed := boss.Speed

	boss.Health = boss.MaxHealth * 0.5
	w.bosses.UpdateBoss(boss, 0.016)
	bs := boss.Boss
	if bs.BossPhase != 2 {
		t.Fatalf("BossPhase = %d, want 2", bs.BossPhase)
	}
	if bs.CinematicState != component.CinematicPhaseTransition || !bs.IsInvulnerable {
		t.Fatalf("transition: state=%v invulnerable=%v", bs.CinematicState, bs.IsInvulnerable)
	}
	if bs.AbilityLoopActive || bs.Timers.AbilityLoop != 0 {
		t.Errorf("ability loop should be paused during the transition")
	}
	if boss.Speed != speed*1.3 || boss.BehaviorTag != "enraged_golem" {
		t.Errorf("behavior changes not applied: speed=%v tag=%q", boss.Speed, boss.BehaviorTag)
	}
	if len(bs.BossAbilities) != 3 {
		t.Errorf("abilities = %v, want the phase 2 set", bs.BossAbilities)
	}

	w.bosses.UpdateBoss(boss, 0.016)
	if bs.BossPhase != 2 || w.events.count(event.BossPhaseChanged) != 1 {
		t.Errorf("phase changed again during the transition")
	}

	w.sched.Advance(2 * time.Second)
	if bs.CinematicState != component.CinematicNormal || bs.IsInvulnerable || !bs.AbilityLoopActive {
		t.Errorf("after transition: state=%v invulnerable=%v loop=%v", bs.CinematicState, bs.IsInvulnerable, bs.AbilityLoopActive)
	}
}

func TestBoss_PhaseIsMonotonicOneStepPerCheck(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "quantum_overlord", 90)
	w.finishEntrance(t, boss)
	def, _ := w.catalog.Boss("quantum_overlord")

	boss.Health = boss.MaxHealth * 0.1
	var phases []int
	for i := 0; i < 8; i++ {
		w.bosses.UpdateBoss(boss, 0.016)
		phases = append(phases, boss.Boss.BossPhase)
		if boss.Boss.CinematicState == component.CinematicPhaseTransition {
			w.sched.Advance(def.Cinematics.PhaseTransition())
		}
	}
	want := []int{2, 3, 4, 4, 4, 4, 4, 4}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}
	if got := w.events.count(event.BossPhaseChanged); got != 3 {
		t.Errorf("BossPhaseChanged = %d, want 3", got)
	}
}

func TestBoss_NoPhaseCheckDuringEntrance(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	boss.Health = boss.MaxHealth * 0.2
	w.bosses.UpdateBoss(boss, 0.016)
	if boss.Boss.BossPhase != 1 {
		t.Errorf("phase advanced during entrance")
	}
}

func TestBoss_RageTriggersOnce(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.finishEntrance(t, boss)
	damage := boss.Damage

	boss.Health = boss.MaxHealth * 0.2
	w.bosses.UpdateBoss(boss, 0.016)
	w.bosses.UpdateBoss(boss, 0.016)
	if !boss.Boss.RageMode {
		t.Fatal("rage not triggered below 30%")
	}
	if got := w.events.count(event.BossRage); got != 1 {
		t.Errorf("BossRage dispatched %d times, want 1", got)
	}
	// фаза 2 (x1.2), затем ярость (x1.5)
	if want := damage * 1.2 * config.RageMultiplier; boss.Damage != want {
		t.Errorf("damage = %v, want %v", boss.Damage, want)
	}
}

func TestBoss_FleeTriggersOnce(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.RecordDefeat("golem_king", 10)
	boss := w.spawnBoss(t, "shadow_lord", 30)
	w.finishEntrance(t, boss)

	boss.Health = boss.MaxHealth * 0.05
	w.bosses.UpdateBoss(boss, 0.016)
	w.bosses.UpdateBoss(boss, 0.016)
	if !boss.Boss.IsFleeing || boss.BehaviorTag != "fleeing" {
		t.Fatalf("flee not triggered: fleeing=%v tag=%q", boss.Boss.IsFleeing, boss.BehaviorTag)
	}
	if got := w.events.count(event.BossFled); got != 1 {
		t.Errorf("BossFled dispatched %d times, want 1", got)
	}
}

func TestBoss_ShieldRegeneratesUpToCap(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "shadow_lord", 30)
	w.bosses.UpdateBoss(boss, 1)
	if want := boss.MaxHealth * config.ShieldRegenPerSec; boss.Boss.ShieldStrength != want {
		t.Errorf("shield after 1s = %v, want %v", boss.Boss.ShieldStrength, want)
	}
	w.bosses.UpdateBoss(boss, 100)
	if limit := boss.MaxHealth * config.ShieldCapFraction; boss.Boss.ShieldStrength != limit {
		t.Errorf("shield = %v, want cap %v", boss.Boss.ShieldStrength, limit)
	}
}

func TestBoss_DefeatCancelsTimersAndDropsLoot(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.finishEntrance(t, boss)
	w.bosses.spawnMinions(boss, defs.EnemyBasic, 3)
	if w.bosses.PendingTimers(boss.ID) < 2 {
		t.Fatalf("expected ability loop and minion timers, got %d", w.bosses.PendingTimers(boss.ID))
	}
	gold := w.ecs.Gold()

	boss.Health = 0
	w.bosses.HandleBossDefeat(boss)
	if got := w.bosses.PendingTimers(boss.ID); got != 0 {
		t.Fatalf("PendingTimers after defeat = %d, want 0", got)
	}
	bs := boss.Boss
	if bs.CinematicState != component.CinematicDefeat || bs.AbilityLoopActive {
		t.Errorf("state=%v loop=%v after defeat", bs.CinematicState, bs.AbilityLoopActive)
	}
	if w.ecs.Gold() != gold+500 {
		t.Errorf("gold = %d, want %d", w.ecs.Gold(), gold+500)
	}
	if !w.ecs.HasDefeated("golem_king") {
		t.Error("defeat not recorded in history")
	}
	found := false
	for _, n := range w.ecs.Notifications {
		if n.Message == "The Golem King has fallen!" {
			found = true
		}
	}
	if !found {
		t.Errorf("loot notification missing: %v", w.ecs.Notifications)
	}
	if w.events.count(event.BossDefeated) != 1 || w.events.count(event.LootDropped) < 2 {
		t.Errorf("defeat events: defeated=%d loot=%d", w.events.count(event.BossDefeated), w.events.count(event.LootDropped))
	}

	used := w.events.count(event.BossAbilityUsed)
	spawned := w.ecs.EnemyCount()
	w.sched.Advance(time.Minute)
	if w.events.count(event.BossAbilityUsed) != used || w.ecs.EnemyCount() != spawned {
		t.Error("boss callbacks fired after defeat")
	}

	w.bosses.HandleBossDefeat(boss)
	if w.ecs.Gold() != gold+500 || w.events.count(event.BossDefeated) != 1 {
		t.Error("second defeat handled again")
	}
}

func TestBoss_DefeatDuringEntrance(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.bosses.HandleBossDefeat(boss)
	if got := w.bosses.PendingTimers(boss.ID); got != 0 {
		t.Fatalf("entrance timer survived defeat: %d pending", got)
	}
	w.sched.Advance(10 * time.Second)
	if boss.Boss.CinematicState != component.CinematicDefeat {
		t.Errorf("state = %v, want defeat", boss.Boss.CinematicState)
	}
}

func TestBoss_AbilityLoopUsesAbilities(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.finishEntrance(t, boss)
	w.sched.Advance(config.AbilityLoopMax)
	if w.events.count(event.BossAbilityUsed) == 0 {
		t.Fatal("no ability used within one loop period")
	}
	if len(boss.Boss.AbilityCooldowns) == 0 {
		t.Error("cooldown not stamped")
	}
	if !boss.Boss.AbilityLoopActive {
		t.Error("loop should reschedule itself")
	}
}

func TestBoss_UseAbilityUnknownIsNoop(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	def, _ := w.catalog.Boss("golem_king")
	before := boss.Position
	if w.bosses.UseAbility(boss, def, "meteor_storm") {
		t.Error("unknown ability reported as used")
	}
	if boss.Position != before || len(boss.Boss.AbilityCooldowns) != 0 || w.events.count(event.BossAbilityUsed) != 0 {
		t.Error("unknown ability changed state")
	}
}

func TestBoss_Abilities(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	def, _ := w.catalog.Boss("golem_king")

	y := boss.Position.Y
	w.bosses.UseAbility(boss, def, "charge")
	if boss.Position.Y != y+config.ChargeDistance {
		t.Errorf("charge moved to %v, want %v", boss.Position.Y, y+config.ChargeDistance)
	}
	if _, ok := boss.Boss.AbilityCooldowns[defs.AbilityCharge]; !ok {
		t.Error("charge cooldown not stamped")
	}

	tower := component.NewTower(w.ecs.NewEntity(), defs.TowerLibrary[defs.TowerBasic], boss.Position)
	w.ecs.AddTower(tower)
	w.bosses.UseAbility(boss, def, "ground_slam")
	if want := tower.MaxHealth - boss.Damage*config.GroundSlamDamageFactor; tower.Health != want {
		t.Errorf("tower health = %v, want %v", tower.Health, want)
	}

	shield := w.ecs.WallShield
	w.bosses.UseAbility(boss, def, "shockwave")
	if w.ecs.WallShield != shield-config.ShockwaveWallDamage {
		t.Errorf("wall shield = %v, want %v", w.ecs.WallShield, shield-config.ShockwaveWallDamage)
	}

	w.bosses.UseAbility(boss, def, "shield_regen")
	if want := boss.MaxHealth * config.ShieldBurstFraction; boss.Boss.ShieldStrength != want {
		t.Errorf("shield = %v, want %v", boss.Boss.ShieldStrength, want)
	}

	w.bosses.UseAbility(boss, def, "quantum_tunnel")
	if boss.Position.X < config.SpawnEdgeMargin || boss.Position.X > config.ScreenWidth-config.SpawnEdgeMargin {
		t.Errorf("tunnelled outside the field: %v", boss.Position.X)
	}

	spawned := w.ecs.TotalSpawned()
	w.bosses.UseAbility(boss, def, "summon_swarm")
	w.sched.Advance(time.Second)
	if got := w.ecs.TotalSpawned() - spawned; got != config.SummonSwarmCount {
		t.Errorf("summon_swarm spawned %d, want %d", got, config.SummonSwarmCount)
	}
}

func TestBoss_MinionsOnInterval(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.finishEntrance(t, boss)
	// Способности первой фазы не призывают врагов
	w.sched.Advance(config.MinionSpawnInterval)
	w.bosses.UpdateBoss(boss, 0.016)
	w.sched.Advance(time.Second)

	minions := 0
	for _, e := range w.ecs.Enemies() {
		if !e.IsBoss() && e.Type == defs.EnemyBasic {
			minions++
		}
	}
	if minions != config.DefaultMinionCount {
		t.Errorf("minions = %d, want %d", minions, config.DefaultMinionCount)
	}
	if w.ecs.TotalSpawned() != config.DefaultMinionCount {
		t.Errorf("TotalSpawned = %d, want %d", w.ecs.TotalSpawned(), config.DefaultMinionCount)
	}
}

func TestBoss_MissingDefinitionIsLeftAlone(t *testing.T) {
	w := newTestWorld(t)
	ghost := &component.Enemy{ID: w.ecs.NewEntity(), Health: 50, MaxHealth: 100, IsActive: true,
		Boss: &component.BossState{BossType: "forgotten", BossPhase: 1, CinematicState: component.CinematicNormal}}
	w.ecs.AddEnemy(ghost)
	w.bosses.UpdateBoss(ghost, 1)
	if ghost.Boss.BossPhase != 1 || ghost.Boss.ShieldStrength != 0 {
		t.Errorf("unknown boss type was updated: %+v", ghost.Boss)
	}
	gold := w.ecs.Gold()
	w.bosses.HandleBossDefeat(ghost)
	if w.ecs.Gold() != gold || w.events.count(event.BossDefeated) != 0 {
		t.Error("unknown boss type dropped loot")
	}
}

func TestBoss_Eligibility(t *testing.T) {
	w := newTestWorld(t)
	if !w.bosses.ShouldSpawnBoss(10) {
		t.Error("golem_king should always spawn on wave 10")
	}
	if w.bosses.ShouldSpawnBoss(3) {
		t.Error("no boss is eligible before wave 5")
	}
	if boss := w.bosses.CreateBoss(30, component.Position{}); boss != nil {
		t.Errorf("shadow_lord spawned without its prerequisite: %s", boss.Type)
	}

	w.ecs.RecordDefeat("golem_king", 10)
	for i := 0; i < 50; i++ {
		if boss := w.bosses.CreateBoss(30, component.Position{X: 600}); boss != nil {
			if boss.Type != "shadow_lord" {
				t.Fatalf("wave 30 spawned %s", boss.Type)
			}
			return
		}
	}
	t.Fatal("shadow_lord never spawned after golem_king was defeated")
}

func TestBoss_GameOverStopsCallbacks(t *testing.T) {
	w := newTestWorld(t)
	boss := w.spawnBoss(t, "golem_king", 10)
	w.ecs.SetGameOver()
	w.sched.Advance(5 * time.Second)
	if boss.Boss.CinematicState != component.CinematicEntrance {
		t.Errorf("entrance completed after game over")
	}
	if got := w.bosses.PendingTimers(boss.ID); got != 0 {
		t.Errorf("PendingTimers = %d after game over", got)
	}
}

func TestBoss_ShutdownCancelsEverything(t *testing.T) {
	w := newTestWorld(t)
	a := w.spawnBoss(t, "golem_king", 10)
	b := w.spawnBoss(t, "golem_king", 20)
	w.bosses.Shutdown()
	if w.bosses.PendingTimers(a.ID)+w.bosses.PendingTimers(b.ID) != 0 {
		t.Error("Shutdown left timers pending")
	}
}
