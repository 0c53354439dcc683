package system

import (
	"testing"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/timer"
)

func combatFixture(towerDef string) (*entity.ECS, *timer.Scheduler, *component.Tower, *component.Enemy) {
	ecs := entity.NewECS()
	sched := timer.NewScheduler()
	tower := component.NewTower(ecs.NewEntity(), defs.TowerLibrary[towerDef], component.Position{X: 600, Y: 700})
	ecs.AddTower(tower)
	enemy := &component.Enemy{
		ID: ecs.NewEntity(), Type: defs.EnemyBasic, Position: component.Position{X: 600, Y: 650},
		Health: 60, MaxHealth: 60, Speed: 40, IsActive: true,
	}
	ecs.AddEnemy(enemy)
	return ecs, sched, tower, enemy
}

func TestCombatSystem_FiresAndCoolsDown(t *testing.T) {
	ecs, sched, tower, enemy := combatFixture(defs.TowerBasic)
	combat := NewCombatSystem(ecs, ecs, sched, nil)

	combat.Update(0.016)
	if enemy.Health != 48 {
		t.Fatalf("health after first shot = %v, want 48", enemy.Health)
	}
	if tower.TargetID != enemy.ID {
		t.Errorf("TargetID = %d, want %d", tower.TargetID, enemy.ID)
	}
	combat.Update(0.1)
	if enemy.Health != 48 {
		t.Errorf("tower fired during cooldown, health = %v", enemy.Health)
	}
	for i := 0; i < 10; i++ {
		combat.Update(0.1)
	}
	if enemy.Health >= 48 {
		t.Errorf("tower never fired again, health = %v", enemy.Health)
	}
}

func TestCombatSystem_DisabledTowerHoldsFire(t *testing.T) {
	ecs, sched, _, enemy := combatFixture(defs.TowerBasic)
	combat := NewCombatSystem(ecs, ecs, sched, func() string { return defs.TowerBasic })
	combat.Update(0.016)
	if enemy.Health != 60 {
		t.Errorf("disabled tower dealt damage, health = %v", enemy.Health)
	}
}

func TestCombatSystem_FrostFreezes(t *testing.T) {
	ecs, sched, _, enemy := combatFixture(defs.TowerFrost)
	sched.Advance(time.Second)
	combat := NewCombatSystem(ecs, ecs, sched, nil)
	combat.Update(0.016)
	want := time.Second + 1500*time.Millisecond
	if enemy.FrozenUntil != want {
		t.Errorf("FrozenUntil = %v, want %v", enemy.FrozenUntil, want)
	}
}

func TestCombatSystem_DestroyedTowerIdle(t *testing.T) {
	ecs, sched, tower, enemy := combatFixture(defs.TowerBasic)
	tower.IsActive = false
	NewCombatSystem(ecs, ecs, sched, nil).Update(0.016)
	if enemy.Health != 60 {
		t.Errorf("inactive tower dealt damage")
	}
}
