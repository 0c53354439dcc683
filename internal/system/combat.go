package system

import (
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	towers   interfaces.TowerStore
	enemies  interfaces.EnemyStore
	clock    Clock
	disabled func() string // тип башни, отключённый модификатором волны
}

func NewCombatSystem(towers interfaces.TowerStore, enemies interfaces.EnemyStore, clock Clock, disabled func() string) *CombatSystem {
	return &CombatSystem{
		towers:   towers,
		enemies:  enemies,
		clock:    clock,
		disabled: disabled,
	}
}

// ChooseMode is the tower's targeting policy: an explicit mode wins, then
// veteran towers assess threat and economy towers hunt value.
func ChooseMode(tower *component.Tower) defs.TargetingMode {
	if tower.Mode != defs.ModeAuto {
		return tower.Mode
	}
	if tower.Level >= 3 {
		return defs.ModeThreat
	}
	if tower.Type == defs.TowerTypeEconomy {
		return defs.ModeHighestValue
	}
	return defs.ModeNearest
}

func (s *CombatSystem) Update(deltaTime float64) {
	disabled := ""
	if s.disabled != nil {
		disabled = s.disabled()
	}
	for _, tower := range s.towers.Towers() {
		if !tower.IsActive {
			continue
		}
		if tower.FireCooldown > 0 {
			tower.FireCooldown -= deltaTime
			continue
		}
		if disabled != "" && tower.DefID == disabled {
			tower.TargetID = 0
			continue
		}

		target := SelectTarget(tower, s.enemies.Enemies(), TargetOptions{Mode: ChooseMode(tower)})
		if target == nil {
			tower.TargetID = 0
			continue
		}
		tower.TargetID = target.ID
		ApplyDamage(target, tower.Damage)
		if tower.FreezeDuration > 0 {
			until := s.clock.Now() + time.Duration(tower.FreezeDuration*float64(time.Second))
			if until > target.FrozenUntil {
				target.FrozenUntil = until
			}
		}
		if tower.FireRate > 0 {
			tower.FireCooldown = 1.0 / tower.FireRate
		}
	}
}
