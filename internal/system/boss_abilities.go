package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

type abilityHandler func(boss *component.Enemy, def *defs.BossDefinition)

func (s *BossSystem) abilityTable() [defs.AbilityCount]abilityHandler {
	return [defs.AbilityCount]abilityHandler{
		defs.AbilityCharge:        s.charge,
		defs.AbilityQuantumTunnel: s.quantumTunnel,
		defs.AbilityGroundSlam:    s.groundSlam,
		defs.AbilityShieldRegen:   s.shieldRegen,
		defs.AbilityShockwave:     s.shockwave,
		defs.AbilitySummonSwarm:   s.summonSwarm,
	}
}

// charge — рывок к линии обороны.
func (s *BossSystem) charge(boss *component.Enemy, _ *defs.BossDefinition) {
	boss.Position.Y = math.Min(boss.Position.Y+config.ChargeDistance, config.DefendedLineY-boss.Size)
}

// quantumTunnel переносит босса в случайную точку по горизонтали.
func (s *BossSystem) quantumTunnel(boss *component.Enemy, _ *defs.BossDefinition) {
	minX, maxX := 0.0, float64(config.ScreenWidth)
	if s.Viewport != nil {
		minX, _, maxX, _ = s.Viewport.Bounds()
	}
	margin := config.SpawnEdgeMargin
	boss.Position.X = s.Rng.Range(minX+margin, maxX-margin)
	boss.Position = s.clampToViewport(boss.Position)
}

func (s *BossSystem) groundSlam(boss *component.Enemy, _ *defs.BossDefinition) {
	if s.Towers == nil {
		return
	}
	s.Towers.DamageTowers(boss.Position, config.GroundSlamRadius, boss.Damage*config.GroundSlamDamageFactor)
}

// shieldRegen мгновенно добавляет щит, не выше общего предела.
func (s *BossSystem) shieldRegen(boss *component.Enemy, _ *defs.BossDefinition) {
	limit := boss.MaxHealth * config.ShieldCapFraction
	boss.Boss.ShieldStrength = math.Min(limit, boss.Boss.ShieldStrength+boss.MaxHealth*config.ShieldBurstFraction)
}

func (s *BossSystem) shockwave(boss *component.Enemy, _ *defs.BossDefinition) {
	if s.Wall == nil {
		return
	}
	s.Wall.DamageWall(config.ShockwaveWallDamage)
}

func (s *BossSystem) summonSwarm(boss *component.Enemy, _ *defs.BossDefinition) {
	s.spawnMinions(boss, defs.EnemySwarm, config.SummonSwarmCount)
}
