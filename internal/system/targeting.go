package system

import (
	"math"
	"slices"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
)

// TargetOptions narrow the candidate set before a mode picks one enemy.
// Zero RangeMultiplier and MaxHealthFraction mean 1.
type TargetOptions struct {
	Mode              defs.TargetingMode
	RangeMultiplier   float64
	ExcludeTypes      []string
	RequireTypes      []string
	MinHealthFraction float64
	MaxHealthFraction float64
}

// ThreatAssessment — разовая оценка опасности врага для башни.
type ThreatAssessment struct {
	Enemy          *component.Enemy
	ThreatScore    float64
	Distance       float64
	TimeToReach    float64
	DamageCapacity float64
	SurvivalTime   float64
}

type targetStrategy func(tower *component.Tower, candidates []*component.Enemy) *component.Enemy

var targetStrategies = [defs.TargetingModeCount]targetStrategy{
	defs.ModeAuto:         nearestTarget,
	defs.ModeNearest:      nearestTarget,
	defs.ModeLowestHP:     lowestBy(func(_ *component.Tower, e *component.Enemy) float64 { return e.Health }),
	defs.ModeHighestHP:    highestBy(func(_ *component.Tower, e *component.Enemy) float64 { return e.Health }),
	defs.ModeFastest:      highestBy(func(_ *component.Tower, e *component.Enemy) float64 { return e.Speed }),
	defs.ModeSlowest:      lowestBy(func(_ *component.Tower, e *component.Enemy) float64 { return e.Speed }),
	defs.ModeHighestValue: highestBy(func(_ *component.Tower, e *component.Enemy) float64 { return float64(e.GoldValue) }),
	defs.ModeStrongest:    highestBy(func(_ *component.Tower, e *component.Enemy) float64 { return e.MaxHealth }),
	defs.ModeFirstSeen:    lowestBy(func(_ *component.Tower, e *component.Enemy) float64 { return float64(e.ID) }),
	defs.ModeLastSeen:     highestBy(func(_ *component.Tower, e *component.Enemy) float64 { return float64(e.ID) }),
	defs.ModeThreat:       highestBy(func(t *component.Tower, e *component.Enemy) float64 { return AssessThreat(e, t).ThreatScore }),
}

// SelectTarget filters enemies for the tower and reduces them to one target
// with the requested mode. It returns nil when nothing qualifies.
func SelectTarget(tower *component.Tower, enemies []*component.Enemy, opts TargetOptions) *component.Enemy {
	candidates := FilterCandidates(tower, enemies, opts)
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	mode := opts.Mode
	if mode < 0 || mode >= defs.TargetingModeCount {
		mode = defs.ModeNearest
	}
	return targetStrategies[mode](tower, candidates)
}

// FilterCandidates keeps active enemies in range that pass the type and health rules.
func FilterCandidates(tower *component.Tower, enemies []*component.Enemy, opts TargetOptions) []*component.Enemy {
	rangeMul := opts.RangeMultiplier
	if rangeMul <= 0 {
		rangeMul = 1
	}
	maxFrac := opts.MaxHealthFraction
	if maxFrac <= 0 {
		maxFrac = 1
	}
	reach := tower.Range * rangeMul

	var out []*component.Enemy
	for _, e := range enemies {
		if e == nil || !e.IsActive || e.Health <= 0 {
			continue
		}
		if e.BehaviorTag == defs.BehaviorGhost && !tower.CanDetectGhosts {
			continue
		}
		if tower.Position.DistanceTo(e.Position) > reach {
			continue
		}
		if slices.Contains(opts.ExcludeTypes, e.Type) {
			continue
		}
		if len(opts.RequireTypes) > 0 && !slices.Contains(opts.RequireTypes, e.Type) {
			continue
		}
		frac := e.HealthFraction()
		if frac < opts.MinHealthFraction || frac > maxFrac {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AssessThreat scores how dangerous the enemy currently is to the tower.
func AssessThreat(enemy *component.Enemy, tower *component.Tower) ThreatAssessment {
	distance := tower.Position.DistanceTo(enemy.Position)
	timeToReach := math.Inf(1)
	if enemy.Speed > 0 {
		timeToReach = distance / enemy.Speed
	}
	healthFrac := enemy.HealthFraction()
	survival := math.Inf(1)
	if tower.Damage > 0 {
		survival = (enemy.Health / tower.Damage) * tower.FireRate
	}

	score := math.Max(0, 100-distance/10) +
		healthFrac*30 +
		(enemy.Speed/100)*20 +
		(enemy.Damage/20)*25
	if enemy.IsSpecial {
		score += 40
	}
	switch enemy.Type {
	case defs.EnemyTank:
		score += 35
	case defs.EnemyScout:
		score += 20
	case defs.EnemyGhost:
		score += 30
	}
	switch {
	case timeToReach < 5:
		score += 50
	case timeToReach < 10:
		score += 25
	}

	return ThreatAssessment{
		Enemy:          enemy,
		ThreatScore:    score,
		Distance:       distance,
		TimeToReach:    timeToReach,
		DamageCapacity: enemy.Damage * healthFrac,
		SurvivalTime:   survival,
	}
}

func nearestTarget(tower *component.Tower, candidates []*component.Enemy) *component.Enemy {
	return lowestBy(func(t *component.Tower, e *component.Enemy) float64 {
		return t.Position.DistanceTo(e.Position)
	})(tower, candidates)
}

// lowestBy and highestBy replace the current best only on a strict
// improvement, so the first encountered candidate wins ties.
func lowestBy(key func(*component.Tower, *component.Enemy) float64) targetStrategy {
	return func(tower *component.Tower, candidates []*component.Enemy) *component.Enemy {
		var best *component.Enemy
		bestVal := math.Inf(1)
		for _, e := range candidates {
			if v := key(tower, e); best == nil || v < bestVal {
				best, bestVal = e, v
			}
		}
		return best
	}
}

func highestBy(key func(*component.Tower, *component.Enemy) float64) targetStrategy {
	return func(tower *component.Tower, candidates []*component.Enemy) *component.Enemy {
		var best *component.Enemy
		bestVal := math.Inf(-1)
		for _, e := range candidates {
			if v := key(tower, e); best == nil || v > bestVal {
				best, bestVal = e, v
			}
		}
		return best
	}
}
