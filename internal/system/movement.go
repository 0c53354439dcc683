// internal/system/movement.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/interfaces"
)

// MovementSystem двигает врагов вниз к линии обороны. Замороженные враги
// и боссы в кинематике стоят на месте.
type MovementSystem struct {
	enemies interfaces.EnemyStore
	clock   Clock
}

func NewMovementSystem(enemies interfaces.EnemyStore, clock Clock) *MovementSystem {
	return &MovementSystem{enemies: enemies, clock: clock}
}

func (s *MovementSystem) Update(deltaTime float64) {
	now := s.clock.Now()
	for _, e := range s.enemies.Enemies() {
		if !e.IsActive || e.IsFrozen(now) {
			continue
		}
		if b := e.Boss; b != nil && b.CinematicState != component.CinematicNormal {
			continue
		}
		e.Position.Y += e.Speed * deltaTime
	}
}

// ReachedDefendedLine reports whether the enemy crossed the defended line.
func ReachedDefendedLine(e *component.Enemy) bool {
	return e.Position.Y >= config.DefendedLineY
}
