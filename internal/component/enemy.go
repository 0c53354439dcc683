package component

import (
	"image/color"
	"time"

	"go-wave-defense/internal/types"
)

// Enemy представляет вражескую сущность в живом наборе.
type Enemy struct {
	ID          types.EntityID
	Position    Position
	Size        float64
	Health      float64
	MaxHealth   float64
	Speed       float64
	Damage      float64
	GoldValue   int
	Color       color.RGBA
	Type        string // ID из enemies.json или bosses.yaml
	IsSpecial   bool
	BehaviorTag string
	FrozenUntil time.Duration // виртуальное время, до которого враг стоит на месте
	IsActive    bool
	SpawnedAt   time.Duration

	// Boss не nil только у боссов.
	Boss *BossState
}

// IsBoss reports whether the enemy carries boss state.
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// HealthFraction returns health/maxHealth, zero for a degenerate max.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}

// IsFrozen reports whether a freeze effect is still running at now.
func (e *Enemy) IsFrozen(now time.Duration) bool {
	return e.FrozenUntil > now
}
