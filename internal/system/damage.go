package system

import (
	"math"

	"go-wave-defense/internal/component"
	putils "go-wave-defense/pkg/utils"
)

// ApplyDamage — единственное место, где здоровье врага ограничивается
// диапазоном [0, MaxHealth]. Неуязвимый босс урон игнорирует, щит
// поглощает урон первым. Возвращает урон, снятый со здоровья.
func ApplyDamage(enemy *component.Enemy, amount float64) float64 {
	if enemy == nil || !enemy.IsActive || amount <= 0 || math.IsNaN(amount) {
		return 0
	}
	if b := enemy.Boss; b != nil {
		if b.IsInvulnerable {
			return 0
		}
		if b.ShieldStrength > 0 {
			absorbed := math.Min(b.ShieldStrength, amount)
			b.ShieldStrength -= absorbed
			amount -= absorbed
		}
	}
	before := enemy.Health
	enemy.Health = putils.Clamp(enemy.Health-amount, 0, enemy.MaxHealth)
	return before - enemy.Health
}

// IsDead reports whether the enemy has no health left.
func IsDead(enemy *component.Enemy) bool {
	return enemy.Health <= 0
}
