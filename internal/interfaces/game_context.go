// internal/interfaces/game_context.go
package interfaces

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
)

// EnemyStore — живой набор врагов. Enemies возвращает врагов в порядке добавления.
type EnemyStore interface {
	NewEntityID() types.EntityID
	AddEnemy(enemy *component.Enemy)
	RemoveEnemy(id types.EntityID)
	Enemy(id types.EntityID) (*component.Enemy, bool)
	Enemies() []*component.Enemy
}

// TowerStore exposes the placed towers in placement order.
type TowerStore interface {
	Towers() []*component.Tower
}

// WaveStats are the kill-gate counters of the current wave.
type WaveStats interface {
	TotalSpawned() int
	EnemiesKilled() int
	RecordSpawn()
}

// Viewport — границы игрового поля в экранных координатах.
type Viewport interface {
	Bounds() (minX, minY, maxX, maxY float64)
}

// TowerDamager applies area damage to towers and returns how many were hit.
type TowerDamager interface {
	DamageTowers(center component.Position, radius, amount float64) int
}

// WallDamager damages the wall shield before base health.
type WallDamager interface {
	DamageWall(amount float64)
}

// BossHistory remembers defeated bosses for spawn prerequisites.
type BossHistory interface {
	HasDefeated(bossType string) bool
	RecordDefeat(bossType string, wave int)
}
