// component/tower.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

type Tower struct {
	ID              types.EntityID
	DefID           string // ID из TowerLibrary
	Type            defs.TowerType
	Level           int
	Position        Position
	Range           float64 // Радиус действия в пикселях
	Damage          float64
	FireRate        float64 // Выстрелов в секунду
	FreezeDuration  float64 // Секунды заморозки при попадании
	CanDetectGhosts bool
	Mode            defs.TargetingMode
	FireCooldown    float64
	Health          float64
	MaxHealth       float64
	IsActive        bool // Разрушенная башня не стреляет
	TargetID        types.EntityID
}

// NewTower builds a tower from its library definition.
func NewTower(id types.EntityID, def defs.TowerDefinition, pos Position) *Tower {
	return &Tower{
		ID:              id,
		DefID:           def.ID,
		Type:            def.Type,
		Level:           def.Level,
		Position:        pos,
		Range:           def.Combat.Range,
		Damage:          def.Combat.Damage,
		FireRate:        def.Combat.FireRate,
		FreezeDuration:  def.Combat.FreezeDuration,
		CanDetectGhosts: def.CanDetectGhosts,
		Mode:            def.TargetingMode,
		Health:          def.Health,
		MaxHealth:       def.Health,
		IsActive:        true,
	}
}
