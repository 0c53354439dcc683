package system

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// ErrUnknownEnemyType is returned for a type id missing from the catalog.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// IDSource выдаёт уникальные ID сущностей.
type IDSource interface {
	NewEntityID() types.EntityID
}

// Clock — источник виртуального времени симуляции.
type Clock interface {
	Now() time.Duration
}

// EnemyFactory builds fully initialised enemy records scaled for a wave.
type EnemyFactory struct {
	catalog *defs.Catalog
	ids     IDSource
	clock   Clock
}

func NewEnemyFactory(catalog *defs.Catalog, ids IDSource, clock Clock) *EnemyFactory {
	return &EnemyFactory{catalog: catalog, ids: ids, clock: clock}
}

// WaveStatScale returns the health, damage, gold and speed multipliers for a
// regular enemy on the given wave.
func WaveStatScale(wave int) (health, damage, gold, speed float64) {
	if wave < 1 {
		wave = 1
	}
	w := float64(wave - 1)
	health = 1 + w*config.EnemyHealthPerWave
	damage = 1 + w*config.EnemyDamagePerWave
	gold = 1 + w*config.EnemyGoldPerWave
	speed = 1 + float64(min(wave, config.EnemySpeedWaveCap))*config.EnemySpeedPerWave
	return health, damage, gold, speed
}

// BossScale returns 1 + (wave - minWave) * 0.1, never below 1.
func BossScale(wave, minWave int) float64 {
	return math.Max(1, 1+float64(wave-minWave)*config.BossWaveScaling)
}

// Create makes a regular enemy of typeID for the wave at pos.
func (f *EnemyFactory) Create(typeID string, wave int, pos component.Position) (*component.Enemy, error) {
	def, err := f.catalog.LookupEnemy(typeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownEnemyType, err)
	}
	hs, ds, gs, ss := WaveStatScale(wave)
	health := def.Health * hs
	return &component.Enemy{
		ID:          f.ids.NewEntityID(),
		Position:    pos,
		Size:        def.Size,
		Health:      health,
		MaxHealth:   health,
		Speed:       def.Speed * ss,
		Damage:      def.Damage * ds,
		GoldValue:   int(math.Round(float64(def.GoldValue) * gs)),
		Color:       def.Color,
		Type:        def.ID,
		IsSpecial:   def.IsSpecial,
		BehaviorTag: def.BehaviorTag,
		IsActive:    true,
		SpawnedAt:   f.clock.Now(),
	}, nil
}

// CreateBoss makes a boss instance with its own runtime extension.
func (f *EnemyFactory) CreateBoss(def *defs.BossDefinition, wave int, pos component.Position) *component.Enemy {
	scale := BossScale(wave, def.SpawnRequirements.MinWave)
	stats := def.BaseStats
	health := stats.Health * scale
	return &component.Enemy{
		ID:          f.ids.NewEntityID(),
		Position:    pos,
		Size:        stats.Size,
		Health:      health,
		MaxHealth:   health,
		Speed:       stats.Speed,
		Damage:      stats.Damage * scale,
		GoldValue:   int(math.Round(float64(stats.GoldValue) * scale)),
		Color:       stats.RGBA(),
		Type:        def.ID,
		IsSpecial:   true,
		BehaviorTag: "boss",
		IsActive:    true,
		SpawnedAt:   f.clock.Now(),
		Boss:        component.NewBossState(def, wave),
	}
}
