package defs

import (
	"image/color"
	"time"
)

// BossStats — базовые характеристики босса до масштабирования по волне.
type BossStats struct {
	Health    float64 `yaml:"health"`
	Speed     float64 `yaml:"speed"`
	Damage    float64 `yaml:"damage"`
	GoldValue int     `yaml:"gold_value"`
	Size      float64 `yaml:"size"`
	Color     []int   `yaml:"color"`
}

// RGBA converts the authored [r, g, b(, a)] list into a color.
func (s BossStats) RGBA() color.RGBA {
	c := color.RGBA{200, 40, 90, 255}
	parts := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, v := range s.Color {
		if i >= len(parts) {
			break
		}
		*parts[i] = uint8(v)
	}
	return c
}

// SpawnRequirements gate when a boss may appear.
type SpawnRequirements struct {
	MinWave            int      `yaml:"min_wave"`
	MaxWave            int      `yaml:"max_wave"` // 0 — без верхней границы
	SpawnChance        float64  `yaml:"spawn_chance"`
	PrerequisiteBosses []string `yaml:"prerequisite_bosses"`
}

// AllowsWave reports whether the wave is inside the boss's bracket.
func (r SpawnRequirements) AllowsWave(wave int) bool {
	if wave < r.MinWave {
		return false
	}
	return r.MaxWave == 0 || wave <= r.MaxWave
}

// BehaviorChanges are applied once when a phase is entered.
type BehaviorChanges struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	DamageMultiplier float64 `yaml:"damage_multiplier"`
	BehaviorTag      string  `yaml:"behavior_tag"`
}

// MinionSpawn configures minions summoned during a phase.
type MinionSpawn struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// Phase — одна стадия боя с боссом.
type Phase struct {
	Phase           int             `yaml:"phase"`
	Name            string          `yaml:"name"`
	HealthThreshold float64         `yaml:"health_threshold"`
	Abilities       []string        `yaml:"abilities"`
	BehaviorChanges BehaviorChanges `yaml:"behavior_changes"`
	MinionSpawn     *MinionSpawn    `yaml:"minion_spawn"`
}

// Cinematics holds the invulnerable window lengths in milliseconds.
type Cinematics struct {
	EntranceMs        int `yaml:"entrance_ms"`
	PhaseTransitionMs int `yaml:"phase_transition_ms"`
	DefeatMs          int `yaml:"defeat_ms"`
}

func (c Cinematics) Entrance() time.Duration {
	return time.Duration(c.EntranceMs) * time.Millisecond
}

func (c Cinematics) PhaseTransition() time.Duration {
	return time.Duration(c.PhaseTransitionMs) * time.Millisecond
}

func (c Cinematics) Defeat() time.Duration {
	return time.Duration(c.DefeatMs) * time.Millisecond
}

// Mechanics are the phase-independent flags of a boss.
type Mechanics struct {
	HasShield       bool    `yaml:"has_shield"`
	HasRageMode     bool    `yaml:"has_rage_mode"`
	CanFlee         bool    `yaml:"can_flee"`
	FleeThreshold   float64 `yaml:"flee_threshold"`
	CanSpawnMinions bool    `yaml:"can_spawn_minions"`
}

// BossDefinition is the immutable template a boss instance is created from.
type BossDefinition struct {
	ID                string            `yaml:"id"`
	Name              string            `yaml:"name"`
	BaseStats         BossStats         `yaml:"base_stats"`
	SpawnRequirements SpawnRequirements `yaml:"spawn_requirements"`
	Phases            []Phase           `yaml:"phases"`
	LootTable         []LootEntry       `yaml:"loot_table"`
	Cinematics        Cinematics        `yaml:"cinematics"`
	Mechanics         Mechanics         `yaml:"mechanics"`
}

// Thresholds returns the health fractions of every phase, in order.
func (d *BossDefinition) Thresholds() []float64 {
	out := make([]float64, len(d.Phases))
	for i, p := range d.Phases {
		out[i] = p.HealthThreshold
	}
	return out
}
