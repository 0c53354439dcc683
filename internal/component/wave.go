package component

import (
	"time"

	"go-wave-defense/internal/defs"
)

// CompositionEntry — сколько врагов данного типа в волне.
type CompositionEntry struct {
	Type  string
	Count int
}

// Modifier is an optional wave-wide rule change. Zero fields are unset.
type Modifier struct {
	SpeedMultiplier  float64
	BonusEnemies     int
	DisableTowerType string
}

// AdaptiveTiming is consumed by the preparation countdown.
type AdaptiveTiming struct {
	BasePrepTime          time.Duration
	PerformanceMultiplier float64
	MinPrepTime           time.Duration
	MaxPrepTime           time.Duration
}

// PrepTime returns the clamped preparation time.
func (a AdaptiveTiming) PrepTime() time.Duration {
	d := time.Duration(float64(a.BasePrepTime) * a.PerformanceMultiplier)
	if d < a.MinPrepTime {
		return a.MinPrepTime
	}
	if d > a.MaxPrepTime {
		return a.MaxPrepTime
	}
	return d
}

// InWaveScaling — прогрессивное усиление врагов внутри волны.
type InWaveScaling struct {
	EnemySpeedMultiplier  float64
	EnemyHealthMultiplier float64
	SpawnRateAcceleration float64
}

// Difficulty records how the wave's difficulty was derived.
type Difficulty struct {
	BaseDifficulty              float64
	PlayerPerformanceAdjustment float64
	RandomizationFactor         float64
	Final                       float64
}

// MiniEventConfig — временное изменение правил, прикреплённое к волне.
type MiniEventConfig struct {
	Type        defs.MiniEventType
	Duration    time.Duration
	WarningTime time.Duration
	Effects     defs.MiniEventEffects
	Rewards     defs.MiniEventRewards
}

// WaveConfig is created once per wave start and not mutated afterwards.
type WaveConfig struct {
	WaveNumber       int
	EnemyComposition []CompositionEntry
	SpawnRate        time.Duration
	Modifier         *Modifier
	AdaptiveTiming   AdaptiveTiming
	InWaveScaling    InWaveScaling
	MiniEvent        *MiniEventConfig
	Difficulty       Difficulty
	IsBossWave       bool
}

// EnemyCount sums the composition, optionally leaving boss entries out.
func (w *WaveConfig) EnemyCount(isBoss func(string) bool) int {
	n := 0
	for _, e := range w.EnemyComposition {
		if isBoss != nil && isBoss(e.Type) {
			continue
		}
		n += e.Count
	}
	return n
}
