package defs

import "time"

// MiniEventType names a temporary rule modifier.
type MiniEventType string

const (
	MiniEventDoubleSpawn   MiniEventType = "double_spawn"
	MiniEventSpeedSurge    MiniEventType = "speed_surge"
	MiniEventTankParade    MiniEventType = "tank_parade"
	MiniEventEliteInvasion MiniEventType = "elite_invasion"
	MiniEventGhostFog      MiniEventType = "ghost_fog"
	MiniEventGoldRush      MiniEventType = "gold_rush"
	MiniEventSlowMotion    MiniEventType = "slow_motion"
)

// MiniEventBias tells the generator which difficulty band favours the event.
type MiniEventBias int

const (
	BiasNeutral MiniEventBias = iota
	BiasHarder
	BiasEasier
)

// MiniEventEffects — изменения правил на время активной фазы.
// Нулевой множитель означает «не задан».
type MiniEventEffects struct {
	SpeedMultiplier       float64
	SpawnRateMultiplier   float64
	EnemyHealthMultiplier float64
	EnemyDamageMultiplier float64
	SpecialEnemyTypes     []string
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func (e MiniEventEffects) Speed() float64     { return orOne(e.SpeedMultiplier) }
func (e MiniEventEffects) SpawnRate() float64 { return orOne(e.SpawnRateMultiplier) }
func (e MiniEventEffects) Health() float64    { return orOne(e.EnemyHealthMultiplier) }
func (e MiniEventEffects) Damage() float64    { return orOne(e.EnemyDamageMultiplier) }

// MiniEventRewards are granted when the active phase ends.
type MiniEventRewards struct {
	Gold    int
	Message string
}

// MiniEventDefinition is one entry of the mini-event catalog.
type MiniEventDefinition struct {
	Type        MiniEventType
	Duration    time.Duration
	WarningTime time.Duration
	Effects     MiniEventEffects
	Rewards     MiniEventRewards
	MinWave     int
	Weight      float64
	Bias        MiniEventBias
}

// MiniEventLibrary — каталог мини-событий в порядке приоритета выборки.
var MiniEventLibrary = []MiniEventDefinition{
	{
		Type: MiniEventDoubleSpawn, Duration: 20 * time.Second, WarningTime: 3 * time.Second,
		Effects: MiniEventEffects{SpawnRateMultiplier: 2},
		Rewards: MiniEventRewards{Gold: 100, Message: "Survived the double spawn!"},
		MinWave: 5, Weight: 3, Bias: BiasNeutral,
	},
	{
		Type: MiniEventSpeedSurge, Duration: 15 * time.Second, WarningTime: 3 * time.Second,
		Effects: MiniEventEffects{SpeedMultiplier: 1.4},
		Rewards: MiniEventRewards{Gold: 80, Message: "Speed surge repelled"},
		MinWave: 8, Weight: 2, Bias: BiasHarder,
	},
	{
		Type: MiniEventTankParade, Duration: 25 * time.Second, WarningTime: 4 * time.Second,
		Effects: MiniEventEffects{EnemyHealthMultiplier: 1.3, SpecialEnemyTypes: []string{EnemyTank}},
		Rewards: MiniEventRewards{Gold: 120, Message: "Tank parade crushed"},
		MinWave: 12, Weight: 2, Bias: BiasHarder,
	},
	{
		Type: MiniEventEliteInvasion, Duration: 30 * time.Second, WarningTime: 5 * time.Second,
		Effects: MiniEventEffects{EnemyDamageMultiplier: 1.25, EnemyHealthMultiplier: 1.15, SpecialEnemyTypes: []string{EnemyElite}},
		Rewards: MiniEventRewards{Gold: 200, Message: "Elite invasion defeated"},
		MinWave: 15, Weight: 1.5, Bias: BiasHarder,
	},
	{
		Type: MiniEventGhostFog, Duration: 20 * time.Second, WarningTime: 4 * time.Second,
		Effects: MiniEventEffects{SpecialEnemyTypes: []string{EnemyGhost}},
		Rewards: MiniEventRewards{Gold: 150, Message: "The fog lifts"},
		MinWave: 20, Weight: 1.5, Bias: BiasHarder,
	},
	{
		Type: MiniEventGoldRush, Duration: 20 * time.Second, WarningTime: 2 * time.Second,
		Effects: MiniEventEffects{EnemyHealthMultiplier: 0.9},
		Rewards: MiniEventRewards{Gold: 250, Message: "Gold rush!"},
		MinWave: 5, Weight: 2, Bias: BiasEasier,
	},
	{
		Type: MiniEventSlowMotion, Duration: 15 * time.Second, WarningTime: 2 * time.Second,
		Effects: MiniEventEffects{SpeedMultiplier: 0.7, SpawnRateMultiplier: 0.8},
		Rewards: MiniEventRewards{Gold: 50, Message: "Time flows again"},
		MinWave: 5, Weight: 2, Bias: BiasEasier,
	},
}
