// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	BaseHealth       = 100
	WallShield       = 50
	StartingGold     = 250
	DefendedLineY    = ScreenHeight - 60
	SpawnEdgeMargin  = 40.0
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 9.0
	ClickCooldown    = 200 // мс
)

// Волновой генератор
const (
	DifficultyMin          = 0.1
	DifficultyMax          = 2.0
	HighPerformance        = 0.8
	LowPerformance         = 0.3
	HighPerformanceBonus   = 0.15
	LowPerformancePenalty  = -0.1
	RandomizationFrequency = 1.7
	RandomizationAmplitude = 0.05

	MiniEventMinWave      = 5
	MiniEventBaseChance   = 0.05
	MiniEventChanceCap    = 0.4
	MiniEventSpecialBonus = 0.3
	MiniEventTotalCap     = 0.8

	BaseEnemyCount      = 8
	EnemiesPerDiffPoint = 20
	DoubleSpawnFactor   = 1.5
	BaseTypeShare       = 0.2
	MinBaseTypeCount    = 2

	BaseSpawnRateMs  = 2000
	MinSpawnRateMs   = 500
	SpawnRateDiffCut = 0.15

	BasePrepTime       = 30 * time.Second
	MinPrepTime        = 15 * time.Second
	MaxPrepTime        = 60 * time.Second
	PrepPerformanceCut = 0.2
)

// Планировщик спавна
const (
	InitialSpawnDelay     = 2 * time.Second
	SpawnDeferBackoff     = time.Second
	MinSpawnDelay         = 500 * time.Millisecond
	MaxSpawnDelay         = 8000 * time.Millisecond
	ExhaustedDelayFactor  = 1.5
	ExhaustedDelayFloor   = 4000 * time.Millisecond
	ProgressWindow        = 60 * time.Second
	ProgressWindowEnemies = 10
)

// Обратная связь по производительности
const (
	PerformanceWindow  = 5
	ExpectedWaveTime   = 60 * time.Second
	NeutralPerformance = 0.5
)

// Боссы
const (
	BossWaveScaling        = 0.1
	AbilityCooldown        = 5 * time.Second
	AbilityLoopMin         = 3 * time.Second
	AbilityLoopMax         = 5 * time.Second
	MinionSpawnInterval    = 10 * time.Second
	MinionStagger          = 250 * time.Millisecond
	DefaultMinionCount     = 2
	ShieldCapFraction      = 0.3
	ShieldRegenPerSec      = 0.02
	RageThreshold          = 0.3
	RageMultiplier         = 1.5
	FleeSpeedMultiplier    = 2.0
	ChargeDistance         = 60.0
	GroundSlamRadius       = 150.0
	GroundSlamDamageFactor = 0.5
	ShockwaveWallDamage    = 10
	ShieldBurstFraction    = 0.1
	SummonSwarmCount       = 3
	MinionSpread           = 40.0
)

// Масштабирование обычных врагов по номеру волны
const (
	EnemyHealthPerWave = 0.12
	EnemyDamagePerWave = 0.05
	EnemyGoldPerWave   = 0.03
	EnemySpeedPerWave  = 0.01
	EnemySpeedWaveCap  = 50
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	LineColor       = color.RGBA{255, 255, 0, 128}
	ShieldColor     = color.RGBA{80, 160, 255, 200}
	TowerRangeColor = color.RGBA{255, 255, 255, 40}
	BossBarColor    = color.RGBA{200, 40, 90, 255}
	BossBarBack     = color.RGBA{60, 60, 60, 255}
	UIColorBlue     = color.RGBA{70, 130, 220, 255}
	PauseColor      = color.RGBA{200, 200, 200, 255}
	PlayColor       = color.RGBA{90, 200, 90, 255}
	SpeedColors     = []color.RGBA{{120, 200, 120, 255}, {230, 180, 60, 255}, {230, 80, 60, 255}}
	PanelColor      = color.RGBA{25, 35, 45, 230}
	PanelBorder     = color.RGBA{70, 130, 180, 255}
	WarningColor    = color.RGBA{255, 200, 60, 255}
)
