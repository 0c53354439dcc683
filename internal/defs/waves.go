package defs

// TypeWeight — относительный вес типа врага в составе волны.
type TypeWeight struct {
	Type   string
	Weight float64
}

// EnemyTier описывает таблицу весов для волн до MaxWave включительно.
// MaxWave == 0 означает «все последующие волны».
type EnemyTier struct {
	MaxWave int
	Weights []TypeWeight
}

// BaseEnemyType всегда составляет не меньше 20% волны.
const BaseEnemyType = EnemyBasic

// EnemyTiers определяет прогрессию состава волн.
var EnemyTiers = []EnemyTier{
	{MaxWave: 10, Weights: []TypeWeight{{EnemyBasic, 5}, {EnemyScout, 3}, {EnemyTank, 1}}},
	{MaxWave: 25, Weights: []TypeWeight{{EnemyBasic, 4}, {EnemyScout, 3}, {EnemyTank, 2}, {EnemyGhost, 1}}},
	{MaxWave: 50, Weights: []TypeWeight{{EnemyBasic, 3}, {EnemyScout, 3}, {EnemyTank, 3}, {EnemyGhost, 2}, {EnemyElite, 1}}},
	{MaxWave: 0, Weights: []TypeWeight{{EnemyBasic, 2}, {EnemyScout, 3}, {EnemyTank, 3}, {EnemyGhost, 3}, {EnemyElite, 2}, {EnemySwarm, 2}}},
}

// FallbackPattern is cycled once a wave's queue is exhausted.
var FallbackPattern = []string{EnemyTank, EnemyScout, EnemyBasic}

// TierForWave returns the weight table for the wave.
func TierForWave(wave int) []TypeWeight {
	for _, tier := range EnemyTiers {
		if tier.MaxWave == 0 || wave <= tier.MaxWave {
			return tier.Weights
		}
	}
	return EnemyTiers[len(EnemyTiers)-1].Weights
}
