package system

import (
	"log"
	"math"
	"sort"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
	putils "go-wave-defense/pkg/utils"
)

// WaveGenerator процедурно строит конфигурацию волны.
type WaveGenerator struct {
	catalog    *defs.Catalog
	rng        *utils.PRNGService
	miniEvents []defs.MiniEventDefinition
}

func NewWaveGenerator(catalog *defs.Catalog, rng *utils.PRNGService) *WaveGenerator {
	return &WaveGenerator{
		catalog:    catalog,
		rng:        rng,
		miniEvents: defs.MiniEventLibrary,
	}
}

// BaseDifficulty is the five-band piecewise-linear ramp. Waves below 1 count as 1.
func BaseDifficulty(wave int) float64 {
	w := float64(max(wave, 1))
	switch {
	case wave <= 10:
		return 0.2 + 0.06*w
	case wave <= 25:
		return 0.8 + 0.03*(w-10)
	case wave <= 50:
		return 1.25 + 0.015*(w-25)
	case wave <= 75:
		return 1.625 + 0.008*(w-50)
	default:
		return 1.825 + 0.003*(w-75)
	}
}

// PerformanceAdjustment makes waves harder for strong players and easier for weak ones.
func PerformanceAdjustment(performance float64) float64 {
	switch {
	case performance > config.HighPerformance:
		return config.HighPerformanceBonus
	case performance < config.LowPerformance:
		return config.LowPerformancePenalty
	}
	return 0
}

func Randomization(wave int) float64 {
	return math.Sin(float64(wave)*config.RandomizationFrequency) * config.RandomizationAmplitude
}

// ComputeDifficulty combines the three terms and clamps to [0.1, 2.0].
func ComputeDifficulty(wave int, performance float64) component.Difficulty {
	d := component.Difficulty{
		BaseDifficulty:              BaseDifficulty(wave),
		PlayerPerformanceAdjustment: PerformanceAdjustment(performance),
		RandomizationFactor:         Randomization(wave),
	}
	d.Final = putils.Clamp(d.BaseDifficulty+d.PlayerPerformanceAdjustment+d.RandomizationFactor,
		config.DifficultyMin, config.DifficultyMax)
	return d
}

// IsBossWave: каждая десятая волна и отдельно 50, 80, 100.
func IsBossWave(wave int) bool {
	return wave > 0 && (wave%10 == 0 || wave == 50 || wave == 80 || wave == 100)
}

// IsSpecialWave: кратна 7, 13 или 17, либо простая.
func IsSpecialWave(wave int) bool {
	if wave <= 0 {
		return false
	}
	return wave%7 == 0 || wave%13 == 0 || wave%17 == 0 || putils.IsPrime(wave)
}

// MiniEventChance returns the trigger probability, zero on waves that never roll.
func MiniEventChance(wave int, difficulty float64) float64 {
	if wave < config.MiniEventMinWave || IsBossWave(wave) {
		return 0
	}
	chance := math.Min(config.MiniEventChanceCap, config.MiniEventBaseChance+difficulty*0.1+float64(wave)*0.002)
	if IsSpecialWave(wave) {
		chance += config.MiniEventSpecialBonus
	}
	return math.Min(config.MiniEventTotalCap, chance)
}

// TargetEnemyCount = floor(8 + 20d), times 1.5 for double spawn.
func TargetEnemyCount(difficulty float64, doubleSpawn bool) int {
	n := math.Floor(config.BaseEnemyCount + difficulty*config.EnemiesPerDiffPoint)
	if doubleSpawn {
		n = math.Floor(n * config.DoubleSpawnFactor)
	}
	return int(n)
}

// SpawnRateFor returns the base interval between spawns.
func SpawnRateFor(difficulty float64, mini *component.MiniEventConfig) time.Duration {
	ms := math.Max(config.MinSpawnRateMs, config.BaseSpawnRateMs*(1-difficulty*config.SpawnRateDiffCut))
	if mini != nil {
		ms /= mini.Effects.SpawnRate()
	}
	return time.Duration(ms * float64(time.Millisecond))
}

func AdaptiveTimingFor(performance float64) component.AdaptiveTiming {
	return component.AdaptiveTiming{
		BasePrepTime:          config.BasePrepTime,
		PerformanceMultiplier: 1 - config.PrepPerformanceCut*putils.Clamp(performance, 0, 1),
		MinPrepTime:           config.MinPrepTime,
		MaxPrepTime:           config.MaxPrepTime,
	}
}

func InWaveScalingFor(difficulty float64) component.InWaveScaling {
	return component.InWaveScaling{
		EnemySpeedMultiplier:  1 + difficulty*0.08,
		EnemyHealthMultiplier: 1 + difficulty*0.12,
		SpawnRateAcceleration: 0.97 - difficulty*0.015,
	}
}

// Generate builds the configuration for one wave.
func (g *WaveGenerator) Generate(wave int, performance float64) *component.WaveConfig {
	difficulty := ComputeDifficulty(wave, performance)
	d := difficulty.Final
	bossWave := IsBossWave(wave)

	var mini *component.MiniEventConfig
	if chance := MiniEventChance(wave, d); chance > 0 && g.rng.Roll(chance) {
		mini = g.pickMiniEvent(wave, d)
	}

	cfg := &component.WaveConfig{
		WaveNumber:       wave,
		EnemyComposition: g.composition(wave, d, mini),
		SpawnRate:        SpawnRateFor(d, mini),
		Modifier:         waveModifier(wave),
		AdaptiveTiming:   AdaptiveTimingFor(performance),
		InWaveScaling:    InWaveScalingFor(d),
		MiniEvent:        mini,
		Difficulty:       difficulty,
		IsBossWave:       bossWave,
	}
	if bossWave {
		if bossType := g.catalog.BossTypeForWave(wave); bossType != "" {
			cfg.EnemyComposition = append(cfg.EnemyComposition, component.CompositionEntry{Type: bossType, Count: 1})
		} else {
			log.Printf("WaveGenerator: boss wave %d but the catalog has no bosses", wave)
		}
	}
	return cfg
}

func (g *WaveGenerator) pickMiniEvent(wave int, difficulty float64) *component.MiniEventConfig {
	var candidates []defs.MiniEventDefinition
	var weights []float64
	for _, def := range g.miniEvents {
		if wave < def.MinWave {
			continue
		}
		w := def.Weight
		if def.Bias == defs.BiasHarder && difficulty > 1.5 {
			w *= 2
		}
		if def.Bias == defs.BiasEasier && difficulty < 0.8 {
			w *= 2
		}
		candidates = append(candidates, def)
		weights = append(weights, w)
	}
	idx := g.rng.ChooseWeighted(weights)
	if idx < 0 {
		log.Printf("WaveGenerator: no mini-event candidates for wave %d", wave)
		return nil
	}
	def := candidates[idx]
	return &component.MiniEventConfig{
		Type:        def.Type,
		Duration:    def.Duration,
		WarningTime: def.WarningTime,
		Effects:     def.Effects,
		Rewards:     def.Rewards,
	}
}

// composition distributes the target count so the non-boss sum is exact.
func (g *WaveGenerator) composition(wave int, difficulty float64, mini *component.MiniEventConfig) []component.CompositionEntry {
	doubleSpawn := mini != nil && mini.Type == defs.MiniEventDoubleSpawn
	target := TargetEnemyCount(difficulty, doubleSpawn)
	baseCount := max(config.MinBaseTypeCount, int(math.Ceil(float64(target)*config.BaseTypeShare)))
	if baseCount > target {
		baseCount = target
	}

	weights := append([]defs.TypeWeight(nil), defs.TierForWave(wave)...)
	if mini != nil {
		for _, special := range mini.Effects.SpecialEnemyTypes {
			found := false
			for i := range weights {
				if weights[i].Type == special {
					weights[i].Weight *= 2
					found = true
				}
			}
			if !found {
				weights = append(weights, defs.TypeWeight{Type: special, Weight: 2})
			}
		}
	}

	counts := distribute(target-baseCount, weights)
	entries := []component.CompositionEntry{{Type: defs.BaseEnemyType, Count: baseCount}}
	for i, tw := range weights {
		if counts[i] == 0 {
			continue
		}
		if tw.Type == defs.BaseEnemyType {
			entries[0].Count += counts[i]
			continue
		}
		entries = append(entries, component.CompositionEntry{Type: tw.Type, Count: counts[i]})
	}
	return entries
}

// distribute splits n by weight using largest remainders; ties keep table order.
func distribute(n int, weights []defs.TypeWeight) []int {
	counts := make([]int, len(weights))
	if n <= 0 || len(weights) == 0 {
		return counts
	}
	total := 0.0
	for _, tw := range weights {
		total += math.Max(0, tw.Weight)
	}
	if total <= 0 {
		counts[0] = n
		return counts
	}
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(weights))
	assigned := 0
	for i, tw := range weights {
		exact := float64(n) * math.Max(0, tw.Weight) / total
		counts[i] = int(math.Floor(exact))
		assigned += counts[i]
		rems[i] = rem{idx: i, frac: exact - float64(counts[i])}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; assigned < n; i++ {
		counts[rems[i%len(rems)].idx]++
		assigned++
	}
	return counts
}

// waveModifier attaches rule changes to special waves.
func waveModifier(wave int) *component.Modifier {
	if !IsSpecialWave(wave) {
		return nil
	}
	mod := &component.Modifier{SpeedMultiplier: 1.1}
	if wave%13 == 0 {
		mod.BonusEnemies = wave / 13
	}
	if wave%17 == 0 {
		attack := defs.AttackTowerIDs()
		mod.DisableTowerType = attack[(wave/17)%len(attack)]
	}
	return mod
}
