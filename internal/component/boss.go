package component

import (
	"time"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/timer"
)

// CinematicState — состояние жизненного цикла босса.
type CinematicState int

const (
	CinematicEntrance CinematicState = iota
	CinematicNormal
	CinematicPhaseTransition
	CinematicDefeat
)

func (s CinematicState) String() string {
	switch s {
	case CinematicEntrance:
		return "entrance"
	case CinematicNormal:
		return "normal"
	case CinematicPhaseTransition:
		return "phase_transition"
	case CinematicDefeat:
		return "defeat"
	}
	return "unknown"
}

// BossTimers holds the handles a boss owns on the scheduler.
type BossTimers struct {
	Entrance    timer.Handle
	Phase       timer.Handle
	AbilityLoop timer.Handle
	Minions     []timer.Handle
}

// BossState — расширение записи врага для боссов.
type BossState struct {
	BossType                  string
	SpawnWave                 int
	BossPhase                 int // 1-based, не убывает
	MaxBossPhases             int
	PhaseTransitionThresholds []float64
	BossAbilities             []string // способности текущей фазы
	AbilityCooldowns          map[defs.AbilityID]time.Duration
	CinematicState            CinematicState
	EntranceComplete          bool
	IsInvulnerable            bool
	ShieldStrength            float64
	RageMode                  bool
	IsFleeing                 bool
	FleeThreshold             float64
	CanSpawnMinions           bool
	LastMinionSpawn           time.Duration
	AbilityLoopActive         bool
	Timers                    BossTimers
}

// NewBossState builds the boss extension for a freshly spawned boss.
func NewBossState(def *defs.BossDefinition, wave int) *BossState {
	bs := &BossState{
		BossType:                  def.ID,
		SpawnWave:                 wave,
		BossPhase:                 1,
		MaxBossPhases:             len(def.Phases),
		PhaseTransitionThresholds: def.Thresholds(),
		AbilityCooldowns:          make(map[defs.AbilityID]time.Duration),
		CinematicState:            CinematicEntrance,
		IsInvulnerable:            true,
		FleeThreshold:             def.Mechanics.FleeThreshold,
		CanSpawnMinions:           def.Mechanics.CanSpawnMinions,
	}
	if len(def.Phases) > 0 {
		bs.BossAbilities = append([]string(nil), def.Phases[0].Abilities...)
	}
	return bs
}
