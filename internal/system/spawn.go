package system

import (
	"fmt"
	"log"
	"math"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/timer"
	"go-wave-defense/internal/utils"
	putils "go-wave-defense/pkg/utils"
)

const CueWaveStart = "wave-start"

// BossSpawner creates a boss for a wave, or returns nil when none is eligible.
type BossSpawner interface {
	CreateBoss(wave int, pos component.Position) *component.Enemy
}

// PerformanceSource provides the rolling performance score.
type PerformanceSource interface {
	Score() float64
}

// SpawnSystemDeps collects the spawn scheduler's collaborators.
type SpawnSystemDeps struct {
	Catalog     *defs.Catalog
	Generator   *WaveGenerator
	Factory     *EnemyFactory
	Bosses      BossSpawner
	MiniEvents  *MiniEventSystem
	Performance PerformanceSource
	Scheduler   *timer.Scheduler
	Rng         *utils.PRNGService
	Dispatcher  *event.Dispatcher
	Store       interfaces.EnemyStore
	Stats       interfaces.WaveStats
	Viewport    interfaces.Viewport
	Sound       interfaces.SoundPlayer
	GameOver    interfaces.GameOverSignal
}

// SpawnSystem выпускает врагов волны по таймеру с ограничением по убийствам.
type SpawnSystem struct {
	SpawnSystemDeps

	wave        *component.WaveConfig
	queue       []string
	next        int
	fallbackIdx int
	required    int
	spawned     int
	startedAt   time.Duration
	running     bool
	handle      timer.Handle
}

func NewSpawnSystem(deps SpawnSystemDeps) *SpawnSystem {
	return &SpawnSystem{SpawnSystemDeps: deps}
}

// AdaptiveDelay returns base * accel^progress clamped to [500ms, 8000ms].
// Once the queue is exhausted the delay grows by 1.5 with a 4000ms floor.
func AdaptiveDelay(base time.Duration, accel, progress float64, exhausted bool) time.Duration {
	if accel <= 0 {
		accel = 1
	}
	d := float64(base) * math.Pow(accel, putils.Clamp(progress, 0, 1))
	d = putils.Clamp(d, float64(config.MinSpawnDelay), float64(config.MaxSpawnDelay))
	if exhausted {
		d = math.Max(d*config.ExhaustedDelayFactor, float64(config.ExhaustedDelayFloor))
	}
	return time.Duration(d)
}

// SpawnProgress = max(spawned/10, elapsed/60s), clamped to [0, 1].
func SpawnProgress(spawned int, elapsed time.Duration) float64 {
	bySpawn := float64(spawned) / config.ProgressWindowEnemies
	byTime := float64(elapsed) / float64(config.ProgressWindow)
	return putils.Clamp(math.Max(bySpawn, byTime), 0, 1)
}

// BuildQueue flattens the composition into spawn tokens, then appends bonus enemies.
func BuildQueue(cfg *component.WaveConfig) []string {
	var queue []string
	for _, entry := range cfg.EnemyComposition {
		for i := 0; i < entry.Count; i++ {
			queue = append(queue, entry.Type)
		}
	}
	if cfg.Modifier != nil {
		for i := 0; i < cfg.Modifier.BonusEnemies; i++ {
			queue = append(queue, defs.BaseEnemyType)
		}
	}
	return queue
}

func waveOwner(wave int) string {
	return fmt.Sprintf("wave:%d", wave)
}

// StartWave generates the wave and schedules its first spawn after the
// initial delay. A running wave is stopped first.
func (s *SpawnSystem) StartWave(waveNumber int) *component.WaveConfig {
	s.StopWave()
	perf := config.NeutralPerformance
	if s.Performance != nil {
		perf = s.Performance.Score()
	}
	cfg := s.Generator.Generate(waveNumber, perf)

	s.wave = cfg
	s.queue = BuildQueue(cfg)
	s.next = 0
	s.fallbackIdx = 0
	s.required = len(s.queue)
	s.spawned = 0
	s.startedAt = s.Scheduler.Now()
	s.running = true
	s.handle = s.Scheduler.After(waveOwner(waveNumber), config.InitialSpawnDelay, s.spawnNext)

	if s.MiniEvents != nil {
		s.MiniEvents.Start(waveNumber, cfg.MiniEvent)
	}
	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: waveNumber, Required: s.required}})
	}
	if s.Sound != nil {
		s.Sound.Play(CueWaveStart)
	}
	log.Printf("Wave %d started: difficulty %.2f, %d enemies, spawn rate %v", waveNumber, cfg.Difficulty.Final, s.required, cfg.SpawnRate)
	return cfg
}

// StopWave cancels every pending tick of the wave. Enemies already in the
// world stay there.
func (s *SpawnSystem) StopWave() {
	if s.wave == nil {
		return
	}
	s.Scheduler.CancelOwner(waveOwner(s.wave.WaveNumber))
	s.handle = 0
	s.running = false
	if s.MiniEvents != nil {
		s.MiniEvents.Stop()
	}
}

func (s *SpawnSystem) Running() bool { return s.running }

// Wave returns the configuration of the current or last wave.
func (s *SpawnSystem) Wave() *component.WaveConfig { return s.wave }

// EnemiesRequired is the kill quota of the current wave.
func (s *SpawnSystem) EnemiesRequired() int { return s.required }

// QueueRemaining returns how many queued tokens have not been emitted yet.
func (s *SpawnSystem) QueueRemaining() int { return max(0, len(s.queue)-s.next) }

// Elapsed returns the virtual time since the wave started.
func (s *SpawnSystem) Elapsed() time.Duration {
	if s.wave == nil {
		return 0
	}
	return s.Scheduler.Now() - s.startedAt
}

// Spawned returns how many enemies this scheduler emitted in the current wave.
func (s *SpawnSystem) Spawned() int { return s.spawned }

func (s *SpawnSystem) spawnNext() {
	s.handle = 0
	if !s.running || s.wave == nil {
		return
	}
	if s.GameOver != nil && s.GameOver.IsGameOver() {
		s.StopWave()
		return
	}
	owner := waveOwner(s.wave.WaveNumber)

	available := s.Stats.TotalSpawned() - s.Stats.EnemiesKilled()
	if available >= s.required {
		s.handle = s.Scheduler.After(owner, config.SpawnDeferBackoff, s.spawnNext)
		return
	}

	token := s.nextToken()
	progress := SpawnProgress(s.spawned, s.Scheduler.Now()-s.startedAt)
	if enemy := s.emit(token, progress); enemy != nil {
		s.spawned++
		s.Stats.RecordSpawn()
		if s.Dispatcher != nil {
			s.Dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Wave: s.wave.WaveNumber}})
		}
	}

	exhausted := s.next >= len(s.queue)
	delay := AdaptiveDelay(s.wave.SpawnRate, s.wave.InWaveScaling.SpawnRateAcceleration, progress, exhausted)
	s.handle = s.Scheduler.After(owner, delay, s.spawnNext)
}

func (s *SpawnSystem) nextToken() string {
	if s.next < len(s.queue) {
		token := s.queue[s.next]
		s.next++
		return token
	}
	token := defs.FallbackPattern[s.fallbackIdx%len(defs.FallbackPattern)]
	s.fallbackIdx++
	return token
}

// emit creates one enemy for the token and applies the in-wave scaling for progress.
func (s *SpawnSystem) emit(token string, progress float64) *component.Enemy {
	pos := s.spawnPosition()
	wave := s.wave.WaveNumber

	var enemy *component.Enemy
	if s.Catalog.IsBoss(token) {
		if s.Bosses != nil {
			enemy = s.Bosses.CreateBoss(wave, pos)
		}
		if enemy == nil {
			log.Printf("SpawnSystem: no boss for wave %d, spawning %s instead", wave, defs.EnemyElite)
			token = defs.EnemyElite
		}
	}
	if enemy == nil {
		var err error
		enemy, err = s.Factory.Create(token, wave, pos)
		if err != nil {
			log.Printf("SpawnSystem: %v", err)
			return nil
		}
	}

	scaling := s.wave.InWaveScaling
	speedMul := 1 + (scaling.EnemySpeedMultiplier-1)*progress
	healthMul := 1 + (scaling.EnemyHealthMultiplier-1)*progress
	damageMul := 1.0
	if s.wave.Modifier != nil && s.wave.Modifier.SpeedMultiplier > 0 {
		speedMul *= s.wave.Modifier.SpeedMultiplier
	}
	if s.MiniEvents != nil {
		if fx, ok := s.MiniEvents.ActiveEffects(); ok {
			speedMul *= fx.Speed()
			healthMul *= fx.Health()
			damageMul *= fx.Damage()
		}
	}
	enemy.Speed *= speedMul
	enemy.MaxHealth *= healthMul
	enemy.Health = enemy.MaxHealth
	enemy.Damage *= damageMul

	s.Store.AddEnemy(enemy)
	return enemy
}

func (s *SpawnSystem) spawnPosition() component.Position {
	minX, minY, maxX := 0.0, 0.0, float64(config.ScreenWidth)
	if s.Viewport != nil {
		minX, minY, maxX, _ = s.Viewport.Bounds()
	}
	margin := config.SpawnEdgeMargin
	return component.Position{X: s.Rng.Range(minX+margin, maxX-margin), Y: minY}
}
