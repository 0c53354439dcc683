// internal/app/game.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/store"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/timer"
	"go-wave-defense/internal/utils"
)

const prepOwner = "prep"

// Options — параметры запуска, которые бинарники берут из флагов.
type Options struct {
	Seed        int64
	EnemiesPath string // пусто — встроенный каталог
	BossesPath  string
	DBPath      string // пусто — без истории между сессиями
	Sound       interfaces.SoundPlayer
	// AutoStart запускает следующую волну по окончании подготовки.
	AutoStart bool
}

// Stats — срез состояния для HUD и терминальной панели.
type Stats struct {
	Wave           int
	State          component.GameState
	Killed         int
	Required       int
	Spawned        int
	Alive          int
	Leaked         int
	Gold           int
	BaseHealth     float64
	WallShield     float64
	Performance    float64
	Difficulty     float64
	Elapsed        time.Duration
	PrepRemaining  time.Duration
	MiniEvent      defs.MiniEventType
	MiniEventPhase system.MiniEventPhase
	BossesDefeated int
	IsBossWave     bool
}

// Game holds the simulation and wires its systems together.
type Game struct {
	ECS             *entity.ECS
	Catalog         *defs.Catalog
	Scheduler       *timer.Scheduler
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Factory         *system.EnemyFactory
	Generator       *system.WaveGenerator
	Performance     *system.PerformanceSystem
	BossSystem      *system.BossSystem
	MiniEventSystem *system.MiniEventSystem
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	StateSystem     *system.StateSystem
	History         *store.History
	SpeedMultiplier float64

	// Wave — номер следующей волны.
	Wave int

	db             *sql.DB
	opts           Options
	gameTime       float64
	isPaused       bool
	leaked         int
	bossesDefeated int
	prepUntil      time.Duration
}

// NewGame initializes a new game instance.
func NewGame(ctx context.Context, opts Options) (*Game, error) {
	catalog, err := loadCatalog(opts)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	sched := timer.NewScheduler()
	rng := utils.NewPRNGService(opts.Seed)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		Catalog:         catalog,
		Scheduler:       sched,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		Performance:     system.NewPerformanceSystem(),
		SpeedMultiplier: 1.0,
		Wave:            1,
		opts:            opts,
	}

	var history interfaces.BossHistory = ecs
	if opts.DBPath != "" {
		if err := g.openHistory(ctx, opts.DBPath); err != nil {
			return nil, err
		}
		history = g.History
	}

	g.Factory = system.NewEnemyFactory(catalog, ecs, sched)
	g.Generator = system.NewWaveGenerator(catalog, rng)
	g.BossSystem = system.NewBossSystem(system.BossSystemDeps{
		Catalog:    catalog,
		Factory:    g.Factory,
		Scheduler:  sched,
		Rng:        rng,
		Dispatcher: eventDispatcher,
		Store:      ecs,
		Stats:      ecs,
		Towers:     ecs,
		Wall:       ecs,
		Viewport:   ecs,
		Economy:    ecs,
		Notifier:   ecs,
		Rewards:    ecs,
		Sound:      opts.Sound,
		History:    history,
		GameOver:   ecs,
	})
	g.MiniEventSystem = system.NewMiniEventSystem(sched, eventDispatcher, opts.Sound, ecs, ecs, ecs)
	g.SpawnSystem = system.NewSpawnSystem(system.SpawnSystemDeps{
		Catalog:     catalog,
		Generator:   g.Generator,
		Factory:     g.Factory,
		Bosses:      g.BossSystem,
		MiniEvents:  g.MiniEventSystem,
		Performance: g.Performance,
		Scheduler:   sched,
		Rng:         rng,
		Dispatcher:  eventDispatcher,
		Store:       ecs,
		Stats:       ecs,
		Viewport:    ecs,
		Sound:       opts.Sound,
		GameOver:    ecs,
	})
	g.MovementSystem = system.NewMovementSystem(ecs, sched)
	g.CombatSystem = system.NewCombatSystem(ecs, ecs, sched, g.DisabledTowerType)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveEnded, listener)
	eventDispatcher.Subscribe(event.BossDefeated, listener)
	eventDispatcher.Subscribe(event.LootDropped, listener)

	return g, nil
}

func loadCatalog(opts Options) (*defs.Catalog, error) {
	if opts.EnemiesPath == "" && opts.BossesPath == "" {
		return defs.LoadDefaultCatalog()
	}
	return defs.LoadCatalog(opts.EnemiesPath, opts.BossesPath)
}

// openHistory подключает sqlite и восстанавливает окно производительности.
func (g *Game) openHistory(ctx context.Context, path string) error {
	db, err := store.NewDB(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	history, err := store.OpenHistory(ctx, db)
	if err != nil {
		db.Close()
		return fmt.Errorf("open history: %w", err)
	}
	times, err := history.RecentCompletions(ctx, config.PerformanceWindow)
	if err != nil {
		db.Close()
		return fmt.Errorf("restore performance: %w", err)
	}
	g.Performance.Restore(times)
	g.db = db
	g.History = history
	log.Printf("History restored from %s: %d completions, performance %.2f", path, len(times), g.Performance.Score())
	return nil
}

// Close releases the history database.
func (g *Game) Close() error {
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		l.game.schedulePrep()
	case event.BossDefeated:
		l.game.bossesDefeated++
	case event.LootDropped:
		if data, ok := e.Data.(event.LootData); ok && data.Entry.Kind == defs.LootUnlock {
			log.Printf("Unlocked %s from %s", data.Entry.ID, data.BossType)
		}
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.ECS.IsGameOver() {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.Scheduler.Advance(seconds(dt))

	if g.ECS.GameState == component.WaveState {
		g.MovementSystem.Update(dt)
		g.CombatSystem.Update(dt)
		for _, e := range g.ECS.Enemies() {
			if e.IsBoss() {
				g.BossSystem.UpdateBoss(e, dt)
			}
		}
		g.cleanupDestroyedEntities()
	}
	g.checkGameOver()
	g.checkWaveCompletion()
}

func seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}

// StartNextWave начинает следующую волну из фазы строительства.
func (g *Game) StartNextWave() bool {
	if g.ECS.GameState != component.BuildState {
		return false
	}
	return g.StateSystem.SwitchToWaveState()
}

// StartWave begins the enemy wave. Called by StateSystem.
func (g *Game) StartWave() {
	g.Scheduler.CancelOwner(prepOwner)
	g.prepUntil = 0
	g.ECS.ResetWaveCounters()
	g.leaked = 0
	g.ECS.Wave = g.Wave
	g.SpawnSystem.StartWave(g.Wave)
	g.Wave++
}

// ClearEnemies убирает всех врагов вместе с таймерами боссов.
func (g *Game) ClearEnemies() {
	g.BossSystem.Shutdown()
	g.ECS.ClearEnemies()
}

func (g *Game) schedulePrep() {
	if !g.opts.AutoStart || g.ECS.IsGameOver() {
		return
	}
	prep := config.BasePrepTime
	if w := g.SpawnSystem.Wave(); w != nil {
		prep = w.AdaptiveTiming.PrepTime()
	}
	g.Scheduler.CancelOwner(prepOwner)
	g.prepUntil = g.Scheduler.Now() + prep
	g.Scheduler.After(prepOwner, prep, func() {
		g.prepUntil = 0
		g.StartNextWave()
	})
}

// DisabledTowerType — тип башни, отключённый модификатором текущей волны.
func (g *Game) DisabledTowerType() string {
	w := g.SpawnSystem.Wave()
	if w == nil || w.Modifier == nil || !g.SpawnSystem.Running() {
		return ""
	}
	return w.Modifier.DisableTowerType
}

func (g *Game) cleanupDestroyedEntities() {
	for _, e := range g.ECS.Enemies() {
		switch {
		case system.IsDead(e):
			g.handleKill(e)
		case system.ReachedDefendedLine(e):
			g.handleLeak(e)
		}
	}
}

func (g *Game) handleKill(e *component.Enemy) {
	if e.IsBoss() {
		g.BossSystem.HandleBossDefeat(e)
	}
	e.IsActive = false
	g.ECS.AddGold(e.GoldValue)
	g.ECS.RecordKill()
	g.ECS.RemoveEnemy(e.ID)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: e.ID, Type: e.Type, Wave: g.ECS.Wave}})
}

// handleLeak: дошедший до линии враг бьёт по стене и засчитывается в счётчик
// волны, чтобы порог убийств оставался достижимым.
func (g *Game) handleLeak(e *component.Enemy) {
	if e.IsBoss() {
		g.BossSystem.Dismiss(e)
	}
	e.IsActive = false
	g.ECS.DamageWall(e.Damage)
	g.ECS.RecordKill()
	g.leaked++
	g.ECS.RemoveEnemy(e.ID)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyData{ID: e.ID, Type: e.Type, Wave: g.ECS.Wave}})
}

func (g *Game) checkWaveCompletion() {
	if g.ECS.IsGameOver() || !g.SpawnSystem.Running() {
		return
	}
	required := g.SpawnSystem.EnemiesRequired()
	if required <= 0 || g.ECS.EnemiesKilled() < required {
		return
	}
	// Волна не кончается, пока живой босс не побеждён или не прорвался
	if g.ActiveBoss() != nil {
		return
	}

	wave := g.ECS.Wave
	elapsed := g.SpawnSystem.Elapsed()
	g.SpawnSystem.StopWave()
	score := g.Performance.RecordWaveCompletion(wave, elapsed)
	if g.History != nil {
		if err := g.History.RecordWave(context.Background(), wave, elapsed, score); err != nil {
			log.Printf("Game: record wave %d: %v", wave, err)
		}
	}
	log.Printf("Wave %d completed in %v: %d killed, %d leaked, performance %.2f", wave, elapsed.Round(time.Millisecond), g.ECS.EnemiesKilled(), g.leaked, score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{
		Wave: wave, Killed: g.ECS.EnemiesKilled(), Required: required, Elapsed: elapsed.Seconds(),
	}})
}

func (g *Game) checkGameOver() {
	if g.ECS.IsGameOver() || g.ECS.BaseHealth > 0 {
		return
	}
	g.ECS.SetGameOver()
	g.SpawnSystem.StopWave()
	g.BossSystem.Shutdown()
	g.MiniEventSystem.Stop()
	g.Scheduler.CancelOwner(prepOwner)
	g.prepUntil = 0
	log.Printf("Game over on wave %d", g.ECS.Wave)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{
		Wave: g.ECS.Wave, Killed: g.ECS.EnemiesKilled(), Required: g.SpawnSystem.EnemiesRequired(),
	}})
}

// --- Public Accessors & Mutators ---

// HandleSpeedClick переключает скорость 1x -> 2x -> 4x -> 1x.
func (g *Game) HandleSpeedClick() {
	switch g.SpeedMultiplier {
	case 1.0:
		g.SpeedMultiplier = 2.0
	case 2.0:
		g.SpeedMultiplier = 4.0
	default:
		g.SpeedMultiplier = 1.0
	}
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Stats собирает снимок состояния.
func (g *Game) Stats() Stats {
	s := Stats{
		Wave:           g.ECS.Wave,
		State:          g.ECS.GameState,
		Killed:         g.ECS.EnemiesKilled(),
		Required:       g.SpawnSystem.EnemiesRequired(),
		Spawned:        g.ECS.TotalSpawned(),
		Alive:          g.ECS.EnemyCount(),
		Leaked:         g.leaked,
		Gold:           g.ECS.Gold(),
		BaseHealth:     g.ECS.BaseHealth,
		WallShield:     g.ECS.WallShield,
		Performance:    g.Performance.Score(),
		MiniEventPhase: g.MiniEventSystem.Phase(),
		BossesDefeated: g.bossesDefeated,
	}
	if w := g.SpawnSystem.Wave(); w != nil {
		s.Difficulty = w.Difficulty.Final
		s.IsBossWave = w.IsBossWave
		if g.SpawnSystem.Running() {
			s.Elapsed = g.SpawnSystem.Elapsed()
		}
	}
	if cur := g.MiniEventSystem.Current(); cur != nil {
		s.MiniEvent = cur.Type
	}
	if g.prepUntil > 0 {
		s.PrepRemaining = max(0, g.prepUntil-g.Scheduler.Now())
	}
	return s
}

// SpawnBoss выпускает босса bossType (пусто — босс по номеру волны) в середине
// верхнего края, минуя правила появления. Только во время волны.
func (g *Game) SpawnBoss(bossType string) (*component.Enemy, bool) {
	if g.ECS.GameState != component.WaveState || g.ECS.IsGameOver() {
		return nil, false
	}
	if bossType == "" {
		bossType = g.Catalog.BossTypeForWave(g.ECS.Wave)
	}
	minX, minY, maxX, _ := g.ECS.Bounds()
	boss := g.BossSystem.SpawnDefinition(bossType, g.ECS.Wave, component.Position{X: (minX + maxX) / 2, Y: minY})
	if boss == nil {
		return nil, false
	}
	g.ECS.RecordSpawn()
	return boss, true
}

// ActiveBoss returns the first live boss, or nil.
func (g *Game) ActiveBoss() *component.Enemy {
	for _, e := range g.ECS.Enemies() {
		if e.IsBoss() {
			return e
		}
	}
	return nil
}
