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
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	putils "go-wave-defense/pkg/utils"
)

// Звуковые сигналы боссов.
const (
	CueBossEntrance = "boss-entrance"
	CueBossPhase    = "boss-phase"
	CueBossRage     = "boss-rage"
	CueBossDefeat   = "boss-defeat"
	CueLoot         = "loot"
)

// BossSystemDeps collects the collaborators the boss state machine talks to.
type BossSystemDeps struct {
	Catalog    *defs.Catalog
	Factory    *EnemyFactory
	Scheduler  *timer.Scheduler
	Rng        *utils.PRNGService
	Dispatcher *event.Dispatcher
	Store      interfaces.EnemyStore
	Stats      interfaces.WaveStats
	Towers     interfaces.TowerDamager
	Wall       interfaces.WallDamager
	Viewport   interfaces.Viewport
	Economy    interfaces.Economy
	Notifier   interfaces.Notifier
	Rewards    interfaces.Rewards
	Sound      interfaces.SoundPlayer
	History    interfaces.BossHistory
	GameOver   interfaces.GameOverSignal
}

// BossSystem управляет жизненным циклом боссов:
// entrance -> normal <-> phase_transition -> defeat.
type BossSystem struct {
	BossSystemDeps
	abilities [defs.AbilityCount]abilityHandler
}

func NewBossSystem(deps BossSystemDeps) *BossSystem {
	s := &BossSystem{BossSystemDeps: deps}
	s.abilities = s.abilityTable()
	return s
}

func bossOwner(id types.EntityID) string {
	return fmt.Sprintf("boss:%d", id)
}

// eligibleBosses returns the definitions whose bracket covers the wave and
// whose prerequisites have been defeated, in catalog order.
func (s *BossSystem) eligibleBosses(wave int) []*defs.BossDefinition {
	var out []*defs.BossDefinition
	for _, def := range s.Catalog.Bosses() {
		if !def.SpawnRequirements.AllowsWave(wave) {
			continue
		}
		ok := true
		for _, pre := range def.SpawnRequirements.PrerequisiteBosses {
			if s.History == nil || !s.History.HasDefeated(pre) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, def)
		}
	}
	return out
}

// pickBoss rolls each eligible definition's spawn chance in order and
// returns the first one that passes.
func (s *BossSystem) pickBoss(wave int) *defs.BossDefinition {
	for _, def := range s.eligibleBosses(wave) {
		if s.Rng.Roll(def.SpawnRequirements.SpawnChance) {
			return def
		}
	}
	return nil
}

// ShouldSpawnBoss reports whether some boss is eligible for the wave and
// passes its spawn roll.
func (s *BossSystem) ShouldSpawnBoss(wave int) bool {
	return s.pickBoss(wave) != nil
}

// CreateBoss spawns a boss for the wave at pos, registers it in the store
// and starts its entrance. Returns nil when no boss is eligible.
func (s *BossSystem) CreateBoss(wave int, pos component.Position) *component.Enemy {
	def := s.pickBoss(wave)
	if def == nil {
		log.Printf("BossSystem: no eligible boss for wave %d", wave)
		return nil
	}
	return s.spawn(def, wave, pos)
}

// SpawnDefinition spawns a specific boss regardless of eligibility.
func (s *BossSystem) SpawnDefinition(bossType string, wave int, pos component.Position) *component.Enemy {
	def, ok := s.Catalog.Boss(bossType)
	if !ok {
		log.Printf("BossSystem: unknown boss type %q", bossType)
		return nil
	}
	return s.spawn(def, wave, pos)
}

func (s *BossSystem) spawn(def *defs.BossDefinition, wave int, pos component.Position) *component.Enemy {
	enemy := s.Factory.CreateBoss(def, wave, pos)
	s.Store.AddEnemy(enemy)

	id := enemy.ID
	enemy.Boss.Timers.Entrance = s.Scheduler.After(bossOwner(id), def.Cinematics.Entrance(), func() {
		s.completeEntrance(id)
	})

	s.dispatch(event.BossSpawned, enemy, defs.AbilityUnknown)
	s.play(CueBossEntrance)
	s.notify(fmt.Sprintf("%s has appeared!", def.Name))
	log.Printf("Boss %s (%d) spawned on wave %d with %.0f HP", def.ID, id, wave, enemy.MaxHealth)
	return enemy
}

// lookup fetches a live boss and its definition. A boss whose definition is
// missing is left alone.
func (s *BossSystem) lookup(id types.EntityID) (*component.Enemy, *defs.BossDefinition, bool) {
	enemy, ok := s.Store.Enemy(id)
	if !ok || enemy.Boss == nil {
		return nil, nil, false
	}
	def, ok := s.Catalog.Boss(enemy.Boss.BossType)
	if !ok {
		return nil, nil, false
	}
	return enemy, def, true
}

// stopped is checked at the top of every boss timer callback.
func (s *BossSystem) stopped(id types.EntityID) bool {
	if s.GameOver != nil && s.GameOver.IsGameOver() {
		s.Scheduler.CancelOwner(bossOwner(id))
		return true
	}
	return false
}

func (s *BossSystem) completeEntrance(id types.EntityID) {
	if s.stopped(id) {
		return
	}
	enemy, _, ok := s.lookup(id)
	if !ok {
		return
	}
	bs := enemy.Boss
	if bs.CinematicState != component.CinematicEntrance {
		return
	}
	bs.Timers.Entrance = 0
	bs.CinematicState = component.CinematicNormal
	bs.IsInvulnerable = false
	bs.EntranceComplete = true
	bs.LastMinionSpawn = s.Scheduler.Now()
	s.scheduleAbilityLoop(enemy)
	s.dispatch(event.BossEntranceDone, enemy, defs.AbilityUnknown)
}

func (s *BossSystem) scheduleAbilityLoop(enemy *component.Enemy) {
	id := enemy.ID
	delay := s.Rng.DurationBetween(config.AbilityLoopMin, config.AbilityLoopMax)
	enemy.Boss.Timers.AbilityLoop = s.Scheduler.After(bossOwner(id), delay, func() {
		s.abilityTick(id)
	})
	enemy.Boss.AbilityLoopActive = true
}

func (s *BossSystem) abilityTick(id types.EntityID) {
	if s.stopped(id) {
		return
	}
	enemy, def, ok := s.lookup(id)
	if !ok {
		return
	}
	bs := enemy.Boss
	bs.Timers.AbilityLoop = 0
	if bs.CinematicState != component.CinematicNormal {
		bs.AbilityLoopActive = false
		return
	}

	now := s.Scheduler.Now()
	var ready []string
	for _, name := range bs.BossAbilities {
		ability, _ := defs.ParseAbility(name)
		if last, used := bs.AbilityCooldowns[ability]; used && now-last < config.AbilityCooldown {
			continue
		}
		ready = append(ready, name)
	}
	if len(ready) > 0 {
		s.UseAbility(enemy, def, ready[s.Rng.Intn(len(ready))])
	}
	s.scheduleAbilityLoop(enemy)
}

// UseAbility executes one ability by name and stamps its cooldown. Unknown
// names log a warning and do nothing.
func (s *BossSystem) UseAbility(enemy *component.Enemy, def *defs.BossDefinition, name string) bool {
	ability, ok := defs.ParseAbility(name)
	if !ok || s.abilities[ability] == nil {
		log.Printf("BossSystem: warning: unknown ability %q on boss %s", name, def.ID)
		return false
	}
	s.abilities[ability](enemy, def)
	enemy.Boss.AbilityCooldowns[ability] = s.Scheduler.Now()
	s.dispatch(event.BossAbilityUsed, enemy, ability)
	return true
}

// UpdateBoss runs the per-tick mechanics of one boss: shield regeneration,
// phase threshold checks, rage, flee and minion spawning.
func (s *BossSystem) UpdateBoss(enemy *component.Enemy, deltaTime float64) {
	if enemy == nil || enemy.Boss == nil {
		return
	}
	if s.GameOver != nil && s.GameOver.IsGameOver() {
		return
	}
	def, ok := s.Catalog.Boss(enemy.Boss.BossType)
	if !ok {
		return
	}
	bs := enemy.Boss
	if bs.CinematicState == component.CinematicDefeat || enemy.Health <= 0 {
		return
	}
	mech := def.Mechanics

	if mech.HasShield {
		limit := enemy.MaxHealth * config.ShieldCapFraction
		bs.ShieldStrength = math.Min(limit, bs.ShieldStrength+enemy.MaxHealth*config.ShieldRegenPerSec*deltaTime)
	}

	if bs.CinematicState == component.CinematicNormal {
		s.checkPhaseTransition(enemy, def)
	}

	frac := enemy.HealthFraction()
	if mech.HasRageMode && !bs.RageMode && frac < config.RageThreshold {
		bs.RageMode = true
		enemy.Speed *= config.RageMultiplier
		enemy.Damage *= config.RageMultiplier
		s.dispatch(event.BossRage, enemy, defs.AbilityUnknown)
		s.play(CueBossRage)
		s.notify(fmt.Sprintf("%s is enraged!", def.Name))
	}
	if mech.CanFlee && !bs.IsFleeing && frac < bs.FleeThreshold {
		bs.IsFleeing = true
		enemy.Speed *= config.FleeSpeedMultiplier
		enemy.BehaviorTag = "fleeing"
		s.dispatch(event.BossFled, enemy, defs.AbilityUnknown)
		s.notify(fmt.Sprintf("%s is fleeing!", def.Name))
	}

	if bs.CanSpawnMinions && bs.CinematicState == component.CinematicNormal {
		now := s.Scheduler.Now()
		if now-bs.LastMinionSpawn >= config.MinionSpawnInterval {
			bs.LastMinionSpawn = now
			typ, count := defs.EnemyBasic, config.DefaultMinionCount
			if ms := def.Phases[bs.BossPhase-1].MinionSpawn; ms != nil && ms.Type != "" {
				typ = ms.Type
				if ms.Count > 0 {
					count = ms.Count
				}
			}
			s.spawnMinions(enemy, typ, count)
		}
	}
}

// checkPhaseTransition advances at most one phase per call.
func (s *BossSystem) checkPhaseTransition(enemy *component.Enemy, def *defs.BossDefinition) {
	bs := enemy.Boss
	next := bs.BossPhase // индекс следующей фазы, BossPhase начинается с 1
	if next >= len(def.Phases) {
		return
	}
	if enemy.HealthFraction() > def.Phases[next].HealthThreshold {
		return
	}
	s.enterPhase(enemy, def, next)
}

func (s *BossSystem) enterPhase(enemy *component.Enemy, def *defs.BossDefinition, index int) {
	bs := enemy.Boss
	if bs.Timers.AbilityLoop != 0 {
		s.Scheduler.Cancel(bs.Timers.AbilityLoop)
		bs.Timers.AbilityLoop = 0
	}
	bs.AbilityLoopActive = false
	bs.CinematicState = component.CinematicPhaseTransition
	bs.IsInvulnerable = true
	bs.BossPhase = index + 1

	phase := def.Phases[index]
	bs.BossAbilities = append([]string(nil), phase.Abilities...)
	changes := phase.BehaviorChanges
	if changes.SpeedMultiplier > 0 {
		enemy.Speed *= changes.SpeedMultiplier
	}
	if changes.DamageMultiplier > 0 {
		enemy.Damage *= changes.DamageMultiplier
	}
	if changes.BehaviorTag != "" {
		enemy.BehaviorTag = changes.BehaviorTag
	}

	id := enemy.ID
	bs.Timers.Phase = s.Scheduler.After(bossOwner(id), def.Cinematics.PhaseTransition(), func() {
		s.completePhaseTransition(id)
	})
	s.dispatch(event.BossPhaseChanged, enemy, defs.AbilityUnknown)
	s.play(CueBossPhase)
	if phase.Name != "" {
		s.notify(fmt.Sprintf("%s: %s", def.Name, phase.Name))
	}
	log.Printf("Boss %s (%d) entered phase %d/%d", def.ID, id, bs.BossPhase, bs.MaxBossPhases)
}

func (s *BossSystem) completePhaseTransition(id types.EntityID) {
	if s.stopped(id) {
		return
	}
	enemy, _, ok := s.lookup(id)
	if !ok {
		return
	}
	bs := enemy.Boss
	bs.Timers.Phase = 0
	if bs.CinematicState != component.CinematicPhaseTransition {
		return
	}
	bs.CinematicState = component.CinematicNormal
	bs.IsInvulnerable = false
	s.scheduleAbilityLoop(enemy)
}

// spawnMinions staggers count minions on boss-owned timers.
func (s *BossSystem) spawnMinions(boss *component.Enemy, typ string, count int) {
	bs := boss.Boss
	live := bs.Timers.Minions[:0]
	for _, h := range bs.Timers.Minions {
		if s.Scheduler.IsPending(h) {
			live = append(live, h)
		}
	}
	bs.Timers.Minions = live

	id := boss.ID
	for i := 0; i < count; i++ {
		h := s.Scheduler.After(bossOwner(id), time.Duration(i)*config.MinionStagger, func() {
			s.spawnMinion(id, typ)
		})
		bs.Timers.Minions = append(bs.Timers.Minions, h)
	}
}

func (s *BossSystem) spawnMinion(bossID types.EntityID, typ string) {
	if s.stopped(bossID) {
		return
	}
	boss, _, ok := s.lookup(bossID)
	if !ok {
		return
	}
	pos := component.Position{
		X: boss.Position.X + s.Rng.Range(-config.MinionSpread, config.MinionSpread),
		Y: boss.Position.Y + s.Rng.Range(0, config.MinionSpread/2),
	}
	pos = s.clampToViewport(pos)
	minion, err := s.Factory.Create(typ, boss.Boss.SpawnWave, pos)
	if err != nil {
		log.Printf("BossSystem: minion spawn failed: %v", err)
		return
	}
	s.Store.AddEnemy(minion)
	if s.Stats != nil {
		s.Stats.RecordSpawn()
	}
	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: minion.ID, Type: minion.Type, Wave: boss.Boss.SpawnWave}})
	}
}

// HandleBossDefeat cancels every timer of the boss, then rolls its loot.
// A second call for the same boss does nothing.
func (s *BossSystem) HandleBossDefeat(enemy *component.Enemy) {
	if enemy == nil || enemy.Boss == nil {
		return
	}
	bs := enemy.Boss
	if bs.CinematicState == component.CinematicDefeat {
		return
	}
	s.Scheduler.CancelOwner(bossOwner(enemy.ID))
	bs.Timers = component.BossTimers{}
	bs.AbilityLoopActive = false
	bs.CinematicState = component.CinematicDefeat
	bs.IsInvulnerable = true

	def, ok := s.Catalog.Boss(bs.BossType)
	if !ok {
		log.Printf("BossSystem: defeated boss %d has unknown type %q", enemy.ID, bs.BossType)
		return
	}
	if s.History != nil {
		s.History.RecordDefeat(def.ID, bs.SpawnWave)
	}
	for _, entry := range def.LootTable {
		if !s.Rng.Roll(entry.DropChance) {
			continue
		}
		s.distributeLoot(enemy, entry)
	}
	s.dispatch(event.BossDefeated, enemy, defs.AbilityUnknown)
	s.play(CueBossDefeat)
	s.notify(fmt.Sprintf("%s defeated!", def.Name))
	log.Printf("Boss %s (%d) defeated", def.ID, enemy.ID)
}

func (s *BossSystem) distributeLoot(enemy *component.Enemy, entry defs.LootEntry) {
	switch entry.Kind {
	case defs.LootGold:
		if s.Economy != nil {
			s.Economy.AddGold(entry.Amount)
		}
	case defs.LootUnlock:
		if s.Rewards != nil {
			s.Rewards.Unlock(entry.ID)
		}
		if entry.Message != "" {
			s.notify(entry.Message)
		}
	case defs.LootNotification:
		s.notify(entry.Message)
	default:
		log.Printf("BossSystem: unknown loot kind %q", entry.Kind)
		return
	}
	s.play(CueLoot)
	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(event.Event{Type: event.LootDropped, Data: event.LootData{
			BossID: enemy.ID, BossType: enemy.Boss.BossType, Entry: entry,
		}})
	}
}

// Dismiss cancels the boss's timers without rolling loot, for a boss that
// left the field alive.
func (s *BossSystem) Dismiss(enemy *component.Enemy) {
	if enemy == nil || enemy.Boss == nil {
		return
	}
	s.Scheduler.CancelOwner(bossOwner(enemy.ID))
	enemy.Boss.Timers = component.BossTimers{}
	enemy.Boss.AbilityLoopActive = false
}

// Shutdown cancels the timers of every live boss.
func (s *BossSystem) Shutdown() {
	for _, e := range s.Store.Enemies() {
		s.Dismiss(e)
	}
}

// PendingTimers returns how many callbacks the boss still has scheduled.
func (s *BossSystem) PendingTimers(id types.EntityID) int {
	return s.Scheduler.Pending(bossOwner(id))
}

func (s *BossSystem) clampToViewport(p component.Position) component.Position {
	if s.Viewport == nil {
		return p
	}
	minX, minY, maxX, maxY := s.Viewport.Bounds()
	p.X = putils.Clamp(p.X, minX, maxX)
	p.Y = putils.Clamp(p.Y, minY, maxY)
	return p
}

func (s *BossSystem) dispatch(t event.EventType, enemy *component.Enemy, ability defs.AbilityID) {
	if s.Dispatcher == nil {
		return
	}
	s.Dispatcher.Dispatch(event.Event{Type: t, Data: event.BossData{
		ID: enemy.ID, BossType: enemy.Boss.BossType, Phase: enemy.Boss.BossPhase, Ability: ability,
	}})
}

func (s *BossSystem) play(cue string) {
	if s.Sound != nil {
		s.Sound.Play(cue)
	}
}

func (s *BossSystem) notify(msg string) {
	if s.Notifier != nil && msg != "" {
		s.Notifier.Notify(msg)
	}
}
