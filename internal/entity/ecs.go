// internal/entity/ecs.go
package entity

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/types"
)

// Notification — всплывающее сообщение для UI.
type Notification struct {
	Message string
	At      float64 // GameTime в момент появления
}

const maxNotifications = 8

// ECS is the single owner of live simulation state.
type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	enemies    map[types.EntityID]*component.Enemy
	enemyOrder []types.EntityID
	towers     map[types.EntityID]*component.Tower
	towerOrder []types.EntityID

	GameState component.GameState
	Wave      int

	// Счётчики текущей волны
	totalSpawned  int
	enemiesKilled int

	gold       int
	BaseHealth float64
	WallShield float64
	gameOver   bool

	Notifications  []Notification
	Unlocks        map[string]int
	DefeatedBosses map[string]int // тип босса -> волна последней победы
}

func NewECS() *ECS {
	return &ECS{
		NextID:         1,
		enemies:        make(map[types.EntityID]*component.Enemy),
		towers:         make(map[types.EntityID]*component.Tower),
		GameState:      component.BuildState,
		gold:           config.StartingGold,
		BaseHealth:     config.BaseHealth,
		WallShield:     config.WallShield,
		Unlocks:        make(map[string]int),
		DefeatedBosses: make(map[string]int),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NewEntityID satisfies interfaces.EnemyStore.
func (ecs *ECS) NewEntityID() types.EntityID {
	return ecs.NewEntity()
}

func (ecs *ECS) AddEnemy(enemy *component.Enemy) {
	if _, exists := ecs.enemies[enemy.ID]; !exists {
		ecs.enemyOrder = append(ecs.enemyOrder, enemy.ID)
	}
	ecs.enemies[enemy.ID] = enemy
}

func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	if _, exists := ecs.enemies[id]; !exists {
		return
	}
	delete(ecs.enemies, id)
	for i, eid := range ecs.enemyOrder {
		if eid == id {
			ecs.enemyOrder = append(ecs.enemyOrder[:i], ecs.enemyOrder[i+1:]...)
			break
		}
	}
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemies[id]
	return e, ok
}

// Enemies returns a fresh slice in insertion order, safe to iterate while removing.
func (ecs *ECS) Enemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(ecs.enemyOrder))
	for _, id := range ecs.enemyOrder {
		out = append(out, ecs.enemies[id])
	}
	return out
}

func (ecs *ECS) EnemyCount() int {
	return len(ecs.enemyOrder)
}

// ClearEnemies drops every live enemy.
func (ecs *ECS) ClearEnemies() {
	ecs.enemies = make(map[types.EntityID]*component.Enemy)
	ecs.enemyOrder = nil
}

func (ecs *ECS) AddTower(tower *component.Tower) {
	if _, exists := ecs.towers[tower.ID]; !exists {
		ecs.towerOrder = append(ecs.towerOrder, tower.ID)
	}
	ecs.towers[tower.ID] = tower
}

func (ecs *ECS) RemoveTower(id types.EntityID) {
	if _, exists := ecs.towers[id]; !exists {
		return
	}
	delete(ecs.towers, id)
	for i, tid := range ecs.towerOrder {
		if tid == id {
			ecs.towerOrder = append(ecs.towerOrder[:i], ecs.towerOrder[i+1:]...)
			break
		}
	}
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.towers[id]
	return t, ok
}

func (ecs *ECS) Towers() []*component.Tower {
	out := make([]*component.Tower, 0, len(ecs.towerOrder))
	for _, id := range ecs.towerOrder {
		out = append(out, ecs.towers[id])
	}
	return out
}

// --- Счётчики волны ---

func (ecs *ECS) TotalSpawned() int  { return ecs.totalSpawned }
func (ecs *ECS) EnemiesKilled() int { return ecs.enemiesKilled }
func (ecs *ECS) RecordSpawn()       { ecs.totalSpawned++ }
func (ecs *ECS) RecordKill()        { ecs.enemiesKilled++ }

// ResetWaveCounters обнуляет счётчики перед новой волной.
func (ecs *ECS) ResetWaveCounters() {
	ecs.totalSpawned = 0
	ecs.enemiesKilled = 0
}

// --- Экономика ---

func (ecs *ECS) Gold() int { return ecs.gold }

func (ecs *ECS) AddGold(amount int) {
	if amount <= 0 {
		return
	}
	ecs.gold += amount
}

// SpendGold returns false and leaves the balance unchanged when funds are short.
func (ecs *ECS) SpendGold(amount int) bool {
	if amount < 0 || amount > ecs.gold {
		return false
	}
	ecs.gold -= amount
	return true
}

// --- Награды и уведомления ---

func (ecs *ECS) Notify(message string) {
	log.Printf("Notification: %s", message)
	ecs.Notifications = append(ecs.Notifications, Notification{Message: message, At: ecs.GameTime})
	if len(ecs.Notifications) > maxNotifications {
		ecs.Notifications = ecs.Notifications[len(ecs.Notifications)-maxNotifications:]
	}
}

func (ecs *ECS) Unlock(id string) {
	ecs.Unlocks[id]++
}

func (ecs *ECS) HasDefeated(bossType string) bool {
	_, ok := ecs.DefeatedBosses[bossType]
	return ok
}

func (ecs *ECS) RecordDefeat(bossType string, wave int) {
	ecs.DefeatedBosses[bossType] = wave
}

// --- Повреждения башен и стены ---

// DamageTowers наносит урон всем башням в радиусе. Башня с нулевым здоровьем выключается.
func (ecs *ECS) DamageTowers(center component.Position, radius, amount float64) int {
	hit := 0
	for _, id := range ecs.towerOrder {
		tower := ecs.towers[id]
		if !tower.IsActive || tower.Position.DistanceTo(center) > radius {
			continue
		}
		tower.Health -= amount
		if tower.Health <= 0 {
			tower.Health = 0
			tower.IsActive = false
		}
		hit++
	}
	return hit
}

// DamageWall снимает щит стены, остаток уходит в здоровье базы.
func (ecs *ECS) DamageWall(amount float64) {
	if amount <= 0 {
		return
	}
	if ecs.WallShield >= amount {
		ecs.WallShield -= amount
		return
	}
	amount -= ecs.WallShield
	ecs.WallShield = 0
	ecs.BaseHealth -= amount
	if ecs.BaseHealth < 0 {
		ecs.BaseHealth = 0
	}
}

// --- Конец игры ---

func (ecs *ECS) IsGameOver() bool { return ecs.gameOver }

func (ecs *ECS) SetGameOver() {
	ecs.gameOver = true
	ecs.GameState = component.GameOverState
}

// Bounds satisfies interfaces.Viewport with the configured screen.
func (ecs *ECS) Bounds() (minX, minY, maxX, maxY float64) {
	return 0, 0, config.ScreenWidth, config.ScreenHeight
}
