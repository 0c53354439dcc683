// internal/event/types.go
package event

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

const (
	WaveStarted      EventType = "WaveStarted"      // Волна началась, Data: WaveData
	WaveEnded        EventType = "WaveEnded"        // Волна закончилась, Data: WaveData
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemyData
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен, Data: EnemyData
	EnemyLeaked      EventType = "EnemyLeaked"      // Враг дошёл до линии обороны, Data: EnemyData
	TowerPlaced      EventType = "TowerPlaced"      // Башня построена, Data: types.EntityID
	TowerRemoved     EventType = "TowerRemoved"     // Башня продана, Data: types.EntityID
	BossSpawned      EventType = "BossSpawned"      // Data: BossData
	BossEntranceDone EventType = "BossEntranceDone" // Data: BossData
	BossPhaseChanged EventType = "BossPhaseChanged" // Data: BossData
	BossAbilityUsed  EventType = "BossAbilityUsed"  // Data: BossData
	BossRage         EventType = "BossRage"         // Data: BossData
	BossFled         EventType = "BossFled"         // Data: BossData
	BossDefeated     EventType = "BossDefeated"     // Data: BossData
	LootDropped      EventType = "LootDropped"      // Data: LootData
	MiniEventWarning EventType = "MiniEventWarning" // Data: MiniEventData
	MiniEventStarted EventType = "MiniEventStarted" // Data: MiniEventData
	MiniEventEnded   EventType = "MiniEventEnded"   // Data: MiniEventData
	GameOver         EventType = "GameOver"         // Data: WaveData
)

// WaveData — полезная нагрузка событий волны.
type WaveData struct {
	Wave     int
	Killed   int
	Required int
	Elapsed  float64 // секунды
}

type EnemyData struct {
	ID   types.EntityID
	Type string
	Wave int
}

type BossData struct {
	ID       types.EntityID
	BossType string
	Phase    int
	Ability  defs.AbilityID
}

type LootData struct {
	BossID   types.EntityID
	BossType string
	Entry    defs.LootEntry
}

type MiniEventData struct {
	Wave int
	Type defs.MiniEventType
}
