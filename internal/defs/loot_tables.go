package defs

// LootKind — вид награды, которую выдаёт побеждённый босс.
type LootKind string

const (
	LootGold         LootKind = "gold"
	LootUnlock       LootKind = "unlock"
	LootNotification LootKind = "notification"
)

// LootEntry представляет одну запись в таблице выпадения босса.
// Каждая запись разыгрывается независимо со своим шансом DropChance.
type LootEntry struct {
	Kind       LootKind `yaml:"kind"`
	ID         string   `yaml:"id"`
	Amount     int      `yaml:"amount"`
	DropChance float64  `yaml:"drop_chance"`
	Message    string   `yaml:"message"`
}
