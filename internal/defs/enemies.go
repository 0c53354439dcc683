// internal/defs/enemies.go
package defs

import "image/color"

// Базовые типы врагов.
const (
	EnemyBasic = "basic"
	EnemyScout = "scout"
	EnemyTank  = "tank"
	EnemyGhost = "ghost"
	EnemyElite = "elite"
	EnemySwarm = "swarm"
)

// BehaviorGhost marks enemies that only detector towers can target.
const BehaviorGhost = "ghost"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Health      float64    `json:"health"`
	Speed       float64    `json:"speed"`
	Damage      float64    `json:"damage"`
	GoldValue   int        `json:"gold_value"`
	Size        float64    `json:"size"`
	Color       color.RGBA `json:"color"`
	IsSpecial   bool       `json:"is_special"`
	BehaviorTag string     `json:"behavior_tag"`
}
