// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerType defines the category of a tower.
type TowerType string

const (
	TowerTypeAttack  TowerType = "ATTACK"
	TowerTypeEconomy TowerType = "ECONOMY"
	TowerTypeSupport TowerType = "SUPPORT"
)

// CombatStats contains parameters related to a tower's combat abilities.
type CombatStats struct {
	Damage         float64 `json:"damage"`
	FireRate       float64 `json:"fire_rate"` // Shots per second
	Range          float64 `json:"range"`     // Pixels
	FreezeDuration float64 `json:"freeze_duration,omitempty"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Type            TowerType     `json:"type"`
	Level           int           `json:"level"`
	Cost            int           `json:"cost"`
	Health          float64       `json:"health"`
	Combat          CombatStats   `json:"combat"`
	CanDetectGhosts bool          `json:"can_detect_ghosts"`
	TargetingMode   TargetingMode `json:"targeting_mode"`
	Visuals         Visuals       `json:"visuals"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color       color.RGBA `json:"color"`
	Radius      float64    `json:"radius"`
	StrokeWidth float64    `json:"stroke_width"`
}

// Tower IDs.
const (
	TowerBasic    = "basic"
	TowerSniper   = "sniper"
	TowerRapid    = "rapid"
	TowerFrost    = "frost"
	TowerDetector = "detector"
	TowerBank     = "bank"
)

// TowerOrder is the build-menu order, also used to rotate disabled tower types.
var TowerOrder = []string{TowerBasic, TowerSniper, TowerRapid, TowerFrost, TowerDetector, TowerBank}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary = map[string]TowerDefinition{
	TowerBasic: {
		ID: TowerBasic, Name: "Gun Tower", Type: TowerTypeAttack, Level: 1, Cost: 50, Health: 100,
		Combat:  CombatStats{Damage: 12, FireRate: 1.5, Range: 160},
		Visuals: Visuals{Color: color.RGBA{255, 50, 50, 255}, Radius: 14, StrokeWidth: 2},
	},
	TowerSniper: {
		ID: TowerSniper, Name: "Sniper", Type: TowerTypeAttack, Level: 3, Cost: 120, Health: 80,
		Combat:  CombatStats{Damage: 60, FireRate: 0.4, Range: 380},
		Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, Radius: 12, StrokeWidth: 2},
	},
	TowerRapid: {
		ID: TowerRapid, Name: "Rapid Fire", Type: TowerTypeAttack, Level: 2, Cost: 90, Health: 90,
		Combat:        CombatStats{Damage: 5, FireRate: 6, Range: 130},
		TargetingMode: ModeLowestHP,
		Visuals:       Visuals{Color: color.RGBA{255, 165, 0, 255}, Radius: 13, StrokeWidth: 2},
	},
	TowerFrost: {
		ID: TowerFrost, Name: "Frost", Type: TowerTypeAttack, Level: 2, Cost: 100, Health: 90,
		Combat:        CombatStats{Damage: 4, FireRate: 0.8, Range: 140, FreezeDuration: 1.5},
		TargetingMode: ModeFastest,
		Visuals:       Visuals{Color: color.RGBA{120, 220, 255, 255}, Radius: 13, StrokeWidth: 2},
	},
	TowerDetector: {
		ID: TowerDetector, Name: "Detector", Type: TowerTypeSupport, Level: 2, Cost: 110, Health: 70,
		Combat:          CombatStats{Damage: 8, FireRate: 1, Range: 200},
		CanDetectGhosts: true,
		Visuals:         Visuals{Color: color.RGBA{180, 50, 230, 255}, Radius: 12, StrokeWidth: 2},
	},
	TowerBank: {
		ID: TowerBank, Name: "Bounty Hunter", Type: TowerTypeEconomy, Level: 1, Cost: 80, Health: 80,
		Combat:  CombatStats{Damage: 10, FireRate: 1, Range: 170},
		Visuals: Visuals{Color: color.RGBA{255, 215, 0, 255}, Radius: 12, StrokeWidth: 2},
	},
}

// AttackTowerIDs returns the attack towers in build-menu order.
func AttackTowerIDs() []string {
	var ids []string
	for _, id := range TowerOrder {
		if TowerLibrary[id].Type == TowerTypeAttack {
			ids = append(ids, id)
		}
	}
	return ids
}
