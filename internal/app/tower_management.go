// internal/app/tower_management.go
package app

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
)

// sellRefund — доля стоимости, возвращаемая при продаже башни.
const sellRefund = 0.5

// PlaceTower attempts to place a tower of the given type at pos.
func (g *Game) PlaceTower(defID string, pos component.Position) (types.EntityID, bool) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		log.Printf("PlaceTower: unknown tower type %q", defID)
		return 0, false
	}
	if !g.canPlaceTower(def, pos) {
		return 0, false
	}
	if !g.ECS.SpendGold(def.Cost) {
		return 0, false
	}

	id := g.ECS.NewEntity()
	g.ECS.AddTower(component.NewTower(id, def, pos))
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, true
}

// RemoveTower sells a tower. Only allowed between waves.
func (g *Game) RemoveTower(id types.EntityID) bool {
	if g.ECS.GameState != component.BuildState {
		return false
	}
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return false
	}
	refund := int(float64(defs.TowerLibrary[tower.DefID].Cost) * sellRefund)
	if !tower.IsActive {
		refund /= 2
	}
	g.ECS.RemoveTower(id)
	g.ECS.AddGold(refund)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: id})
	return true
}

// TowerAt returns the tower whose body covers pos.
func (g *Game) TowerAt(pos component.Position) (*component.Tower, bool) {
	for _, t := range g.ECS.Towers() {
		if t.Position.DistanceTo(pos) <= defs.TowerLibrary[t.DefID].Visuals.Radius {
			return t, true
		}
	}
	return nil, false
}

// EnemyAt returns the enemy under pos, preferring the smallest one.
func (g *Game) EnemyAt(pos component.Position) (*component.Enemy, bool) {
	var best *component.Enemy
	for _, e := range g.ECS.Enemies() {
		if e.Position.DistanceTo(pos) > e.Size {
			continue
		}
		if best == nil || e.Size < best.Size {
			best = e
		}
	}
	return best, best != nil
}

func (g *Game) canPlaceTower(def defs.TowerDefinition, pos component.Position) bool {
	if g.ECS.IsGameOver() {
		return false
	}
	r := def.Visuals.Radius
	if pos.X < r || pos.X > config.ScreenWidth-r || pos.Y < r || pos.Y > config.DefendedLineY-r {
		return false
	}
	for _, t := range g.ECS.Towers() {
		other := defs.TowerLibrary[t.DefID].Visuals.Radius
		if t.Position.DistanceTo(pos) < r+other {
			return false
		}
	}
	return true
}
