package main

import (
	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

const (
	slotSpacing = 90.0
	slotRows    = 4
)

var buildOrder = []string{defs.TowerBasic, defs.TowerRapid, defs.TowerSniper, defs.TowerFrost, defs.TowerBasic, defs.TowerDetector}

// builder ставит башни рядами над линией обороны, пока хватает золота.
type builder struct {
	game  *game.Game
	slots []component.Position
	next  int // индекс в buildOrder
}

func newBuilder(g *game.Game) *builder {
	b := &builder{game: g}
	for row := 0; row < slotRows; row++ {
		y := float64(config.DefendedLineY) - 120 - float64(row)*slotSpacing
		for x := slotSpacing; x < config.ScreenWidth-slotSpacing/2; x += slotSpacing {
			b.slots = append(b.slots, component.Position{X: x, Y: y})
		}
	}
	return b
}

// Build тратит золото на башни и возвращает число построенных.
func (b *builder) Build() int {
	built := 0
	for {
		id := buildOrder[b.next%len(buildOrder)]
		if b.game.ECS.Gold() < defs.TowerLibrary[id].Cost || !b.place(id) {
			return built
		}
		b.next++
		built++
	}
}

func (b *builder) place(id string) bool {
	for _, pos := range b.slots {
		if _, ok := b.game.PlaceTower(id, pos); ok {
			return true
		}
	}
	return false
}
