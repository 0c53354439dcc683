package ui

import (
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var inactiveTowerColor = color.RGBA{80, 80, 80, 255}

// FieldRenderer рисует врагов, башни и линию обороны
type FieldRenderer struct {
	enemies interfaces.EnemyStore
	towers  interfaces.TowerStore
}

func NewFieldRenderer(enemies interfaces.EnemyStore, towers interfaces.TowerStore) *FieldRenderer {
	return &FieldRenderer{enemies: enemies, towers: towers}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen, 0, float32(config.DefendedLineY), float32(config.ScreenWidth), float32(config.DefendedLineY), 2.0, config.LineColor, true)

	enemies := r.enemies.Enemies()
	byID := make(map[types.EntityID]*component.Enemy, len(enemies))
	for _, e := range enemies {
		byID[e.ID] = e
	}

	for _, t := range r.towers.Towers() {
		x, y := float32(t.Position.X), float32(t.Position.Y)
		vis := defs.TowerLibrary[t.DefID].Visuals
		c := vis.Color
		if !t.IsActive {
			c = inactiveTowerColor
		}
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.TowerRangeColor, true)
		vector.DrawFilledCircle(screen, x, y, float32(vis.Radius), c, true)
		if target, ok := byID[t.TargetID]; ok && t.IsActive {
			vector.StrokeLine(screen, x, y, float32(target.Position.X), float32(target.Position.Y), 1, c, true)
		}
	}

	for _, e := range enemies {
		x, y := float32(e.Position.X), float32(e.Position.Y)
		radius := float32(e.Size)
		if e.IsBoss() && e.Boss.ShieldStrength > 0 {
			vector.StrokeCircle(screen, x, y, radius+4, 2, config.ShieldColor, true)
		}
		c := e.Color
		if e.IsBoss() && e.Boss.IsInvulnerable {
			c.A = 140
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
		// Полоска здоровья
		w := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w, 3, config.BossBarBack, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, w*float32(e.HealthFraction()), 3, config.BossBarColor, false)
	}
}
