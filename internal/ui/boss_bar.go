package ui

import (
	"fmt"
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	bossBarWidth  = 500
	bossBarHeight = 14
	bossBarY      = 60
)

// BossBar — полоса здоровья активного босса и баннер победы над ним.
// Баннер держится столько, сколько длится кинематика поражения босса.
type BossBar struct {
	catalog     *defs.Catalog
	face        font.Face
	bannerText  string
	bannerUntil float64 // ECS.GameTime
	now         func() float64
}

func NewBossBar(catalog *defs.Catalog, face font.Face, dispatcher *event.Dispatcher, now func() float64) *BossBar {
	b := &BossBar{catalog: catalog, face: face, now: now}
	dispatcher.Subscribe(event.BossDefeated, b)
	return b
}

func (b *BossBar) OnEvent(e event.Event) {
	data, ok := e.Data.(event.BossData)
	if !ok {
		return
	}
	def, ok := b.catalog.Boss(data.BossType)
	if !ok {
		return
	}
	b.bannerText = fmt.Sprintf("%s DEFEATED", def.Name)
	b.bannerUntil = b.now() + def.Cinematics.Defeat().Seconds()
}

// Banner returns the defeat banner while it is still showing.
func (b *BossBar) Banner() (string, bool) {
	if b.bannerText == "" || b.now() >= b.bannerUntil {
		return "", false
	}
	return b.bannerText, true
}

func (b *BossBar) Draw(screen *ebiten.Image, boss *component.Enemy) {
	x := float32(config.ScreenWidth-bossBarWidth) / 2
	if boss != nil && boss.Boss != nil {
		name := boss.Type
		if def, ok := b.catalog.Boss(boss.Type); ok {
			name = def.Name
		}
		bs := boss.Boss
		label := fmt.Sprintf("%s  phase %d/%d", name, bs.BossPhase, bs.MaxBossPhases)
		if bs.RageMode {
			label += "  RAGE"
		}
		text.Draw(screen, label, b.face, int(x), bossBarY-4, config.TextLightColor)

		vector.DrawFilledRect(screen, x, bossBarY, bossBarWidth, bossBarHeight, config.BossBarBack, false)
		vector.DrawFilledRect(screen, x, bossBarY, bossBarWidth*float32(boss.HealthFraction()), bossBarHeight, config.BossBarColor, false)
		if boss.MaxHealth > 0 && bs.ShieldStrength > 0 {
			w := bossBarWidth * float32(bs.ShieldStrength/boss.MaxHealth)
			vector.DrawFilledRect(screen, x, bossBarY+bossBarHeight, w, 3, config.ShieldColor, false)
		}
		// Пороги фаз
		for _, t := range bs.PhaseTransitionThresholds {
			tx := x + bossBarWidth*float32(t)
			vector.StrokeLine(screen, tx, bossBarY, tx, bossBarY+bossBarHeight, 1, color.White, false)
		}
		if bs.IsInvulnerable {
			vector.StrokeRect(screen, x, bossBarY, bossBarWidth, bossBarHeight, 1, config.WarningColor, false)
		}
	}

	if banner, ok := b.Banner(); ok {
		bounds := text.BoundString(b.face, banner)
		text.Draw(screen, banner, b.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3, config.WarningColor)
	}
}
