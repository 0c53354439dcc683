// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 220
)

// InfoPanel displays information about a selected entity.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	SellButton    *Button
	catalog       *defs.Catalog
	// OnSell вызывается по кнопке продажи башни.
	OnSell func(id types.EntityID) bool
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(font font.Face, titleFont font.Face, catalog *defs.Catalog) *InfoPanel {
	return &InfoPanel{
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
		catalog:       catalog,
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether y falls on the visible panel.
func (p *InfoPanel) Contains(y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update анимирует панель и скрывает её, когда цель исчезла.
func (p *InfoPanel) Update(ecs *entity.ECS) {
	if p.TargetEntity != 0 {
		_, isEnemy := ecs.Enemy(p.TargetEntity)
		_, isTower := ecs.Tower(p.TargetEntity)
		if !isEnemy && !isTower {
			p.Hide()
		}
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

// HandleClick обрабатывает клик по панели; true — клик поглощён.
func (p *InfoPanel) HandleClick(ecs *entity.ECS, x, y int) bool {
	if !p.Contains(y) {
		return false
	}
	if _, ok := ecs.Tower(p.TargetEntity); ok && ecs.GameState == component.BuildState && p.SellButton.Contains(x, y) {
		if p.OnSell != nil && p.OnSell(p.TargetEntity) {
			p.Hide()
		}
	}
	return true
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.PanelBorder, true)

	if p.TargetEntity == 0 {
		return
	}

	p.drawEntityInfo(screen, ecs, panelRect.Min.X+15, panelRect.Min.Y+15)

	if _, ok := ecs.Tower(p.TargetEntity); ok && ecs.GameState == component.BuildState {
		p.SellButton.Rect = image.Rect(panelRect.Max.X-170, panelRect.Max.Y-60, panelRect.Max.X-20, panelRect.Max.Y-20)
		cx, cy := ebiten.CursorPosition()
		p.SellButton.Draw(screen, p.fontFace, cx, cy)
	}
}

func (p *InfoPanel) drawEntityInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	title := "Unknown Entity"
	yPos := startY + lineHeight

	if tower, ok := ecs.Tower(p.TargetEntity); ok {
		if towerDef, defOk := defs.TowerLibrary[tower.DefID]; defOk {
			title = towerDef.Name
		}
		text.Draw(screen, title, p.titleFontFace, startX, yPos, config.TextLightColor)
		p.drawTowerInfo(screen, tower, startX, yPos+lineHeight)
	} else if enemy, ok := ecs.Enemy(p.TargetEntity); ok {
		title = p.enemyName(enemy)
		text.Draw(screen, title, p.titleFontFace, startX, yPos, config.TextLightColor)
		p.drawEnemyInfo(screen, ecs, enemy, startX, yPos+lineHeight)
	} else {
		text.Draw(screen, title, p.titleFontFace, startX, yPos, config.TextLightColor)
	}
}

func (p *InfoPanel) enemyName(enemy *component.Enemy) string {
	if p.catalog == nil {
		return enemy.Type
	}
	if enemy.IsBoss() {
		if def, ok := p.catalog.Boss(enemy.Type); ok {
			return def.Name
		}
	}
	if def, ok := p.catalog.Enemy(enemy.Type); ok {
		return def.Name
	}
	return enemy.Type
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, tower *component.Tower, startX, startY int) {
	col1X := startX
	col2X := startX + columnSpacing
	y := startY
	text.Draw(screen, fmt.Sprintf("Damage: %.0f", tower.Damage), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", tower.FireRate), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", tower.Range), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Health: %.0f / %.0f", tower.Health, tower.MaxHealth), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Targeting: %s", system.ChooseMode(tower)), p.fontFace, col1X, y, config.TextLightColor)
	if tower.CanDetectGhosts {
		text.Draw(screen, "Detects ghosts", p.fontFace, col2X, y, config.TextLightColor)
	}
}

func (p *InfoPanel) drawEnemyInfo(screen *ebiten.Image, ecs *entity.ECS, enemy *component.Enemy, startX, startY int) {
	y := startY
	col1X := startX
	col2X := startX + columnSpacing
	col3X := startX + columnSpacing*2

	text.Draw(screen, fmt.Sprintf("Health: %.0f / %.0f", enemy.Health, enemy.MaxHealth), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Speed: %.1f", enemy.Speed), p.fontFace, col2X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Gold: %d", enemy.GoldValue), p.fontFace, col3X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %.1f", enemy.Damage), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Behavior: %s", enemy.BehaviorTag), p.fontFace, col2X, y, config.TextLightColor)

	b := enemy.Boss
	if b == nil {
		return
	}
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Phase: %d / %d (%s)", b.BossPhase, b.MaxBossPhases, b.CinematicState), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Shield: %.0f", b.ShieldStrength), p.fontFace, col2X, y, config.TextLightColor)
	status := ""
	switch {
	case b.IsInvulnerable:
		status = "invulnerable"
	case b.IsFleeing:
		status = "fleeing"
	case b.RageMode:
		status = "enraged"
	}
	if status != "" {
		text.Draw(screen, status, p.fontFace, col3X, y, config.WarningColor)
	}
}
