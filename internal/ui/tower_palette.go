package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wave-defense/internal/defs"
)

const (
	paletteButtonWidth  = 130
	paletteButtonHeight = 28
	paletteGap          = 6
)

var selectedColor = color.RGBA{255, 215, 0, 255}

// TowerPalette — ряд кнопок башен в порядке меню, горячие клавиши 1–6.
type TowerPalette struct {
	Buttons  []*Button
	IDs      []string
	Selected int // -1 — ничего не выбрано
}

func NewTowerPalette(x, y int) *TowerPalette {
	p := &TowerPalette{Selected: -1}
	for i, id := range defs.TowerOrder {
		def := defs.TowerLibrary[id]
		left := x + i*(paletteButtonWidth+paletteGap)
		rect := image.Rect(left, y, left+paletteButtonWidth, y+paletteButtonHeight)
		p.Buttons = append(p.Buttons, NewButton(rect, fmt.Sprintf("%d %s %d", i+1, def.Name, def.Cost)))
		p.IDs = append(p.IDs, id)
	}
	return p
}

// Select выбирает башню по индексу; повторный выбор снимает выделение.
func (p *TowerPalette) Select(i int) {
	if i < 0 || i >= len(p.IDs) || p.Selected == i {
		p.Selected = -1
		return
	}
	p.Selected = i
}

// SelectedID возвращает ID выбранной башни или пустую строку.
func (p *TowerPalette) SelectedID() string {
	if p.Selected < 0 {
		return ""
	}
	return p.IDs[p.Selected]
}

// HandleClick возвращает true, если клик пришёлся на палитру.
func (p *TowerPalette) HandleClick(x, y int) bool {
	for i, b := range p.Buttons {
		if b.Contains(x, y) {
			p.Select(i)
			return true
		}
	}
	return false
}

// Draw затемняет башни, на которые не хватает золота, и башню, отключённую волной.
func (p *TowerPalette) Draw(screen *ebiten.Image, face font.Face, gold int, disabled string) {
	cx, cy := ebiten.CursorPosition()
	for i, b := range p.Buttons {
		id := p.IDs[i]
		b.Disabled = defs.TowerLibrary[id].Cost > gold || id == disabled
		b.Draw(screen, face, cx, cy)
		if i == p.Selected {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.Min.X)-1, float32(r.Min.Y)-1, float32(r.Dx())+2, float32(r.Dy())+2, 2, selectedColor, true)
		}
	}
}
