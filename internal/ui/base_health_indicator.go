// internal/ui/base_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthRows          = 5
	HealthCols          = 6
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
	HealthPerCircle     = 5.0
)

var (
	shieldCellColor = color.RGBA{60, 110, 230, 255}
	healthCellColor = color.RGBA{210, 40, 40, 255}
	emptyCellColor  = color.RGBA{0, 0, 0, 255}
)

// BaseHealthIndicator рисует стену и базу сеткой кружков: синие — щит
// стены, красные — здоровье базы, чёрные — потерянное.
type BaseHealthIndicator struct {
	X, Y float32
	face font.Face
}

func NewBaseHealthIndicator(x, y float32, face font.Face) *BaseHealthIndicator {
	return &BaseHealthIndicator{X: x, Y: y, face: face}
}

func (i *BaseHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, shield, maxShield float64) {
	shieldCells := cells(shield)
	healthCells := cells(health)
	total := min(HealthRows*HealthCols, cells(maxHealth)+cells(maxShield))

	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < total; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*step + HealthCircleRadius
		y := i.Y + float32(row)*step + HealthCircleRadius

		c := emptyCellColor
		switch {
		case j < shieldCells:
			c = shieldCellColor
		case j < shieldCells+healthCells:
			c = healthCellColor
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("%.0f+%.0f", health, shield)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-6, color.White)
}

// GetHeight возвращает общую высоту индикатора.
func (i *BaseHealthIndicator) GetHeight() float32 {
	return 20 + HealthRows*(HealthCircleRadius*2+HealthCircleSpacing)
}

func cells(v float64) int {
	if v <= 0 {
		return 0
	}
	n := int(v / HealthPerCircle)
	if float64(n)*HealthPerCircle < v {
		n++
	}
	return n
}
