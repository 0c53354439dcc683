// internal/ui/performance_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/config"
)

// PerformanceIndicator: полоса — рейтинг игрока, прямоугольники — сложность волны.
type PerformanceIndicator struct {
	X, Y float32
}

const (
	perfBarWidth   = 118
	perfBarHeight  = 12
	diffRectWidth  = 16
	diffRectHeight = 12
	diffRectGap    = 9
	diffRectCount  = 5
	borderWidth    = 1
)

var (
	perfBarColorFill = color.RGBA{70, 100, 120, 220}
	diffRectFill     = color.RGBA{200, 90, 60, 220}
	borderColor      = color.White
)

func NewPerformanceIndicator(x, y float32) *PerformanceIndicator {
	return &PerformanceIndicator{X: x, Y: y}
}

// Draw: performance в [0,1], difficulty в [DifficultyMin, DifficultyMax].
func (i *PerformanceIndicator) Draw(screen *ebiten.Image, performance, difficulty float64) {
	vector.StrokeRect(screen, i.X, i.Y, perfBarWidth, perfBarHeight, borderWidth, borderColor, true)

	fillRatio := min(max(performance, 0), 1)
	fillWidth := float32(float64(perfBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, perfBarHeight-borderWidth*2, perfBarColorFill, true)
	}

	filled := DifficultyPips(difficulty)
	rectY := i.Y + perfBarHeight + 10
	for j := 0; j < diffRectCount; j++ {
		rectX := i.X + float32(j)*(diffRectWidth+diffRectGap)
		vector.StrokeRect(screen, rectX, rectY, diffRectWidth, diffRectHeight, borderWidth, borderColor, true)
		if j < filled {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, diffRectWidth-borderWidth*2, diffRectHeight-borderWidth*2, diffRectFill, true)
		}
	}
}

// DifficultyPips переводит сложность в число закрашенных прямоугольников, от 1 до 5.
func DifficultyPips(difficulty float64) int {
	if difficulty <= 0 {
		return 0
	}
	frac := (difficulty - config.DifficultyMin) / (config.DifficultyMax - config.DifficultyMin)
	n := 1 + int(frac*(diffRectCount-1)+0.5)
	return min(max(n, 1), diffRectCount)
}
