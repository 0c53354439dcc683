package ui

import (
	"image/color"
	"strings"

	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var bossWaveColor = color.RGBA{230, 40, 40, 255}

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. Босс-волны красные.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, bossWave bool) {
	if waveNumber <= 0 {
		return
	}

	s := toRoman(waveNumber)
	textColor := i.Color
	if bossWave {
		textColor = bossWaveColor
	}

	// Центрируем текст
	bounds := text.BoundString(i.face, s)
	x := i.X - bounds.Dx()/2
	y := i.Y

	// Обводка
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, i.face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, s, i.face, x, y, textColor)
}
