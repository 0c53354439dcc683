package ui

import (
	"fmt"
	"image/color"

	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDFace — шрифт всего HUD.
var HUDFace font.Face = basicfont.Face7x13

const notificationTTL = 4.0 // секунды игрового времени

// HUDLine is one row of the top-left status block.
type HUDLine struct {
	Text  string
	Color color.Color
}

// DrawLines рисует строки сверху вниз начиная с (x, y).
func DrawLines(screen *ebiten.Image, face font.Face, x, y int, lines []HUDLine) {
	for i, l := range lines {
		text.Draw(screen, l.Text, face, x, y+i*16, l.Color)
	}
}

// DrawNotifications выводит свежие сообщения в правом нижнем углу.
func DrawNotifications(screen *ebiten.Image, face font.Face, ecs *entity.ECS, x, y int) {
	row := 0
	for i := len(ecs.Notifications) - 1; i >= 0; i-- {
		n := ecs.Notifications[i]
		age := ecs.GameTime - n.At
		if age > notificationTTL {
			break
		}
		alpha := uint8(255 * (1 - age/notificationTTL))
		text.Draw(screen, n.Message, face, x, y-row*16, color.NRGBA{255, 255, 255, alpha})
		row++
	}
}

// MiniEventLine describes the running mini-event, or "" when there is none.
func MiniEventLine(mini *system.MiniEventSystem) string {
	cur := mini.Current()
	if cur == nil {
		return ""
	}
	switch mini.Phase() {
	case system.MiniEventWarningPhase:
		return fmt.Sprintf("Incoming: %s", cur.Type)
	case system.MiniEventActivePhase:
		return fmt.Sprintf("Event: %s", cur.Type)
	}
	return ""
}
