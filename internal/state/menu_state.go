// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — титульный экран. Space создаёт игру и переходит в неё.
type MenuState struct {
	sm      *StateMachine
	newGame func() (*game.Game, error)
	lastErr error
}

func NewMenuState(sm *StateMachine, newGame func() (*game.Game, error)) *MenuState {
	return &MenuState{sm: sm, newGame: newGame}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	g, err := m.newGame()
	if err != nil {
		log.Printf("Failed to start game: %v", err)
		m.lastErr = err
		return
	}
	m.sm.SetState(NewGameState(m.sm, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lines := []string{"WAVE DEFENSE", "", "Space: start", "1-6: pick tower, click to build", "P: pause"}
	if m.lastErr != nil {
		lines = append(lines, "", fmt.Sprintf("error: %v", m.lastErr))
	}
	for i, l := range lines {
		w := text.BoundString(ui.HUDFace, l).Dx()
		text.Draw(screen, l, ui.HUDFace, (config.ScreenWidth-w)/2, config.ScreenHeight/3+i*20, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
