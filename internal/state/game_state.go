// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	field       *ui.FieldRenderer
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	waveInd     *ui.WaveIndicator
	healthInd   *ui.BaseHealthIndicator
	perfInd     *ui.PerformanceIndicator
	palette     *ui.TowerPalette
	infoPanel   *ui.InfoPanel
	bossBar     *ui.BossBar

	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	face := ui.HUDFace
	right := float32(config.ScreenWidth - config.IndicatorOffsetX)

	infoPanel := ui.NewInfoPanel(face, face, g.Catalog)
	infoPanel.OnSell = g.RemoveTower

	healthInd := ui.NewBaseHealthIndicator(10, 10, face)

	return &GameState{
		sm:          sm,
		game:        g,
		field:       ui.NewFieldRenderer(g.ECS, g.ECS),
		indicator:   ui.NewStateIndicator(right, float32(config.IndicatorOffsetX), float32(config.IndicatorRadius)),
		speedButton: ui.NewSpeedButton(right-30, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedColors),
		pauseButton: ui.NewPauseButton(right-60, config.SpeedButtonY, config.SpeedButtonSize, config.PauseColor, config.PlayColor),
		waveInd:     ui.NewWaveIndicator(config.ScreenWidth-140, 36, face),
		healthInd:   healthInd,
		perfInd:     ui.NewPerformanceIndicator(10, 20+healthInd.GetHeight()),
		palette:     ui.NewTowerPalette(10, config.ScreenHeight-40),
		infoPanel:   infoPanel,
		bossBar:     ui.NewBossBar(g.Catalog, face, g.EventDispatcher, func() float64 { return g.ECS.GameTime }),
	}
}

// Game returns the simulation driven by this state.
func (s *GameState) Game() *game.Game {
	return s.game
}

func (s *GameState) Enter() {
	s.game.SetPaused(false)
	s.pauseButton.SetPaused(false)
}

func (s *GameState) Update(deltaTime float64) {
	s.infoPanel.Update(s.game.ECS)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.StartNextWave()
	}
	for i, k := range towerKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.palette.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.palette.Selected = -1
		s.infoPanel.Hide()
	}

	s.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.handleUIClick(x, y) {
			s.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if tower, ok := s.game.TowerAt(component.Position{X: float64(x), Y: float64(y)}); ok {
			s.game.RemoveTower(tower.ID)
		}
	}
}

// handleUIClick возвращает true, если клик попал в элемент интерфейса.
func (s *GameState) handleUIClick(x, y int) bool {
	cooled := time.Since(s.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond

	switch {
	case s.speedButton.IsClicked(x, y):
		if cooled {
			s.game.HandleSpeedClick()
			s.speedButton.SetState(s.game.SpeedMultiplier)
			s.lastClickTime = time.Now()
		}
		return true
	case s.pauseButton.IsClicked(x, y):
		if cooled {
			s.lastClickTime = time.Now()
			s.pause()
		}
		return true
	case s.indicator.IsClicked(x, y):
		if cooled {
			s.indicator.HandleClick()
			s.game.StartNextWave()
			s.lastClickTime = time.Now()
		}
		return true
	case s.infoPanel.HandleClick(s.game.ECS, x, y):
		return true
	case s.palette.HandleClick(x, y):
		return true
	}
	return false
}

func (s *GameState) handleFieldClick(x, y int) {
	pos := component.Position{X: float64(x), Y: float64(y)}

	if id := s.palette.SelectedID(); id != "" {
		if _, ok := s.game.PlaceTower(id, pos); ok {
			return
		}
	}
	if enemy, ok := s.game.EnemyAt(pos); ok {
		s.infoPanel.SetTarget(enemy.ID)
		return
	}
	if tower, ok := s.game.TowerAt(pos); ok {
		s.infoPanel.SetTarget(tower.ID)
		return
	}
	s.infoPanel.Hide()
}

func (s *GameState) pause() {
	s.game.SetPaused(true)
	s.pauseButton.SetPaused(true)
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g := s.game
	stats := g.Stats()

	s.field.Draw(screen)

	var stateColor color.Color
	switch stats.State {
	case component.BuildState:
		stateColor = config.BuildStateColor
	case component.WaveState:
		stateColor = config.WaveStateColor
	default:
		stateColor = config.TextLightColor
	}
	s.indicator.Draw(screen, stateColor)
	s.speedButton.Draw(screen)
	s.pauseButton.Draw(screen)
	s.waveInd.Draw(screen, stats.Wave, stats.IsBossWave)
	s.healthInd.Draw(screen, stats.BaseHealth, config.BaseHealth, stats.WallShield, config.WallShield)
	s.perfInd.Draw(screen, stats.Performance, stats.Difficulty)
	s.palette.Draw(screen, ui.HUDFace, stats.Gold, g.DisabledTowerType())
	s.bossBar.Draw(screen, g.ActiveBoss())

	ui.DrawLines(screen, ui.HUDFace, 10, int(s.perfInd.Y)+40, s.hudLines(stats))
	ui.DrawNotifications(screen, ui.HUDFace, g.ECS, config.ScreenWidth-320, config.DefendedLineY-20)

	if banner, ok := s.bossBar.Banner(); ok {
		w := text.BoundString(ui.HUDFace, banner).Dx()
		text.Draw(screen, banner, ui.HUDFace, (config.ScreenWidth-w)/2, config.ScreenHeight/3, config.WarningColor)
	}
	if stats.State == component.GameOverState {
		msg := fmt.Sprintf("GAME OVER  wave %d", stats.Wave)
		w := text.BoundString(ui.HUDFace, msg).Dx()
		text.Draw(screen, msg, ui.HUDFace, (config.ScreenWidth-w)/2, config.ScreenHeight/2, config.WaveStateColor)
	}

	s.infoPanel.Draw(screen, g.ECS)
}

func (s *GameState) hudLines(stats game.Stats) []ui.HUDLine {
	lines := []ui.HUDLine{
		{Text: fmt.Sprintf("Gold: %d", stats.Gold), Color: config.WarningColor},
		{Text: fmt.Sprintf("Killed: %d / %d  alive %d  leaked %d", stats.Killed, stats.Required, stats.Alive, stats.Leaked), Color: config.TextLightColor},
		{Text: fmt.Sprintf("Speed: %.0fx", s.game.SpeedMultiplier), Color: config.TextLightColor},
	}
	if stats.State == component.WaveState {
		lines = append(lines, ui.HUDLine{Text: fmt.Sprintf("Time: %s", stats.Elapsed.Truncate(time.Second)), Color: config.TextLightColor})
	}
	if stats.PrepRemaining > 0 {
		lines = append(lines, ui.HUDLine{Text: fmt.Sprintf("Next wave in %.1fs", stats.PrepRemaining.Seconds()), Color: config.BuildStateColor})
	} else if stats.State == component.BuildState {
		lines = append(lines, ui.HUDLine{Text: "Space: start wave", Color: config.BuildStateColor})
	}
	if line := ui.MiniEventLine(s.game.MiniEventSystem); line != "" {
		lines = append(lines, ui.HUDLine{Text: line, Color: config.WarningColor})
	}
	if stats.BossesDefeated > 0 {
		lines = append(lines, ui.HUDLine{Text: fmt.Sprintf("Bosses defeated: %d", stats.BossesDefeated), Color: config.TextLightColor})
	}
	return lines
}

func (s *GameState) Exit() {}
