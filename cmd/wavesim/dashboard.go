package main

import (
	"fmt"
	"time"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	panelWidth    = 34
)

var (
	styleDefault = tcell.StyleDefault
	styleLine    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

type dashboard struct {
	screen        tcell.Screen
	game          *game.Game
	builder       *builder
	width, height int
}

func runDashboard(g *game.Game, b *builder) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d := &dashboard{screen: screen, game: g, builder: b}
	d.width, d.height = screen.Size()
	d.run()
	return nil
}

func (d *dashboard) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			d.game.Update(now.Sub(last).Seconds())
			last = now
			d.draw()
		}
	}
}

func (d *dashboard) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			d.game.StartNextWave()
		case 'p', 'P':
			d.game.HandlePauseClick()
		case 's', 'S':
			d.game.HandleSpeedClick()
		case 'b', 'B':
			if d.builder != nil {
				d.builder.Build()
			}
		case 'x', 'X':
			d.game.SpawnBoss("")
		}
	case *tcell.EventResize:
		d.width, d.height = ev.Size()
		d.screen.Sync()
	}
	return true
}

// toCell переводит координаты поля в клетку терминала слева от панели.
func (d *dashboard) toCell(p component.Position) (int, int, bool) {
	cols := d.width - panelWidth - 1
	rows := d.height - 1
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(p.X / config.ScreenWidth * float64(cols))
	y := int(p.Y / config.DefendedLineY * float64(rows))
	if x < 0 || x >= cols || y < 0 || y > rows {
		return 0, 0, false
	}
	return x, y, true
}

func (d *dashboard) draw() {
	d.screen.Clear()
	d.drawField()
	d.drawPanel()
	d.screen.Show()
}

func (d *dashboard) drawField() {
	_, lineY, ok := d.toCell(component.Position{Y: config.DefendedLineY})
	if ok {
		for x := 0; x < d.width-panelWidth-1; x++ {
			d.screen.SetContent(x, lineY, '═', nil, styleLine)
		}
	}
	for _, t := range d.game.ECS.Towers() {
		if x, y, ok := d.toCell(t.Position); ok {
			style := styleTower
			if !t.IsActive {
				style = styleDefault.Dim(true)
			}
			d.screen.SetContent(x, y, towerRune(t.DefID), nil, style)
		}
	}
	for _, e := range d.game.ECS.Enemies() {
		x, y, ok := d.toCell(e.Position)
		if !ok {
			continue
		}
		if e.IsBoss() {
			d.screen.SetContent(x, y, 'B', nil, styleBoss)
			continue
		}
		style := styleDefault.Foreground(tcell.NewRGBColor(int32(e.Color.R), int32(e.Color.G), int32(e.Color.B)))
		d.screen.SetContent(x, y, enemyRune(e.Type), nil, style)
	}
}

func (d *dashboard) drawPanel() {
	s := d.game.Stats()
	x := d.width - panelWidth
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{fmt.Sprintf("WAVE %d (%s)", s.Wave, s.State), styleTitle},
		{fmt.Sprintf("killed   %d / %d", s.Killed, s.Required), styleDefault},
		{fmt.Sprintf("spawned  %d  alive %d", s.Spawned, s.Alive), styleDefault},
		{fmt.Sprintf("leaked   %d", s.Leaked), styleDefault},
		{fmt.Sprintf("base     %.0f  wall %.0f", s.BaseHealth, s.WallShield), styleDefault},
		{fmt.Sprintf("gold     %d", s.Gold), styleDefault},
		{fmt.Sprintf("perf     %.2f  diff %.2f", s.Performance, s.Difficulty), styleDefault},
		{fmt.Sprintf("elapsed  %s", s.Elapsed.Truncate(100*time.Millisecond)), styleDefault},
		{fmt.Sprintf("speed    %.0fx  paused %v", d.game.SpeedMultiplier, d.game.IsPaused()), styleDefault},
		{fmt.Sprintf("bosses   %d", s.BossesDefeated), styleDefault},
	}
	add := func(text string, style tcell.Style) {
		lines = append(lines, struct {
			text  string
			style tcell.Style
		}{text, style})
	}
	if s.PrepRemaining > 0 {
		add(fmt.Sprintf("next wave in %.1fs", s.PrepRemaining.Seconds()), styleWarn)
	}
	if s.MiniEvent != "" {
		add(fmt.Sprintf("event    %s (%s)", s.MiniEvent, s.MiniEventPhase), styleWarn)
	}
	if boss := d.game.ActiveBoss(); boss != nil {
		add(fmt.Sprintf("boss     %s %.0f%% ph %d", boss.Type, boss.HealthFraction()*100, boss.Boss.BossPhase), styleBoss)
	}
	if s.State == component.GameOverState {
		add("GAME OVER", styleBoss)
	}
	add("", styleDefault)
	add("space start  p pause  s speed", styleDefault)
	add("b build  x boss  q quit", styleDefault)

	for i, l := range lines {
		drawText(d.screen, x, i, l.text, l.style)
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func towerRune(defID string) rune {
	switch defID {
	case defs.TowerSniper:
		return 'S'
	case defs.TowerRapid:
		return 'R'
	case defs.TowerFrost:
		return 'F'
	case defs.TowerDetector:
		return 'D'
	case defs.TowerBank:
		return '$'
	}
	return 'T'
}

func enemyRune(enemyType string) rune {
	if enemyType == "" {
		return '?'
	}
	return []rune(enemyType)[0]
}
