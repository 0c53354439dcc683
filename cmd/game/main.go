// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/state"

	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// speakerLocker отдаёт CuePlayer'у мьютекс колонки.
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	enemies := flag.String("enemies", "", "path to enemies.json (empty: built-in catalog)")
	bosses := flag.String("bosses", "", "path to bosses.yaml")
	dbPath := flag.String("db", "wave-history.db", "sqlite file for wave history (empty: none)")
	mute := flag.Bool("mute", false, "disable sound")
	autoStart := flag.Bool("autostart", false, "start the next wave when preparation ends")
	skipMenu := flag.Bool("skip-menu", false, "start directly in the game")
	flag.Parse()

	opts := game.Options{
		Seed:        *seed,
		EnemiesPath: *enemies,
		BossesPath:  *bosses,
		DBPath:      *dbPath,
		AutoStart:   *autoStart,
	}
	if !*mute {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			player := audio.NewCuePlayer(speakerLocker{}, audio.SampleRate)
			speaker.Play(player.Streamer())
			opts.Sound = player
		}
	}

	var current *game.Game
	newGame := func() (*game.Game, error) {
		if current != nil {
			current.Close()
		}
		g, err := game.NewGame(context.Background(), opts)
		current = g
		return g, err
	}
	defer func() {
		if current != nil {
			if err := current.Close(); err != nil {
				log.Printf("Close: %v", err)
			}
		}
	}()

	sm := state.NewStateMachine()
	if *skipMenu {
		g, err := newGame()
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm, newGame))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
