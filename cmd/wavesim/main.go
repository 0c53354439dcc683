// cmd/wavesim/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	game "go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
)

const simTick = 1.0 / config.TicksPerSec

func main() {
	seed := flag.Int64("seed", 1, "PRNG seed")
	enemies := flag.String("enemies", "", "path to enemies.json (empty: built-in catalog)")
	bosses := flag.String("bosses", "", "path to bosses.yaml")
	dbPath := flag.String("db", "", "sqlite file for wave history (empty: none)")
	headless := flag.Bool("headless", false, "run without the terminal dashboard")
	waves := flag.Int("waves", 10, "waves to play in headless mode")
	build := flag.Bool("build", true, "auto-build towers with available gold")
	flag.Parse()

	g, err := game.NewGame(context.Background(), game.Options{
		Seed:        *seed,
		EnemiesPath: *enemies,
		BossesPath:  *bosses,
		DBPath:      *dbPath,
		AutoStart:   !*headless,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	var b *builder
	if *build {
		b = newBuilder(g)
	}

	code := 0
	if *headless {
		code = runHeadless(g, b, *waves)
	} else if err := runDashboard(g, b); err != nil {
		log.Printf("Dashboard: %v", err)
		code = 1
	}
	if err := g.Close(); err != nil {
		log.Printf("Close: %v", err)
	}
	os.Exit(code)
}

// runHeadless играет до waves волн фиксированным шагом и печатает итог каждой.
func runHeadless(g *game.Game, b *builder, waves int) int {
	started := time.Now()
	g.EventDispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(e event.Event) {
		d := e.Data.(event.WaveData)
		s := g.Stats()
		fmt.Printf("wave %3d  killed %4d/%-4d  %6.1fs  leaked %3d  base %5.1f  gold %5d  perf %.2f  diff %.2f\n",
			d.Wave, d.Killed, d.Required, d.Elapsed, s.Leaked, s.BaseHealth, s.Gold, s.Performance, s.Difficulty)
	}))

	for g.Wave <= waves && !g.ECS.IsGameOver() {
		if b != nil {
			b.Build()
		}
		if !g.StartNextWave() {
			log.Printf("Wave %d refused in state %s", g.Wave, g.ECS.GameState)
			return 1
		}
		for g.ECS.GameState == component.WaveState {
			g.Update(simTick)
		}
	}

	s := g.Stats()
	fmt.Printf("finished: wave %d  bosses %d  towers %d  game over %v  (%s)\n",
		s.Wave, s.BossesDefeated, len(g.ECS.Towers()), g.ECS.IsGameOver(), time.Since(started).Truncate(time.Millisecond))
	if g.ECS.IsGameOver() {
		return 2
	}
	return 0
}
