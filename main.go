package main

import (
	"flag"
	"log"
	"time"

	"snake3d/game"
	"snake3d/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := game.DefaultConfig()
	seed := flag.Uint64("seed", cfg.Seed, "Food placement seed (0 = time based)")
	gridSize := flag.Int("grid", cfg.GridSize, "Board side in cells")
	width := flag.Int("width", 1000, "Window width in pixels")
	height := flag.Int("height", 800, "Window height in pixels")
	fps := flag.Int("fps", 60, "Target frames per second")
	flag.Parse()

	cfg.Seed = *seed
	cfg.GridSize = *gridSize

	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatalf("%v", errors.Wrap(err, "invalid configuration"))
	}
	log.Printf("session %s: %dx%d board, seed %d", g.UUID, cfg.GridSize, cfg.GridSize, cfg.Seed)

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(*width), int32(*height), "3D snake game")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(*fps))

	orbit := ui.NewOrbit()
	renderer := ui.NewRenderer(orbit)

	for !rl.WindowShouldClose() {
		ui.Poll(g, orbit, rl.GetFrameTime())

		// Step first, then draw whatever state the core holds now.
		g.Update(time.Now())
		renderer.Draw(g.Snapshot())
	}

	stats := g.GetStateManager()
	log.Printf("session %s: %d games, best %d, average %.1f",
		g.UUID, stats.GetGamesPlayed(), stats.GetHighScore(), stats.GetAverageScore())
}
