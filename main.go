package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/stats"
	"snake-arcade/store"
	"snake-arcade/term"
	"snake-arcade/ui"
	"snake-arcade/view"

	"golang.org/x/exp/rand"
)

func main() {
	log.SetPrefix("snake: ")
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	gameStats := stats.NewGameStats()
	var recorder manager.Recorder
	if cfg.ScoresDB != "" {
		db, err := store.Open(ctx, cfg.ScoresDB)
		if err != nil {
			log.Fatalf("scores: %v", err)
		}
		defer db.Close()
		recorder = db
	}
	scores := manager.NewStateManager(gameStats, recorder)
	if err := scores.LoadHistory(ctx); err != nil {
		log.Printf("loading score history: %v", err)
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	cm := manager.NewCollisionManager(grid)
	food := manager.NewFoodManager(grid, cm, rng)
	session := game.NewSession(grid, cfg.Rules(), food, scores)

	model := view.NewModel(rng)
	model.Reset(session.State().Snake.Body)
	session.Observe(model)

	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer sm.Cleanup()
			session.Observe(sm)
		}
	}

	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot(session.Collisions())
		session.Start()
	}

	log.Printf("starting %s frontend on a %dx%d grid (seed %d)", cfg.Frontend, cfg.Width, cfg.Height, seed)

	switch cfg.Frontend {
	case config.FrontendTerm:
		screen, err := term.NewScreen()
		if err != nil {
			log.Fatalf("terminal: %v", err)
		}
		opts := term.Options{FPS: cfg.FPS, Stats: gameStats}
		if pilot != nil {
			opts.Driver = pilot
		}
		term.Run(ctx, screen, session, model, opts)
		screen.Fini()
	default:
		opts := ui.Options{
			Title:          "Snake",
			CellSize:       cfg.CellSize,
			FPS:            cfg.FPS,
			SwipeThreshold: cfg.SwipeThreshold,
			Stats:          gameStats,
		}
		if pilot != nil {
			opts.Driver = pilot
		}
		ui.Run(session, model, opts)
	}

	log.Printf("played %d games, best %d, average %.1f",
		gameStats.GetGamesPlayed(), scores.GetHighScore(), gameStats.GetAverageScore())
}
