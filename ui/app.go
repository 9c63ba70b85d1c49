// Package ui is the desktop frontend, drawn with raylib.
package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/input"
	"snake-arcade/stats"
	"snake-arcade/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Driver steers the session on its own, once per frame.
type Driver interface {
	Drive(s *game.Session)
}

type Options struct {
	Title          string
	CellSize       int
	FPS            int
	SwipeThreshold float64
	Stats          *stats.GameStats
	Driver         Driver // nil for a human player
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(s *game.Session, m *view.Model, opts Options) {
	w, h := WindowSize(s.State().Grid, opts.CellSize)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(opts.FPS))
	// Escape pauses instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	if opts.Stats == nil {
		opts.Stats = stats.NewGameStats()
	}
	renderer := NewRenderer(opts.Stats)
	in := NewInput(opts.SwipeThreshold)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, cmd := range in.Poll() {
			if cmd == input.Quit {
				return
			}
			s.Handle(cmd)
		}
		if opts.Driver != nil {
			opts.Driver.Drive(s)
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		s.Frame(dt)
		m.Update(dt, s.Interval())

		renderer.Draw(s, m)
	}
}
