package term

import (
	"context"
	"time"

	"snake-arcade/game"
	"snake-arcade/input"
	"snake-arcade/stats"
	"snake-arcade/view"

	"github.com/gdamore/tcell/v2"
)

const defaultFPS = 60

// Driver steers the session on its own, once per frame.
type Driver interface {
	Drive(s *game.Session)
}

type Options struct {
	FPS    int
	Stats  *stats.GameStats
	Driver Driver // nil for a human player
}

// NewScreen opens and initialises the terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Run plays on screen until ctx is cancelled or the player quits. The
// caller owns the screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, s *game.Session, m *view.Model, opts Options) {
	renderer := NewRenderer(screen, opts.Stats)
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var mouse pointer
	last := time.Now()
	renderer.Draw(s, m)
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := commandFor(ev.Key(), ev.Rune())
				if cmd == input.Quit {
					return
				}
				s.Handle(cmd)
			case *tcell.EventMouse:
				x, y := ev.Position()
				if cmd := mouse.track(x, y, ev.Buttons()&tcell.Button1 != 0); cmd != input.None {
					s.Handle(cmd)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if opts.Driver != nil {
				opts.Driver.Drive(s)
			}
			s.Frame(dt)
			m.Update(dt, s.Interval())
			renderer.Draw(s, m)
		}
	}
}

// commandFor maps a key press to a game command.
func commandFor(key tcell.Key, r rune) input.Command {
	switch key {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Confirm
	case tcell.KeyEscape:
		return input.Pause
	case tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		return input.FromRune(r)
	}
	return input.None
}

// pointer turns a button press and release into a swipe or tap. Distances
// are in grid cells; a drag of more than one cell is a swipe.
type pointer struct {
	down   bool
	sx, sy int
}

func (p *pointer) track(x, y int, pressed bool) input.Command {
	switch {
	case pressed && !p.down:
		p.down, p.sx, p.sy = true, x, y
	case !pressed && p.down:
		p.down = false
		dx := float64(x-p.sx) / cellCols
		dy := float64(y - p.sy)
		if cmd := input.ClassifySwipe(dx, dy, 1); cmd != input.None {
			return cmd
		}
		if input.IsTap(dx, dy, 1) {
			return input.Confirm
		}
	}
	return input.None
}
