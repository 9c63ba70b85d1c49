// Package input turns raw keys, key names and pointer gestures into game
// commands. Frontends map their own key codes onto these and hand the
// result to the session.
package input

import (
	"math"

	"snake-arcade/game/types"
)

// DefaultSwipeThreshold is the minimum drag, in pixels, that counts as a swipe.
const DefaultSwipeThreshold = 30.0

type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	Confirm
	Pause
	Restart
	Quit
)

// Direction returns the heading a movement command asks for, or types.None.
func (c Command) Direction() types.Direction {
	switch c {
	case Up:
		return types.Up
	case Down:
		return types.Down
	case Left:
		return types.Left
	case Right:
		return types.Right
	default:
		return types.None
	}
}

// FromRune maps WASD and the single-letter shortcuts.
func FromRune(r rune) Command {
	switch r {
	case 'w', 'W':
		return Up
	case 's', 'S':
		return Down
	case 'a', 'A':
		return Left
	case 'd', 'D':
		return Right
	case ' ':
		return Confirm
	case 'p', 'P':
		return Pause
	case 'r', 'R':
		return Restart
	case 'q', 'Q':
		return Quit
	default:
		return None
	}
}

// ClassifySwipe resolves a drag of (dx, dy) pixels to a direction command by
// its dominant axis. Drags at or below threshold on that axis are ignored.
// Screen y grows downwards.
func ClassifySwipe(dx, dy, threshold float64) Command {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax >= ay {
		if ax <= threshold {
			return None
		}
		if dx > 0 {
			return Right
		}
		return Left
	}
	if ay <= threshold {
		return None
	}
	if dy > 0 {
		return Down
	}
	return Up
}

// IsTap reports whether a pointer press-release pair moved too little to be
// anything but a click.
func IsTap(dx, dy, threshold float64) bool {
	return math.Hypot(dx, dy) <= threshold/3
}
