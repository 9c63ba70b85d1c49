package entity

import (
	"snake-arcade/game/types"
)

// Snake is the logical snake. Body is ordered head first and holds
// integer cells only; visual positions live in the view package.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// NewSnake lays length segments behind head, opposite to dir.
func NewSnake(head types.Point, dir types.Direction, length int) Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return Snake{Body: body, Direction: dir}
}

func (s Snake) Head() types.Point {
	return s.Body[0]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// NextHead is the cell the head moves into on the next tick.
func (s Snake) NextHead() types.Point {
	return s.Head().Add(s.Direction.ToPoint())
}

// Advance returns a copy of the snake with head pushed to the front.
// The tail is dropped unless grow is set. The receiver's body is not touched.
func (s Snake) Advance(head types.Point, grow bool) Snake {
	n := len(s.Body)
	if !grow {
		n--
	}
	body := make([]types.Point, 0, n+1)
	body = append(body, head)
	body = append(body, s.Body[:n]...)
	return Snake{Body: body, Direction: s.Direction}
}
