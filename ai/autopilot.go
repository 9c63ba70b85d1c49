// Package ai drives the snake on its own for the demo mode. The autopilot
// only ever asks the session for a direction, exactly like a player would.
package ai

import (
	"math"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/input"
)

// Rewards used to score a candidate move.
const (
	rewardFood    = 1.0
	rewardCloser  = 0.5
	rewardFarther = -0.3
	rewardDanger  = -1.0
)

// State is what the autopilot sees from the head.
type State struct {
	RelativeFoodDir [2]int  // sign of food - head on x and y
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // danger in each direction (up, right, down, left)
}

func NewState(foodDir [2]int, foodDist int, dangers [4]bool) State {
	return State{
		RelativeFoodDir: foodDir,
		FoodDistance:    foodDist,
		DangerDirs:      dangers,
	}
}

// Observe builds the State for snake and food on the collision manager's grid.
func Observe(snake entity.Snake, food types.Point, cm *manager.CollisionManager) State {
	head := snake.Head()
	var dangers [4]bool
	for i, d := range types.Directions {
		dangers[i] = cm.IsDanger(head.Add(d.ToPoint()), snake.Body)
	}
	return NewState(
		[2]int{sign(food.X - head.X), sign(food.Y - head.Y)},
		manhattan(head, food),
		dangers,
	)
}

// restartFrames is how long the game-over screen stays up in demo mode.
const restartFrames = 90

type Autopilot struct {
	collisions *manager.CollisionManager
	waited     int
}

func NewAutopilot(cm *manager.CollisionManager) *Autopilot {
	return &Autopilot{collisions: cm}
}

// Choose picks the heading for the next tick among straight on, left and
// right. Safe moves towards food win; ties go to the move with the most room
// around it, then to the earlier candidate, so straight on is kept when
// nothing is better.
func (a *Autopilot) Choose(snake entity.Snake, food types.Point) types.Direction {
	state := Observe(snake, food, a.collisions)
	head := snake.Head()
	heading := snake.Direction

	best := heading
	bestScore := math.Inf(-1)
	bestRoom := -1
	for _, d := range [3]types.Direction{heading, heading.TurnLeft(), heading.TurnRight()} {
		next := head.Add(d.ToPoint())
		score := a.score(state, d, next, food)
		room := a.room(snake, next)
		if score > bestScore || score == bestScore && room > bestRoom {
			best, bestScore, bestRoom = d, score, room
		}
	}
	return best
}

func (a *Autopilot) score(state State, d types.Direction, next, food types.Point) float64 {
	if state.DangerDirs[dangerIndex(d)] {
		return rewardDanger
	}
	if next == food {
		return rewardFood
	}
	switch dist := manhattan(next, food); {
	case dist < state.FoodDistance:
		return rewardCloser
	case dist > state.FoodDistance:
		return rewardFarther
	}
	return 0
}

// room counts the free neighbours of next once the head has moved there.
func (a *Autopilot) room(snake entity.Snake, next types.Point) int {
	body := snake.Advance(next, false).Body
	free := 0
	for _, d := range types.Directions {
		if !a.collisions.IsDanger(next.Add(d.ToPoint()), body) {
			free++
		}
	}
	return free
}

// Drive is called once per frame. While the round runs it asks the session
// for the autopilot's choice; after a finished round it waits restartFrames
// frames and starts the next one.
func (a *Autopilot) Drive(s *game.Session) {
	switch ph := s.Phase(); {
	case ph == game.PhaseRunning:
		a.waited = 0
		st := s.State()
		s.RequestDirection(a.Choose(st.Snake, st.Food))
	case ph.Terminal():
		a.waited++
		if a.waited >= restartFrames {
			a.waited = 0
			s.Handle(input.Confirm)
		}
	}
}

// dangerIndex is the position of d in types.Directions and State.DangerDirs.
func dangerIndex(d types.Direction) int {
	for i, dir := range types.Directions {
		if dir == d {
			return i
		}
	}
	return 0
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}
