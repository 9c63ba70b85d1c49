package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// Rules are the tuning constants of a session.
type Rules struct {
	Reward       int
	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
	StartLength  int
}

func DefaultRules() Rules {
	return Rules{
		Reward:       10,
		BaseInterval: 200 * time.Millisecond,
		IntervalStep: 5 * time.Millisecond,
		MinInterval:  60 * time.Millisecond,
		StartLength:  1,
	}
}

// NextInterval is the tick interval after one more food, floored at MinInterval.
func (r Rules) NextInterval(cur time.Duration) time.Duration {
	next := cur - r.IntervalStep
	if next < r.MinInterval {
		return r.MinInterval
	}
	return next
}

// State is the whole logical game: integer cells only, no view data.
type State struct {
	Grid     types.Grid
	Snake    entity.Snake
	Food     types.Point
	Score    int
	Interval time.Duration
	Phase    Phase
}

// OutcomeKind says what a tick did.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeMoved
	OutcomeAte
	OutcomeCollided
	OutcomeWon
	OutcomeReset
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeWon:
		return "won"
	case OutcomeReset:
		return "reset"
	default:
		return "none"
	}
}

// Outcome describes a tick for renderers and sound.
type Outcome struct {
	Kind      OutcomeKind
	Head      types.Point
	Eaten     types.Point
	Collision manager.CollisionType
}

// FoodSpawner places food on a free cell; false means the grid is full.
type FoodSpawner interface {
	Spawn(occupied []types.Point) (types.Point, bool)
}

// Step advances st by one tick. It never mutates st's snake body; a
// finished or paused round comes back unchanged with OutcomeNone.
func Step(st State, rules Rules, cm *manager.CollisionManager, food FoodSpawner) (State, Outcome) {
	if st.Phase != PhaseRunning {
		return st, Outcome{}
	}

	head := st.Snake.NextHead()
	if c := cm.CheckCollision(head, st.Snake.Body); c != manager.NoCollision {
		st.Phase = PhaseGameOver
		return st, Outcome{Kind: OutcomeCollided, Head: head, Collision: c}
	}

	if !cm.IsFoodCollision(head, st.Food) {
		st.Snake = st.Snake.Advance(head, false)
		return st, Outcome{Kind: OutcomeMoved, Head: head}
	}

	eaten := st.Food
	st.Snake = st.Snake.Advance(head, true)
	st.Score += rules.Reward
	st.Interval = rules.NextInterval(st.Interval)

	next, ok := food.Spawn(st.Snake.Body)
	if !ok {
		st.Phase = PhaseWon
		return st, Outcome{Kind: OutcomeWon, Head: head, Eaten: eaten}
	}
	st.Food = next
	return st, Outcome{Kind: OutcomeAte, Head: head, Eaten: eaten}
}
