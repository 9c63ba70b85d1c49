package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/input"
)

// MaxFrameDelta caps the time a single frame may feed into the clock, so a
// stalled window does not release a long run of back-to-back ticks.
const MaxFrameDelta = 250 * time.Millisecond

// Observer is told about every tick and every reset.
type Observer interface {
	OnOutcome(out Outcome, st State)
}

// Session drives one player's game: it owns the state, the tick clock and
// the once-per-tick direction lock.
type Session struct {
	state      State
	rules      Rules
	collisions *manager.CollisionManager
	food       FoodSpawner
	scores     *manager.StateManager
	clock      Clock
	locked     bool
	observers  []Observer
}

// NewSession builds a session in PhaseStart. scores may be nil.
func NewSession(grid types.Grid, rules Rules, food FoodSpawner, scores *manager.StateManager) *Session {
	if scores == nil {
		scores = manager.NewStateManager(nil, nil)
	}
	s := &Session{
		rules:      rules,
		collisions: manager.NewCollisionManager(grid),
		food:       food,
		scores:     scores,
	}
	s.state = s.initialState(grid, PhaseStart)
	return s
}

func (s *Session) initialState(grid types.Grid, phase Phase) State {
	head := grid.Center()
	length := s.rules.StartLength
	if length > head.X+1 {
		length = head.X + 1
	}
	st := State{
		Grid:     grid,
		Snake:    entity.NewSnake(head, types.Right, length),
		Score:    0,
		Interval: s.rules.BaseInterval,
		Phase:    phase,
	}
	food, ok := s.food.Spawn(st.Snake.Body)
	if !ok {
		st.Phase = PhaseWon
	}
	st.Food = food
	return st
}

// Observe registers o for tick and reset notifications.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) notify(out Outcome) {
	for _, o := range s.observers {
		o.OnOutcome(out, s.state)
	}
}

func (s *Session) reset() {
	s.state = s.initialState(s.state.Grid, PhaseRunning)
	s.clock.Reset()
	s.locked = false
	s.scores.BeginRound()
	s.notify(Outcome{Kind: OutcomeReset, Head: s.state.Snake.Head()})
}

// Start leaves the start screen. It does nothing in any other phase.
func (s *Session) Start() {
	if s.state.Phase == PhaseStart {
		s.reset()
	}
}

// Restart begins a fresh round from any phase. A round still in progress
// is recorded as abandoned.
func (s *Session) Restart() {
	if s.state.Phase == PhaseRunning || s.state.Phase == PhasePaused {
		s.scores.EndRound(s.state.Score, s.state.Snake.Len(), "abandoned")
	}
	s.reset()
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.state.Phase {
	case PhaseRunning:
		s.state.Phase = PhasePaused
	case PhasePaused:
		s.state.Phase = PhaseRunning
	}
}

// RequestDirection asks for a new heading. At most one change is accepted
// per tick, and never the exact reverse of the current heading.
func (s *Session) RequestDirection(d types.Direction) bool {
	if s.state.Phase != PhaseRunning || s.locked || d == types.None {
		return false
	}
	cur := s.state.Snake.Direction
	if d == cur || d.IsReverseOf(cur) {
		return false
	}
	s.state.Snake.Direction = d
	s.locked = true
	return true
}

// Handle applies a frontend command.
func (s *Session) Handle(cmd input.Command) {
	switch cmd {
	case input.Up, input.Down, input.Left, input.Right:
		s.RequestDirection(cmd.Direction())
	case input.Confirm:
		switch s.state.Phase {
		case PhaseStart:
			s.Start()
		case PhaseGameOver, PhaseWon:
			s.Restart()
		default:
			s.TogglePause()
		}
	case input.Pause:
		s.TogglePause()
	case input.Restart:
		if s.state.Phase == PhaseStart {
			s.Start()
			return
		}
		s.Restart()
	}
}

// Frame feeds one display frame's elapsed time to the clock and runs a tick
// when one is due. It reports the tick's outcome and whether a tick ran.
func (s *Session) Frame(dt time.Duration) (Outcome, bool) {
	if s.state.Phase != PhaseRunning {
		return Outcome{}, false
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	if !s.clock.Advance(dt, s.state.Interval) {
		return Outcome{}, false
	}
	return s.Tick(), true
}

// Tick runs one state advance immediately, bypassing the clock.
func (s *Session) Tick() Outcome {
	next, out := Step(s.state, s.rules, s.collisions, s.food)
	if out.Kind == OutcomeNone {
		return out
	}
	s.state = next
	s.locked = false

	switch out.Kind {
	case OutcomeAte:
		s.scores.UpdateScore(next.Score)
	case OutcomeCollided:
		s.scores.EndRound(next.Score, next.Snake.Len(), out.Collision.String())
	case OutcomeWon:
		s.scores.EndRound(next.Score, next.Snake.Len(), "won")
	}
	s.notify(out)
	return out
}

// State returns the current state. The snake body is shared and must not
// be modified by the caller.
func (s *Session) State() State {
	return s.state
}

func (s *Session) Phase() Phase {
	return s.state.Phase
}

func (s *Session) Score() int {
	return s.state.Score
}

func (s *Session) HighScore() int {
	return s.scores.GetHighScore()
}

func (s *Session) Interval() time.Duration {
	return s.state.Interval
}

// Progress is the fraction of the current tick interval already elapsed.
func (s *Session) Progress() float64 {
	return s.clock.Progress(s.state.Interval)
}

func (s *Session) RoundID() string {
	return s.scores.RoundID()
}

func (s *Session) Rules() Rules {
	return s.rules
}

func (s *Session) Collisions() *manager.CollisionManager {
	return s.collisions
}
