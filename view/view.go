// Package view keeps the presentation state of a session: interpolated
// segment positions, particles and the game-over flash. Nothing here feeds
// back into gameplay; collisions and feeding only ever read the integer
// cells of game.State.
package view

import (
	"math"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Epsilon is the distance, in cells, under which a segment snaps to its target.
const Epsilon = 0.01

const flashDecay = 0.94

// Segment is the rendered position of one snake segment, in cell units.
type Segment struct {
	X, Y float64
}

// Model is the view state a renderer draws from.
type Model struct {
	segments  []Segment
	targets   []types.Point
	particles *Particles
	flash     float64
}

func NewModel(rng *rand.Rand) *Model {
	return &Model{
		particles: NewParticles(rng),
	}
}

// Reset snaps every segment onto body and drops all effects.
func (m *Model) Reset(body []types.Point) {
	m.segments = m.segments[:0]
	m.targets = m.targets[:0]
	for _, p := range body {
		m.segments = append(m.segments, Segment{X: float64(p.X), Y: float64(p.Y)})
		m.targets = append(m.targets, p)
	}
	m.particles.Clear()
	m.flash = 0
}

// Sync maps the logical body onto the view. Segment i keeps its current
// rendered position and gets body[i] as its new target; segments added by
// growth start on their target.
func (m *Model) Sync(body []types.Point) {
	if len(body) < len(m.segments) {
		m.segments = m.segments[:len(body)]
	}
	m.targets = m.targets[:0]
	for i, p := range body {
		m.targets = append(m.targets, p)
		if i >= len(m.segments) {
			m.segments = append(m.segments, Segment{X: float64(p.X), Y: float64(p.Y)})
		}
	}
}

// InterpolationFactor is the share of the remaining distance covered in a
// frame of length dt when ticks are interval apart.
func InterpolationFactor(dt, interval time.Duration) float64 {
	if interval <= 0 {
		return 1
	}
	f := float64(dt) / float64(interval)
	return math.Max(0, math.Min(1, f))
}

// Update moves segments towards their targets and ages the effects by one frame.
func (m *Model) Update(dt, interval time.Duration) {
	f := InterpolationFactor(dt, interval)
	for i := range m.segments {
		tx, ty := float64(m.targets[i].X), float64(m.targets[i].Y)
		seg := &m.segments[i]
		seg.X += (tx - seg.X) * f
		seg.Y += (ty - seg.Y) * f
		if math.Abs(tx-seg.X) < Epsilon && math.Abs(ty-seg.Y) < Epsilon {
			seg.X, seg.Y = tx, ty
		}
	}
	m.particles.Update()
	m.flash *= flashDecay
	if m.flash < Epsilon {
		m.flash = 0
	}
}

// OnOutcome implements game.Observer.
func (m *Model) OnOutcome(out game.Outcome, st game.State) {
	switch out.Kind {
	case game.OutcomeReset:
		m.Reset(st.Snake.Body)
	case game.OutcomeMoved:
		m.Sync(st.Snake.Body)
	case game.OutcomeAte, game.OutcomeWon:
		m.Sync(st.Snake.Body)
		m.particles.Burst(out.Eaten.X, out.Eaten.Y, foodBurstCount, foodParticleLife, FoodParticle)
	case game.OutcomeCollided:
		m.particles.Burst(st.Snake.Head().X, st.Snake.Head().Y, crashBurstCount, crashParticleLife, CrashParticle)
		m.flash = 1
	}
}

// Segments returns the rendered positions, head first.
func (m *Model) Segments() []Segment {
	return m.segments
}

func (m *Model) Particles() []Particle {
	return m.particles.Items()
}

// Flash is the game-over flash intensity in [0, 1].
func (m *Model) Flash() float64 {
	return m.flash
}
