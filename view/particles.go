package view

import (
	"math"

	"golang.org/x/exp/rand"
)

const (
	particleDrag      = 0.92
	foodBurstCount    = 12
	crashBurstCount   = 24
	foodParticleLife  = 30
	crashParticleLife = 45
)

// ParticleKind selects the palette a renderer uses for a particle.
type ParticleKind int

const (
	FoodParticle ParticleKind = iota
	CrashParticle
)

// Vec2 is a position or velocity in cell units.
type Vec2 struct {
	X, Y float64
}

// Particle is a short-lived cosmetic effect. Life counts down in frames.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Alpha   float64
	Life    int
	MaxLife int
	Kind    ParticleKind
}

// Particles owns the live particle set.
type Particles struct {
	items []Particle
	rng   *rand.Rand
}

func NewParticles(rng *rand.Rand) *Particles {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Particles{
		items: make([]Particle, 0, crashBurstCount*2),
		rng:   rng,
	}
}

// Burst spawns count particles radiating from the centre of cell (x, y).
func (ps *Particles) Burst(x, y int, count, life int, kind ParticleKind) {
	cx, cy := float64(x)+0.5, float64(y)+0.5
	for i := 0; i < count; i++ {
		angle := float64(i)*2*math.Pi/float64(count) + ps.rng.Float64()*0.5
		speed := 0.08 + ps.rng.Float64()*0.12
		ps.items = append(ps.items, Particle{
			Pos:     Vec2{X: cx, Y: cy},
			Vel:     Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Alpha:   1,
			Life:    life,
			MaxLife: life,
			Kind:    kind,
		})
	}
}

// Update advances every particle by one frame and prunes the dead ones.
func (ps *Particles) Update() {
	live := ps.items[:0]
	for _, p := range ps.items {
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Vel.X *= particleDrag
		p.Vel.Y *= particleDrag
		p.Life--
		if p.MaxLife > 0 {
			p.Alpha = float64(p.Life) / float64(p.MaxLife)
		}
		if p.Life <= 0 || p.Alpha <= 0 {
			continue
		}
		live = append(live, p)
	}
	ps.items = live
}

// Items returns the live particles. The slice is reused on the next Update.
func (ps *Particles) Items() []Particle {
	return ps.items
}

func (ps *Particles) Len() int {
	return len(ps.items)
}

func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
