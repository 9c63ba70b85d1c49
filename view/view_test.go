package view

import (
	"math"
	"testing"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

func stateWith(body []types.Point) game.State {
	return game.State{Snake: entity.Snake{Body: body, Direction: types.Right}}
}

func TestInterpolationFactor(t *testing.T) {
	cases := []struct {
		dt, iv time.Duration
		want   float64
	}{
		{50 * time.Millisecond, 200 * time.Millisecond, 0.25},
		{400 * time.Millisecond, 200 * time.Millisecond, 1},
		{0, 200 * time.Millisecond, 0},
		{10 * time.Millisecond, 0, 1},
	}
	for _, c := range cases {
		if got := InterpolationFactor(c.dt, c.iv); got != c.want {
			t.Errorf("InterpolationFactor(%v, %v) = %v, want %v", c.dt, c.iv, got, c.want)
		}
	}
}

func TestSegmentsApproachAndSnapToTarget(t *testing.T) {
	m := NewModel(rand.New(rand.NewSource(1)))
	m.Reset([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}})
	m.OnOutcome(game.Outcome{Kind: game.OutcomeMoved}, stateWith([]types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}))

	m.Update(50*time.Millisecond, 200*time.Millisecond)
	head := m.Segments()[0]
	if math.Abs(head.X-5.25) > 1e-9 || head.Y != 5 {
		t.Fatalf("head after quarter step = %+v, want x=5.25", head)
	}

	for i := 0; i < 200; i++ {
		m.Update(16*time.Millisecond, 200*time.Millisecond)
	}
	segs := m.Segments()
	if segs[0] != (Segment{X: 6, Y: 5}) || segs[1] != (Segment{X: 5, Y: 5}) {
		t.Fatalf("segments did not snap onto targets: %+v", segs)
	}
}

func TestSyncGrowsFromTail(t *testing.T) {
	m := NewModel(nil)
	m.Reset([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}})
	grown := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	m.OnOutcome(game.Outcome{Kind: game.OutcomeAte, Eaten: types.Point{X: 6, Y: 5}}, stateWith(grown))

	segs := m.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3", len(segs))
	}
	if segs[2] != (Segment{X: 4, Y: 5}) {
		t.Fatalf("new tail segment = %+v, want on (4,5)", segs[2])
	}
	if m.particles.Len() != foodBurstCount {
		t.Fatalf("particles = %d, want %d", m.particles.Len(), foodBurstCount)
	}
}

func TestSyncShrinksOnShorterBody(t *testing.T) {
	m := NewModel(nil)
	m.Reset([]types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}})
	m.Sync([]types.Point{{X: 4, Y: 3}})
	if len(m.Segments()) != 1 {
		t.Fatalf("segments = %d, want 1", len(m.Segments()))
	}
}

func TestCollisionSpawnsBurstAndFlash(t *testing.T) {
	m := NewModel(nil)
	body := []types.Point{{X: 0, Y: 3}, {X: 1, Y: 3}}
	m.Reset(body)
	m.OnOutcome(game.Outcome{Kind: game.OutcomeCollided}, stateWith(body))

	if m.Flash() != 1 {
		t.Fatalf("flash = %v, want 1", m.Flash())
	}
	if len(m.Particles()) != crashBurstCount {
		t.Fatalf("particles = %d, want %d", len(m.Particles()), crashBurstCount)
	}
	if segs := m.Segments(); segs[0] != (Segment{X: 0, Y: 3}) {
		t.Fatalf("collision moved the head: %+v", segs[0])
	}

	for i := 0; i < crashParticleLife; i++ {
		m.Update(16*time.Millisecond, 200*time.Millisecond)
	}
	if len(m.Particles()) != 0 {
		t.Fatalf("%d particles outlived their lifetime", len(m.Particles()))
	}
	if m.Flash() >= 0.1 {
		t.Fatalf("flash did not decay: %v", m.Flash())
	}

	m.OnOutcome(game.Outcome{Kind: game.OutcomeReset}, stateWith([]types.Point{{X: 10, Y: 10}}))
	if m.Flash() != 0 || len(m.Segments()) != 1 {
		t.Fatalf("reset left flash=%v segments=%d", m.Flash(), len(m.Segments()))
	}
}

func TestParticlesFadeAndPrune(t *testing.T) {
	ps := NewParticles(rand.New(rand.NewSource(5)))
	ps.Burst(2, 2, 4, 3, FoodParticle)
	if ps.Len() != 4 {
		t.Fatalf("burst = %d, want 4", ps.Len())
	}
	for _, p := range ps.Items() {
		if p.Pos != (Vec2{X: 2.5, Y: 2.5}) || p.Alpha != 1 {
			t.Fatalf("particle did not start at cell centre: %+v", p)
		}
	}

	ps.Update()
	prev := ps.Items()[0].Alpha
	if prev >= 1 {
		t.Fatalf("alpha did not fade: %v", prev)
	}
	ps.Update()
	if a := ps.Items()[0].Alpha; a >= prev {
		t.Fatalf("alpha increased: %v -> %v", prev, a)
	}
	ps.Update()
	if ps.Len() != 0 {
		t.Fatalf("expired particles kept: %d", ps.Len())
	}
}
