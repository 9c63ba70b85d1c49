package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"snake-arcade/game/types"
	"snake-arcade/stats"

	"golang.org/x/exp/rand"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	body := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	cases := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"free cell", types.Point{X: 6, Y: 5}, NoCollision},
		{"left wall", types.Point{X: -1, Y: 5}, WallCollision},
		{"right wall", types.Point{X: 10, Y: 5}, WallCollision},
		{"top wall", types.Point{X: 5, Y: -1}, WallCollision},
		{"bottom wall", types.Point{X: 5, Y: 10}, WallCollision},
		{"body", types.Point{X: 4, Y: 5}, SelfCollision},
		{"tail still counts", types.Point{X: 3, Y: 5}, SelfCollision},
	}
	for _, c := range cases {
		if got := cm.CheckCollision(c.pos, body); got != c.want {
			t.Errorf("%s: CheckCollision(%v) = %s, want %s", c.name, c.pos, got, c.want)
		}
		if cm.IsDanger(c.pos, body) != (c.want != NoCollision) {
			t.Errorf("%s: IsDanger disagrees with CheckCollision", c.name)
		}
	}
}

func TestSpawnNeverLandsOnSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 6}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(42)))

	var body []types.Point
	for x := 0; x < 6; x++ {
		for y := 0; y < 5; y++ {
			body = append(body, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 200; i++ {
		food, ok := fm.Spawn(body)
		if !ok {
			t.Fatalf("spawn failed with free cells left")
		}
		if food.Y != 5 || !grid.Contains(food) {
			t.Fatalf("food %v placed on snake or off grid", food)
		}
	}
}

func TestSpawnFallsBackToLastFreeCell(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 8}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(7)))

	last := types.Point{X: 3, Y: 6}
	var body []types.Point
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := (types.Point{X: x, Y: y}); p != last {
				body = append(body, p)
			}
		}
	}

	food, ok := fm.Spawn(body)
	if !ok || food != last {
		t.Fatalf("Spawn = %v, %v; want %v, true", food, ok, last)
	}
}

func TestSpawnReportsFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	fm := NewFoodManager(grid, NewCollisionManager(grid), nil)
	body := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if _, ok := fm.Spawn(body); ok {
		t.Fatalf("Spawn on a full grid must fail")
	}
}

type memRecorder struct {
	saved []stats.GameRecord
	err   error
}

func (m *memRecorder) SaveRound(_ context.Context, rec stats.GameRecord) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rec)
	return nil
}

func (m *memRecorder) Rounds(_ context.Context, limit int) ([]stats.GameRecord, error) {
	if len(m.saved) > limit {
		return m.saved[len(m.saved)-limit:], m.err
	}
	return m.saved, m.err
}

func (m *memRecorder) HighScore(_ context.Context) (int, error) {
	best := 0
	for _, rec := range m.saved {
		best = max(best, rec.Score)
	}
	return best, m.err
}

func TestStateManagerRoundLifecycle(t *testing.T) {
	rec := &memRecorder{}
	sm := NewStateManager(nil, rec)
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }

	id := sm.BeginRound()
	if id == "" || sm.RoundID() != id {
		t.Fatalf("round id not set: %q", id)
	}
	sm.UpdateScore(20)
	clock = clock.Add(30 * time.Second)
	got := sm.EndRound(40, 5, "wall")

	if got.ID != id || got.Score != 40 || got.Length != 5 || got.Outcome != "wall" {
		t.Fatalf("unexpected record %+v", got)
	}
	if got.Duration() != 30*time.Second {
		t.Fatalf("duration = %v", got.Duration())
	}
	if sm.GetHighScore() != 40 {
		t.Fatalf("high score = %d, want 40", sm.GetHighScore())
	}
	if len(rec.saved) != 1 || sm.Stats().GetGamesPlayed() != 1 {
		t.Fatalf("round not recorded: saved=%d stats=%d", len(rec.saved), sm.Stats().GetGamesPlayed())
	}

	if next := sm.BeginRound(); next == id {
		t.Fatalf("round ids must differ")
	}
}

func TestStateManagerSurvivesRecorderError(t *testing.T) {
	sm := NewStateManager(nil, &memRecorder{err: errors.New("disk full")})
	sm.BeginRound()
	sm.EndRound(10, 2, "self")
	if sm.Stats().GetGamesPlayed() != 1 {
		t.Fatalf("in-memory stats should still record the round")
	}
}

func TestLoadHistorySeedsHighScore(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rec := &memRecorder{saved: []stats.GameRecord{
		{ID: "a", Score: 70, StartTime: base},
		{ID: "b", Score: 20, StartTime: base.Add(time.Minute)},
	}}
	sm := NewStateManager(nil, rec)
	if err := sm.LoadHistory(context.Background()); err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if sm.GetHighScore() != 70 || sm.Stats().GetGamesPlayed() != 2 {
		t.Fatalf("high=%d games=%d", sm.GetHighScore(), sm.Stats().GetGamesPlayed())
	}
}

func TestLoadHistoryKeepsBestOutsideWindow(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rec := &memRecorder{saved: []stats.GameRecord{{ID: "old", Score: 990, StartTime: base}}}
	for i := 1; i <= stats.MaxRecords; i++ {
		rec.saved = append(rec.saved, stats.GameRecord{Score: 10, StartTime: base.Add(time.Duration(i) * time.Minute)})
	}

	sm := NewStateManager(nil, rec)
	if err := sm.LoadHistory(context.Background()); err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if sm.GetHighScore() != 990 {
		t.Fatalf("high score = %d, want 990 from the full history", sm.GetHighScore())
	}
	if sm.Stats().GetGamesPlayed() != stats.MaxRecords {
		t.Fatalf("games = %d, want %d", sm.Stats().GetGamesPlayed(), stats.MaxRecords)
	}
}
