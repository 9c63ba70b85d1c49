package manager

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds the random tries before Spawn falls back to
// scanning the free cells.
const MaxSpawnAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn picks a cell uniformly among those not covered by occupied.
// It returns false when the snake fills the whole grid.
func (fm *FoodManager) Spawn(occupied []types.Point) (types.Point, bool) {
	if len(occupied) >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < MaxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, true
		}
	}

	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(occupied []types.Point) []types.Point {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
