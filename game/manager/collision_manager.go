package manager

import (
	"snake-arcade/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a move of the head into pos. body is the snake
// before the move, tail included: the tail cell only frees up after the tick.
func (cm *CollisionManager) CheckCollision(pos types.Point, body []types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if isBodyCollision(pos, body) {
		return SelfCollision
	}
	return NoCollision
}

// IsDanger reports whether moving into pos would end the round.
func (cm *CollisionManager) IsDanger(pos types.Point, body []types.Point) bool {
	return cm.CheckCollision(pos, body) != NoCollision
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point) bool {
	return !cm.isWallCollision(pos) && !isBodyCollision(pos, body)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func isBodyCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}
