package manager

import (
	"snake3d/game/entity"
	"snake3d/game/types"
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
		return "hit the wall"
	case SelfCollision:
		return "ran into itself"
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

// CheckCollision tests a prospective head cell. The whole body counts,
// tail included: the tail has not moved yet when the head arrives.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return SelfCollision
	}
	return NoCollision
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Valid(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point, hasFood bool) bool {
	return hasFood && pos == food
}

// ValidateSpawnPosition checks if food may be placed at pos.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return !cm.isWallCollision(pos) && !cm.isSelfCollision(pos, snake)
}
