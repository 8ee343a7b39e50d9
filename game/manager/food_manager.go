package manager

import (
	"snake3d/game/entity"
	"snake3d/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws cells uniformly until one is free of the snake.
// It reports false when the snake covers the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake != nil && len(snake.Occupied(false)) >= fm.grid.Cells() {
		return types.Point{}, false
	}
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Size),
			Y: fm.rng.Intn(fm.grid.Size),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
}
