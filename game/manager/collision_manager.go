package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Wrap folds a position that stepped off one edge back onto the opposite edge.
// Walls never kill on the toroidal board.
func (cm *CollisionManager) Wrap(pos types.Point) types.Point {
	if pos.X < 0 {
		pos.X = cm.grid.Width - 1
	}
	if pos.X >= cm.grid.Width {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = cm.grid.Height - 1
	}
	if pos.Y >= cm.grid.Height {
		pos.Y = 0
	}
	return pos
}

// NextHead returns the wrapped cell the head moves to along dir.
func (cm *CollisionManager) NextHead(snake entity.Snake, dir types.Direction) types.Point {
	head := snake.GetHead()
	delta := dir.ToPoint()
	return cm.Wrap(types.Point{X: head.X + delta.X, Y: head.Y + delta.Y})
}

// IsSelfCollision checks the candidate head against every current segment,
// tail included: the tail has not moved yet when the check runs.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snake entity.Snake) bool {
	return snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
