package manager

import (
	"errors"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when the snake covers the whole board.
var ErrNoFreeCell = errors.New("no free cell left for food")

// maxSpawnAttempts bounds the rejection sampling before falling back to an
// explicit scan of the free cells.
const maxSpawnAttempts = 64

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewFoodManager creates a food spawner drawing from the given seed.
func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateFood picks a uniformly random cell not occupied by the snake.
func (fm *FoodManager) GenerateFood(snake entity.Snake) (types.Point, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Contains(food) {
			return food, nil
		}
	}

	// Crowded board: sample among the cells that are actually free
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}
