package game

import (
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// FoodSource places food on a cell the snake does not occupy.
type FoodSource interface {
	GenerateFood(snake entity.Snake) (types.Point, error)
}

// State is everything one round of the game needs. Step never mutates its
// argument, so a State can be kept around as a snapshot.
type State struct {
	Grid      types.Grid
	Snake     entity.Snake
	Food      types.Point
	Score     int
	Speed     time.Duration
	Direction types.Direction // applied on the last step
	Pending   types.Direction // applied on the next step
	Over      bool
}

// Outcome describes what a single step did.
type Outcome struct {
	Head         types.Point
	Ate          bool
	Collided     bool
	BoardFull    bool
	SpeedChanged bool
}

// NewState returns a fresh round: one segment in the middle of the grid,
// heading right at the initial speed.
func NewState(grid types.Grid, food FoodSource) (State, error) {
	s := State{
		Grid:      grid,
		Snake:     entity.NewSnake(grid.Center()),
		Speed:     types.InitialSpeed,
		Direction: types.RIGHT,
		Pending:   types.RIGHT,
	}
	f, err := food.GenerateFood(s.Snake)
	if err != nil {
		return State{}, err
	}
	s.Food = f
	return s, nil
}

// WithDirection buffers a direction request. Only the last accepted request
// before a step is applied. A request reversing the active direction, or an
// invalid one, leaves the state unchanged and reports false.
func (s State) WithDirection(d types.Direction) (State, bool) {
	if s.Over || !d.Valid() || d == s.Direction.Opposite() {
		return s, false
	}
	s.Pending = d
	return s, true
}

// Step advances the game by exactly one tick.
func Step(s State, food FoodSource) (State, Outcome) {
	if s.Over {
		return s, Outcome{Head: s.Snake.GetHead()}
	}

	cm := manager.NewCollisionManager(s.Grid)
	s.Direction = s.Pending
	newHead := cm.NextHead(s.Snake, s.Direction)
	out := Outcome{Head: newHead}

	if cm.IsSelfCollision(newHead, s.Snake) {
		s.Over = true
		out.Collided = true
		return s, out
	}

	ate := cm.IsFoodCollision(newHead, s.Food)
	s.Snake = s.Snake.Move(newHead, ate)
	if !ate {
		return s, out
	}

	out.Ate = true
	s.Score += types.FoodReward

	f, err := food.GenerateFood(s.Snake)
	if err != nil {
		s.Over = true
		out.BoardFull = true
		return s, out
	}
	s.Food = f

	if next := types.NextSpeed(s.Speed, s.Score); next != s.Speed {
		s.Speed = next
		out.SpeedChanged = true
	}
	return s, out
}
