package game

import (
	"testing"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// scriptedFood hands out food positions in order, then the first free cell
// scanning from the top-left corner.
type scriptedFood struct {
	grid  types.Grid
	queue []types.Point
}

func (f *scriptedFood) GenerateFood(snake entity.Snake) (types.Point, error) {
	for len(f.queue) > 0 {
		p := f.queue[0]
		f.queue = f.queue[1:]
		if !snake.Contains(p) {
			return p, nil
		}
	}
	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !snake.Contains(p) {
				return p, nil
			}
		}
	}
	return types.Point{}, manager.ErrNoFreeCell
}

func newState(body []types.Point, dir types.Direction, food types.Point) State {
	return State{
		Grid:      types.DefaultGrid,
		Snake:     entity.Snake{Body: body},
		Food:      food,
		Speed:     types.InitialSpeed,
		Direction: dir,
		Pending:   dir,
	}
}

func TestNewState(t *testing.T) {
	s, err := NewState(types.DefaultGrid, manager.NewFoodManager(types.DefaultGrid, 1))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if s.Snake.Len() != 1 || s.Snake.GetHead() != (types.Point{X: 10, Y: 10}) {
		t.Errorf("Expected single segment at center, got %v", s.Snake.Body)
	}
	if s.Direction != types.RIGHT || s.Pending != types.RIGHT {
		t.Errorf("Expected RIGHT/RIGHT, got %v/%v", s.Direction, s.Pending)
	}
	if s.Score != 0 || s.Speed != types.InitialSpeed || s.Over {
		t.Errorf("Unexpected initial state: %+v", s)
	}
	if s.Snake.Contains(s.Food) {
		t.Error("Expected food off the snake")
	}
}

func TestStepEatsFoodAfterFiveMoves(t *testing.T) {
	food := &scriptedFood{grid: types.DefaultGrid}
	s := newState([]types.Point{{X: 10, Y: 10}}, types.RIGHT, types.Point{X: 15, Y: 10})

	var out Outcome
	for i := 0; i < 5; i++ {
		s, out = Step(s, food)
	}

	if s.Snake.GetHead() != (types.Point{X: 15, Y: 10}) {
		t.Errorf("Expected head {15 10}, got %v", s.Snake.GetHead())
	}
	if !out.Ate {
		t.Error("Expected the fifth step to eat")
	}
	if s.Score != 10 {
		t.Errorf("Expected score 10, got %d", s.Score)
	}
	if s.Snake.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Snake.Len())
	}
	if s.Snake.Contains(s.Food) {
		t.Errorf("New food %v spawned on snake", s.Food)
	}
}

func TestReverseRequestRejected(t *testing.T) {
	s := newState([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.RIGHT, types.Point{X: 0, Y: 0})

	s, ok := s.WithDirection(types.LEFT)
	if ok {
		t.Error("Expected LEFT to be rejected while moving RIGHT")
	}
	if s.Pending != types.RIGHT {
		t.Errorf("Expected pending RIGHT, got %v", s.Pending)
	}

	s, out := Step(s, &scriptedFood{grid: s.Grid})
	if out.Collided || s.Direction != types.RIGHT {
		t.Errorf("Expected to keep moving RIGHT, got %v (collided=%v)", s.Direction, out.Collided)
	}
	if s.Snake.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head {6 5}, got %v", s.Snake.GetHead())
	}
}

func TestReverseCheckedAgainstActiveDirection(t *testing.T) {
	s := newState([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.RIGHT, types.Point{X: 0, Y: 0})

	// UP then LEFT within one tick: LEFT is only opposite of the active RIGHT
	s, _ = s.WithDirection(types.UP)
	s, ok := s.WithDirection(types.LEFT)
	if ok || s.Pending != types.UP {
		t.Errorf("Expected LEFT rejected and UP pending, got ok=%v pending=%v", ok, s.Pending)
	}

	s, ok = s.WithDirection(types.DOWN)
	if !ok || s.Pending != types.DOWN {
		t.Errorf("Expected last request DOWN to win, got ok=%v pending=%v", ok, s.Pending)
	}

	if _, ok := s.WithDirection(types.NONE); ok {
		t.Error("Expected invalid direction to be ignored")
	}
}

func TestStepWrapsAtEdge(t *testing.T) {
	s := newState([]types.Point{{X: 19, Y: 10}}, types.RIGHT, types.Point{X: 5, Y: 5})

	s, out := Step(s, &scriptedFood{grid: s.Grid})
	if out.Collided || s.Over {
		t.Fatal("Expected no collision when wrapping")
	}
	if s.Snake.GetHead() != (types.Point{X: 0, Y: 10}) {
		t.Errorf("Expected head {0 10}, got %v", s.Snake.GetHead())
	}
}

func TestStepWrapIntoBodyCollides(t *testing.T) {
	s := newState([]types.Point{{X: 19, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 11}, {X: 1, Y: 11}}, types.RIGHT, types.Point{X: 5, Y: 5})
	s.Direction = types.UP
	s.Pending = types.RIGHT

	_, out := Step(s, &scriptedFood{grid: s.Grid})
	if !out.Collided {
		t.Error("Expected wrapped head on {0 10} to collide")
	}
}

func TestSelfCollisionLeavesStateUntouched(t *testing.T) {
	body := []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	s := newState(body, types.UP, types.Point{X: 0, Y: 0})
	s.Score = 40
	s, _ = s.WithDirection(types.LEFT)

	next, out := Step(s, &scriptedFood{grid: s.Grid})
	if !out.Collided || !next.Over {
		t.Fatal("Expected collision with {4 5}")
	}
	if next.Score != 40 {
		t.Errorf("Expected score unchanged, got %d", next.Score)
	}
	if next.Snake.Len() != len(body) {
		t.Fatalf("Expected length %d, got %d", len(body), next.Snake.Len())
	}
	for i, p := range body {
		if next.Snake.Body[i] != p {
			t.Errorf("Segment %d moved: %v -> %v", i, p, next.Snake.Body[i])
		}
	}

	again, _ := Step(next, &scriptedFood{grid: s.Grid})
	if again.Snake.GetHead() != next.Snake.GetHead() {
		t.Error("Expected steps after game over to be no-ops")
	}
}

func TestTailCellCountsAsCollision(t *testing.T) {
	// Square loop: the head would move onto the tail cell that has not moved yet
	body := []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	s := newState(body, types.LEFT, types.Point{X: 0, Y: 0})
	s, _ = s.WithDirection(types.DOWN)

	_, out := Step(s, &scriptedFood{grid: s.Grid})
	if !out.Collided {
		t.Error("Expected collision with the tail cell")
	}
}

func TestLengthInvariantAndBounds(t *testing.T) {
	fm := manager.NewFoodManager(types.DefaultGrid, 99)
	s, err := NewState(types.DefaultGrid, fm)
	if err != nil {
		t.Fatal(err)
	}

	turns := []types.Direction{types.UP, types.LEFT, types.DOWN, types.RIGHT}
	for i := 0; i < 500 && !s.Over; i++ {
		if i%7 == 0 {
			s, _ = s.WithDirection(turns[(i/7)%len(turns)])
		}
		before := s.Snake.Len()
		var out Outcome
		s, out = Step(s, fm)
		if out.Collided {
			break
		}
		if out.Ate && s.Snake.Len() != before+1 {
			t.Fatalf("Step %d: expected growth by 1 on food, got %d -> %d", i, before, s.Snake.Len())
		}
		if !out.Ate && s.Snake.Len() != before {
			t.Fatalf("Step %d: expected constant length, got %d -> %d", i, before, s.Snake.Len())
		}
		if !s.Grid.Contains(s.Snake.GetHead()) {
			t.Fatalf("Step %d: head %v off the grid", i, s.Snake.GetHead())
		}
		if s.Snake.Contains(s.Food) {
			t.Fatalf("Step %d: food %v on the snake", i, s.Food)
		}
	}
}

func TestSpeedRamp(t *testing.T) {
	// Food laid out straight ahead so every step eats
	var queue []types.Point
	for x := 1; x < 20; x++ {
		queue = append(queue, types.Point{X: x, Y: 0})
	}
	food := &scriptedFood{grid: types.DefaultGrid, queue: queue}
	s := newState([]types.Point{{X: 0, Y: 0}}, types.RIGHT, types.Point{X: 1, Y: 0})
	_, _ = food.GenerateFood(s.Snake) // drop {1 0}, already placed

	expected := map[int]time.Duration{
		10:  150 * time.Millisecond,
		40:  150 * time.Millisecond,
		50:  140 * time.Millisecond,
		60:  140 * time.Millisecond,
		100: 130 * time.Millisecond,
	}
	for i := 0; i < 10; i++ {
		var out Outcome
		s, out = Step(s, food)
		if !out.Ate {
			t.Fatalf("Step %d: expected to eat at %v", i, s.Snake.GetHead())
		}
		if out.SpeedChanged != (s.Score%50 == 0) {
			t.Errorf("Score %d: unexpected SpeedChanged=%v", s.Score, out.SpeedChanged)
		}
		if want, ok := expected[s.Score]; ok && s.Speed != want {
			t.Errorf("Score %d: expected speed %v, got %v", s.Score, want, s.Speed)
		}
	}
}

func TestSpeedFloor(t *testing.T) {
	s := newState([]types.Point{{X: 0, Y: 0}}, types.RIGHT, types.Point{X: 1, Y: 0})
	s.Score = 490
	s.Speed = types.MinSpeed

	s, out := Step(s, &scriptedFood{grid: s.Grid})
	if s.Score != 500 || s.Speed != types.MinSpeed || out.SpeedChanged {
		t.Errorf("Expected speed to stay at floor, got score %d speed %v changed %v", s.Score, s.Speed, out.SpeedChanged)
	}
}

func TestBoardFullEndsRound(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	s := State{
		Grid:      grid,
		Snake:     entity.NewSnake(types.Point{X: 0, Y: 0}),
		Food:      types.Point{X: 1, Y: 0},
		Speed:     types.InitialSpeed,
		Direction: types.RIGHT,
		Pending:   types.RIGHT,
	}

	s, out := Step(s, &scriptedFood{grid: grid})
	if !out.Ate || !out.BoardFull || !s.Over {
		t.Errorf("Expected eating the last free cell to end the round, got %+v", out)
	}
	if s.Score != types.FoodReward {
		t.Errorf("Expected the final food to score, got %d", s.Score)
	}
}
