package types

import (
	"testing"
	"time"
)

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{UP: DOWN, DOWN: UP, LEFT: RIGHT, RIGHT: LEFT, NONE: NONE}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Expected %v.Opposite() = %v, got %v", d, want, got)
		}
	}
}

func TestToPointCancelsWithOpposite(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		a, b := d.ToPoint(), d.Opposite().ToPoint()
		if a.X+b.X != 0 || a.Y+b.Y != 0 {
			t.Errorf("Expected %v and its opposite to cancel, got %v + %v", d, a, b)
		}
		if abs(a.X)+abs(a.Y) != 1 {
			t.Errorf("Expected unit step for %v, got %v", d, a)
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"ArrowUp":    UP,
		"ArrowDown":  DOWN,
		"ArrowLeft":  LEFT,
		"ArrowRight": RIGHT,
		" d ":        RIGHT,
		"K":          UP,
	}
	for name, want := range cases {
		got, ok := ParseDirection(name)
		if !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; expected %v, true", name, got, ok, want)
		}
	}

	if d, ok := ParseDirection("Space"); ok || d != NONE {
		t.Errorf("Expected unknown key to be rejected, got %v, %v", d, ok)
	}
}

func TestValid(t *testing.T) {
	if NONE.Valid() || Direction(9).Valid() || Direction(-1).Valid() {
		t.Error("Expected NONE and out-of-range values to be invalid")
	}
	if !LEFT.Valid() {
		t.Error("Expected LEFT to be valid")
	}
}

func TestNextSpeed(t *testing.T) {
	if got := NextSpeed(InitialSpeed, 40); got != InitialSpeed {
		t.Errorf("Expected no change below 50 points, got %v", got)
	}
	if got := NextSpeed(InitialSpeed, 50); got != 140*time.Millisecond {
		t.Errorf("Expected 140ms at 50 points, got %v", got)
	}
	if got := NextSpeed(InitialSpeed, 0); got != InitialSpeed {
		t.Errorf("Expected zero score to leave speed alone, got %v", got)
	}
	if got := NextSpeed(MinSpeed, 500); got != MinSpeed {
		t.Errorf("Expected floor at %v, got %v", MinSpeed, got)
	}

	speed := InitialSpeed
	for score := FoodReward; score <= 2000; score += FoodReward {
		speed = NextSpeed(speed, score)
	}
	if speed != MinSpeed {
		t.Errorf("Expected ramp to settle at %v, got %v", MinSpeed, speed)
	}
}

func TestGridCenterAndContains(t *testing.T) {
	if c := DefaultGrid.Center(); c != (Point{10, 10}) {
		t.Errorf("Expected center {10 10}, got %v", c)
	}
	if DefaultGrid.Contains(Point{20, 0}) || DefaultGrid.Contains(Point{0, -1}) {
		t.Error("Expected out-of-range points to be rejected")
	}
	if !DefaultGrid.Contains(Point{19, 19}) {
		t.Error("Expected {19 19} to be on the grid")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
