package types

import (
	"strings"
	"time"
)

// Point is a single cell on the grid.
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Center returns the cell the snake spawns on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Game constants
const (
	GridSize         = 20
	FoodReward       = 10
	SpeedUpEvery     = 50 // Score multiple that triggers a speed-up
	InitialSpeed     = 150 * time.Millisecond
	SpeedStep        = 10 * time.Millisecond
	MinSpeed         = 50 * time.Millisecond
	AutoRestartDelay = 3 * time.Second
)

// DefaultGrid is the square board used by the game.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}

// NextSpeed returns the tick interval after the score reached score.
// The interval only drops on positive multiples of SpeedUpEvery and never goes below MinSpeed.
func NextSpeed(current time.Duration, score int) time.Duration {
	if score > 0 && score%SpeedUpEvery == 0 && current > MinSpeed {
		next := current - SpeedStep
		if next < MinSpeed {
			next = MinSpeed
		}
		return next
	}
	return current
}

// Direction rappresenta una direzione cardinale
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= UP && d <= LEFT
}

// ToPoint converte una Direction in un vettore di spostamento
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	default:
		return "NONE"
	}
}

// ParseDirection maps a key or button name to a Direction.
// Unknown names return NONE and false.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arrowup", "up", "w", "k":
		return UP, true
	case "arrowdown", "down", "s", "j":
		return DOWN, true
	case "arrowleft", "left", "a", "h":
		return LEFT, true
	case "arrowright", "right", "d", "l":
		return RIGHT, true
	}
	return NONE, false
}
