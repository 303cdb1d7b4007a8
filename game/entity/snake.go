package entity

import "snake-classic/game/types"

// Snake is an ordered body with the head at index 0.
// Methods never modify the receiver's backing array, so a Snake can be
// handed to a renderer while the loop keeps advancing.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) Snake {
	return Snake{Body: []types.Point{startPos}}
}

func (s Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies p.
func (s Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Move returns a snake with newHead prepended. When grow is false the tail is
// dropped so the length stays the same.
func (s Snake) Move(newHead types.Point, grow bool) Snake {
	n := len(s.Body)
	if !grow {
		n--
	}
	body := make([]types.Point, 0, n+1)
	body = append(body, newHead)
	body = append(body, s.Body[:n]...)
	return Snake{Body: body}
}

// Cells returns a copy of the body.
func (s Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
