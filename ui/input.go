package ui

import (
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the part of the game loop the window drives.
type Controls interface {
	ChangeDirection(d types.Direction) bool
	Start()
	TogglePause()
	Restart()
}

type keyBinding struct {
	key int32
	ctl control
}

// Escape is left to raylib, which closes the window on it.
var keyBindings = []keyBinding{
	{rl.KeyUp, ctrlUp},
	{rl.KeyW, ctrlUp},
	{rl.KeyK, ctrlUp},
	{rl.KeyDown, ctrlDown},
	{rl.KeyS, ctrlDown},
	{rl.KeyJ, ctrlDown},
	{rl.KeyLeft, ctrlLeft},
	{rl.KeyA, ctrlLeft},
	{rl.KeyH, ctrlLeft},
	{rl.KeyRight, ctrlRight},
	{rl.KeyD, ctrlRight},
	{rl.KeyL, ctrlRight},
	{rl.KeyEnter, ctrlStartStop},
	{rl.KeyP, ctrlPause},
	{rl.KeySpace, ctrlPause},
	{rl.KeyR, ctrlRestart},
}

// dispatch forwards one control press to c.
func dispatch(ctl control, c Controls) {
	switch ctl {
	case ctrlStartStop:
		c.Start()
	case ctrlPause:
		c.TogglePause()
	case ctrlRestart:
		c.Restart()
	case ctrlUp:
		c.ChangeDirection(types.UP)
	case ctrlDown:
		c.ChangeDirection(types.DOWN)
	case ctrlLeft:
		c.ChangeDirection(types.LEFT)
	case ctrlRight:
		c.ChangeDirection(types.RIGHT)
	}
}

// poll reads this frame's key presses and pointer taps. It returns false when
// the user asked to quit.
func poll(l Layout, c Controls) bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dispatch(b.ctl, c)
		}
	}
	// raylib reports touches as the left mouse button
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if ctl, ok := l.hit(pos.X, pos.Y); ok {
			dispatch(ctl, c)
		}
	}
	return true
}
