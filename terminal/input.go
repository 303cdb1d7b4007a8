package terminal

import (
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

// Controls is the part of the game loop the keyboard drives.
type Controls interface {
	ChangeDirection(d types.Direction) bool
	Start()
	TogglePause()
	Restart()
}

type action int

const (
	actionNone action = iota
	actionMove
	actionStart
	actionPause
	actionRestart
	actionQuit
)

// actionFor maps a key press to an action. Direction is only set for actionMove.
func actionFor(key tcell.Key, r rune) (action, types.Direction) {
	switch key {
	case tcell.KeyUp:
		return actionMove, types.UP
	case tcell.KeyDown:
		return actionMove, types.DOWN
	case tcell.KeyLeft:
		return actionMove, types.LEFT
	case tcell.KeyRight:
		return actionMove, types.RIGHT
	case tcell.KeyEnter:
		return actionStart, types.NONE
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, types.NONE
	case tcell.KeyRune:
		switch r {
		case 'p', 'P', ' ':
			return actionPause, types.NONE
		case 'r', 'R':
			return actionRestart, types.NONE
		case 'q', 'Q':
			return actionQuit, types.NONE
		}
		if d, ok := types.ParseDirection(string(r)); ok {
			return actionMove, d
		}
	}
	return actionNone, types.NONE
}

// HandleEvent applies one terminal event to c. It returns false when the
// user asked to quit.
func HandleEvent(ev tcell.Event, c Controls) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	return apply(key.Key(), key.Rune(), c)
}

func apply(key tcell.Key, r rune, c Controls) bool {
	act, dir := actionFor(key, r)
	switch act {
	case actionMove:
		c.ChangeDirection(dir)
	case actionStart:
		c.Start()
	case actionPause:
		c.TogglePause()
	case actionRestart:
		c.Restart()
	case actionQuit:
		return false
	}
	return true
}
