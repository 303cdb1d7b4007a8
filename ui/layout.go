package ui

import (
	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around every area
	hudHeight     = 48
	buttonHeight  = 40
	padButton     = 52 // Side of one arrow pad button
	buttonGap     = 8
)

// control is an on-screen button.
type control int

const (
	ctrlStartStop control = iota
	ctrlPause
	ctrlRestart
	ctrlUp
	ctrlDown
	ctrlLeft
	ctrlRight
	numControls
)

// Layout places the board and the on-screen controls for one window size.
type Layout struct {
	CellSize int32
	Board    rl.Rectangle
	Controls [numControls]rl.Rectangle
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// computeLayout fits the grid between the HUD on top and the buttons and
// arrow pad below, centered horizontally.
func computeLayout(screenWidth, screenHeight int32, g types.Grid) Layout {
	below := borderPadding + buttonHeight + borderPadding + 2*padButton + buttonGap + borderPadding
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding - hudHeight - below

	cellW := availableWidth / int32(g.Width)
	cellH := availableHeight / int32(g.Height)
	cell := min(cellW, cellH)
	if cell < 1 {
		cell = 1
	}

	gridW := cell * int32(g.Width)
	gridH := cell * int32(g.Height)
	l := Layout{CellSize: cell}
	l.Board = rl.Rectangle{
		X:      float32((screenWidth - gridW) / 2),
		Y:      float32(borderPadding + hudHeight),
		Width:  float32(gridW),
		Height: float32(gridH),
	}

	// Start|Stop, Pause|Resume and Restart share the board width
	rowY := l.Board.Y + l.Board.Height + borderPadding
	btnW := (l.Board.Width - 2*buttonGap) / 3
	for i, c := range []control{ctrlStartStop, ctrlPause, ctrlRestart} {
		l.Controls[c] = rl.Rectangle{
			X:      l.Board.X + float32(i)*(btnW+buttonGap),
			Y:      rowY,
			Width:  btnW,
			Height: buttonHeight,
		}
	}

	// Arrow pad: Up above Left/Down/Right
	padTop := rowY + buttonHeight + borderPadding
	centerX := l.Board.X + l.Board.Width/2 - padButton/2
	step := float32(padButton + buttonGap)
	l.Controls[ctrlUp] = rl.Rectangle{X: centerX, Y: padTop, Width: padButton, Height: padButton}
	l.Controls[ctrlLeft] = rl.Rectangle{X: centerX - step, Y: padTop + step, Width: padButton, Height: padButton}
	l.Controls[ctrlDown] = rl.Rectangle{X: centerX, Y: padTop + step, Width: padButton, Height: padButton}
	l.Controls[ctrlRight] = rl.Rectangle{X: centerX + step, Y: padTop + step, Width: padButton, Height: padButton}
	return l
}

// cellRect returns the screen rectangle of a grid cell.
func (l Layout) cellRect(p types.Point) rl.Rectangle {
	size := float32(l.CellSize)
	return rl.Rectangle{
		X:      l.Board.X + float32(p.X)*size,
		Y:      l.Board.Y + float32(p.Y)*size,
		Width:  size,
		Height: size,
	}
}

func contains(r rl.Rectangle, x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// hit returns the control under a pointer position.
func (l Layout) hit(x, y float32) (control, bool) {
	for c, r := range l.Controls {
		if contains(r, x, y) {
			return control(c), true
		}
	}
	return 0, false
}

// label returns the caption of a control for the given status.
func label(c control, s game.Status) string {
	switch c {
	case ctrlStartStop:
		if s == game.Running || s == game.Paused {
			return "Stop"
		}
		return "Start"
	case ctrlPause:
		if s == game.Paused {
			return "Resume"
		}
		return "Pause"
	case ctrlRestart:
		return "Restart"
	case ctrlUp:
		return "^"
	case ctrlDown:
		return "v"
	case ctrlLeft:
		return "<"
	case ctrlRight:
		return ">"
	}
	return ""
}
