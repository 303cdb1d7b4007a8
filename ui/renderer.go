package ui

import (
	"fmt"
	"sync"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	bannerSlide    = 500 * time.Millisecond
	bannerFade     = 1500 * time.Millisecond
	bannerDuration = 2 * time.Second
)

var (
	snakeColor     = rl.Color{R: 76, G: 175, B: 80, A: 255}
	headColor      = rl.Color{R: 46, G: 125, B: 50, A: 255}
	foodColor      = rl.Color{R: 233, G: 30, B: 99, A: 255}
	boardColor     = rl.Color{R: 30, G: 30, B: 30, A: 255}
	buttonColor    = rl.Color{R: 60, G: 60, B: 60, A: 255}
	panelColor     = rl.Color{R: 0, G: 0, B: 0, A: 200}
	bannerColor    = rl.Color{R: 229, G: 57, B: 53, A: 255}
	directionColor = rl.Yellow
)

// Renderer keeps the latest snapshot for the window's frame loop. raylib draws
// only from the main thread, so Render just stores and Draw paints.
type Renderer struct {
	mu  sync.Mutex
	now func() time.Time

	snap     game.Snapshot
	hasSnap  bool
	lossAt   time.Time
	lastStat game.Status
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func (r *Renderer) Render(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Status == game.GameOver && r.lastStat != game.GameOver {
		r.lossAt = r.now()
	}
	r.lastStat = s.Status
	r.snap = s
	r.hasSnap = true
}

func (r *Renderer) current() (game.Snapshot, time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sinceLoss := time.Duration(-1)
	if !r.lossAt.IsZero() {
		sinceLoss = r.now().Sub(r.lossAt)
	}
	return r.snap, sinceLoss, r.hasSnap
}

// grid returns the grid of the last snapshot, or the default one before any.
func (r *Renderer) grid() types.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasSnap {
		return types.DefaultGrid
	}
	return r.snap.Grid
}

// bannerFrame returns how far the loss banner has slid in (0..1) and its
// opacity for the time since game over. visible is false outside the window.
func bannerFrame(since time.Duration) (slide, alpha float32, visible bool) {
	if since < 0 || since >= bannerDuration {
		return 0, 0, false
	}
	slide, alpha = 1, 1
	if since < bannerSlide {
		slide = float32(since) / float32(bannerSlide)
	}
	if since >= bannerFade {
		alpha = 1 - float32(since-bannerFade)/float32(bannerDuration-bannerFade)
	}
	return slide, alpha, true
}

// Draw paints one frame, including BeginDrawing and EndDrawing.
func (r *Renderer) Draw(l Layout) {
	s, sinceLoss, ok := r.current()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	if !ok {
		rl.EndDrawing()
		return
	}

	fontSize := int32(20)

	r.drawHUD(s, l, fontSize)

	// Board background
	rl.DrawRectangle(int32(l.Board.X)-1, int32(l.Board.Y)-1, int32(l.Board.Width)+2, int32(l.Board.Height)+2, rl.DarkGray)
	rl.DrawRectangleRec(l.Board, boardColor)

	for i := len(s.Snake) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangleRec(l.cellRect(s.Snake[i]), color)
	}
	if len(s.Snake) > 0 {
		r.drawDirection(l.cellRect(s.Snake[0]), s.Direction)
	}

	food := l.cellRect(s.Food)
	half := food.Width / 2
	rl.DrawCircle(int32(food.X+half), int32(food.Y+half), half*0.8, foodColor)

	r.drawControls(s, l, fontSize)

	if s.Status == game.GameOver {
		r.drawGameOver(s, l, fontSize)
	}
	r.drawBanner(l, sinceLoss, fontSize)

	rl.EndDrawing()
}

func (r *Renderer) drawHUD(s game.Snapshot, l Layout, fontSize int32) {
	x := int32(l.Board.X)
	y := int32(borderPadding)
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), x, y, fontSize, rl.White)

	high := fmt.Sprintf("High Score: %d", s.HighScore)
	rl.DrawText(high, x+int32(l.Board.Width)-rl.MeasureText(high, fontSize), y, fontSize, rl.White)

	status := fmt.Sprintf("%s - %dms", s.Status, s.Speed.Milliseconds())
	rl.DrawText(status, x, y+fontSize+2, fontSize-6, rl.LightGray)
}

// drawDirection marks the heading on the head cell
func (r *Renderer) drawDirection(head rl.Rectangle, d types.Direction) {
	x, y, size := head.X, head.Y, head.Width
	halfCell := size / 2
	switch d {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: x + size, Y: y + halfCell},
			rl.Vector2{X: x + halfCell, Y: y},
			rl.Vector2{X: x + halfCell, Y: y + size},
			directionColor)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + halfCell},
			rl.Vector2{X: x + halfCell, Y: y + size},
			rl.Vector2{X: x + halfCell, Y: y},
			directionColor)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: x + halfCell, Y: y + size},
			rl.Vector2{X: x + size, Y: y + halfCell},
			rl.Vector2{X: x, Y: y + halfCell},
			directionColor)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: x + halfCell, Y: y},
			rl.Vector2{X: x, Y: y + halfCell},
			rl.Vector2{X: x + size, Y: y + halfCell},
			directionColor)
	}
}

func (r *Renderer) drawControls(s game.Snapshot, l Layout, fontSize int32) {
	for c, rect := range l.Controls {
		rl.DrawRectangleRounded(rect, 0.3, 6, buttonColor)
		text := label(control(c), s.Status)
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			int32(rect.X+rect.Width/2)-w/2,
			int32(rect.Y+rect.Height/2)-fontSize/2,
			fontSize, rl.White)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot, l Layout, fontSize int32) {
	panel := rl.Rectangle{
		X:      l.Board.X + l.Board.Width/6,
		Y:      l.Board.Y + l.Board.Height/3,
		Width:  l.Board.Width * 2 / 3,
		Height: l.Board.Height / 3,
	}
	rl.DrawRectangleRounded(panel, 0.2, 8, panelColor)

	lines := []string{"Game Over", fmt.Sprintf("Final score: %d", s.Score)}
	y := int32(panel.Y+panel.Height/2) - fontSize
	for _, line := range lines {
		w := rl.MeasureText(line, fontSize)
		rl.DrawText(line, int32(panel.X+panel.Width/2)-w/2, y, fontSize, rl.White)
		y += fontSize + 4
	}
}

// drawBanner slides the loss notification down from above the board
func (r *Renderer) drawBanner(l Layout, sinceLoss time.Duration, fontSize int32) {
	slide, alpha, visible := bannerFrame(sinceLoss)
	if !visible {
		return
	}
	text := "You lost!"
	w := rl.MeasureText(text, fontSize) + 24
	h := fontSize + 12
	x := int32(l.Board.X+l.Board.Width/2) - w/2
	y := int32(l.Board.Y) - h + int32(float32(h+borderPadding)*slide)

	rl.DrawRectangle(x, y, w, h, rl.Fade(bannerColor, alpha))
	rl.DrawText(text, x+12, y+6, fontSize, rl.Fade(rl.White, alpha))
}
