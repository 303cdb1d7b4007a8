package terminal

import (
	"fmt"
	"sync"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2 // columns per grid cell, keeps cells roughly square
	boardX    = 0
	boardY    = 2

	lossBannerDuration = 2 * time.Second
	lossBannerFade     = 1500 * time.Millisecond
)

var (
	styleDefault   = tcell.StyleDefault
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x2E, 0x7D, 0x32))
	styleBody      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x4C, 0xAF, 0x50))
	styleFood      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xE9, 0x1E, 0x63))
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGameOver  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
	styleBanner    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleBannerDim = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorMaroon)
)

// Renderer draws snapshots onto a tcell screen. Render may be called from the
// game loop's timers while Frame runs on the UI goroutine.
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	now    func() time.Time

	snap     game.Snapshot
	hasSnap  bool
	lossAt   time.Time
	lastStat game.Status
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		now:    time.Now,
	}
}

// Render stores the snapshot and redraws.
func (r *Renderer) Render(s game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Status == game.GameOver && r.lastStat != game.GameOver {
		r.lossAt = r.now()
	}
	r.lastStat = s.Status
	r.snap = s
	r.hasSnap = true
	r.draw()
}

// Frame redraws the last snapshot so timed overlays can fade.
func (r *Renderer) Frame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasSnap {
		r.draw()
	}
}

func (r *Renderer) draw() {
	s := r.snap
	r.screen.Clear()

	r.drawHUD(s)
	r.drawBorder(s.Grid)

	for i, p := range s.Snake {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		r.drawCell(p, '█', style)
	}
	r.drawCell(s.Food, '●', styleFood)

	if s.Status == game.GameOver {
		r.drawGameOver(s)
	}
	r.drawLossBanner(s.Grid)
	r.drawHelp(s.Grid)

	r.screen.Show()
}

func (r *Renderer) drawHUD(s game.Snapshot) {
	r.drawText(boardX, 0, styleHUD, fmt.Sprintf("Score: %d   High Score: %d", s.Score, s.HighScore))
	r.drawText(boardX, 1, styleDefault, fmt.Sprintf("%-10s speed %dms", s.Status, s.Speed.Milliseconds()))
}

func (r *Renderer) drawBorder(g types.Grid) {
	w := g.Width*cellWidth + 1
	h := g.Height + 1
	for x := 0; x <= w; x++ {
		r.screen.SetContent(boardX+x, boardY, '─', nil, styleBorder)
		r.screen.SetContent(boardX+x, boardY+h, '─', nil, styleBorder)
	}
	for y := 0; y <= h; y++ {
		r.screen.SetContent(boardX, boardY+y, '│', nil, styleBorder)
		r.screen.SetContent(boardX+w, boardY+y, '│', nil, styleBorder)
	}
	r.screen.SetContent(boardX, boardY, '┌', nil, styleBorder)
	r.screen.SetContent(boardX+w, boardY, '┐', nil, styleBorder)
	r.screen.SetContent(boardX, boardY+h, '└', nil, styleBorder)
	r.screen.SetContent(boardX+w, boardY+h, '┘', nil, styleBorder)
}

// cellOrigin returns the screen column and row of a grid cell.
func cellOrigin(p types.Point) (int, int) {
	return boardX + 1 + p.X*cellWidth, boardY + 1 + p.Y
}

func (r *Renderer) drawCell(p types.Point, ch rune, style tcell.Style) {
	x, y := cellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	lines := []string{
		"  GAME OVER  ",
		fmt.Sprintf(" Final score: %d ", s.Score),
		" Enter / r to restart ",
	}
	r.drawPanel(s.Grid, lines, styleGameOver)
}

func (r *Renderer) drawLossBanner(g types.Grid) {
	if r.lossAt.IsZero() {
		return
	}
	elapsed := r.now().Sub(r.lossAt)
	if elapsed >= lossBannerDuration {
		return
	}
	style := styleBanner
	if elapsed >= lossBannerFade {
		style = styleBannerDim
	}
	msg := " You lost! "
	x := boardX + (g.Width*cellWidth+2-len(msg))/2
	r.drawText(x, boardY, style, msg)
}

func (r *Renderer) drawPanel(g types.Grid, lines []string, style tcell.Style) {
	top := boardY + 1 + (g.Height-len(lines))/2
	for i, line := range lines {
		x := boardX + 1 + (g.Width*cellWidth-len(line))/2
		r.drawText(x, top+i, style, line)
	}
}

func (r *Renderer) drawHelp(g types.Grid) {
	y := boardY + g.Height + 2
	r.drawText(boardX, y, styleHelp, "arrows/wasd move  enter start/stop  p pause  r restart  q quit")
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
