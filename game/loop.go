package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
)

// Status is the loop's position in its state machine.
type Status int

const (
	Idle Status = iota
	Running
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Snapshot is an immutable copy of the game handed to renderers.
type Snapshot struct {
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	Score     int
	HighScore int
	Speed     time.Duration
	Direction types.Direction
	Status    Status
	SessionID string
}

// Result is reported once per round when it ends.
type Result struct {
	SessionID    string
	Score        int
	HighScore    int
	NewHighScore bool
	BoardFull    bool
	Duration     time.Duration
}

// Renderer draws a snapshot. It is called with the loop's lock held and must
// not call back into the loop.
type Renderer interface {
	Render(Snapshot)
}

// Listener receives gameplay notifications, under the same rules as Renderer.
type Listener interface {
	FoodEaten(score int)
	GameEnded(Result)
}

// HighScoreStore persists the best score.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

// Config carries the loop's tunables. Zero fields take defaults.
type Config struct {
	Grid             types.Grid
	AutoRestartDelay time.Duration
	Seed             uint64
	Clock            Clock
	Food             FoodSource
}

func (c Config) withDefaults() Config {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		c.Grid = types.DefaultGrid
	}
	if c.AutoRestartDelay <= 0 {
		c.AutoRestartDelay = types.AutoRestartDelay
	}
	if c.Clock == nil {
		c.Clock = SystemClock()
	}
	if c.Food == nil {
		c.Food = manager.NewFoodManager(c.Grid, c.Seed)
	}
	return c
}

// Loop owns the game state and the timers driving it. Every mutation, whether
// from a timer or from input, happens under mu.
type Loop struct {
	mu sync.Mutex

	cfg       Config
	store     HighScoreStore
	renderer  Renderer
	listeners []Listener

	state     State
	status    Status
	highScore int
	sessionID string
	startedAt time.Time

	tick    *task
	restart *task
}

// NewLoop loads the high score, prepares the first round and draws it.
// The loop stays Idle until Start.
func NewLoop(cfg Config, store HighScoreStore, renderer Renderer, listeners ...Listener) (*Loop, error) {
	l := &Loop{
		cfg:       cfg.withDefaults(),
		store:     store,
		renderer:  renderer,
		listeners: listeners,
	}
	if store != nil {
		l.highScore = store.LoadHighScore()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.reset(); err != nil {
		return nil, err
	}
	l.render()
	return l, nil
}

// Start begins a new round, or stops the running one.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.status {
	case Running, Paused:
		l.stop()
	default:
		l.start()
	}
}

// Stop cancels the tick and any pending auto-restart.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stop()
}

// Restart throws the current round away and starts a new one.
func (l *Loop) Restart() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.start()
}

// TogglePause switches between Running and Paused. Ignored in other states.
func (l *Loop) TogglePause() {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.status {
	case Running:
		l.status = Paused
	case Paused:
		l.status = Running
	default:
		return
	}
	log.Printf("session %s %s", l.sessionID, l.status)
	l.render()
}

// ChangeDirection buffers d for the next tick and reports whether it was accepted.
func (l *Loop) ChangeDirection(d types.Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status == GameOver {
		return false
	}
	next, ok := l.state.WithDirection(d)
	l.state = next
	return ok
}

func (l *Loop) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Loop) start() {
	if err := l.reset(); err != nil {
		log.Printf("reset failed: %v", err)
		l.status = Idle
		l.render()
		return
	}
	l.status = Running
	l.armTick()
	log.Printf("session %s started", l.sessionID)
	l.render()
}

func (l *Loop) stop() {
	l.cancel(&l.tick)
	l.cancel(&l.restart)
	if l.status == Idle {
		return
	}
	l.status = Idle
	log.Printf("session %s stopped", l.sessionID)
	l.render()
}

func (l *Loop) reset() error {
	l.cancel(&l.tick)
	l.cancel(&l.restart)

	state, err := NewState(l.cfg.Grid, l.cfg.Food)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}
	l.state = state
	l.sessionID = uuid.NewString()
	l.startedAt = l.cfg.Clock.Now()
	return nil
}

func (l *Loop) armTick() {
	t := &task{}
	t.timer = l.cfg.Clock.AfterFunc(l.state.Speed, func() { l.onTick(t) })
	l.tick = t
}

func (l *Loop) onTick(t *task) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tick != t {
		return
	}
	l.tick = nil

	switch l.status {
	case Paused:
		l.armTick()
	case Running:
		l.step()
		// Re-arming with the current speed makes a speed-up apply from the next tick
		if l.status == Running {
			l.armTick()
		}
	}
}

func (l *Loop) step() {
	next, out := Step(l.state, l.cfg.Food)
	l.state = next

	if out.Ate {
		for _, ln := range l.listeners {
			ln.FoodEaten(next.Score)
		}
	}
	if out.SpeedChanged {
		log.Printf("session %s speed up: %v at score %d", l.sessionID, next.Speed, next.Score)
	}
	if next.Over {
		l.gameOver(out.BoardFull)
		return
	}
	l.render()
}

func (l *Loop) gameOver(boardFull bool) {
	l.status = GameOver
	l.cancel(&l.tick)

	score := l.state.Score
	newHigh := score > l.highScore
	if newHigh {
		l.highScore = score
		if l.store != nil {
			if err := l.store.SaveHighScore(score); err != nil {
				log.Printf("session %s: %v", l.sessionID, err)
			}
		}
	}

	result := Result{
		SessionID:    l.sessionID,
		Score:        score,
		HighScore:    l.highScore,
		NewHighScore: newHigh,
		BoardFull:    boardFull,
		Duration:     l.cfg.Clock.Now().Sub(l.startedAt),
	}
	log.Printf("session %s over: score %d, high score %d", result.SessionID, result.Score, result.HighScore)
	for _, ln := range l.listeners {
		ln.GameEnded(result)
	}
	l.render()
	l.armRestart()
}

func (l *Loop) armRestart() {
	t := &task{}
	t.timer = l.cfg.Clock.AfterFunc(l.cfg.AutoRestartDelay, func() { l.onRestart(t) })
	l.restart = t
}

func (l *Loop) onRestart(t *task) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.restart != t {
		return
	}
	l.restart = nil
	if l.status == GameOver {
		l.start()
	}
}

func (l *Loop) cancel(slot **task) {
	if *slot == nil {
		return
	}
	(*slot).timer.Stop()
	*slot = nil
}

func (l *Loop) snapshot() Snapshot {
	return Snapshot{
		Grid:      l.state.Grid,
		Snake:     l.state.Snake.Cells(),
		Food:      l.state.Food,
		Score:     l.state.Score,
		HighScore: l.highScore,
		Speed:     l.state.Speed,
		Direction: l.state.Direction,
		Status:    l.status,
		SessionID: l.sessionID,
	}
}

func (l *Loop) render() {
	if l.renderer != nil {
		l.renderer.Render(l.snapshot())
	}
}
