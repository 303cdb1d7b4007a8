// Package terminal is the tcell frontend: it draws game snapshots as text
// cells and turns key presses into game commands.
package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 50 * time.Millisecond

// Run reads input and redraws until the user quits, ctx is cancelled or the
// screen is finalized. The caller owns screen and calls Fini.
func Run(ctx context.Context, screen tcell.Screen, r *Renderer, c Controls) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				r.Frame()
				continue
			}
			if !HandleEvent(ev, c) {
				log.Printf("quit requested")
				return
			}

		case <-ticker.C:
			r.Frame()
		}
	}
}
