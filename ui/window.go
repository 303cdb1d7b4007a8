// Package ui is the raylib window frontend.
package ui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 640
	windowHeight = 900
)

// Run opens the window and draws r every frame until the window closes, the
// user quits or ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, r *Renderer, c Controls) {
	rl.InitWindow(windowWidth, windowHeight, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		l := computeLayout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), r.grid())
		if !poll(l, c) {
			return
		}
		r.Draw(l)
	}
}
