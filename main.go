package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"snake-classic/audio"
	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/terminal"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	uiMode := flag.String("ui", "window", "Frontend: window or terminal")
	dataDir := flag.String("data", "data", "Directory holding the high score file")
	mute := flag.Bool("mute", false, "Disable sound effects")
	debugLog := flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seed := flag.Uint64("seed", 0, "Food placement seed (0 picks one from the clock)")
	flag.Parse()

	if logFile := setupLogging(*debugLog); logFile != nil {
		defer logFile.Close()
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: ui=%s data=%s seed=%d", *uiMode, *dataDir, *seed)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := manager.NewStateManager(*dataDir)
	cfg := game.Config{Seed: *seed}

	// Missing audio is not fatal
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !*mute
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	var err error
	switch *uiMode {
	case "window":
		err = runWindow(ctx, cfg, store, sounds)
	case "terminal":
		err = runTerminal(ctx, cfg, store, sounds)
	default:
		err = fmt.Errorf("unknown -ui %q (want window or terminal)", *uiMode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, cfg game.Config, store game.HighScoreStore, sounds *audio.SoundManager) error {
	renderer := ui.NewRenderer()
	loop, err := game.NewLoop(cfg, store, renderer, sounds)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer loop.Stop()

	ui.Run(ctx, renderer, loop)
	return nil
}

func runTerminal(ctx context.Context, cfg game.Config, store game.HighScoreStore, sounds *audio.SoundManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Ensure the terminal is restored even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsnake crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	renderer := terminal.NewRenderer(screen)
	loop, err := game.NewLoop(cfg, store, renderer, sounds)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer loop.Stop()

	terminal.Run(ctx, screen, renderer, loop)
	return nil
}
