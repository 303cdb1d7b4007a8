package audio

import (
	"fmt"
	"sync"
	"time"

	"snake-classic/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the game's sound cues. It implements game.Listener.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	play        func(beep.Streamer)
}

// NewSoundManager creates a sound manager. Nothing is played until Initialize.
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.play = sm.mixer.Add
	return sm
}

// Initialize opens the speaker. A disabled config is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Duration(sm.cfg.BufferMs)*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a sound cue on the mixer
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(sound, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.play(s)
	speaker.Unlock()
}

func (sm *SoundManager) FoodEaten(int) {
	sm.Play(SoundEat)
}

func (sm *SoundManager) GameEnded(r game.Result) {
	if r.NewHighScore {
		sm.Play(SoundRecord)
		return
	}
	sm.Play(SoundLoss)
}
