package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear fade in and fade out
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so a zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	eatNoteDuration  = 60 * time.Millisecond
	eatAttack        = 5 * time.Millisecond
	eatRelease       = 40 * time.Millisecond
	lossNoteDuration = 180 * time.Millisecond
	lossAttack       = 10 * time.Millisecond
	lossRelease      = 120 * time.Millisecond
)

// CreateEatSound is a short rising two-note chime for food eaten
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(987.77, eatNoteDuration, WaveSquare, rate), eatNoteDuration, eatAttack, eatRelease, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, eatNoteDuration, WaveSquare, rate), eatNoteDuration, eatAttack, eatRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateLossSound is a falling three-note saw phrase played at game over
func CreateLossSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var notes []beep.Streamer
	for _, freq := range []float64{392.0, 311.13, 196.0} {
		osc := NewOscillator(freq, lossNoteDuration, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, lossNoteDuration, lossAttack, lossRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundLoss]*cfg.MasterVolume)
}

// CreateRecordSound is a bright major arpeggio for a new high score
func CreateRecordSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.5} {
		osc := NewOscillator(freq, eatNoteDuration*2, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, eatNoteDuration*2, eatAttack, eatRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundRecord]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundLoss:
		return CreateLossSound(cfg)
	case SoundRecord:
		return CreateRecordSound(cfg)
	default:
		return nil
	}
}
