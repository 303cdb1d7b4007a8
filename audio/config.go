package audio

// SoundType identifies a sound cue
type SoundType int

const (
	SoundEat SoundType = iota
	SoundLoss
	SoundRecord
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundLoss:
		return "loss"
	case SoundRecord:
		return "record"
	default:
		return "unknown"
	}
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	BufferMs      int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the settings used when no flags override them
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		BufferMs:     100,
		EffectVolumes: map[SoundType]float64{
			SoundEat:    0.4,
			SoundLoss:   0.6,
			SoundRecord: 0.5,
		},
	}
}
