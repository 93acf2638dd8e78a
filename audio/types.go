package audio

import (
	"errors"

	"github.com/lixenwraith/unicorn-clicker/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCoin    SoundType = iota // Award unlocked
	SoundBell                     // Level entered
	SoundFanfare                  // All awards collected
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundBell:
		return "bell"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// Config holds audio output settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns audio enabled at 60% master volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCoin:    0.5,
			SoundBell:    0.7,
			SoundFanfare: 0.8,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
