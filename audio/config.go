package audio

import (
	"github.com/lixenwraith/hebi/config"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

// AudioConfig holds the player settings
type AudioConfig struct {
	SampleRate   int
	MasterVolume float64
	Muted        bool
	// Paths are cue files, empty entries use the built-in synth
	Paths [core.SoundTypeCount]string
}

// DefaultAudioConfig returns synth-only audio at default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
}

// NewAudioConfig resolves cue files from the game configuration
func NewAudioConfig(cfg *config.Config, muted bool) *AudioConfig {
	ac := DefaultAudioConfig()
	ac.Muted = muted
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		ac.Paths[st] = cfg.AudioPath(st)
	}
	return ac
}
