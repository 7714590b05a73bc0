package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioResampleQuality for cue files recorded at another rate (1..64)
	AudioResampleQuality = 4

	// AudioMasterVolume is a linear gain in [0, 1]
	AudioMasterVolume = 0.6

	// MinSoundGap suppresses a cue retriggered faster than this
	MinSoundGap = 30 * time.Millisecond
)

// Eat cue: two rising square notes
const (
	EatNote1Freq     = 987.77
	EatNote2Freq     = 1318.51
	EatNote1Duration = 60 * time.Millisecond
	EatNote2Duration = 140 * time.Millisecond
	EatAttack        = 3 * time.Millisecond
	EatNote1Release  = 30 * time.Millisecond
	EatNote2Release  = 110 * time.Millisecond
	EatVolume        = 0.35
)

// Destroy cue: noise burst over a low rumble
const (
	DestroyDuration   = 280 * time.Millisecond
	DestroyAttack     = 2 * time.Millisecond
	DestroyRelease    = 220 * time.Millisecond
	DestroyRumbleFreq = 80.0
	DestroyNoiseMix   = 0.4
	DestroyVolume     = 0.6
)

// Spawn food cue: short bell
const (
	SpawnFoodFreq        = 880.0
	SpawnFoodDuration    = 160 * time.Millisecond
	SpawnFoodAttack      = 4 * time.Millisecond
	SpawnFoodRelease     = 140 * time.Millisecond
	SpawnFoodOvertoneMix = 0.3
	SpawnFoodVolume      = 0.4
)

// Spawn snake cue: ascending arpeggio
const (
	SpawnSnakeNoteDuration = 70 * time.Millisecond
	SpawnSnakeAttack       = 5 * time.Millisecond
	SpawnSnakeRelease      = 40 * time.Millisecond
	SpawnSnakeVolume       = 0.4
)

// SpawnSnakeNotes are C5, E5, G5
var SpawnSnakeNotes = [...]float64{523.25, 659.25, 783.99}
