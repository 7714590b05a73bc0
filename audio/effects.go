package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite wave streamer
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

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain maps to a silent stream
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// createEatSound is a two-note chime
func createEatSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.EatNote1Freq, parameter.EatNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.EatNote1Duration, parameter.EatAttack, parameter.EatNote1Release, rate)

	n2 := NewOscillator(parameter.EatNote2Freq, parameter.EatNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.EatNote2Duration, parameter.EatAttack, parameter.EatNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.EatVolume)
}

// createDestroySound is a crackle over a low rumble
func createDestroySound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, parameter.DestroyDuration, WaveNoise, rate),
		parameter.DestroyDuration, parameter.DestroyAttack, parameter.DestroyRelease, rate)
	rumble := NewEnvelope(
		NewOscillator(parameter.DestroyRumbleFreq, parameter.DestroyDuration, WaveSine, rate),
		parameter.DestroyDuration, parameter.DestroyAttack, parameter.DestroyRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, parameter.DestroyNoiseMix),
		newVolume(rumble, 1-parameter.DestroyNoiseMix),
	)
	return newVolume(mixed, parameter.DestroyVolume)
}

// createSpawnFoodSound is a bell with one overtone
func createSpawnFoodSound(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(
		NewOscillator(parameter.SpawnFoodFreq, parameter.SpawnFoodDuration, WaveSine, rate),
		parameter.SpawnFoodDuration, parameter.SpawnFoodAttack, parameter.SpawnFoodRelease, rate)
	over := NewEnvelope(
		NewOscillator(parameter.SpawnFoodFreq*2, parameter.SpawnFoodDuration, WaveSine, rate),
		parameter.SpawnFoodDuration, parameter.SpawnFoodAttack, parameter.SpawnFoodRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 1-parameter.SpawnFoodOvertoneMix),
		newVolume(over, parameter.SpawnFoodOvertoneMix),
	)
	return newVolume(mixed, parameter.SpawnFoodVolume)
}

// createSpawnSnakeSound is a rising arpeggio
func createSpawnSnakeSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(parameter.SpawnSnakeNotes))
	for _, freq := range parameter.SpawnSnakeNotes {
		osc := NewOscillator(freq, parameter.SpawnSnakeNoteDuration, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, parameter.SpawnSnakeNoteDuration,
			parameter.SpawnSnakeAttack, parameter.SpawnSnakeRelease, rate))
	}
	return newVolume(beep.Seq(notes...), parameter.SpawnSnakeVolume)
}

// synthCue returns a fresh generated streamer for the cue, nil for unknown types
func synthCue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundEat:
		return createEatSound(rate)
	case core.SoundDestroy:
		return createDestroySound(rate)
	case core.SoundSpawnFood:
		return createSpawnFoodSound(rate)
	case core.SoundSpawnSnake:
		return createSpawnSnakeSound(rate)
	}
	return nil
}
