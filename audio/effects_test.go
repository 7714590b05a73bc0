package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorSine verifies sine samples stay within [-1, 1]
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d invalid: %v", i, samples[i])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square samples are exactly +1 or -1
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("Expected square sample %d to be -1 or 1, got %f", i, v)
		}
	}
}

// TestOscillatorNoise verifies noise is bounded and not constant
func TestOscillatorNoise(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveNoise, beep.SampleRate(44100))

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	distinct := make(map[float64]struct{})
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("Noise sample %d out of range: %f", i, samples[i][0])
		}
		distinct[samples[i][0]] = struct{}{}
	}
	if len(distinct) < 10 {
		t.Errorf("Expected varied noise, got %d distinct values", len(distinct))
	}
}

// TestOscillatorDuration verifies the stream ends after the requested duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	total, _ := drain(osc)
	if total != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), total)
	}

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return 0 false, got %d %v", n, ok)
	}
}

// TestEnvelopeAttack verifies gain ramps from silence
func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(1, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 500)
	env.Stream(samples)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] <= 0 || samples[50][0] >= 1 {
		t.Errorf("Expected partial gain mid-attack, got %f", samples[50][0])
	}
	if samples[200][0] != 1 {
		t.Errorf("Expected full gain in sustain, got %f", samples[200][0])
	}
}

// TestEnvelopeRelease verifies gain falls toward zero at the end
func TestEnvelopeRelease(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 0, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if samples[0][0] != 1 {
		t.Errorf("Expected full gain without attack, got %f", samples[0][0])
	}
	if samples[999][0] <= 0 || samples[999][0] > 0.02 {
		t.Errorf("Expected near-silent final sample, got %f", samples[999][0])
	}
}

// TestNewVolumeZeroIsSilent verifies zero gain does not produce -Inf
func TestNewVolumeZeroIsSilent(t *testing.T) {
	v := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, beep.SampleRate(1000)), 0)
	if !v.Silent {
		t.Error("Expected zero volume to be silent")
	}

	_, peak := drain(v)
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestSynthCueLengths verifies each cue is finite and audible
func TestSynthCueLengths(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	snakeLen := rate.N(parameter.SpawnSnakeNoteDuration) * len(parameter.SpawnSnakeNotes)

	tests := []struct {
		sound    core.SoundType
		min, max int
	}{
		{core.SoundEat,
			rate.N(parameter.EatNote1Duration) + rate.N(parameter.EatNote2Duration),
			rate.N(parameter.EatNote1Duration) + rate.N(parameter.EatNote2Duration)},
		{core.SoundDestroy, rate.N(parameter.DestroyDuration), rate.N(parameter.DestroyDuration) + 512},
		{core.SoundSpawnFood, rate.N(parameter.SpawnFoodDuration), rate.N(parameter.SpawnFoodDuration) + 512},
		{core.SoundSpawnSnake, snakeLen, snakeLen},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := synthCue(tt.sound, rate)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			total, peak := drain(s)
			if total < tt.min || total > tt.max {
				t.Errorf("Expected length in [%d, %d], got %d", tt.min, tt.max, total)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Expected audible peak within [0, 1], got %f", peak)
			}
		})
	}
}

// TestSynthCueUnknown verifies out-of-range cues yield nil
func TestSynthCueUnknown(t *testing.T) {
	if s := synthCue(core.SoundTypeCount, beep.SampleRate(44100)); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}
