package audio

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

// soundCache stores decoded cue buffers at the output sample rate
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
	source [core.SoundTypeCount]string
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// load fills every cue, falling back to the synth when a file is missing or unreadable
func (c *soundCache) load(paths [core.SoundTypeCount]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if paths[st] != "" {
			buf, err := c.decodeFile(paths[st])
			if err == nil {
				c.store[st] = buf
				c.source[st] = paths[st]
				continue
			}
			log.Printf("audio: %s cue falls back to synth: %v", st, err)
		}
		c.store[st] = c.render(synthCue(st, c.format.SampleRate))
		c.source[st] = "synth"
	}
}

// decodeFile reads a wav file into a buffer resampled to the cache rate
func (c *soundCache) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != c.format.SampleRate {
		s = beep.Resample(parameter.AudioResampleQuality, format.SampleRate, c.format.SampleRate, s)
	}

	buf := c.render(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: empty stream", path)
	}
	return buf, nil
}

func (c *soundCache) render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(c.format)
	if s != nil {
		buf.Append(s)
	}
	return buf
}

// get returns a fresh streamer over the cached cue, nil when empty
func (c *soundCache) get(st core.SoundType) beep.Streamer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	buf := c.store[st]
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// sourceOf reports the file a cue was loaded from, or "synth"
func (c *soundCache) sourceOf(st core.SoundType) string {
	if st < 0 || st >= core.SoundTypeCount {
		return ""
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source[st]
}
