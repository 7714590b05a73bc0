package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

// Player mixes fire-and-forget cues into the speaker
// All methods are safe before Init and after Close; cues are dropped then
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	rate        beep.SampleRate
	cache       *soundCache
	mixer       *beep.Mixer
	master      *effects.Volume
	muted       bool
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	now         func() time.Time
}

// NewPlayer decodes every cue up front; the speaker is opened by Init
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}

	p := &Player{
		config: cfg,
		rate:   rate,
		cache:  newSoundCache(rate),
		mixer:  mixer,
		master: newVolume(mixer, cfg.MasterVolume),
		muted:  cfg.Muted,
		now:    time.Now,
	}
	p.master.Silent = p.master.Silent || cfg.Muted
	p.cache.load(cfg.Paths)
	return p
}

// Init opens the speaker and starts the mixer stream
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Play queues a cue, returning false when it was dropped
func (p *Player) Play(st core.SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || st < 0 || st >= core.SoundTypeCount {
		return false
	}

	now := p.now()
	if now.Sub(p.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}

	s := p.cache.get(st)
	if s == nil {
		return false
	}
	p.lastPlayed[st] = now

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setMutedLocked(!p.muted)
	return p.muted
}

func (p *Player) setMutedLocked(muted bool) {
	p.muted = muted
	speaker.Lock()
	p.master.Silent = muted || p.config.MasterVolume <= 0
	if muted {
		p.mixer.Clear()
	}
	speaker.Unlock()
}

// IsMuted reports the mute state
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Source reports which file backs a cue, "synth" for the generated fallback
func (p *Player) Source(st core.SoundType) string {
	return p.cache.sourceOf(st)
}

// Close drops pending cues and releases the speaker; idempotent
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
