package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/hebi/core"
)

// AudioService wraps Player as a service.Service
// A missing audio backend disables the service instead of failing startup
type AudioService struct {
	config   *AudioConfig
	player   *Player
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService(cfg *AudioConfig) *AudioService {
	return &AudioService{config: cfg}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - initial mute state, overrides the config
func (s *AudioService) Init(args ...any) error {
	cfg := s.config
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			cfg.Muted = muted
		}
	}
	s.player = NewPlayer(cfg)
	return nil
}

// Start implements Service
func (s *AudioService) Start() error {
	if s.player == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.player.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
		s.disabled.Store(true)
		return nil
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		log.Printf("audio: %s cue from %s", st, s.player.Source(st))
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Close()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Play forwards a cue to the player
func (s *AudioService) Play(st core.SoundType) bool {
	if s.disabled.Load() || s.player == nil {
		return false
	}
	return s.player.Play(st)
}

// ToggleMute flips mute, reporting muted when audio is unavailable
func (s *AudioService) ToggleMute() bool {
	if s.disabled.Load() || s.player == nil {
		return true
	}
	return s.player.ToggleMute()
}

// IsMuted reports muted when audio is unavailable
func (s *AudioService) IsMuted() bool {
	if s.disabled.Load() || s.player == nil {
		return true
	}
	return s.player.IsMuted()
}
