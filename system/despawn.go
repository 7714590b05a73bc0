package system

import (
	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/parameter"
)

// DespawnSystem animates entities marked Despawning and removes them once faded
// Runs every frame, ahead of the tick systems
type DespawnSystem struct {
	engine.SystemBase
}

func NewDespawnSystem(world *engine.World) engine.System {
	return &DespawnSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *DespawnSystem) Name() string {
	return "despawn"
}

func (s *DespawnSystem) Priority() int {
	return parameter.PriorityDespawn
}

func (s *DespawnSystem) Cadence() engine.Cadence {
	return engine.CadenceFrame
}

func (s *DespawnSystem) Update() {
	now := s.Resource.Time.Now
	despawning := s.Component.Despawning

	for _, e := range despawning.All() {
		d, ok := despawning.Get(e)
		if !ok || now < d.StartAt() {
			continue
		}

		if !d.Started {
			d.Started = true
			if d.HasSound {
				s.World.PushEvent(event.EventSound, &event.SoundPayload{Sound: d.Sound})
				d.HasSound = false
			}
			despawning.Set(e, d)
		}

		fade, ok := s.Component.Fade.Get(e)
		if !ok {
			fade = component.NewFade()
		}
		fade.Scale *= parameter.DespawnScaleFactor
		fade.Alpha /= parameter.DespawnAlphaFactor

		// Removed once the 8-bit alpha truncates to zero
		if int(fade.Alpha*255) == 0 {
			s.World.DestroyEntity(e)
			continue
		}
		s.Component.Fade.Set(e, fade)
	}
}
