package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/parameter"
)

// CollisionSystem kills heads that left the grid or hit a collidable entity
type CollisionSystem struct {
	engine.SystemBase

	statDeaths *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{SystemBase: engine.NewSystemBase(world)}
	s.statDeaths = s.Resource.Status.Ints.Get("snake.deaths")
	return s
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Cadence() engine.Cadence {
	return engine.CadenceTick
}

func (s *CollisionSystem) Update() {
	for _, e := range s.Component.Head.All() {
		h, ok := s.Component.Head.Get(e)
		if !ok {
			continue
		}
		pos, ok := s.Positions.Get(e)
		if !ok {
			continue
		}
		if s.collides(e, h, pos.Point()) {
			s.kill(e, h, pos.Point())
		}
	}
}

func (s *CollisionSystem) collides(head core.Entity, h component.SnakeHeadComponent, p core.Point) bool {
	cfg := s.Resource.Config
	if !p.In(cfg.Width, cfg.Height) {
		return true
	}
	for _, seg := range h.Segments {
		if segPos, ok := s.Positions.Get(seg); ok && segPos.Point() == p {
			return true
		}
	}
	for _, other := range s.Positions.EntitiesAt(p) {
		if other != head && s.Component.Collidable.Has(other) {
			return true
		}
	}
	return false
}

// kill fades the head at once and each segment i after (i+1) intervals, then
// schedules the respawn for when the last segment has started fading plus the delay
func (s *CollisionSystem) kill(head core.Entity, h component.SnakeHeadComponent, p core.Point) {
	now := s.Resource.Time.Now
	cfg := s.Resource.Config

	for i, seg := range h.Segments {
		if !s.Positions.Has(seg) {
			continue
		}
		s.Component.Segment.Remove(seg)
		s.Component.Despawning.Set(seg, component.DespawningComponent{
			TriggerTime: now,
			Delay:       cfg.DespawnInterval * time.Duration(i+1),
			Sound:       core.SoundDestroy,
			HasSound:    true,
		})
	}

	s.Component.Head.Remove(head)
	s.Component.Despawning.Set(head, component.DespawningComponent{
		TriggerTime: now,
		Sound:       core.SoundDestroy,
		HasSound:    true,
	})

	respawn := s.Resource.Respawn
	respawn.Time = RespawnTime(now, len(h.Segments), cfg.DespawnInterval, cfg.RespawnDelay)
	respawn.Completed = false

	s.statDeaths.Add(1)
	s.World.PushEvent(event.EventSnakeDied, &event.SnakeDiedPayload{
		Head:      head,
		Position:  p,
		Segments:  len(h.Segments),
		RespawnAt: respawn.Time,
	})
	log.Printf("snake %d died at %v with %d segments, respawn at %v", head, p, len(h.Segments), respawn.Time)
}
