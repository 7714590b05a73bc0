package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/parameter"
)

// EatingSystem grows live snakes whose head shares a cell with food
// A new segment is inserted at the head end; tail positions are untouched this tick
type EatingSystem struct {
	engine.SystemBase

	statScore *atomic.Int64
	statEaten *atomic.Int64
}

func NewEatingSystem(world *engine.World) engine.System {
	s := &EatingSystem{SystemBase: engine.NewSystemBase(world)}
	s.statScore = s.Resource.Status.Ints.Get("snake.score")
	s.statEaten = s.Resource.Status.Ints.Get("food.eaten")
	return s
}

func (s *EatingSystem) Name() string {
	return "eating"
}

func (s *EatingSystem) Priority() int {
	return parameter.PriorityEating
}

func (s *EatingSystem) Cadence() engine.Cadence {
	return engine.CadenceTick
}

func (s *EatingSystem) Update() {
	now := s.Resource.Time.Now

	for _, e := range s.Component.Head.All() {
		h, ok := s.Component.Head.Get(e)
		if !ok {
			continue
		}
		pos, ok := s.Positions.Get(e)
		if !ok {
			continue
		}

		for _, other := range s.Positions.EntitiesAt(pos.Point()) {
			if !s.Component.Food.Has(other) {
				continue
			}
			s.Component.Food.Remove(other)
			s.Component.Despawning.Set(other, component.DespawningComponent{
				TriggerTime: now,
				Sound:       core.SoundEat,
				HasSound:    true,
			})

			addSegment(s.World, e, &h, 0, pos.Point())
			s.Component.Head.Set(e, h)

			score := Score(h, s.Resource.Config.SpawnSegments)
			s.statScore.Store(int64(score))
			s.statEaten.Add(1)
			s.World.PushEvent(event.EventScore, &event.ScorePayload{Score: score})
		}
	}
}
