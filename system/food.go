package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/parameter"
)

// FoodSystem places one food on a random free cell per food tick
// Skipped silently while every grid cell is occupied
type FoodSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64
	statSkipped *atomic.Int64
}

func NewFoodSystem(world *engine.World) engine.System {
	s := &FoodSystem{SystemBase: engine.NewSystemBase(world)}
	s.statSpawned = s.Resource.Status.Ints.Get("food.spawned")
	s.statSkipped = s.Resource.Status.Ints.Get("food.skipped")
	return s
}

func (s *FoodSystem) Name() string {
	return "food"
}

func (s *FoodSystem) Priority() int {
	return parameter.PriorityFood
}

func (s *FoodSystem) Cadence() engine.Cadence {
	return engine.CadenceFood
}

func (s *FoodSystem) Update() {
	cfg := s.Resource.Config
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return
	}

	occupied := 0
	s.Positions.OccupiedCells().Each(func(p core.Point) {
		if p.In(cfg.Width, cfg.Height) {
			occupied++
		}
	})
	if occupied >= cfg.Width*cfg.Height {
		s.statSkipped.Add(1)
		return
	}

	// Terminates: at least one in-bounds cell is free
	rng := s.Resource.Rand.Food
	var p core.Point
	for {
		p = core.Point{X: rng.Intn(cfg.Width), Y: rng.Intn(cfg.Height)}
		if !s.Positions.IsOccupied(p) {
			break
		}
	}
	variant := rng.Intn(parameter.FoodVariantCount)

	e := s.World.CreateEntity()
	s.Positions.Set(e, gridAt(p))
	s.Component.Food.Set(e, component.FoodComponent{Variant: variant})
	s.Component.Glyph.Set(e, component.GlyphComponent{Kind: component.GlyphFood, Variant: variant})

	s.statSpawned.Add(1)
	s.World.PushEvent(event.EventSound, &event.SoundPayload{Sound: core.SoundSpawnFood})
	s.World.PushEvent(event.EventFoodSpawned, &event.FoodSpawnedPayload{Entity: e, Position: p, Variant: variant})
}
