package system

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/maps"
	"github.com/lixenwraith/hebi/parameter"
)

// newTestWorld builds a world with default timings on an empty width x height grid
func newTestWorld(width, height int) *engine.World {
	w := engine.NewWorld()
	*w.Resources.Config = engine.ConfigResource{
		Width:           width,
		Height:          height,
		TickLength:      parameter.DefaultTickLength,
		FoodTicks:       parameter.DefaultFoodTicks,
		SpawnSegments:   parameter.DefaultSnakeSpawnSegments,
		DespawnInterval: parameter.DefaultSegmentDespawnInterval,
		RespawnDelay:    parameter.DefaultSnakeRespawnDelay,
	}
	w.Resources.Rand.Spawn = rand.New(rand.NewSource(1))
	w.Resources.Rand.Food = rand.New(rand.NewSource(1))
	return w
}

func placeWall(w *engine.World, p core.Point) core.Entity {
	m := maps.NewMapData(p.X+1, p.Y+1)
	m.Cells[p] = maps.Wall
	SpawnWalls(w, m)
	cell := w.Positions.EntitiesAt(p)
	return cell[len(cell)-1]
}

func placeFood(w *engine.World, p core.Point) core.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, gridAt(p))
	w.Components.Food.Set(e, component.FoodComponent{})
	return e
}

func chain(w *engine.World, head core.Entity) []core.Point {
	h, _ := w.Components.Head.Get(head)
	pos, _ := w.Positions.Get(head)
	out := []core.Point{pos.Point()}
	for _, seg := range h.Segments {
		p, _ := w.Positions.Get(seg)
		out = append(out, p.Point())
	}
	return out
}

func eventsOf(events []event.GameEvent, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
