package system

import (
	"time"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/maps"
	"github.com/lixenwraith/hebi/parameter"
)

// SpawnSnake creates a live head at sp with segments-1 body segments trailing
// behind it along the reverse of the spawn facing
func SpawnSnake(w *engine.World, sp maps.SpawnPosition, segments int) core.Entity {
	head := w.CreateEntity()
	h := component.SnakeHeadComponent{
		Direction:     sp.Direction,
		NextDirection: sp.Direction,
	}

	back := sp.Direction.Opposite().Vector()
	for i := 1; i < segments; i++ {
		addSegment(w, head, &h, len(h.Segments), sp.Position.Add(back.Scale(i)))
	}

	w.Positions.Set(head, gridAt(sp.Position))
	w.Components.Head.Set(head, h)
	w.Components.Glyph.Set(head, component.GlyphComponent{Kind: component.GlyphHead})
	return head
}

// addSegment inserts a collidable body segment into h's chain at index
func addSegment(w *engine.World, head core.Entity, h *component.SnakeHeadComponent, index int, p core.Point) core.Entity {
	seg := w.CreateEntity()
	w.Positions.Set(seg, gridAt(p))
	w.Components.Segment.Set(seg, component.SnakeSegmentComponent{Head: head})
	w.Components.Collidable.Set(seg, component.CollidableComponent{})
	w.Components.Glyph.Set(seg, component.GlyphComponent{Kind: component.GlyphSegment})

	h.Segments = append(h.Segments, 0)
	copy(h.Segments[index+1:], h.Segments[index:])
	h.Segments[index] = seg
	return seg
}

// Score is the number of segments gained since spawn
func Score(h component.SnakeHeadComponent, spawnSegments int) int {
	return len(h.Segments) + 1 - spawnSegments
}

// RespawnTime returns when a snake that died at now with n segments may respawn
func RespawnTime(now time.Duration, n int, interval, delay time.Duration) time.Duration {
	return now + time.Duration(n)*interval + delay
}

// SpawnWalls creates one collidable wall entity per Wall cell, in row-major order
func SpawnWalls(w *engine.World, m maps.MapData) int {
	n := 0
	m.Iter(func(p core.Point, c maps.Cell) {
		if c.Kind != maps.CellWall {
			return
		}
		e := w.CreateEntity()
		w.Positions.Set(e, gridAt(p))
		w.Components.Wall.Set(e, component.WallComponent{})
		w.Components.Collidable.Set(e, component.CollidableComponent{})
		w.Components.Glyph.Set(e, component.GlyphComponent{Kind: component.GlyphWall})
		n++
	})
	return n
}

func gridAt(p core.Point) component.GridPositionComponent {
	return component.GridPositionComponent{X: p.X, Y: p.Y, T: parameter.GridInterpolation}
}
