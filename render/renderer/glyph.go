package renderer

import (
	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter/visual"
	"github.com/lixenwraith/hebi/render"
)

// GlyphRenderer draws snakes and food, applying the despawn fade
type GlyphRenderer struct {
	world *engine.World

	// Pre-computed body color gradient LUT (chain depth → color)
	// Index 0 = head-adjacent, index 255 = max tail
	bodyColorLUT [256]render.RGB

	// Chain index per live segment, rebuilt every frame
	segmentDepth map[core.Entity]int
}

func NewGlyphRenderer(world *engine.World) *GlyphRenderer {
	r := &GlyphRenderer{
		world:        world,
		segmentDepth: make(map[core.Entity]int),
	}
	for i := range r.bodyColorLUT {
		t := float64(i) / 255.0
		r.bodyColorLUT[i] = render.Blend(render.RgbSnake, render.RgbGridBackground, t*visual.SnakeBodyTailDarken)
	}
	return r
}

func (r *GlyphRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	clear(r.segmentDepth)
	for _, head := range r.world.Components.Head.All() {
		h, ok := r.world.Components.Head.Get(head)
		if !ok {
			continue
		}
		n := len(h.Segments)
		for i, seg := range h.Segments {
			r.segmentDepth[seg] = i * 255 / max(n, 1)
		}
	}

	for _, e := range r.world.Components.Glyph.All() {
		g, ok := r.world.Components.Glyph.Get(e)
		if !ok || g.Kind == component.GlyphWall {
			continue
		}
		pos, ok := r.world.Positions.Get(e)
		if !ok {
			continue
		}
		sx, sy, visible := ctx.MapToScreen(pos.X, pos.Y)
		if !visible {
			continue
		}

		runes, fg := r.style(e, g)
		alpha := 1.0
		if fade, ok := r.world.Components.Fade.Get(e); ok {
			alpha = fade.Alpha
			if fade.Scale >= visual.FadeWideScale {
				runes = visual.GlyphFadeWide
			}
		}

		for k, ch := range runes {
			buf.SetAlpha(sx+k, sy, ch, fg, alpha)
		}
	}
}

func (r *GlyphRenderer) style(e core.Entity, g component.GlyphComponent) ([visual.CellWidth]rune, render.RGB) {
	switch g.Kind {
	case component.GlyphHead:
		return visual.GlyphHead, render.RgbSnake
	case component.GlyphSegment:
		if depth, ok := r.segmentDepth[e]; ok {
			return visual.GlyphSegment, r.bodyColorLUT[depth]
		}
		return visual.GlyphSegment, render.RgbSnake
	case component.GlyphFood:
		return visual.GlyphFood, render.FoodColor(g.Variant)
	}
	return visual.GlyphWall, render.RgbWall
}
