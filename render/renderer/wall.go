package renderer

import (
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter/visual"
	"github.com/lixenwraith/hebi/render"
)

// WallRenderer draws static wall entities
type WallRenderer struct {
	world *engine.World
}

func NewWallRenderer(world *engine.World) *WallRenderer {
	return &WallRenderer{world: world}
}

func (r *WallRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range r.world.Components.Wall.All() {
		pos, ok := r.world.Positions.Get(e)
		if !ok {
			continue
		}
		sx, sy, visible := ctx.MapToScreen(pos.X, pos.Y)
		if !visible {
			continue
		}
		for k, ch := range visual.GlyphWall {
			buf.SetWithBg(sx+k, sy, ch, render.RgbWall, render.RgbGridBackground)
		}
	}
}
