package renderer

import (
	"github.com/lixenwraith/hebi/parameter/visual"
	"github.com/lixenwraith/hebi/render"
)

// GridRenderer fills the playfield with the grid background
type GridRenderer struct{}

func NewGridRenderer() *GridRenderer {
	return &GridRenderer{}
}

func (r *GridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.MapHeight; y++ {
		for x := 0; x < ctx.MapWidth; x++ {
			sx, sy, visible := ctx.MapToScreen(x, y)
			if !visible {
				continue
			}
			for k := 0; k < visual.CellWidth; k++ {
				buf.SetBgOnly(sx+k, sy, render.RgbGridBackground)
			}
		}
	}
}
