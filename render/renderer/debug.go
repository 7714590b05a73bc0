package renderer

import (
	"sync/atomic"

	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/render"
	"github.com/lixenwraith/hebi/status"
)

// DebugRenderer lists every status metric in the top-left corner
// Hidden until toggled
type DebugRenderer struct {
	registry *status.Registry
	visible  atomic.Bool
}

func NewDebugRenderer(world *engine.World) *DebugRenderer {
	return &DebugRenderer{registry: world.Resources.Status}
}

// IsVisible implements render.VisibilityToggle
func (r *DebugRenderer) IsVisible() bool {
	return r.visible.Load()
}

// SetVisible shows or hides the overlay
func (r *DebugRenderer) SetVisible(v bool) {
	r.visible.Store(v)
}

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	for {
		old := r.visible.Load()
		if r.visible.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := 1
	for _, line := range r.registry.Lines() {
		if y >= ctx.ScreenHeight-1 {
			return
		}
		buf.SetText(0, y, line, render.RgbDebug, render.RgbBackground)
		y++
	}
}
