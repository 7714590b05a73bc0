package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// Equal priorities keep registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority}

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize() {
	width, height := o.screen.Size()
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Size returns the current buffer dimensions
func (o *RenderOrchestrator) Size() (int, int) {
	return o.buffer.Size()
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
