package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/render"
)

// SystemFactory creates a System bound to a World
type SystemFactory func(world *engine.World) engine.System

// RendererFactory creates a layer for the render orchestrator
type RendererFactory func(world *engine.World) render.SystemRenderer

// RendererEntry holds factory and priority metadata
type RendererEntry struct {
	Factory  RendererFactory
	Priority render.RenderPriority
}

var (
	systemsMu   sync.RWMutex
	systems     = make(map[string]SystemFactory)
	renderersMu sync.RWMutex
	renderers   = make(map[string]RendererEntry)
)

// RegisterSystem adds a system factory by name, replacing any previous one
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names, sorted
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterRenderer adds a renderer factory with priority
func RegisterRenderer(name string, factory RendererFactory, priority render.RenderPriority) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	renderers[name] = RendererEntry{Factory: factory, Priority: priority}
}

// GetRenderer retrieves a renderer entry by name
func GetRenderer(name string) (RendererEntry, bool) {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	e, ok := renderers[name]
	return e, ok
}

// RendererNames returns all registered renderer names, sorted
func RendererNames() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
