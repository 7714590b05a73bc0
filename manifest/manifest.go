package manifest

import (
	"sync"

	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/registry"
	"github.com/lixenwraith/hebi/render"
	"github.com/lixenwraith/hebi/render/renderer"
	"github.com/lixenwraith/hebi/system"
)

var (
	systemsOnce   sync.Once
	renderersOnce sync.Once
)

// RegisterSystems registers all system factories with the registry
// Safe to call more than once
func RegisterSystems() {
	systemsOnce.Do(func() {
		registry.RegisterSystem("despawn", system.NewDespawnSystem)
		registry.RegisterSystem("movement", system.NewMovementSystem)
		registry.RegisterSystem("collision", system.NewCollisionSystem)
		registry.RegisterSystem("eating", system.NewEatingSystem)
		registry.RegisterSystem("respawn", system.NewRespawnSystem)
		registry.RegisterSystem("food", system.NewFoodSystem)
		registry.RegisterSystem("diagnostics", system.NewDiagSystem)
	})
}

// RegisterRenderers registers all renderer factories with priorities
// Safe to call more than once
func RegisterRenderers() {
	renderersOnce.Do(func() {
		registry.RegisterRenderer("grid", func(*engine.World) render.SystemRenderer {
			return renderer.NewGridRenderer()
		}, render.PriorityGrid)

		registry.RegisterRenderer("wall", func(w *engine.World) render.SystemRenderer {
			return renderer.NewWallRenderer(w)
		}, render.PriorityWall)

		registry.RegisterRenderer("glyph", func(w *engine.World) render.SystemRenderer {
			return renderer.NewGlyphRenderer(w)
		}, render.PriorityEntities)

		registry.RegisterRenderer("title", func(*engine.World) render.SystemRenderer {
			return renderer.NewTitleRenderer()
		}, render.PriorityUI)

		registry.RegisterRenderer("statusbar", func(w *engine.World) render.SystemRenderer {
			return renderer.NewStatusBarRenderer(w)
		}, render.PriorityUI)

		registry.RegisterRenderer("debug", func(w *engine.World) render.SystemRenderer {
			return renderer.NewDebugRenderer(w)
		}, render.PriorityDebug)
	})
}

// ActiveSystems returns the ordered list of systems to instantiate
// Run order within a cadence comes from each system's priority
func ActiveSystems() []string {
	return []string{
		"despawn",
		"movement",
		"collision",
		"eating",
		"respawn",
		"food",
		"diagnostics",
	}
}

// ActiveRenderers returns the ordered list of renderers to instantiate
func ActiveRenderers() []string {
	return []string{
		"grid",
		"wall",
		"glyph",
		"title",
		"statusbar",
		"debug",
	}
}
