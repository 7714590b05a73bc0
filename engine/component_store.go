package engine

import (
	"github.com/lixenwraith/hebi/component"
)

// ComponentStore groups the typed stores systems work with
// Pointers are fixed at world creation and stay valid for its lifetime
type ComponentStore struct {
	// Snake
	Head    *Store[component.SnakeHeadComponent]
	Segment *Store[component.SnakeSegmentComponent]

	// Level
	Collidable *Store[component.CollidableComponent]
	Wall       *Store[component.WallComponent]
	Food       *Store[component.FoodComponent]

	// Lifecycle
	Despawning *Store[component.DespawningComponent]

	// Render-only
	Glyph *Store[component.GlyphComponent]
	Fade  *Store[component.FadeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Head:       NewStore[component.SnakeHeadComponent](),
		Segment:    NewStore[component.SnakeSegmentComponent](),
		Collidable: NewStore[component.CollidableComponent](),
		Wall:       NewStore[component.WallComponent](),
		Food:       NewStore[component.FoodComponent](),
		Despawning: NewStore[component.DespawningComponent](),
		Glyph:      NewStore[component.GlyphComponent](),
		Fade:       NewStore[component.FadeComponent](),
	}
}

// stores lists every store for uniform entity destruction
func (c ComponentStore) stores() []AnyStore {
	return []AnyStore{
		c.Head,
		c.Segment,
		c.Collidable,
		c.Wall,
		c.Food,
		c.Despawning,
		c.Glyph,
		c.Fade,
	}
}
