package component

// GlyphKind selects how the renderer draws an entity
type GlyphKind uint8

const (
	GlyphWall GlyphKind = iota
	GlyphHead
	GlyphSegment
	GlyphFood
)

// GlyphComponent is render-only appearance, assigned at spawn and kept through despawn
// Variant indexes the food palette and is ignored for other kinds
type GlyphComponent struct {
	Kind    GlyphKind
	Variant int
}
