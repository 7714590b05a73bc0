package visual

// Each grid cell spans CellWidth terminal columns to keep cells roughly square
const CellWidth = 2

// Cell glyphs, one rune per terminal column
var (
	GlyphWall    = [CellWidth]rune{'█', '█'}
	GlyphHead    = [CellWidth]rune{'█', '█'}
	GlyphSegment = [CellWidth]rune{'▓', '▓'}
	GlyphFood    = [CellWidth]rune{'◀', '▶'}

	// Drawn once a fading entity has grown past FadeWideScale
	GlyphFadeWide = [CellWidth]rune{'░', '░'}
)

const FadeWideScale = 1.5

// Body gradient: the tail end is darkened toward the background by this much
const SnakeBodyTailDarken = 0.45
