package render

import "github.com/lixenwraith/hebi/parameter/visual"

// Resolved theme colors
var (
	RgbBackground     = ParseHex(visual.HexBackground)
	RgbGridBackground = ParseHex(visual.HexGridBackground)
	RgbWall           = ParseHex(visual.HexWall)
	RgbSnake          = ParseHex(visual.HexSnake)
	RgbTitle          = ParseHex(visual.HexTitle)
	RgbPaused         = ParseHex(visual.HexPaused)
	RgbMuted          = ParseHex(visual.HexMuted)
	RgbDebug          = ParseHex(visual.HexDebug)
	RgbForeground     = ParseHex(visual.HexForeground)
)

var rgbFood = func() []RGB {
	out := make([]RGB, len(visual.HexFood))
	for i, h := range visual.HexFood {
		out[i] = ParseHex(h)
	}
	return out
}()

// FoodColor returns the palette color for a food variant, wrapping out-of-range indices
func FoodColor(variant int) RGB {
	n := len(rgbFood)
	return rgbFood[((variant%n)+n)%n]
}
