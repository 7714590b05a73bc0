package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
)

// ParseHex converts "#rrggbb" to RGB; malformed input yields black
func ParseHex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack
	}
	return FromColorful(c)
}

// FromColorful clamps a colorful.Color into 8-bit channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful returns the color as a go-colorful value
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// TCell converts to a true-color tcell color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
// Interpolates in linear RGB so fades do not dip through muddy midtones
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return FromColorful(dst.Colorful().BlendLinearRgb(src.Colorful(), alpha))
}
