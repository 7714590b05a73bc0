package render

import (
	"github.com/gdamore/tcell/v2"
)

// RenderBuffer is a compositor of cells flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields the empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFgOnly writes rune and foreground, preserving the existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetAlpha writes rune and a foreground blended over the cell's current background
func (b *RenderBuffer) SetAlpha(x, y int, r rune, fg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = Blend(dst.Bg, fg, alpha)
}

// SetText writes s left to right starting at (x, y) and returns the next column
func (b *RenderBuffer) SetText(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		b.SetWithBg(x, y, r, fg, bg)
		x++
	}
	return x
}

// FlushToScreen copies the buffer to the screen; the caller calls Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell())
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
