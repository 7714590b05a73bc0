package maps

import "github.com/lixenwraith/hebi/core"

// GenerateBox builds a walled rectangle with four corner blocks and two centre spawns
// Callers validate params; width and height must be at least 3
func GenerateBox(p BoxParams) MapData {
	w, h := p.Width, p.Height
	size, off := p.CornerWallSize, p.CornerWallOffset
	m := NewMapData(w, h)

	inLeft := func(x int) bool { return x >= off && x < off+size }
	inRight := func(x int) bool { return x >= w-off-size && x < w-off }
	inTop := func(y int) bool { return y >= off && y < off+size }
	inBottom := func(y int) bool { return y >= h-off-size && y < h-off }

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			pt := core.Point{X: x, Y: y}
			switch {
			case x == 0 || x == w-1 || y == 0 || y == h-1,
				(inLeft(x) || inRight(x)) && (inTop(y) || inBottom(y)):
				m.Cells[pt] = Wall
			case x == w/2-1 && y == h/2:
				m.Cells[pt] = Spawn(core.DirectionLeft)
			case x == w/2+1 && y == h/2:
				m.Cells[pt] = Spawn(core.DirectionRight)
			default:
				m.Cells[pt] = Empty
			}
		}
	}
	return m
}
