package component

import "github.com/lixenwraith/hebi/core"

// GridPositionComponent places an entity on the playfield grid
// T is the render-side interpolation factor and does not affect simulation
type GridPositionComponent struct {
	X, Y int
	T    float64
}

// Point returns the grid cell
func (p GridPositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}
