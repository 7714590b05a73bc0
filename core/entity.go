package core

// Entity is a stable handle into the world's component stores
// Zero is never issued and means "no entity"
type Entity uint64

// Point represents a 2D grid coordinate, y grows downward
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both axes by n
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// In reports whether p lies within [0,width)x[0,height)
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
