package core

// Direction is one of the four grid headings
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// Opposite returns the reverse heading, Opposite(Opposite(d)) == d
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	default:
		return DirectionUp
	}
}

// Vector returns the unit displacement in screen coordinates
func (d Direction) Vector() Point {
	switch d {
	case DirectionLeft:
		return Point{X: -1}
	case DirectionRight:
		return Point{X: 1}
	case DirectionUp:
		return Point{Y: -1}
	default:
		return Point{Y: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "unknown"
}
