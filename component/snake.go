package component

import (
	"github.com/lixenwraith/hebi/core"
)

// SnakeHeadComponent holds steering state and the body chain of a live snake
type SnakeHeadComponent struct {
	Direction     core.Direction
	NextDirection core.Direction // Applied at the start of the next movement tick

	// Body entities ordered head to tail
	Segments []core.Entity
}

// Steer buffers d unless it reverses the current heading
// Returns false when the input was rejected
func (h *SnakeHeadComponent) Steer(d core.Direction) bool {
	if d == h.Direction.Opposite() {
		return false
	}
	h.NextDirection = d
	return true
}

// SnakeSegmentComponent tags a live body segment
// Removed on death while the entity fades out
type SnakeSegmentComponent struct {
	Head core.Entity
}
