package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputPollBuffer is the capacity of the key event channel between poller and frame loop
	InputPollBuffer = 32

	// MaxCatchUpTicks bounds how many movement ticks one Advance may run
	// Beyond it the scheduler drops the backlog instead of fast-forwarding the game
	MaxCatchUpTicks = 8
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the output event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
