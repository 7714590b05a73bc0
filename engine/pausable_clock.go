package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time since start, excluding paused spans
type PausableClock struct {
	mu       sync.Mutex
	provider TimeProvider

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock starts a clock at the provider's current time
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns game time since start; frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	end := pc.provider.Now()
	if pc.paused {
		end = pc.pauseStart
	}
	return end.Sub(pc.start) - pc.totalPaused
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		pc.paused = true
		pc.pauseStart = pc.provider.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		pc.paused = false
		pc.totalPaused += pc.provider.Now().Sub(pc.pauseStart)
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}
