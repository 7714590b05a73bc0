package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/maps"
	"github.com/lixenwraith/hebi/status"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time    *TimeResource
	Config  *ConfigResource
	Respawn *RespawnResource
	Spawn   *SpawnResource
	Rand    *RandResource
	Input   *InputResource

	// Telemetry
	Status *status.Registry
}

// TimeResource is the simulation clock as seen by systems
// The scheduler sets Now to the frame time for frame systems and to the
// scheduled tick time for tick systems
type TimeResource struct {
	Now         time.Duration
	DeltaTime   time.Duration
	FrameNumber int64
	TickNumber  int64
}

// ConfigResource holds the session's simulation settings
type ConfigResource struct {
	Width, Height int

	TickLength      time.Duration
	FoodTicks       int
	SpawnSegments   int
	DespawnInterval time.Duration
	RespawnDelay    time.Duration
}

// RespawnResource schedules the next snake spawn
// Zero value is due immediately, so the first tick spawns a snake
type RespawnResource struct {
	Time      time.Duration
	Completed bool
}

// SpawnResource is the spawn position registry derived from the map
type SpawnResource struct {
	Positions []maps.SpawnPosition
}

// RandResource holds the per-concern streams; each is owned by one system
type RandResource struct {
	Spawn *rand.Rand
	Food  *rand.Rand
}

// InputResource buffers directional input between movement ticks
type InputResource struct {
	Pending []core.Direction
}

// Push queues a direction for the next movement tick
func (r *InputResource) Push(d core.Direction) {
	r.Pending = append(r.Pending, d)
}

// Drain returns and clears the queued directions
func (r *InputResource) Drain() []core.Direction {
	out := r.Pending
	r.Pending = nil
	return out
}
