package engine

// Cadence selects which scheduler pass runs a system
type Cadence uint8

const (
	// CadenceFrame runs once per Advance, before any tick
	CadenceFrame Cadence = iota
	// CadenceTick runs on every fixed movement tick
	CadenceTick
	// CadenceFood runs every FoodTicks movement ticks, after that tick's systems
	CadenceFood
)

// System is one stage of the simulation pipeline
// Lower Priority runs first within a cadence
type System interface {
	Name() string
	Priority() int
	Cadence() Cadence
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
	Positions *PositionStore
}

// NewSystemBase initializes base dependency from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
		Positions: w.Positions,
	}
}
