package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	destroyed    atomic.Int64

	// Singleton resources
	Resources *Resource

	// Position Store (special - spatial index, kept as named field)
	Components ComponentStore
	Positions  *PositionStore

	eventQueue *event.EventQueue
	allStores  []AnyStore
	systems    []System
}

// NewWorld creates an empty world with its stores, time and status resources
// Session resources (config, spawns, streams) are filled in by the caller
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources: &Resource{
			Time:    &TimeResource{},
			Config:  &ConfigResource{},
			Respawn: &RespawnResource{},
			Spawn:   &SpawnResource{},
			Rand:    &RandResource{},
			Input:   &InputResource{},
			Status:  status.NewRegistry(),
		},
		Components: newComponentStore(),
		Positions:  NewPositionStore(),
		eventQueue: event.NewEventQueue(),
	}
	w.allStores = append(w.Components.stores(), w.Positions)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an unknown or already destroyed entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	alive := false
	for _, s := range w.allStores {
		if s.Has(e) {
			alive = true
			s.Remove(e)
		}
	}
	if alive {
		w.destroyed.Add(1)
	}
}

// CreatedCount returns the number of entity IDs handed out
func (w *World) CreatedCount() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int64(w.nextEntityID - 1)
}

// DestroyedCount returns the number of live entities destroyed
func (w *World) DestroyedCount() int64 {
	return w.destroyed.Load()
}

// Alive reports whether any store still holds the entity
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, s := range w.allStores {
		s.Clear()
	}
	w.nextEntityID = 1
	w.destroyed.Store(0)
}

// AddSystem registers a system, keeping systems ordered by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent emits an output event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// ConsumeEvents drains pending output events in emission order
func (w *World) ConsumeEvents() []event.GameEvent {
	return w.eventQueue.Consume()
}

// EventQueue exposes the output queue for diagnostics
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}
