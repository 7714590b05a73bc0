package engine

import (
	"sync"

	"github.com/lixenwraith/hebi/core"
)

// Store is a generic container for a specific component type T
// Sparse set: map for lookup, dense slice for ordered iteration
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or replaces the component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity, no-op when absent
// Removal is order-preserving so iteration stays deterministic across runs
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns a snapshot of entities with this component in insertion order
// Safe to mutate the store while ranging over the result
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}
