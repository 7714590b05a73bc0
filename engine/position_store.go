package engine

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/hebi/component"
	"github.com/lixenwraith/hebi/core"
)

// PositionStore is a GridPosition store with a spatial index kept in step with it
// Several entities may share a cell (a head entering a wall, a dying segment under food)
type PositionStore struct {
	*Store[component.GridPositionComponent]

	spatialMu sync.RWMutex
	index     map[core.Point][]core.Entity
	occupied  mapset.Set[core.Point]
}

// NewPositionStore creates a new position store with spatial indexing
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:    NewStore[component.GridPositionComponent](),
		index:    make(map[core.Point][]core.Entity),
		occupied: mapset.New[core.Point](),
	}
}

// Set places an entity, moving it out of its previous cell in the index
func (ps *PositionStore) Set(e core.Entity, pos component.GridPositionComponent) {
	ps.spatialMu.Lock()
	defer ps.spatialMu.Unlock()

	if old, ok := ps.Store.Get(e); ok {
		ps.unindex(e, old.Point())
	}
	ps.Store.Set(e, pos)
	ps.indexAt(e, pos.Point())
}

// Move relocates an entity keeping its interpolation factor
// Returns false when the entity has no position
func (ps *PositionStore) Move(e core.Entity, p core.Point) bool {
	ps.spatialMu.Lock()
	defer ps.spatialMu.Unlock()

	pos, ok := ps.Store.Get(e)
	if !ok {
		return false
	}
	ps.unindex(e, pos.Point())
	pos.X, pos.Y = p.X, p.Y
	ps.Store.Set(e, pos)
	ps.indexAt(e, p)
	return true
}

// Remove deletes the position and its index entry
func (ps *PositionStore) Remove(e core.Entity) {
	ps.spatialMu.Lock()
	defer ps.spatialMu.Unlock()

	if pos, ok := ps.Store.Get(e); ok {
		ps.unindex(e, pos.Point())
	}
	ps.Store.Remove(e)
}

// Clear empties both the store and the index
func (ps *PositionStore) Clear() {
	ps.spatialMu.Lock()
	defer ps.spatialMu.Unlock()

	ps.Store.Clear()
	ps.index = make(map[core.Point][]core.Entity)
	ps.occupied.Clear()
}

// EntitiesAt returns the entities in a cell in placement order
func (ps *PositionStore) EntitiesAt(p core.Point) []core.Entity {
	ps.spatialMu.RLock()
	defer ps.spatialMu.RUnlock()

	cell := ps.index[p]
	if len(cell) == 0 {
		return nil
	}
	out := make([]core.Entity, len(cell))
	copy(out, cell)
	return out
}

// IsOccupied reports whether any entity sits in the cell
func (ps *PositionStore) IsOccupied(p core.Point) bool {
	ps.spatialMu.RLock()
	defer ps.spatialMu.RUnlock()
	return ps.occupied.Has(p)
}

// OccupiedCells returns a snapshot of every cell holding at least one entity
func (ps *PositionStore) OccupiedCells() mapset.Set[core.Point] {
	ps.spatialMu.RLock()
	defer ps.spatialMu.RUnlock()

	out := mapset.New[core.Point]()
	ps.occupied.Each(out.Put)
	return out
}

func (ps *PositionStore) indexAt(e core.Entity, p core.Point) {
	ps.index[p] = append(ps.index[p], e)
	ps.occupied.Put(p)
}

func (ps *PositionStore) unindex(e core.Entity, p core.Point) {
	cell := ps.index[p]
	for i, other := range cell {
		if other == e {
			cell = append(cell[:i], cell[i+1:]...)
			break
		}
	}
	if len(cell) == 0 {
		delete(ps.index, p)
		ps.occupied.Remove(p)
		return
	}
	ps.index[p] = cell
}
