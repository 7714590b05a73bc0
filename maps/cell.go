package maps

import (
	"sort"

	"github.com/lixenwraith/hebi/core"
)

// CellKind classifies one grid coordinate
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellSpawn
)

// Cell is a tagged variant: Empty, Wall, or Spawn facing Direction
// Direction is meaningful only for CellSpawn
type Cell struct {
	Kind      CellKind
	Direction core.Direction
}

var (
	Empty = Cell{Kind: CellEmpty}
	Wall  = Cell{Kind: CellWall}
)

// Spawn returns a spawn marker facing d
func Spawn(d core.Direction) Cell {
	return Cell{Kind: CellSpawn, Direction: d}
}

// MapData is a sparse grid; absent coordinates are Empty
// All keys satisfy 0 <= x < Width, 0 <= y < Height
type MapData struct {
	Width  int
	Height int
	Cells  map[core.Point]Cell
}

// NewMapData creates an empty grid of the given size
func NewMapData(width, height int) MapData {
	return MapData{
		Width:  width,
		Height: height,
		Cells:  make(map[core.Point]Cell),
	}
}

// Get returns the cell at p, Empty when unset
func (m MapData) Get(p core.Point) Cell {
	if c, ok := m.Cells[p]; ok {
		return c
	}
	return Empty
}

// set writes a cell, ignoring coordinates outside the grid
func (m MapData) set(p core.Point, c Cell) {
	if !p.In(m.Width, m.Height) {
		return
	}
	m.Cells[p] = c
}

// Iter calls fn for every stored cell in row-major order
func (m MapData) Iter(fn func(p core.Point, c Cell)) {
	keys := make([]core.Point, 0, len(m.Cells))
	for p := range m.Cells {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	for _, p := range keys {
		fn(p, m.Cells[p])
	}
}

// Count returns how many stored cells have the given kind
func (m MapData) Count(kind CellKind) int {
	n := 0
	for _, c := range m.Cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (m MapData) Clone() MapData {
	out := NewMapData(m.Width, m.Height)
	for p, c := range m.Cells {
		out.Cells[p] = c
	}
	return out
}

// Equal reports whether both grids classify every coordinate the same way
// Explicit Empty cells and absent cells compare equal
func (m MapData) Equal(o MapData) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for p, c := range m.Cells {
		if o.Get(p) != c {
			return false
		}
	}
	for p, c := range o.Cells {
		if m.Get(p) != c {
			return false
		}
	}
	return true
}
