package maps

import "github.com/lixenwraith/hebi/core"

// SpawnPosition is a location and facing eligible for a new snake head
type SpawnPosition struct {
	Position  core.Point
	Direction core.Direction
}

// ScanSpawnPositions collects every Spawn cell in row-major order
// No dedup: each marker is one candidate for uniform selection
func ScanSpawnPositions(m MapData) []SpawnPosition {
	var out []SpawnPosition
	m.Iter(func(p core.Point, c Cell) {
		if c.Kind == CellSpawn {
			out = append(out, SpawnPosition{Position: p, Direction: c.Direction})
		}
	})
	return out
}
