package maps

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/maze"
)

// GenerateMaze lays a braided maze on the grid with spawns at its two anchor rooms
// The maze lattice rounds even sizes down; the extra row or column stays Empty
func GenerateMaze(p MazeParams, rng *rand.Rand) MapData {
	res := maze.Generate(maze.Config{Width: p.Width, Height: p.Height, Braiding: p.Braiding}, rng)
	m := NewMapData(p.Width, p.Height)

	for y, row := range res.Grid {
		for x, wall := range row {
			pt := core.Point{X: x, Y: y}
			if wall {
				m.set(pt, Wall)
			} else {
				m.set(pt, Empty)
			}
		}
	}

	for _, anchor := range []core.Point{res.Start, res.End} {
		m.set(anchor, Spawn(openFacing(res, anchor)))
	}
	return m
}

// openFacing picks the first heading from anchor that leads into a passage
func openFacing(res maze.Result, anchor core.Point) core.Direction {
	for _, d := range []core.Direction{core.DirectionRight, core.DirectionDown, core.DirectionLeft, core.DirectionUp} {
		n := anchor.Add(d.Vector())
		if n.X < 0 || n.Y < 0 || n.Y >= res.Height() || n.X >= res.Width() {
			continue
		}
		if !res.Grid[n.Y][n.X] {
			return d
		}
	}
	return core.DirectionRight
}
