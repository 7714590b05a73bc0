package maps

import (
	"sort"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
)

// GenerateCorridors builds a corridor maze of alternating top- and bottom-hung teeth
// Callers validate params. The stream is read in scan order: per column, the top
// tooth length is drawn before the bottom one, and gap rows as blocked runs begin
func GenerateCorridors(p CorridorsParams, rng *rand.Rand) MapData {
	// Horizontal layouts are generated upright on swapped dimensions, then transposed
	width, height := p.Width, p.Height
	if p.Horizontal {
		width, height = p.Height, p.Width
	}
	cw := p.CorridorWidth

	cells := make(map[core.Point]Cell, width*height)
	topHeights := make(map[int]int)
	bottomHeights := make(map[int]int)

	// Tooth length is cached per column so repeat lookups within a scan are stable
	wallHeight := func(cache map[int]int, x int) int {
		if h, ok := cache[x]; ok {
			return h
		}
		ch := float32(p.CorridorHeight)
		v := p.WallVariance
		f := ch*(1-v) + ch*v*rng.Float32()
		h := 0
		if f > 0 {
			h = int(f)
		}
		cache[x] = h
		return h
	}

	isTooth := func(x, offset int) bool {
		return (x-offset)%(cw+1) == 0 && x > 2 && x < width-cw-1
	}

	gap := 1
	blocked := false
	for x := 0; x < width; x++ {
		previouslyBlocked := blocked
		blocked = true

		for y := 0; y < height; y++ {
			pt := core.Point{X: x, Y: y}
			// Short-circuit order matters: it decides when tooth lengths are drawn
			wall := x == 0 || x == width-1 || y == 0 || y == height-1 ||
				(isTooth(x, p.TopOffset) && y < wallHeight(topHeights, x)+1) ||
				(isTooth(x, p.BottomOffset) && y > height-wallHeight(bottomHeights, x)-2)
			if wall {
				cells[pt] = Wall
			} else {
				blocked = false
				cells[pt] = Empty
			}
		}

		// A fully walled column gets one forced gap. The gap row is kept while the
		// blocked run continues so consecutive blocked columns form a straight passage
		// instead of a chain of single-cell chokepoints
		if blocked && x > 0 && x < width-1 {
			if !previouslyBlocked {
				gap = 1 + rng.Intn(height-2)
			}
			cells[core.Point{X: x, Y: gap}] = Empty
		}
	}

	bottomFacing, topFacing := core.DirectionUp, core.DirectionDown
	if p.Horizontal {
		bottomFacing, topFacing = core.DirectionLeft, core.DirectionRight
	}

	notch := func(x, y, spawnY int, facing core.Direction) {
		if y <= 0 || y >= height-1 {
			return
		}
		for dx := -1; dx <= 1; dx++ {
			cells[core.Point{X: x + dx, Y: y}] = Empty
		}
		if spawnY > 0 && spawnY < height-1 {
			cells[core.Point{X: x + 1, Y: spawnY}] = Spawn(facing)
		}
	}

	for _, x := range sortedKeys(bottomHeights) {
		notch(x, height-bottomHeights[x]-2, height-3, bottomFacing)
	}
	for _, x := range sortedKeys(topHeights) {
		notch(x, topHeights[x]+1, 2, topFacing)
	}

	m := NewMapData(p.Width, p.Height)
	for pt, c := range cells {
		if p.Horizontal {
			pt = core.Point{X: pt.Y, Y: pt.X}
		}
		m.set(pt, c)
	}
	return m
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
