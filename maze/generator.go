package maze

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
)

// Config describes the maze lattice
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Plaza and pillar constraints take precedence over the probability.
	Braiding float64
}

// Result holds the wall grid indexed [y][x] plus the two anchor rooms
type Result struct {
	Grid       [][]bool // true = wall
	Start, End core.Point
}

// Width returns the generated column count, may be smaller than requested
func (r Result) Width() int {
	if len(r.Grid) == 0 {
		return 0
	}
	return len(r.Grid[0])
}

// Height returns the generated row count
func (r Result) Height() int {
	return len(r.Grid)
}

var (
	stepDirs  = []core.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	orthoDirs = []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
)

// Generate carves a maze with a recursive backtracker and optionally braids it
// The stream is consumed in a fixed order so identical seeds give identical mazes
func Generate(cfg Config, rng *rand.Rand) Result {
	// Rooms live on odd coordinates; round down to stay within the requested bounds
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = true
		}
	}

	start := core.Point{X: 1, Y: 1}
	end := core.Point{X: cols - 2, Y: rows - 2}

	carve(grid, start, rng)

	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}

	grid[start.Y][start.X] = false
	grid[end.Y][end.X] = false

	return Result{Grid: grid, Start: start, End: end}
}

func carve(grid [][]bool, start core.Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []core.Point{start}
	grid[start.Y][start.X] = false

	candidates := make([]core.Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range stepDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep a one-cell wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = false
		next := core.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		grid[next.Y][next.X] = false
		stack = append(stack, next)
	}
}

// braid opens walls next to dead ends to create cycles
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if !grid[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]core.Point, 0, 4)
			for _, d := range stepDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if !grid[ny][nx] && grid[wy][wx] && canRemoveWall(grid, wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = false
			}
		}
	}
}

// canRemoveWall rejects removals that would open a 2x2 plaza or strand a pillar
func canRemoveWall(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])

	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return !grid[ty][tx]
	}

	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	for _, d := range orthoDirs {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || !grid[ny][nx] {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if ax >= 0 && ax < cols && ay >= 0 && ay < rows && grid[ay][ax] {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
