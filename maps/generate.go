package maps

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Generate produces the grid for the active kind
// Output is a pure function of params and the stream state; Custom ignores the stream
func Generate(p Params, rng *rand.Rand) (MapData, error) {
	switch p.Kind {
	case KindBox, "":
		if err := p.Box.Validate(); err != nil {
			return MapData{}, err
		}
		return GenerateBox(p.Box), nil
	case KindCorridors:
		if err := p.Corridors.Validate(); err != nil {
			return MapData{}, err
		}
		return GenerateCorridors(p.Corridors, rng), nil
	case KindCustom:
		return Parse(p.Custom.Data)
	case KindMaze:
		if err := p.Maze.Validate(); err != nil {
			return MapData{}, err
		}
		return GenerateMaze(p.Maze, rng), nil
	}
	return MapData{}, fmt.Errorf("%w: unknown map kind %q", ErrInvalidParams, p.Kind)
}
