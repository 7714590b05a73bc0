package maps

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every parameter validation failure
var ErrInvalidParams = errors.New("invalid map parameters")

// Kind selects the active generator
type Kind string

const (
	KindBox       Kind = "box"
	KindCorridors Kind = "corridors"
	KindCustom    Kind = "custom"
	KindMaze      Kind = "maze"
)

// BoxParams describes a rectangular arena with optional corner wall blocks
type BoxParams struct {
	Width            int `toml:"width"`
	Height           int `toml:"height"`
	CornerWallSize   int `toml:"corner_walls"`
	CornerWallOffset int `toml:"corner_walls_offset"`
}

// DefaultBoxParams is the standard 17x13 arena with 2x2 corner blocks at offset 2
func DefaultBoxParams() BoxParams {
	return BoxParams{
		Width:            17,
		Height:           13,
		CornerWallSize:   2,
		CornerWallOffset: 2,
	}
}

// Validate enforces the minimum size the centre spawn math needs
// Corner blocks overlapping the centre are not rejected; walls then win over spawns
func (p BoxParams) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("%w: box must be at least 3x3, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.CornerWallSize < 0 || p.CornerWallOffset < 0 {
		return fmt.Errorf("%w: corner wall size and offset must not be negative", ErrInvalidParams)
	}
	return nil
}

// CorridorsParams describes a maze of alternating top- and bottom-hung teeth
type CorridorsParams struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Horizontal     bool    `toml:"horizontal"`
	CorridorWidth  int     `toml:"corridor_width"`
	CorridorHeight int     `toml:"corridor_height"`
	TopOffset      int     `toml:"top_corridor_offset"`
	BottomOffset   int     `toml:"bottom_corridor_offset"`
	WallVariance   float32 `toml:"wall_variance"`
}

// DefaultCorridorsParams returns the stock corridor layout
func DefaultCorridorsParams() CorridorsParams {
	return CorridorsParams{
		Width:          34,
		Height:         17,
		Horizontal:     false,
		CorridorWidth:  3,
		CorridorHeight: 10,
		TopOffset:      3,
		BottomOffset:   0,
		WallVariance:   0.5,
	}
}

func (p CorridorsParams) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("%w: corridors map must be at least 3x3, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.CorridorWidth < 0 || p.CorridorHeight < 0 {
		return fmt.Errorf("%w: corridor width and height must not be negative", ErrInvalidParams)
	}
	if p.WallVariance < 0 || p.WallVariance > 1 {
		return fmt.Errorf("%w: wall variance %v outside [0,1]", ErrInvalidParams, p.WallVariance)
	}
	return nil
}

// CustomParams carries an ASCII-art map
type CustomParams struct {
	Data string `toml:"data"`
}

// MazeParams describes a braided maze arena
type MazeParams struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Braiding float64 `toml:"braiding"`
}

// DefaultMazeParams returns a loosely braided maze
func DefaultMazeParams() MazeParams {
	return MazeParams{
		Width:    31,
		Height:   17,
		Braiding: 0.3,
	}
}

func (p MazeParams) Validate() error {
	if p.Width < 5 || p.Height < 5 {
		return fmt.Errorf("%w: maze must be at least 5x5, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	}
	if p.Braiding < 0 || p.Braiding > 1 {
		return fmt.Errorf("%w: braiding %v outside [0,1]", ErrInvalidParams, p.Braiding)
	}
	return nil
}

// Params is a tagged union over the map kinds; only the field named by Kind is read
type Params struct {
	Kind      Kind
	Box       BoxParams
	Corridors CorridorsParams
	Custom    CustomParams
	Maze      MazeParams
}

// DefaultParams selects the default box arena
func DefaultParams() Params {
	return Params{
		Kind:      KindBox,
		Box:       DefaultBoxParams(),
		Corridors: DefaultCorridorsParams(),
		Maze:      DefaultMazeParams(),
	}
}

// Dimensions returns the configured grid size without generating
// Custom maps report their parsed size, zero on parse failure
func (p Params) Dimensions() (int, int) {
	switch p.Kind {
	case KindCorridors:
		return p.Corridors.Width, p.Corridors.Height
	case KindCustom:
		m, err := Parse(p.Custom.Data)
		if err != nil {
			return 0, 0
		}
		return m.Width, m.Height
	case KindMaze:
		return p.Maze.Width, p.Maze.Height
	default:
		return p.Box.Width, p.Box.Height
	}
}
