package maps

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/hebi/core"
)

var (
	// ErrUnknownCell is returned for any symbol outside the custom map alphabet
	ErrUnknownCell = errors.New("unknown cell symbol")
	// ErrDimensionTooLarge is returned when a row or column index overflows MaxDimension
	ErrDimensionTooLarge = errors.New("dimension too large")
)

// MaxDimension bounds custom map rows and columns
const MaxDimension = math.MaxUint32

var symbolCells = map[rune]Cell{
	' ': Empty,
	'#': Wall,
	'^': Spawn(core.DirectionUp),
	'v': Spawn(core.DirectionDown),
	'<': Spawn(core.DirectionLeft),
	'>': Spawn(core.DirectionRight),
}

// Parse reads an ASCII-art map: '#' wall, '^' 'v' '<' '>' spawns, ' ' empty
// Lines may be ragged; width and height are the largest column and row seen plus one
func Parse(data string) (MapData, error) {
	m := NewMapData(0, 0)
	if data == "" {
		return m, nil
	}

	lines := strings.Split(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for row, line := range lines {
		if uint64(row) >= MaxDimension {
			return MapData{}, fmt.Errorf("vertical %w", ErrDimensionTooLarge)
		}
		line = strings.TrimSuffix(line, "\r")

		col := 0
		for _, r := range line {
			if uint64(col) >= MaxDimension {
				return MapData{}, fmt.Errorf("horizontal %w", ErrDimensionTooLarge)
			}
			c, ok := symbolCells[r]
			if !ok {
				return MapData{}, fmt.Errorf("%w %q at row %d column %d", ErrUnknownCell, r, row, col)
			}
			m.Cells[core.Point{X: col, Y: row}] = c
			m.Width = max(m.Width, col+1)
			m.Height = max(m.Height, row+1)
			col++
		}
	}
	return m, nil
}

// Format renders a grid back into the custom map alphabet, one full-width row per line
func Format(m MapData) string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			sb.WriteRune(Symbol(m.Get(core.Point{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Symbol returns the custom map character for a cell
func Symbol(c Cell) rune {
	switch c.Kind {
	case CellWall:
		return '#'
	case CellSpawn:
		switch c.Direction {
		case core.DirectionUp:
			return '^'
		case core.DirectionDown:
			return 'v'
		case core.DirectionLeft:
			return '<'
		default:
			return '>'
		}
	}
	return ' '
}
