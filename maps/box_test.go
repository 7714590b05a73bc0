package maps

import (
	"testing"

	"github.com/lixenwraith/hebi/core"
)

func TestGenerateBoxDefault(t *testing.T) {
	m := GenerateBox(DefaultBoxParams())

	if m.Width != 17 || m.Height != 13 {
		t.Fatalf("Expected 17x13, got %dx%d", m.Width, m.Height)
	}
	if got := m.Get(core.Point{X: 7, Y: 6}); got != Spawn(core.DirectionLeft) {
		t.Errorf("Expected left spawn at (7,6), got %+v", got)
	}
	if got := m.Get(core.Point{X: 9, Y: 6}); got != Spawn(core.DirectionRight) {
		t.Errorf("Expected right spawn at (9,6), got %+v", got)
	}

	// Corner blocks: 2x2 at offset 2 from each corner
	for _, p := range []core.Point{{2, 2}, {3, 3}, {13, 2}, {14, 3}, {2, 9}, {3, 10}, {13, 9}, {14, 10}} {
		if m.Get(p) != Wall {
			t.Errorf("Expected corner wall at %v", p)
		}
	}
	for _, p := range []core.Point{{4, 4}, {1, 1}, {12, 8}} {
		if m.Get(p) != Empty {
			t.Errorf("Expected empty at %v, got %+v", p, m.Get(p))
		}
	}
}

func TestGenerateBoxProperties(t *testing.T) {
	for w := 7; w <= 25; w++ {
		for h := 7; h <= 21; h++ {
			for size := 0; size <= 3; size++ {
				for off := 0; off <= 3; off++ {
					p := BoxParams{Width: w, Height: h, CornerWallSize: size, CornerWallOffset: off}
					if !cornersClearOfCentre(p) {
						continue
					}
					checkBox(t, p)
				}
			}
		}
	}
}

// cornersClearOfCentre reports whether no corner block covers either centre spawn
func cornersClearOfCentre(p BoxParams) bool {
	w, h, size, off := p.Width, p.Height, p.CornerWallSize, p.CornerWallOffset
	covered := func(x, y int) bool {
		inCol := (x >= off && x < off+size) || (x >= w-off-size && x < w-off)
		inRow := (y >= off && y < off+size) || (y >= h-off-size && y < h-off)
		return inCol && inRow
	}
	return !covered(w/2-1, h/2) && !covered(w/2+1, h/2)
}

func checkBox(t *testing.T, p BoxParams) {
	t.Helper()
	m := GenerateBox(p)

	for x := 0; x < p.Width; x++ {
		if m.Get(core.Point{X: x, Y: 0}) != Wall || m.Get(core.Point{X: x, Y: p.Height - 1}) != Wall {
			t.Fatalf("%+v: expected wall on horizontal border at x=%d", p, x)
		}
	}
	for y := 0; y < p.Height; y++ {
		if m.Get(core.Point{X: 0, Y: y}) != Wall || m.Get(core.Point{X: p.Width - 1, Y: y}) != Wall {
			t.Fatalf("%+v: expected wall on vertical border at y=%d", p, y)
		}
	}

	spawns := ScanSpawnPositions(m)
	if len(spawns) != 2 {
		t.Fatalf("%+v: expected 2 spawns, got %d", p, len(spawns))
	}
	left, right := spawns[0], spawns[1]
	if left.Direction != core.DirectionLeft || right.Direction != core.DirectionRight {
		t.Fatalf("%+v: expected left then right facing spawns, got %v %v", p, left.Direction, right.Direction)
	}
	if left.Position.Y != right.Position.Y || left.Position.Y != p.Height/2 {
		t.Fatalf("%+v: expected both spawns on row %d", p, p.Height/2)
	}
	if left.Position.X+right.Position.X != 2*(p.Width/2) {
		t.Fatalf("%+v: expected spawns mirrored around column %d", p, p.Width/2)
	}
}

func TestBoxParamsValidate(t *testing.T) {
	if err := (BoxParams{Width: 2, Height: 10}).Validate(); err == nil {
		t.Error("Expected error for width 2")
	}
	if err := (BoxParams{Width: 10, Height: 10, CornerWallOffset: -1}).Validate(); err == nil {
		t.Error("Expected error for negative offset")
	}
	if err := DefaultBoxParams().Validate(); err != nil {
		t.Errorf("Expected default params valid, got %v", err)
	}
}
