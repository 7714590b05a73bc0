package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestBufferClearResetsCells(t *testing.T) {
	b := NewRenderBuffer(5, 3)
	b.SetWithBg(2, 1, 'x', RgbSnake, RgbWall)
	b.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if got := b.Get(x, y); got != emptyCell {
				t.Errorf("Expected empty cell at (%d,%d), got %+v", x, y, got)
			}
		}
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	b := NewRenderBuffer(2, 2)
	b.SetWithBg(-1, 0, 'x', RgbSnake, RgbWall)
	b.SetFgOnly(2, 0, 'x', RgbSnake)
	b.SetBgOnly(0, 2, RgbWall)
	b.SetAlpha(5, 5, 'x', RgbSnake, 1)

	if got := b.Get(-1, 0); got != emptyCell {
		t.Errorf("Expected empty cell for out-of-bounds read, got %+v", got)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := b.Get(x, y); got != emptyCell {
				t.Errorf("Expected untouched cell at (%d,%d), got %+v", x, y, got)
			}
		}
	}
}

func TestBufferLayering(t *testing.T) {
	b := NewRenderBuffer(3, 1)
	b.SetBgOnly(0, 0, RgbGridBackground)
	b.SetFgOnly(0, 0, 'a', RgbSnake)

	got := b.Get(0, 0)
	if got.Rune != 'a' || got.Fg != RgbSnake || got.Bg != RgbGridBackground {
		t.Errorf("Expected fg over preserved bg, got %+v", got)
	}

	b.SetAlpha(1, 0, 'b', RgbSnake, 0)
	if got := b.Get(1, 0); got.Fg != RgbBackground {
		t.Errorf("Expected zero alpha to show background, got %+v", got.Fg)
	}
	b.SetAlpha(2, 0, 'c', RgbSnake, 1)
	if got := b.Get(2, 0); got.Fg != RgbSnake {
		t.Errorf("Expected full alpha to show source, got %+v", got.Fg)
	}
}

func TestBufferSetTextReturnsNextColumn(t *testing.T) {
	b := NewRenderBuffer(10, 1)
	next := b.SetText(2, 0, "héb", RgbTitle, RgbBackground)
	if next != 5 {
		t.Errorf("Expected next column 5, got %d", next)
	}
	if b.Get(3, 0).Rune != 'é' {
		t.Errorf("Expected rune-wise placement, got %q", b.Get(3, 0).Rune)
	}
}

func TestBufferResizeKeepsCapacity(t *testing.T) {
	b := NewRenderBuffer(10, 10)
	b.Resize(4, 2)
	if w, h := b.Size(); w != 4 || h != 2 {
		t.Errorf("Expected 4x2, got %dx%d", w, h)
	}
	b.Resize(-3, 2)
	if w, h := b.Size(); w != 0 || h != 2 {
		t.Errorf("Expected negative width clamped to 0, got %dx%d", w, h)
	}
}

func TestBufferFlushToScreen(t *testing.T) {
	screen := newSimScreen(t, 3, 1)
	b := NewRenderBuffer(3, 1)
	b.SetWithBg(1, 0, '#', RgbWall, RgbGridBackground)
	b.FlushToScreen(screen)
	screen.Show()

	cells, w, h := screen.GetContents()
	if w != 3 || h != 1 {
		t.Fatalf("Expected 3x1 screen, got %dx%d", w, h)
	}
	if len(cells[0].Runes) == 0 || cells[0].Runes[0] != ' ' {
		t.Errorf("Expected cleared cell flushed as space, got %v", cells[0].Runes)
	}
	if cells[1].Runes[0] != '#' {
		t.Errorf("Expected '#', got %q", cells[1].Runes[0])
	}
	fg, bg, _ := cells[1].Style.Decompose()
	if fg != RgbWall.TCell() || bg != RgbGridBackground.TCell() {
		t.Errorf("Expected wall colors, got fg=%v bg=%v", fg, bg)
	}
}

func TestBlendEndpointsAndMidpoint(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{255, 255, 255}

	if got := Blend(a, b, 0); got != a {
		t.Errorf("Expected dst at alpha 0, got %+v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Expected src at alpha 1, got %+v", got)
	}
	mid := Blend(a, b, 0.5)
	if mid.R <= 127 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Expected linear-light grey brighter than 127, got %+v", mid)
	}
}

func TestParseHex(t *testing.T) {
	if got := ParseHex("#ff5555"); got != (RGB{255, 85, 85}) {
		t.Errorf("Expected {255 85 85}, got %+v", got)
	}
	if got := ParseHex("nope"); got != RGBBlack {
		t.Errorf("Expected black for malformed input, got %+v", got)
	}
}

func TestFoodColorWraps(t *testing.T) {
	n := len(rgbFood)
	if FoodColor(n) != FoodColor(0) || FoodColor(-1) != FoodColor(n-1) {
		t.Error("Expected food variants to wrap in both directions")
	}
}
