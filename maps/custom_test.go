package maps

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
)

func TestParseBasic(t *testing.T) {
	m, err := Parse("#####\n# > #\n#^ v#\n#####\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Width != 5 || m.Height != 4 {
		t.Fatalf("Expected 5x4, got %dx%d", m.Width, m.Height)
	}
	if got := m.Get(core.Point{X: 2, Y: 1}); got != Spawn(core.DirectionRight) {
		t.Errorf("Expected right spawn at (2,1), got %+v", got)
	}
	if got := m.Get(core.Point{X: 1, Y: 2}); got != Spawn(core.DirectionUp) {
		t.Errorf("Expected up spawn at (1,2), got %+v", got)
	}
	if got := m.Count(CellWall); got != 14 {
		t.Errorf("Expected 14 walls, got %d", got)
	}
}

func TestParseRaggedAndCRLF(t *testing.T) {
	m, err := Parse("###\r\n#\r\n#####")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Width != 5 || m.Height != 3 {
		t.Fatalf("Expected 5x3, got %dx%d", m.Width, m.Height)
	}
	// Cells past a short line default to empty
	if got := m.Get(core.Point{X: 3, Y: 1}); got != Empty {
		t.Errorf("Expected empty past ragged line, got %+v", got)
	}
}

func TestParseUnknownSymbol(t *testing.T) {
	_, err := Parse("###\n#x#\n###\n")
	if !errors.Is(err, ErrUnknownCell) {
		t.Fatalf("Expected ErrUnknownCell, got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "'x'") || !strings.Contains(msg, "row 1 column 1") {
		t.Errorf("Expected symbol and location in error, got %q", msg)
	}
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Width != 0 || m.Height != 0 || len(m.Cells) != 0 {
		t.Errorf("Expected empty map, got %dx%d with %d cells", m.Width, m.Height, len(m.Cells))
	}
}

func TestFormatRoundTrip(t *testing.T) {
	sources := []MapData{
		GenerateBox(DefaultBoxParams()),
		GenerateCorridors(DefaultCorridorsParams(), rand.New(rand.NewSource(3))),
		GenerateMaze(DefaultMazeParams(), rand.New(rand.NewSource(3))),
	}
	for i, src := range sources {
		parsed, err := Parse(Format(src))
		if err != nil {
			t.Fatalf("source %d: unexpected error: %v", i, err)
		}
		if parsed.Width != src.Width || parsed.Height != src.Height {
			t.Fatalf("source %d: expected %dx%d, got %dx%d", i, src.Width, src.Height, parsed.Width, parsed.Height)
		}
		if !parsed.Equal(src) {
			t.Errorf("source %d: round trip changed the grid", i)
		}
	}
}

func TestGenerateCustomKind(t *testing.T) {
	p := Params{Kind: KindCustom, Custom: CustomParams{Data: "#####\n#< >#\n#####\n"}}
	m, err := Generate(p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := len(ScanSpawnPositions(m)); got != 2 {
		t.Errorf("Expected 2 spawns, got %d", got)
	}

	p.Custom.Data = "#?#"
	if _, err := Generate(p, rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("Expected ErrUnknownCell, got %v", err)
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	_, err := Generate(Params{Kind: "spiral"}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Expected ErrInvalidParams, got %v", err)
	}
}
