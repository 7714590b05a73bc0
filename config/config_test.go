package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/maps"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.TickLength != 200*time.Millisecond {
		t.Errorf("Expected tick 200ms, got %v", c.TickLength)
	}
	if c.FoodTicks != 16 || c.SnakeSpawnSegments != 2 {
		t.Errorf("Expected food_ticks 16 and 2 segments, got %d/%d", c.FoodTicks, c.SnakeSpawnSegments)
	}
	if c.SegmentDespawnDelay != 100*time.Millisecond || c.SnakeRespawnDelay != 500*time.Millisecond {
		t.Errorf("Expected 100ms/500ms, got %v/%v", c.SegmentDespawnDelay, c.SnakeRespawnDelay)
	}
	if c.Map.Kind != maps.KindBox || c.Map.Box != maps.DefaultBoxParams() {
		t.Errorf("Expected default box, got %+v", c.Map)
	}
	if c.Seed == 0 {
		t.Error("Expected a random seed to be chosen")
	}
	if got := c.AudioPath(core.SoundEat); got != filepath.Join("assets/sounds", "eat.wav") {
		t.Errorf("Expected eat.wav under sounds dir, got %q", got)
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
seed = 42
tick_length = 0.1
food_ticks = 4
snake_spawn_segments = 5
snake_segment_despawn_interval = 0.05
snake_respawn_delay = 1.5
eat_audio = "munch.wav"
sounds_dir = "sfx"

[map]
type = "corridors"
width = 40
horizontal = true
wall_variance = 0.25
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", c.Seed)
	}
	if c.TickLength != 100*time.Millisecond || c.FoodTicks != 4 || c.SnakeSpawnSegments != 5 {
		t.Errorf("Expected overrides applied, got %v %d %d", c.TickLength, c.FoodTicks, c.SnakeSpawnSegments)
	}
	if c.SegmentDespawnDelay != 50*time.Millisecond || c.SnakeRespawnDelay != 1500*time.Millisecond {
		t.Errorf("Expected 50ms/1.5s, got %v/%v", c.SegmentDespawnDelay, c.SnakeRespawnDelay)
	}
	if got := c.AudioPath(core.SoundEat); got != filepath.Join("sfx", "munch.wav") {
		t.Errorf("Expected sfx/munch.wav, got %q", got)
	}
	if got := c.AudioPath(core.SoundDestroy); got != filepath.Join("sfx", "destroy.wav") {
		t.Errorf("Expected default destroy asset, got %q", got)
	}

	want := maps.DefaultCorridorsParams()
	want.Width = 40
	want.Horizontal = true
	want.WallVariance = 0.25
	if c.Map.Kind != maps.KindCorridors || c.Map.Corridors != want {
		t.Errorf("Expected %+v, got %+v", want, c.Map.Corridors)
	}
}

func TestParseMapKinds(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind maps.Kind
	}{
		{"absent type", "[map]\nwidth = 21\n", maps.KindBox},
		{"box", "[map]\ntype = \"box\"\n", maps.KindBox},
		{"legacy name", "[map]\ntype = \"DefaultMap\"\n", maps.KindBox},
		{"maze", "[map]\ntype = \"maze\"\nbraiding = 0.5\n", maps.KindMaze},
		{"custom", "[map]\ntype = \"custom\"\ndata = \"\"\"\n###\n#>#\n###\n\"\"\"\n", maps.KindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.Map.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, c.Map.Kind)
			}
		})
	}
}

func TestParseBoxPartialKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("[map]\ntype = \"box\"\nwidth = 21\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Map.Box.Width != 21 || c.Map.Box.Height != 13 || c.Map.Box.CornerWallSize != 2 {
		t.Errorf("Expected width override only, got %+v", c.Map.Box)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown map", "[map]\ntype = \"spiral\"\n", ErrUnknownMapKind},
		{"bad custom", "[map]\ntype = \"custom\"\ndata = \"#x#\"\n", maps.ErrUnknownCell},
		{"zero food ticks", "food_ticks = 0\n", ErrInvalidConfig},
		{"zero segments", "snake_spawn_segments = 0\n", ErrInvalidConfig},
		{"negative tick", "tick_length = -1.0\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Parse([]byte("seed = [")); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.FoodTicks != 16 || c.Seed == 0 {
		t.Errorf("Expected defaults with a seed, got %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("seed = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", c.Seed)
	}
}

func TestParseControls(t *testing.T) {
	c, err := Parse([]byte("[controls]\nup = [\"Up\", \"i\"]\nquit = [\"x\"]\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := c.Controls["up"]; len(got) != 2 || got[0] != "Up" || got[1] != "i" {
		t.Errorf("Expected up=[Up i], got %v", got)
	}
	if got := c.Controls["quit"]; len(got) != 1 || got[0] != "x" {
		t.Errorf("Expected quit=[x], got %v", got)
	}
}
