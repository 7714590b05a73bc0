// Package config loads the game settings from TOML
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/maps"
	"github.com/lixenwraith/hebi/parameter"
)

// DefaultPath is read when no path is given on the command line
const DefaultPath = "config.toml"

var (
	ErrUnknownMapKind = errors.New("unknown map type")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config is the resolved game configuration
// Durations are stored as time.Duration; the file carries seconds
type Config struct {
	Seed uint64

	TickLength          time.Duration
	FoodTicks           int
	SnakeSpawnSegments  int
	SegmentDespawnDelay time.Duration
	SnakeRespawnDelay   time.Duration

	SoundsDir string
	Audio     [core.SoundTypeCount]string

	Map maps.Params

	// Action name → key names, applied over the default key table
	Controls map[string][]string
}

// fileConfig mirrors the on-disk layout; pointers distinguish absent keys
type fileConfig struct {
	Seed                        *uint64             `toml:"seed"`
	TickLength                  *float64            `toml:"tick_length"`
	FoodTicks                   *int                `toml:"food_ticks"`
	SnakeSpawnSegments          *int                `toml:"snake_spawn_segments"`
	SnakeSegmentDespawnInterval *float64            `toml:"snake_segment_despawn_interval"`
	SnakeRespawnDelay           *float64            `toml:"snake_respawn_delay"`
	EatAudio                    *string             `toml:"eat_audio"`
	DestroyAudio                *string             `toml:"destroy_audio"`
	SpawnFoodAudio              *string             `toml:"spawn_food_audio"`
	SpawnSnakeAudio             *string             `toml:"spawn_snake_audio"`
	SoundsDir                   *string             `toml:"sounds_dir"`
	Map                         map[string]any      `toml:"map"`
	Controls                    map[string][]string `toml:"controls"`
}

// Default returns the stock configuration with seed 0 (unresolved)
func Default() *Config {
	c := &Config{
		TickLength:          parameter.DefaultTickLength,
		FoodTicks:           parameter.DefaultFoodTicks,
		SnakeSpawnSegments:  parameter.DefaultSnakeSpawnSegments,
		SegmentDespawnDelay: parameter.DefaultSegmentDespawnInterval,
		SnakeRespawnDelay:   parameter.DefaultSnakeRespawnDelay,
		SoundsDir:           parameter.DefaultSoundsDir,
		Map:                 maps.DefaultParams(),
	}
	c.Audio[core.SoundEat] = parameter.DefaultEatAudio
	c.Audio[core.SoundDestroy] = parameter.DefaultDestroyAudio
	c.Audio[core.SoundSpawnFood] = parameter.DefaultSpawnFoodAudio
	c.Audio[core.SoundSpawnSnake] = parameter.DefaultSpawnSnakeAudio
	return c
}

// Load reads path; a missing file yields defaults
// A zero or absent seed is replaced with a random one
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c := Default()
		c.resolveSeed()
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML data over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	c := Default()
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.TickLength != nil {
		c.TickLength = seconds(*fc.TickLength)
	}
	if fc.FoodTicks != nil {
		c.FoodTicks = *fc.FoodTicks
	}
	if fc.SnakeSpawnSegments != nil {
		c.SnakeSpawnSegments = *fc.SnakeSpawnSegments
	}
	if fc.SnakeSegmentDespawnInterval != nil {
		c.SegmentDespawnDelay = seconds(*fc.SnakeSegmentDespawnInterval)
	}
	if fc.SnakeRespawnDelay != nil {
		c.SnakeRespawnDelay = seconds(*fc.SnakeRespawnDelay)
	}
	setString(&c.Audio[core.SoundEat], fc.EatAudio)
	setString(&c.Audio[core.SoundDestroy], fc.DestroyAudio)
	setString(&c.Audio[core.SoundSpawnFood], fc.SpawnFoodAudio)
	setString(&c.Audio[core.SoundSpawnSnake], fc.SpawnSnakeAudio)
	setString(&c.SoundsDir, fc.SoundsDir)

	c.Controls = fc.Controls

	if fc.Map != nil {
		p, err := decodeMap(fc.Map)
		if err != nil {
			return nil, err
		}
		c.Map = p
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.resolveSeed()
	return c, nil
}

// Validate checks the timing and snake settings
func (c *Config) Validate() error {
	if c.TickLength <= 0 {
		return fmt.Errorf("%w: tick_length must be positive", ErrInvalidConfig)
	}
	if c.FoodTicks < 1 {
		return fmt.Errorf("%w: food_ticks must be at least 1, got %d", ErrInvalidConfig, c.FoodTicks)
	}
	if c.SnakeSpawnSegments < 1 {
		return fmt.Errorf("%w: snake_spawn_segments must be at least 1, got %d", ErrInvalidConfig, c.SnakeSpawnSegments)
	}
	if c.SegmentDespawnDelay < 0 || c.SnakeRespawnDelay < 0 {
		return fmt.Errorf("%w: despawn interval and respawn delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// AudioPath resolves the asset file for a cue
func (c *Config) AudioPath(s core.SoundType) string {
	if s < 0 || s >= core.SoundTypeCount || c.Audio[s] == "" {
		return ""
	}
	return filepath.Join(c.SoundsDir, c.Audio[s])
}

// The package-level source is fixed-seeded, so draw from a clock-seeded one
func (c *Config) resolveSeed() {
	src := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	for c.Seed == 0 {
		c.Seed = src.Uint64()
	}
}

// decodeMap resolves the [map] table in two passes: the type tag, then the
// kind's own fields decoded over its defaults
func decodeMap(raw map[string]any) (maps.Params, error) {
	p := maps.DefaultParams()

	tag, _ := raw["type"].(string)
	kind, ok := mapKinds[tag]
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownMapKind, tag)
	}
	p.Kind = kind

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "type" {
			fields[k] = v
		}
	}
	data, err := toml.Marshal(fields)
	if err != nil {
		return p, fmt.Errorf("map table: %w", err)
	}

	var target any
	switch kind {
	case maps.KindBox:
		target = &p.Box
	case maps.KindCorridors:
		target = &p.Corridors
	case maps.KindCustom:
		target = &p.Custom
	case maps.KindMaze:
		target = &p.Maze
	}
	if err := toml.Unmarshal(data, target); err != nil {
		return p, fmt.Errorf("map %s: %w", kind, err)
	}

	if kind == maps.KindCustom {
		if _, err := maps.Parse(p.Custom.Data); err != nil {
			return p, fmt.Errorf("map custom: %w", err)
		}
	}
	return p, nil
}

// Accepted [map] type tags; an absent tag selects the box arena
var mapKinds = map[string]maps.Kind{
	"":           maps.KindBox,
	"box":        maps.KindBox,
	"default":    maps.KindBox,
	"DefaultMap": maps.KindBox,
	"corridors":  maps.KindCorridors,
	"custom":     maps.KindCustom,
	"maze":       maps.KindMaze,
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
