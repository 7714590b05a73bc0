// Package game assembles a playable session: map, world, systems and clock
package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/config"
	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/manifest"
	"github.com/lixenwraith/hebi/maps"
	"github.com/lixenwraith/hebi/registry"
	"github.com/lixenwraith/hebi/system"
)

// ErrNoSpawnPositions is returned when the generated map has no Spawn cell
var ErrNoSpawnPositions = errors.New("map has no spawn positions")

// Game owns one session's world; all methods must be called from one goroutine
type Game struct {
	cfg       *config.Config
	world     *engine.World
	scheduler *engine.ClockScheduler
	mapData   maps.MapData

	statScore *atomic.Int64
}

// New generates the map from cfg and builds a ready-to-run session
// The map, spawn and food streams are independent and all seeded from cfg.Seed
func New(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mapRand := rand.New(rand.NewSource(cfg.Seed))
	m, err := maps.Generate(cfg.Map, mapRand)
	if err != nil {
		return nil, fmt.Errorf("generate %s map: %w", cfg.Map.Kind, err)
	}

	spawns := maps.ScanSpawnPositions(m)
	if len(spawns) == 0 {
		return nil, fmt.Errorf("%s map: %w", cfg.Map.Kind, ErrNoSpawnPositions)
	}

	w := engine.NewWorld()
	*w.Resources.Config = engine.ConfigResource{
		Width:           m.Width,
		Height:          m.Height,
		TickLength:      cfg.TickLength,
		FoodTicks:       cfg.FoodTicks,
		SpawnSegments:   cfg.SnakeSpawnSegments,
		DespawnInterval: cfg.SegmentDespawnDelay,
		RespawnDelay:    cfg.SnakeRespawnDelay,
	}
	w.Resources.Spawn.Positions = spawns
	w.Resources.Rand.Spawn = rand.New(rand.NewSource(cfg.Seed))
	w.Resources.Rand.Food = rand.New(rand.NewSource(cfg.Seed))

	walls := system.SpawnWalls(w, m)

	manifest.RegisterSystems()
	for _, name := range manifest.ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return nil, fmt.Errorf("system %q not registered", name)
		}
		w.AddSystem(factory(w))
	}

	reg := w.Resources.Status
	reg.Ints.Get("grid.width").Store(int64(m.Width))
	reg.Ints.Get("grid.height").Store(int64(m.Height))
	reg.Ints.Get("map.walls").Store(int64(walls))
	reg.Ints.Get("map.spawns").Store(int64(len(spawns)))

	log.Printf("game: %s map %dx%d, %d walls, %d spawns, seed %d",
		cfg.Map.Kind, m.Width, m.Height, walls, len(spawns), cfg.Seed)

	return &Game{
		cfg:       cfg,
		world:     w,
		scheduler: engine.NewClockScheduler(w, cfg.TickLength, cfg.FoodTicks),
		mapData:   m,
		statScore: reg.Ints.Get("snake.score"),
	}, nil
}

// Input queues a direction for the next movement tick
func (g *Game) Input(d core.Direction) {
	g.world.Resources.Input.Push(d)
}

// Advance runs the simulation up to now, measured from session start
// Returns the number of movement ticks run
func (g *Game) Advance(now time.Duration) int {
	return g.scheduler.Advance(now)
}

// Events drains the output events emitted since the last call
// Call it at least once per frame; the queue is bounded and overwrites the oldest events
func (g *Game) Events() []event.GameEvent {
	return g.world.ConsumeEvents()
}

// Score returns the most recently emitted score
func (g *Game) Score() int {
	return int(g.statScore.Load())
}

// World exposes the world for read-only rendering
func (g *Game) World() *engine.World {
	return g.world
}

// Map returns the generated map
func (g *Game) Map() maps.MapData {
	return g.mapData
}

// Config returns the session configuration
func (g *Game) Config() *config.Config {
	return g.cfg
}

// TickCount returns the number of movement ticks run so far
func (g *Game) TickCount() int64 {
	return g.scheduler.TickCount()
}
