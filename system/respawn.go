package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/parameter"
)

// RespawnSystem spawns a snake at a random spawn position once the respawn is due
// and no live head remains
type RespawnSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64
	statScore   *atomic.Int64
}

func NewRespawnSystem(world *engine.World) engine.System {
	s := &RespawnSystem{SystemBase: engine.NewSystemBase(world)}
	s.statSpawned = s.Resource.Status.Ints.Get("snake.spawned")
	s.statScore = s.Resource.Status.Ints.Get("snake.score")
	return s
}

func (s *RespawnSystem) Name() string {
	return "respawn"
}

func (s *RespawnSystem) Priority() int {
	return parameter.PriorityRespawn
}

func (s *RespawnSystem) Cadence() engine.Cadence {
	return engine.CadenceTick
}

func (s *RespawnSystem) Update() {
	respawn := s.Resource.Respawn
	if respawn.Completed || s.Resource.Time.Now < respawn.Time {
		return
	}
	if s.Component.Head.Count() > 0 {
		return
	}

	positions := s.Resource.Spawn.Positions
	if len(positions) == 0 {
		return
	}
	sp := positions[s.Resource.Rand.Spawn.Intn(len(positions))]

	segments := s.Resource.Config.SpawnSegments
	head := SpawnSnake(s.World, sp, segments)
	respawn.Completed = true

	h, _ := s.Component.Head.Get(head)
	score := Score(h, segments)
	s.statScore.Store(int64(score))
	s.statSpawned.Add(1)

	s.World.PushEvent(event.EventSound, &event.SoundPayload{Sound: core.SoundSpawnSnake})
	s.World.PushEvent(event.EventSnakeSpawned, &event.SnakeSpawnedPayload{
		Head:      head,
		Position:  sp.Position,
		Direction: sp.Direction,
		Segments:  len(h.Segments),
	})
	s.World.PushEvent(event.EventScore, &event.ScorePayload{Score: score})
	log.Printf("snake %d spawned at %v facing %v", head, sp.Position, sp.Direction)
}
