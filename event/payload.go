package event

import (
	"time"

	"github.com/lixenwraith/hebi/core"
)

// SoundPayload names the cue to play
type SoundPayload struct {
	Sound core.SoundType
}

// ScorePayload carries the displayed score
type ScorePayload struct {
	Score int
}

// SnakeSpawnedPayload describes a fresh snake
type SnakeSpawnedPayload struct {
	Head      core.Entity
	Position  core.Point
	Direction core.Direction
	Segments  int
}

// SnakeDiedPayload describes a head collision
type SnakeDiedPayload struct {
	Head      core.Entity
	Position  core.Point
	Segments  int
	RespawnAt time.Duration
}

// FoodSpawnedPayload describes a new food entity
type FoodSpawnedPayload struct {
	Entity   core.Entity
	Position core.Point
	Variant  int
}
