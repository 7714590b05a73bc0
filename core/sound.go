package core

// SoundType identifies a fire-and-forget audio cue
type SoundType int

const (
	SoundEat        SoundType = iota // Food consumed
	SoundDestroy                     // Snake piece starts fading after a collision
	SoundSpawnFood                   // Food appeared
	SoundSpawnSnake                  // New snake head placed
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundDestroy:
		return "destroy"
	case SoundSpawnFood:
		return "spawn_food"
	case SoundSpawnSnake:
		return "spawn_snake"
	}
	return "unknown"
}
