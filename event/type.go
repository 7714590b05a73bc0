package event

// EventType identifies an output signal emitted by the simulation
type EventType int

const (
	// EventSound requests a one-shot audio cue
	// Trigger: Despawn animation start, food spawn, snake spawn
	// Consumer: audio player | Payload: *SoundPayload
	EventSound EventType = iota

	// EventScore reports the current score after it changes
	// Trigger: Eating, snake spawn
	// Consumer: window title | Payload: *ScorePayload
	EventScore

	// EventSnakeSpawned signals a new live head
	// Trigger: RespawnSystem | Payload: *SnakeSpawnedPayload
	EventSnakeSpawned

	// EventSnakeDied signals a head collision and the scheduled respawn
	// Trigger: CollisionSystem | Payload: *SnakeDiedPayload
	EventSnakeDied

	// EventFoodSpawned signals a new food entity
	// Trigger: FoodSystem | Payload: *FoodSpawnedPayload
	EventFoodSpawned

	eventTypeCount
)

// GameEvent is one queued signal with the frame it was raised on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
