package parameter

import "time"

// Simulation defaults, overridable from config.toml
const (
	DefaultTickLength             = 200 * time.Millisecond
	DefaultFoodTicks              = 16
	DefaultSnakeSpawnSegments     = 2
	DefaultSegmentDespawnInterval = 100 * time.Millisecond
	DefaultSnakeRespawnDelay      = 500 * time.Millisecond
)

// Despawn animation, applied once per frame after the entity's delay elapses
const (
	DespawnScaleFactor = 1.125
	DespawnAlphaFactor = 1.5
)

// GridInterpolation is the render smoothing factor stored on every grid position
const GridInterpolation = 0.375

// FoodVariantCount is the number of food colours a spawn picks from
const FoodVariantCount = 7

// Default audio asset names, resolved relative to the sounds directory
const (
	DefaultEatAudio        = "eat.wav"
	DefaultDestroyAudio    = "destroy.wav"
	DefaultSpawnFoodAudio  = "spawn_food.wav"
	DefaultSpawnSnakeAudio = "spawn_snake.wav"
	DefaultSoundsDir       = "assets/sounds"
)
