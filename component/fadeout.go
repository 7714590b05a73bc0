package component

import (
	"time"

	"github.com/lixenwraith/hebi/core"
)

// DespawningComponent schedules an entity for a fade-out and removal
// The animation starts once the clock passes TriggerTime+Delay
type DespawningComponent struct {
	TriggerTime time.Duration
	Delay       time.Duration

	// One-shot cue emitted on the first animated frame
	Sound    core.SoundType
	HasSound bool

	Started bool
}

// StartAt returns the clock time the animation begins
func (d DespawningComponent) StartAt() time.Duration {
	return d.TriggerTime + d.Delay
}

// FadeComponent is render-only state mutated by the despawn animation
type FadeComponent struct {
	Alpha float64 // 1 = opaque
	Scale float64
}

// NewFade returns a fully visible, unscaled fade state
func NewFade() FadeComponent {
	return FadeComponent{Alpha: 1, Scale: 1}
}
