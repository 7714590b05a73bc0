package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hebi/parameter"
)

// ClockScheduler drives the world on a fixed timestep from an external clock
// Each Advance runs the frame pass, then every movement tick that has come due,
// with a food pass after every FoodTicks-th tick
type ClockScheduler struct {
	world   *World
	timeRes *TimeResource

	tickLength time.Duration
	foodTicks  int64
	nextTick   time.Duration
	tickCount  int64

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewClockScheduler creates a scheduler whose first tick falls one tick length after zero
func NewClockScheduler(world *World, tickLength time.Duration, foodTicks int) *ClockScheduler {
	if foodTicks < 1 {
		foodTicks = 1
	}
	reg := world.Resources.Status
	return &ClockScheduler{
		world:       world,
		timeRes:     world.Resources.Time,
		tickLength:  tickLength,
		foodTicks:   int64(foodTicks),
		nextTick:    tickLength,
		statTicks:   reg.Ints.Get("engine.ticks"),
		statDropped: reg.Ints.Get("engine.dropped_ticks"),
	}
}

// Advance brings the simulation up to now and returns the number of ticks run
// A clock that moves backwards is treated as standing still
func (cs *ClockScheduler) Advance(now time.Duration) int {
	if now < cs.timeRes.Now {
		now = cs.timeRes.Now
	}
	cs.timeRes.DeltaTime = now - cs.timeRes.Now
	cs.timeRes.Now = now
	cs.timeRes.FrameNumber++

	systems := cs.world.Systems()
	cs.run(systems, CadenceFrame)

	ticks := 0
	for cs.nextTick <= now {
		if ticks == parameter.MaxCatchUpTicks {
			behind := int64((now-cs.nextTick)/cs.tickLength) + 1
			cs.nextTick += time.Duration(behind) * cs.tickLength
			cs.statDropped.Add(behind)
			log.Printf("scheduler: dropped %d ticks behind clock", behind)
			break
		}

		cs.timeRes.Now = cs.nextTick
		cs.tickCount++
		cs.timeRes.TickNumber = cs.tickCount
		cs.run(systems, CadenceTick)
		if cs.tickCount%cs.foodTicks == 0 {
			cs.run(systems, CadenceFood)
		}

		cs.statTicks.Add(1)
		cs.nextTick += cs.tickLength
		ticks++
	}

	cs.timeRes.Now = now
	return ticks
}

// TickCount returns the number of movement ticks run so far
func (cs *ClockScheduler) TickCount() int64 {
	return cs.tickCount
}

// NextTick returns the clock time of the next due movement tick
func (cs *ClockScheduler) NextTick() time.Duration {
	return cs.nextTick
}

func (cs *ClockScheduler) run(systems []System, cadence Cadence) {
	for _, s := range systems {
		if s.Cadence() == cadence {
			s.Update()
		}
	}
}
