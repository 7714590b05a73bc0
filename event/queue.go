package event

import (
	"sync/atomic"

	"github.com/lixenwraith/hebi/parameter"
)

// EventQueue is a fixed ring buffer of output events
// Push is called by the simulation, Consume by the driver once per frame
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    atomic.Uint64 // Read index
	tail    atomic.Uint64 // Write index
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	tail := eq.tail.Load()
	eq.events[tail&parameter.EventBufferMask] = ev
	eq.tail.Store(tail + 1)

	if head := eq.head.Load(); tail+1-head > parameter.EventQueueSize {
		eq.head.Store(tail + 1 - parameter.EventQueueSize)
		eq.dropped.Add(1)
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail == head {
		return nil
	}

	result := make([]GameEvent, 0, tail-head)
	for i := head; i < tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head.Store(tail)
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail.Load() - eq.head.Load())
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
