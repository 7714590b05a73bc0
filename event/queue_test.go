package event

import (
	"testing"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventSound, Payload: &SoundPayload{Sound: core.SoundEat}})
	eq.Push(GameEvent{Type: EventScore, Payload: &ScorePayload{Score: 1}})

	if eq.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventSound || events[1].Type != EventScore {
		t.Errorf("Expected Sound then Score, got %v then %v", events[0].Type, events[1].Type)
	}
	if p, ok := events[1].Payload.(*ScorePayload); !ok || p.Score != 1 {
		t.Errorf("Expected score payload 1, got %#v", events[1].Payload)
	}

	if got := eq.Consume(); got != nil {
		t.Errorf("Expected nil after drain, got %d events", len(got))
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventScore, Payload: &ScorePayload{Score: i}})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(*ScorePayload).Score; first != 10 {
		t.Errorf("Expected oldest surviving score 10, got %d", first)
	}
	if eq.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", eq.Dropped())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSnakeDied.String() != "SnakeDied" {
		t.Errorf("Expected SnakeDied, got %s", EventSnakeDied.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(99).String())
	}
}
