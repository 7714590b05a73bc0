package system

import (
	"testing"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/maps"
)

func TestMovementFollowTheLeader(t *testing.T) {
	w := newTestWorld(20, 20)
	head := SpawnSnake(w, maps.SpawnPosition{Position: core.Point{X: 5, Y: 5}, Direction: core.DirectionRight}, 3)

	want := []core.Point{{5, 5}, {4, 5}, {3, 5}}
	got := chain(w, head)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected spawn chain %v, got %v", want, got)
		}
	}

	NewMovementSystem(w).Update()

	want = []core.Point{{6, 5}, {5, 5}, {4, 5}}
	got = chain(w, head)
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestMovementRejectsReversal(t *testing.T) {
	w := newTestWorld(20, 20)
	head := SpawnSnake(w, maps.SpawnPosition{Position: core.Point{X: 5, Y: 5}, Direction: core.DirectionRight}, 3)

	w.Resources.Input.Push(core.DirectionLeft)
	NewMovementSystem(w).Update()
	NewCollisionSystem(w).Update()

	h, ok := w.Components.Head.Get(head)
	if !ok {
		t.Fatal("Expected head alive after rejected U-turn")
	}
	if h.Direction != core.DirectionRight {
		t.Errorf("Expected heading right, got %v", h.Direction)
	}
	if got := chain(w, head)[0]; got != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head at (6,5), got %v", got)
	}
}

func TestMovementLatestValidInputWins(t *testing.T) {
	w := newTestWorld(20, 20)
	head := SpawnSnake(w, maps.SpawnPosition{Position: core.Point{X: 5, Y: 5}, Direction: core.DirectionRight}, 2)

	w.Resources.Input.Push(core.DirectionDown)
	w.Resources.Input.Push(core.DirectionUp)
	w.Resources.Input.Push(core.DirectionLeft)
	NewMovementSystem(w).Update()

	if got := chain(w, head)[0]; got != (core.Point{X: 5, Y: 4}) {
		t.Errorf("Expected head moved up to (5,4), got %v", got)
	}
	if len(w.Resources.Input.Pending) != 0 {
		t.Error("Expected input drained")
	}

	// Buffered heading persists without new input
	NewMovementSystem(w).Update()
	if got := chain(w, head)[0]; got != (core.Point{X: 5, Y: 3}) {
		t.Errorf("Expected head at (5,3), got %v", got)
	}
}

func TestMovementSkipsMissingSegment(t *testing.T) {
	w := newTestWorld(20, 20)
	head := SpawnSnake(w, maps.SpawnPosition{Position: core.Point{X: 5, Y: 5}, Direction: core.DirectionRight}, 4)
	h, _ := w.Components.Head.Get(head)
	w.DestroyEntity(h.Segments[1])

	NewMovementSystem(w).Update()

	tail, _ := w.Positions.Get(h.Segments[2])
	if tail.Point() != (core.Point{X: 4, Y: 5}) {
		t.Errorf("Expected tail to close the gap at (4,5), got %v", tail.Point())
	}
}
