package engine

import (
	"testing"
	"time"
)

func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s, got %v", got)
	}

	if !pc.Toggle() {
		t.Fatal("Expected paused after first toggle")
	}
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected frozen at 1s while paused, got %v", got)
	}

	pc.Toggle()
	mock.Advance(500 * time.Millisecond)
	if got := pc.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s after resume, got %v", got)
	}
}
