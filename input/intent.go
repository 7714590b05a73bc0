package input

import "github.com/lixenwraith/hebi/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // p
	IntentToggleMute  // m
	IntentToggleDebug // F3
	IntentResize      // Terminal resize event

	// Gameplay
	IntentMove // arrows, WASD, HJKL, numpad
)

// Intent is the result of translating one terminal event
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentMove only
}
