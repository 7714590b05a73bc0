package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hebi/core"
)

// KeyEntry is the intent bound to one key
type KeyEntry struct {
	IntentType IntentType
	Direction  core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable keys; case-insensitive lookup
	Runes map[rune]KeyEntry
}

func move(d core.Direction) KeyEntry {
	return KeyEntry{IntentType: IntentMove, Direction: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    move(core.DirectionUp),
			tcell.KeyDown:  move(core.DirectionDown),
			tcell.KeyLeft:  move(core.DirectionLeft),
			tcell.KeyRight: move(core.DirectionRight),

			tcell.KeyEscape: {IntentType: IntentQuit},
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyF3:     {IntentType: IntentToggleDebug},
		},
		Runes: map[rune]KeyEntry{
			'w': move(core.DirectionUp),
			's': move(core.DirectionDown),
			'a': move(core.DirectionLeft),
			'd': move(core.DirectionRight),

			'k': move(core.DirectionUp),
			'j': move(core.DirectionDown),
			'h': move(core.DirectionLeft),
			'l': move(core.DirectionRight),

			// Numpad with num lock
			'8': move(core.DirectionUp),
			'2': move(core.DirectionDown),
			'4': move(core.DirectionLeft),
			'6': move(core.DirectionRight),

			'q': {IntentType: IntentQuit},
			'p': {IntentType: IntentTogglePause},
			'm': {IntentType: IntentToggleMute},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
