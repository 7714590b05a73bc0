package input

import "github.com/lixenwraith/hebi/core"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the controls loader to resolve config action keys to bindings
var actionRegistry = map[string]KeyEntry{
	"up":    move(core.DirectionUp),
	"down":  move(core.DirectionDown),
	"left":  move(core.DirectionLeft),
	"right": move(core.DirectionRight),

	"quit":  {IntentType: IntentQuit},
	"pause": {IntentType: IntentTogglePause},
	"mute":  {IntentType: IntentToggleMute},
	"debug": {IntentType: IntentToggleDebug},
}

// ActionEntry returns the binding for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
