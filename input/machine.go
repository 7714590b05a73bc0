package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine translates terminal events into intents through a key table
type Machine struct {
	table *KeyTable
}

// NewMachine creates a translator; nil selects the default bindings
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Translate maps a terminal event; unbound keys and other events yield IntentNone
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.key(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) key(ev *tcell.EventKey) Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.table.Runes[unicode.ToLower(ev.Rune())]
	} else {
		entry, ok = m.table.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Direction: entry.Direction}
}
