package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// specialKeys resolves lower-cased tcell key names ("up", "esc", "ctrl-c", "f3")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// MergeControls returns base with the [controls] bindings applied
// Each listed action replaces all of its default keys; unlisted actions keep theirs
// Returns error on unknown action names or key names
func MergeControls(base *KeyTable, controls map[string][]string) (*KeyTable, error) {
	result := base.Clone()

	actions := make([]string, 0, len(controls))
	for name := range controls {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		entry, err := resolveAction(name)
		if err != nil {
			return nil, err
		}
		unbind(result, entry)

		for _, keyStr := range controls[name] {
			if r, err := resolveRune(keyStr); err == nil {
				result.Runes[r] = entry
				continue
			}
			k, ok := specialKeys[strings.ToLower(strings.TrimSpace(keyStr))]
			if !ok {
				return nil, fmt.Errorf("[controls] %s: unknown key name: %q", name, keyStr)
			}
			result.SpecialKeys[k] = entry
		}
	}

	return result, nil
}

func unbind(kt *KeyTable, entry KeyEntry) {
	for k, v := range kt.SpecialKeys {
		if v == entry {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, v := range kt.Runes {
		if v == entry {
			delete(kt.Runes, r)
		}
	}
}

// resolveRune converts a config key string to a lower-cased rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return []rune(strings.ToLower(s))[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("[controls] unknown action: %q", name)
	}
	return entry, nil
}
