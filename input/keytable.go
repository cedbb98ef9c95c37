package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// Binding is the paddle and direction a key drives
type Binding struct {
	Side   core.Side
	Intent Intent
}

// KeyTable maps terminal keys to paddle bindings
type KeyTable struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

// DefaultKeyTable returns the default bindings
// Left: z/r and w/s, right: y/i and arrows
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Binding{
			'z': {core.Left, Up},
			'r': {core.Left, Down},
			'w': {core.Left, Up},
			's': {core.Left, Down},
			'y': {core.Right, Up},
			'i': {core.Right, Down},
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyUp:   {core.Right, Up},
			tcell.KeyDown: {core.Right, Down},
		},
	}
}

// Lookup returns the binding for a key event's key and rune
func (t *KeyTable) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		b, ok := t.Runes[r]
		return b, ok
	}
	b, ok := t.Keys[key]
	return b, ok
}
