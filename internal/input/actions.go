package input

import (
	"fmt"
	"sort"
)

// Action is something a key binding does to the viewer.
type Action int

const (
	ActionNone Action = iota
	MoveUp
	MoveDown
	MoveRight
	MoveLeft
	RotateXPos
	RotateXNeg
	RotateYPos
	RotateYNeg
	RotateZPos
	RotateZNeg
	Grow
	Shrink
	Reset
	Quit
)

var actionNames = map[Action]string{
	MoveUp:     "move_up",
	MoveDown:   "move_down",
	MoveRight:  "move_right",
	MoveLeft:   "move_left",
	RotateXPos: "rotate_x_pos",
	RotateXNeg: "rotate_x_neg",
	RotateYPos: "rotate_y_pos",
	RotateYNeg: "rotate_y_neg",
	RotateZPos: "rotate_z_pos",
	RotateZNeg: "rotate_z_neg",
	Grow:       "grow",
	Shrink:     "shrink",
	Reset:      "reset",
	Quit:       "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Bindings maps keys to actions. Several keys may share an action.
type Bindings map[Key]Action

// DefaultBindings returns the stock layout: WASD moves, IJKL/UO rotate,
// E/Q scale, R resets and Escape quits.
func DefaultBindings() Bindings {
	return Bindings{
		KeyW:      MoveUp,
		KeyS:      MoveDown,
		KeyD:      MoveRight,
		KeyA:      MoveLeft,
		KeyI:      RotateXPos,
		KeyK:      RotateXNeg,
		KeyJ:      RotateYPos,
		KeyL:      RotateYNeg,
		KeyU:      RotateZPos,
		KeyO:      RotateZNeg,
		KeyE:      Grow,
		KeyQ:      Shrink,
		KeyR:      Reset,
		KeyEscape: Quit,
	}
}

// ParseBindings converts a key-name to action-name table, as read from
// configuration, into Bindings.
func ParseBindings(raw map[string]string) (Bindings, error) {
	b := make(Bindings, len(raw))
	for keyName, actionName := range raw {
		k, err := ParseKey(keyName)
		if err != nil {
			return nil, err
		}
		a, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", keyName, err)
		}
		if _, dup := b[k]; dup {
			return nil, fmt.Errorf("key %s bound more than once", k)
		}
		b[k] = a
	}
	return b, nil
}

// Names returns the bindings as a key-name to action-name table.
func (b Bindings) Names() map[string]string {
	m := make(map[string]string, len(b))
	for k, a := range b {
		m[k.String()] = a.String()
	}
	return m
}

// Keys returns the keys bound to a, sorted.
func (b Bindings) Keys(a Action) []Key {
	var keys []Key
	for k, ba := range b {
		if ba == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
