package input

import (
	"fmt"
	"strings"
)

// Key is a keyboard key independent of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEscape
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
)

var keyNames = func() map[Key]string {
	m := map[Key]string{
		KeySpace:   "space",
		KeyEscape:  "escape",
		KeyRight:   "right",
		KeyLeft:    "left",
		KeyDown:    "down",
		KeyUp:      "up",
		KeyMinus:   "minus",
		KeyEqual:   "equal",
		KeyKPPlus:  "kp_plus",
		KeyKPMinus: "kp_minus",
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		m[k] = string(rune('0' + int(k-Key0)))
	}
	return m
}()

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	m["esc"] = KeyEscape
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey resolves a key name such as "w", "Escape" or "kp_plus".
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// EventKind is what happened to a key.
type EventKind int

const (
	Press EventKind = iota
	Repeat
	Release
)
