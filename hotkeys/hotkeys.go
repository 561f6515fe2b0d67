// Package hotkeys maps named keys to the four scroll directions and
// reports the pressed set as a unit direction vector.
package hotkeys

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"scrollkit/geometry"
)

type dir int

const (
	up dir = iota
	down
	left
	right
	dirCount
)

// Settings maps the four directions to keycode names. An empty string
// leaves that direction unmapped.
type Settings struct {
	Up, Down, Left, Right string
}

// Hotkeys tracks the pressed state of up to four mapped keys. Keycodes
// not present in the map never change state.
type Hotkeys struct {
	keys    [dirCount]string // normalized; "" = unmapped
	pressed [dirCount]bool
}

func New(settings Settings) *Hotkeys {
	h := &Hotkeys{}
	h.keys[up] = Normalize(settings.Up)
	h.keys[down] = Normalize(settings.Down)
	h.keys[left] = Normalize(settings.Left)
	h.keys[right] = Normalize(settings.Right)
	return h
}

// Normalize folds a keycode into the input layer's naming convention:
// NFC form, single characters upper-cased, longer names lower-cased.
func Normalize(key string) string {
	key = norm.NFC.String(key)
	if utf8.RuneCountInString(key) == 1 {
		return strings.ToUpper(key)
	}
	return strings.ToLower(key)
}

// HandlePress marks the direction mapped to key as pressed. Unmapped
// keycodes are ignored.
func (h *Hotkeys) HandlePress(key string) {
	h.set(key, true)
}

// HandleRelease mirrors HandlePress.
func (h *Hotkeys) HandleRelease(key string) {
	h.set(key, false)
}

func (h *Hotkeys) set(key string, pressed bool) {
	key = Normalize(key)
	if key == "" {
		return
	}
	for d := dir(0); d < dirCount; d++ {
		if h.keys[d] == key {
			h.pressed[d] = pressed
		}
	}
}

// Direction reports the net direction of the pressed keys. Left is -1
// and right +1 on x; up is +1 and down -1 on y (content-space, not
// screen-space). Opposite keys held together cancel out.
func (h *Hotkeys) Direction() geometry.Vector2 {
	var v geometry.Vector2
	if h.pressed[left] {
		v.X--
	}
	if h.pressed[right] {
		v.X++
	}
	if h.pressed[up] {
		v.Y++
	}
	if h.pressed[down] {
		v.Y--
	}
	return v
}

// AnyPressed reports whether any mapped key is currently down.
func (h *Hotkeys) AnyPressed() bool {
	for d := dir(0); d < dirCount; d++ {
		if h.pressed[d] {
			return true
		}
	}
	return false
}
